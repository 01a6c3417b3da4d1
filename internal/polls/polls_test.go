package polls

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	rec := Record{
		MessageID: "m1",
		ChannelID: "c1",
		CreatorID: "u1",
		Question:  "Pizza or tacos?",
		Options:   []string{"Pizza", "Tacos"},
	}
	s.Put(rec)

	got, ok := s.Get("m1")
	require.True(t, ok)
	assert.Equal(t, rec, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	s.Delete("m1")
	_, ok = s.Get("m1")
	assert.False(t, ok)
}

func TestTallySortsByVotesDescending(t *testing.T) {
	options := []string{"opt1", "opt2", "opt3"}
	// Live reaction counts minus the bot's seed reaction.
	counts := []int{4, 2, 0}

	results, total := Tally(options, counts)

	require.Len(t, results, 3)
	assert.Equal(t, 6, total)
	assert.Equal(t, OptionResult{"opt1", 4}, results[0])
	assert.Equal(t, OptionResult{"opt2", 2}, results[1])
	assert.Equal(t, OptionResult{"opt3", 0}, results[2])

	assert.InDelta(t, 66.7, Percentage(results[0].Votes, total), 0.05)
	assert.InDelta(t, 33.3, Percentage(results[1].Votes, total), 0.05)
	assert.Equal(t, 0.0, Percentage(results[2].Votes, total))
}

func TestTallyTieKeepsOriginalOrder(t *testing.T) {
	results, total := Tally([]string{"a", "b", "c"}, []int{1, 3, 1})

	assert.Equal(t, 5, total)
	assert.Equal(t, "b", results[0].Option)
	assert.Equal(t, "a", results[1].Option)
	assert.Equal(t, "c", results[2].Option)
}

func TestTallyClampsNegativeCounts(t *testing.T) {
	// A missing seed reaction can make count-1 negative; treat it as zero.
	results, total := Tally([]string{"a"}, []int{-1})
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, results[0].Votes)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", Bar(0))
	assert.Equal(t, "██████░░░░", Bar(66.7))
	assert.Equal(t, "███░░░░░░░", Bar(33.3))
	assert.Equal(t, "██████████", Bar(100))
	assert.Equal(t, "█████░░░░░", Bar(50))
}

func TestFormatResults(t *testing.T) {
	results, total := Tally([]string{"opt1", "opt2", "opt3"}, []int{4, 2, 0})
	out := FormatResults(results, total)

	assert.Contains(t, out, "**opt1**")
	assert.Contains(t, out, "4 votes (66.7%)")
	assert.Contains(t, out, "2 votes (33.3%)")
	assert.Contains(t, out, "0 votes (0.0%)")
	// opt1 block must come before opt2.
	assert.Less(t, strings.Index(out, "opt1"), strings.Index(out, "opt2"))

	assert.Equal(t, "No votes yet!", FormatResults(nil, 0))
}
