package polls

import (
	"fmt"
	"sort"
	"strings"
)

// OptionResult is one option's final vote count.
type OptionResult struct {
	Option string
	Votes  int
}

// Tally pairs options with their vote counts and sorts by descending votes.
// Counts come from live reaction totals with the bot's seed reaction already
// subtracted. Ties keep the original option order (stable sort).
func Tally(options []string, counts []int) (results []OptionResult, total int) {
	for i, opt := range options {
		votes := 0
		if i < len(counts) {
			votes = counts[i]
		}
		if votes < 0 {
			votes = 0
		}
		results = append(results, OptionResult{Option: opt, Votes: votes})
		total += votes
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Votes > results[j].Votes
	})
	return results, total
}

// Percentage of votes for one option; 0 when nobody voted at all.
func Percentage(votes, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(votes) / float64(total) * 100
}

// Bar renders a proportional vote bar out of 10 segments.
func Bar(percentage float64) string {
	filled := int(percentage / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// FormatResults renders the sorted results block for the results embed.
func FormatResults(results []OptionResult, total int) string {
	if total == 0 {
		return "No votes yet!"
	}
	var sb strings.Builder
	for _, r := range results {
		pct := Percentage(r.Votes, total)
		sb.WriteString(fmt.Sprintf("**%s**\n%s %d votes (%.1f%%)\n\n", r.Option, Bar(pct), r.Votes, pct))
	}
	return sb.String()
}
