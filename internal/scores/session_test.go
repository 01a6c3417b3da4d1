package scores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MubtasimTazwer/utility-bot/internal/football"
)

func fixtures(n int) []football.Fixture {
	out := make([]football.Fixture, n)
	for i := range out {
		out[i].Meta.ID = 100 + i
	}
	return out
}

func newTestManager(start time.Time) (*Manager, *time.Time) {
	clock := start
	m := NewManager()
	m.now = func() time.Time { return clock }
	return m, &clock
}

func TestCreateCapsMatches(t *testing.T) {
	m, _ := newTestManager(time.Now())
	s := m.Create("msg", fixtures(8))
	assert.Len(t, s.Matches, MaxMatches)
	assert.Equal(t, ListView, s.View)
}

func TestListToDetailTransition(t *testing.T) {
	m, _ := newTestManager(time.Now())
	m.Create("msg", fixtures(3))

	s, err := m.Transition("msg", Action{Kind: SelectMatch, Index: 2})
	require.NoError(t, err)
	assert.Equal(t, DetailView, s.View)
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, 102, s.Selected().Meta.ID)
}

func TestDetailToLineupAndBack(t *testing.T) {
	m, _ := newTestManager(time.Now())
	m.Create("msg", fixtures(3))

	_, err := m.Transition("msg", Action{Kind: SelectMatch, Index: 1})
	require.NoError(t, err)

	s, err := m.Transition("msg", Action{Kind: ShowLineup})
	require.NoError(t, err)
	assert.Equal(t, LineupView, s.View)
	assert.Equal(t, 1, s.Index)

	// Back from lineup returns to the same match's detail, never the list.
	s, err = m.Transition("msg", Action{Kind: Back})
	require.NoError(t, err)
	assert.Equal(t, DetailView, s.View)
	assert.Equal(t, 1, s.Index)

	s, err = m.Transition("msg", Action{Kind: Back})
	require.NoError(t, err)
	assert.Equal(t, ListView, s.View)
}

func TestInvalidTransitions(t *testing.T) {
	m, _ := newTestManager(time.Now())
	m.Create("msg", fixtures(2))

	_, err := m.Transition("msg", Action{Kind: ShowLineup})
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = m.Transition("msg", Action{Kind: Back})
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = m.Transition("msg", Action{Kind: SelectMatch, Index: 9})
	assert.ErrorIs(t, err, ErrBadTransition)

	_, err = m.Transition("other", Action{Kind: SelectMatch, Index: 0})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestIdleTimeout(t *testing.T) {
	start := time.Now()
	m, clock := newTestManager(start)
	m.Create("msg", fixtures(2))

	// Just inside the deadline still works and refreshes it.
	*clock = start.Add(IdleTimeout - time.Second)
	_, err := m.Transition("msg", Action{Kind: SelectMatch, Index: 0})
	require.NoError(t, err)

	// The previous interaction pushed the deadline out.
	*clock = start.Add(2*IdleTimeout - 2*time.Second)
	s, err := m.Transition("msg", Action{Kind: ShowLineup})
	require.NoError(t, err)
	assert.Equal(t, LineupView, s.View)

	// Past the refreshed deadline nothing moves.
	*clock = s.Deadline.Add(time.Second)
	_, err = m.Transition("msg", Action{Kind: Back})
	assert.ErrorIs(t, err, ErrExpired)

	// The session is gone for good afterwards.
	_, err = m.Get("msg")
	assert.ErrorIs(t, err, ErrNoSession)
}
