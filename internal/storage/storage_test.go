package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCommandHistoryRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	rec := CommandHistoryRecord{
		ChannelID: "c1",
		GuildName: "Test Guild",
		UserID:    "u1",
		Username:  "alice",
		Command:   "kick",
		Datetime:  time.Now().UTC(),
	}
	require.NoError(t, s.AppendCommandToHistory("g1", rec))

	history, err := s.FetchCommandHistory("g1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "kick", history[0].Command)
	assert.Equal(t, "alice", history[0].Username)
}

func TestCommandHistoryCapped(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		rec := CommandHistoryRecord{Command: fmt.Sprintf("cmd-%d", i)}
		require.NoError(t, s.AppendCommandToHistory("g1", rec))
	}

	history, err := s.FetchCommandHistory("g1")
	require.NoError(t, err)
	assert.Len(t, history, commandHistoryLimit)
	assert.Equal(t, "cmd-5", history[0].Command)
	assert.Equal(t, fmt.Sprintf("cmd-%d", commandHistoryLimit+4), history[len(history)-1].Command)
}

func TestFetchEmptyGuild(t *testing.T) {
	s := newTestStorage(t)

	history, err := s.FetchCommandHistory("unknown")
	require.NoError(t, err)
	assert.Empty(t, history)
}
