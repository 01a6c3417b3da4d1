// Package polls keeps poll bookkeeping for the lifetime of the process.
// Records are looked up by the poll message ID; nothing is persisted, so a
// restart forgets every poll.
package polls

import (
	"sync"
)

// NumberEmojis seed the poll message with one reaction per option; voters
// click the matching emoji.
var NumberEmojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// Bounds on a poll's option list.
const (
	MinOptions = 2
	MaxOptions = 10
)

// Record describes one active poll.
type Record struct {
	MessageID string
	ChannelID string
	CreatorID string
	Question  string
	Options   []string
}

// Store is the poll bookkeeping contract. The in-memory implementation is
// the only one today; the interface exists so a persistent backing store
// could replace it without touching handlers.
type Store interface {
	Put(rec Record)
	Get(messageID string) (Record, bool)
	Delete(messageID string)
}

// MemoryStore is a process-lifetime map of active polls.
type MemoryStore struct {
	mu    sync.RWMutex
	polls map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{polls: make(map[string]Record)}
}

func (s *MemoryStore) Put(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls[rec.MessageID] = rec
}

func (s *MemoryStore) Get(messageID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.polls[messageID]
	return rec, ok
}

func (s *MemoryStore) Delete(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.polls, messageID)
}
