// Package reminders schedules fire-and-forget reminder deliveries. A
// reminder is cancelled by deleting its record before the deadline; the
// timer itself is never interrupted, it just finds no record when it fires.
// Nothing survives a process restart.
package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Record describes one pending reminder.
type Record struct {
	ID        string
	UserID    string
	ChannelID string
	Message   string
	FireAt    time.Time
}

// NewID builds the composite reminder key from the creating user and the
// creation time.
func NewID(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s_%d", userID, createdAt.Unix())
}

// DeliverFunc sends the reminder to its channel. Delivery failures are not
// retried.
type DeliverFunc func(rec Record)

// Scheduler tracks pending reminder records and fires them after their
// delay. Safe for concurrent use.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]Record
	ctx     context.Context
}

// NewScheduler returns a Scheduler whose timers stop when ctx is cancelled.
func NewScheduler(ctx context.Context) *Scheduler {
	return &Scheduler{pending: make(map[string]Record), ctx: ctx}
}

// Schedule registers the record and starts its timer. When the timer
// completes, deliver runs only if the record is still present. Removing
// the record first is the soft cancel.
func (s *Scheduler) Schedule(rec Record, deliver DeliverFunc) {
	s.mu.Lock()
	s.pending[rec.ID] = rec
	s.mu.Unlock()

	go func() {
		timer := time.NewTimer(time.Until(rec.FireAt))
		defer timer.Stop()

		select {
		case <-s.ctx.Done():
			return
		case <-timer.C:
		}

		if current, ok := s.take(rec.ID); ok {
			deliver(current)
		}
	}()
}

// Cancel removes a pending record so the timer fires into nothing.
// Returns false if no such reminder exists.
func (s *Scheduler) Cancel(id string) bool {
	_, ok := s.take(id)
	return ok
}

// Get returns a pending record.
func (s *Scheduler) Get(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pending[id]
	return rec, ok
}

// Pending returns the number of reminders waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// take removes and returns the record in one step so a concurrent cancel
// and fire cannot both observe it.
func (s *Scheduler) take(id string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	return rec, ok
}
