package reminders

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFires(t *testing.T) {
	s := NewScheduler(context.Background())

	fired := make(chan Record, 1)
	rec := Record{
		ID:        NewID("u1", time.Now()),
		UserID:    "u1",
		ChannelID: "c1",
		Message:   "check the oven",
		FireAt:    time.Now().Add(20 * time.Millisecond),
	}
	s.Schedule(rec, func(r Record) { fired <- r })

	select {
	case got := <-fired:
		assert.Equal(t, rec.Message, got.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("reminder never fired")
	}

	assert.Equal(t, 0, s.Pending())
}

func TestSoftCancelSuppressesDelivery(t *testing.T) {
	s := NewScheduler(context.Background())

	var delivered atomic.Int32
	rec := Record{
		ID:     NewID("u1", time.Now()),
		FireAt: time.Now().Add(50 * time.Millisecond),
	}
	s.Schedule(rec, func(Record) { delivered.Add(1) })

	require.True(t, s.Cancel(rec.ID))
	assert.Equal(t, 0, s.Pending())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), delivered.Load())
}

func TestCancelUnknownID(t *testing.T) {
	s := NewScheduler(context.Background())
	assert.False(t, s.Cancel("nope"))
}

func TestContextStopsTimers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(ctx)

	var delivered atomic.Int32
	s.Schedule(Record{ID: "r1", FireAt: time.Now().Add(30 * time.Millisecond)}, func(Record) {
		delivered.Add(1)
	})

	cancel()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), delivered.Load())
}

func TestNewID(t *testing.T) {
	at := time.Unix(1700000000, 0)
	assert.Equal(t, "42_1700000000", NewID("42", at))
}
