// Package scores tracks the interactive drill-down attached to a live
// scores message: a match list that opens into a detail view, which opens
// into a lineup view. Sessions live in memory, are keyed by the message
// they decorate, and go inert after five idle minutes.
package scores

import (
	"errors"
	"sync"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/football"
)

// IdleTimeout is how long a session accepts interactions after the last one.
const IdleTimeout = 5 * time.Minute

// MaxMatches caps how many fixtures one session shows.
const MaxMatches = 5

// View identifies what the session's message currently displays.
type View int

const (
	ListView View = iota
	DetailView
	LineupView
)

// Action is a user activation of one of the session's controls.
type Action struct {
	Kind  ActionKind
	Index int // match index, for SelectMatch only
}

type ActionKind int

const (
	// SelectMatch opens the detail view for one match from the list.
	SelectMatch ActionKind = iota
	// ShowLineup opens the lineup view from the detail view.
	ShowLineup
	// Back steps out one level: lineup to detail, detail to list.
	Back
)

var (
	// ErrExpired means the idle deadline passed; the activation must have
	// no effect at all.
	ErrExpired = errors.New("session expired")
	// ErrNoSession means no session is attached to the message.
	ErrNoSession = errors.New("no session for message")
	// ErrBadTransition means the action is not valid in the current view.
	ErrBadTransition = errors.New("invalid transition")
)

// Session is the state attached to one live scores message.
type Session struct {
	Matches  []football.Fixture
	View     View
	Index    int // selected match while in DetailView or LineupView
	Deadline time.Time
}

// Selected returns the match the session is focused on.
func (s *Session) Selected() football.Fixture {
	return s.Matches[s.Index]
}

// Manager owns every active session. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create attaches a fresh list-view session to messageID, replacing any
// previous one. At most MaxMatches fixtures are kept.
func (m *Manager) Create(messageID string, matches []football.Fixture) *Session {
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	s := &Session{
		Matches:  matches,
		View:     ListView,
		Deadline: m.now().Add(IdleTimeout),
	}
	m.mu.Lock()
	m.sessions[messageID] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session for a message, or ErrNoSession/ErrExpired.
// Expired sessions are dropped on sight.
func (m *Manager) Get(messageID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[messageID]
	if !ok {
		return nil, ErrNoSession
	}
	if m.now().After(s.Deadline) {
		delete(m.sessions, messageID)
		return nil, ErrExpired
	}
	return s, nil
}

// Transition applies an action to the session attached to messageID and
// returns the session in its new state. Any success pushes the idle
// deadline out from now. Expired or missing sessions and invalid actions
// change nothing.
func (m *Manager) Transition(messageID string, action Action) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[messageID]
	if !ok {
		return nil, ErrNoSession
	}
	if m.now().After(s.Deadline) {
		delete(m.sessions, messageID)
		return nil, ErrExpired
	}

	switch action.Kind {
	case SelectMatch:
		if s.View != ListView || action.Index < 0 || action.Index >= len(s.Matches) {
			return nil, ErrBadTransition
		}
		s.View = DetailView
		s.Index = action.Index

	case ShowLineup:
		if s.View != DetailView {
			return nil, ErrBadTransition
		}
		s.View = LineupView

	case Back:
		switch s.View {
		case LineupView:
			s.View = DetailView
		case DetailView:
			s.View = ListView
		default:
			return nil, ErrBadTransition
		}

	default:
		return nil, ErrBadTransition
	}

	s.Deadline = m.now().Add(IdleTimeout)
	return s, nil
}

// Delete drops the session attached to a message.
func (m *Manager) Delete(messageID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, messageID)
}
