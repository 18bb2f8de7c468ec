package view

import (
	"sync"

	"github.com/dshills/termview/internal/input/key"
)

// State is the per-instance widget state that survives between frames.
// The zero value is a valid initial state.
type State struct {
	// IsDragged is true while a pointer button pressed inside the widget
	// is still held.
	IsDragged bool

	// IsFocused mirrors the host focus at the end of the last frame.
	IsFocused bool

	// ScrollRemainder carries sub-line pixel wheel motion across frames.
	ScrollRemainder float64

	// Modifiers is the last observed modifier set, updated from key
	// transitions.
	Modifiers key.Modifier
}

// statePrefix namespaces widget state keys so they cannot collide with
// other persisted host data.
const statePrefix = "termview/instance/"

// StateKey derives the persistent storage key for a backend instance.
func StateKey(backendID string) string {
	return statePrefix + backendID
}

// StateStore holds widget state per backend instance. It is safe for
// concurrent use.
type StateStore struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewStateStore creates an empty store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]*State)}
}

// Load returns the state for a backend, creating a zero state on first
// use. The returned pointer stays valid until Drop.
func (s *StateStore) Load(backendID string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := StateKey(backendID)
	st, ok := s.states[k]
	if !ok {
		st = &State{}
		s.states[k] = st
	}
	return st
}

// Drop removes the state for a backend, typically when the terminal it
// belonged to is closed.
func (s *StateStore) Drop(backendID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, StateKey(backendID))
}

// Len returns the number of live states.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
