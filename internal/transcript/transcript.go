// Package transcript maintains the ordered, append-only history of a
// discussion. The store is written by the orchestrator goroutine and, for
// user-injected messages, by the observer; a mutex serializes all access so
// a snapshot never observes a torn append.
package transcript

import (
	"fmt"
	"strings"
	"sync"
)

// UserAuthor is the author name recorded for operator-injected turns.
const UserAuthor = "User"

// Phase distinguishes regular discussion turns from the closing consensus pass.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseConsensus
)

// String returns a human-readable name for a phase.
func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseConsensus:
		return "consensus"
	default:
		return "unknown"
	}
}

// Turn is one participant's single contribution. Immutable once appended.
type Turn struct {
	Author  string // Agent display name, or UserAuthor
	Content string
	Phase   Phase
}

// Store is the ordered sequence of turns for the current session.
// It only grows between Clear calls.
type Store struct {
	mu    sync.Mutex
	turns []Turn
}

// NewStore creates an empty transcript store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a turn to the end of the transcript.
func (s *Store) Append(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, t)
}

// Clear discards all turns. Called once at session start.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

// Len returns the number of turns.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Snapshot returns a copy of all turns in append order.
func (s *Store) Snapshot() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Render returns the transcript as prompt text: one "**author**: content"
// line per turn, joined by blank lines. An empty transcript renders as "".
// This rendering is the exact conversation block embedded in agent prompts.
func (s *Store) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.turns) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.turns))
	for _, t := range s.turns {
		lines = append(lines, fmt.Sprintf("**%s**: %s", t.Author, t.Content))
	}
	return strings.Join(lines, "\n\n")
}
