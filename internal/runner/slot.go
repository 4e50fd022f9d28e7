package runner

import (
	"os/exec"
	"sync"
)

// Slot is the single-slot registry for the in-flight agent process. Turns
// are strictly sequential, so at most one process occupies the slot at any
// instant; Kill is the sole mechanism by which a stop request reaches a
// blocking external call.
//
// All operations are race-free: a Kill that arrives after the call already
// finished and cleared the slot is a harmless no-op.
type Slot struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	killed bool
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// register records cmd as the active process and resets the killed marker.
func (s *Slot) register(cmd *exec.Cmd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd = cmd
	s.killed = false
}

// clear empties the slot if cmd still occupies it and reports whether the
// process was killed through the slot while registered.
func (s *Slot) clear(cmd *exec.Cmd) (killed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == cmd {
		s.cmd = nil
	}
	return s.killed
}

// Kill forcibly terminates the registered process, if any. Safe to call from
// any goroutine and at any time; it never blocks on the process exiting.
func (s *Slot) Kill() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil {
		return
	}
	s.killed = true
	terminateProcess(s.cmd)
}

// Active reports whether a process currently occupies the slot.
func (s *Slot) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}
