// Package errors provides centralized error definitions and error handling
// utilities for the Roundtable codebase. It defines domain-specific errors,
// sentinel errors, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// TurnError represents the failure of a single agent turn. It wraps one of
// the turn-level sentinels (ErrTurnTimeout, ErrEmptyOutput) or carries
// captured stderr from the agent process.
//
// Session-level sentinels (ErrNotEnoughAgents, ErrSessionActive) are returned
// synchronously from session start; they never travel through the event feed.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewTurnError("Gemini CLI", errors.ErrTurnTimeout)
//	err = errors.NewTurnError("Codex", nil).WithStderr(stderrText)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrTurnTimeout) { ... }
//
//	var turnErr *errors.TurnError
//	if errors.As(err, &turnErr) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Session-related sentinel errors
var (
	// ErrNotEnoughAgents indicates fewer than two agents are available to
	// hold a discussion.
	ErrNotEnoughAgents = New("at least 2 agents must be available")
	// ErrSessionActive indicates a discussion is already running.
	ErrSessionActive = New("discussion already running")
)

// Turn-related sentinel errors
var (
	// ErrTurnTimeout indicates an agent's turn exceeded the per-turn deadline.
	ErrTurnTimeout = New("agent turn timed out")
	// ErrEmptyOutput indicates an agent process exited without producing output.
	ErrEmptyOutput = New("agent returned empty output")
	// ErrCanceled indicates an in-flight turn was killed by a stop request.
	ErrCanceled = New("turn canceled")
)

// maxStderrLen bounds how much captured stderr a TurnError carries.
const maxStderrLen = 600

// TurnError represents the failure of a single agent's turn. The session is
// never aborted by a TurnError; it is recorded and the discussion moves on.
//
// Example:
//
//	err := errors.NewTurnError("Claude Code", errors.ErrTurnTimeout)
//	fmt.Println(err) // "[Claude Code error] agent turn timed out"
type TurnError struct {
	Agent  string // Display name of the agent whose turn failed
	Stderr string // Captured stderr, truncated to 600 characters
	cause  error
}

// NewTurnError creates a new TurnError for the named agent.
func NewTurnError(agent string, cause error) *TurnError {
	return &TurnError{Agent: agent, cause: cause}
}

// WithStderr attaches captured stderr to the error, truncating to 600
// characters. When stderr is present it becomes the error detail and the
// cause is left for classification only.
func (e *TurnError) WithStderr(stderr string) *TurnError {
	if len(stderr) > maxStderrLen {
		stderr = stderr[:maxStderrLen]
	}
	e.Stderr = stderr
	return e
}

// Error returns the bracketed error annotation used both in the transcript
// and in error events: "[<name> error] <detail>".
func (e *TurnError) Error() string {
	return fmt.Sprintf("[%s error] %s", e.Agent, e.detail())
}

// Detail returns the failure description without the bracketed prefix.
func (e *TurnError) Detail() string {
	return e.detail()
}

func (e *TurnError) detail() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "unknown failure"
}

// Unwrap returns the underlying cause.
func (e *TurnError) Unwrap() error {
	return e.cause
}

// Is reports whether this error matches the target error.
func (e *TurnError) Is(target error) bool {
	if _, ok := target.(*TurnError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsTurnFailure returns true if the error is scoped to a single turn and the
// session should continue to the next agent.
func IsTurnFailure(err error) bool {
	if err == nil {
		return false
	}
	var turnErr *TurnError
	return As(err, &turnErr)
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to launch agent")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
