package errors

import (
	"strings"
	"testing"
)

func TestTurnError_Timeout(t *testing.T) {
	err := NewTurnError("Claude Code", ErrTurnTimeout)

	if !Is(err, ErrTurnTimeout) {
		t.Error("expected errors.Is(err, ErrTurnTimeout) to be true")
	}
	want := "[Claude Code error] agent turn timed out"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestTurnError_Stderr(t *testing.T) {
	err := NewTurnError("Codex", nil).WithStderr("auth expired")

	if got := err.Detail(); got != "auth expired" {
		t.Errorf("Detail() = %q, want %q", got, "auth expired")
	}
	if !strings.HasPrefix(err.Error(), "[Codex error] ") {
		t.Errorf("Error() = %q, want bracketed prefix", err.Error())
	}
}

func TestTurnError_StderrTruncation(t *testing.T) {
	long := strings.Repeat("x", 2000)
	err := NewTurnError("Gemini CLI", nil).WithStderr(long)

	if len(err.Stderr) != 600 {
		t.Errorf("Stderr length = %d, want 600", len(err.Stderr))
	}
}

func TestTurnError_As(t *testing.T) {
	var err error = Wrap(NewTurnError("Codex", ErrEmptyOutput), "turn failed")

	var turnErr *TurnError
	if !As(err, &turnErr) {
		t.Fatal("expected errors.As to find *TurnError through wrapping")
	}
	if turnErr.Agent != "Codex" {
		t.Errorf("Agent = %q, want %q", turnErr.Agent, "Codex")
	}
	if !Is(err, ErrEmptyOutput) {
		t.Error("expected wrapped error to match ErrEmptyOutput")
	}
}

func TestIsTurnFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"turn error", NewTurnError("a", ErrTurnTimeout), true},
		{"wrapped turn error", Wrap(NewTurnError("a", nil), "ctx"), true},
		{"session sentinel", ErrNotEnoughAgents, false},
		{"plain error", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTurnFailure(tt.err); got != tt.want {
				t.Errorf("IsTurnFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
