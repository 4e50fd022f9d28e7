package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Discussion.Rounds != 3 {
		t.Errorf("Rounds = %d, want 3", cfg.Discussion.Rounds)
	}
	if cfg.Discussion.TurnTimeoutSeconds != 300 {
		t.Errorf("TurnTimeoutSeconds = %d, want 300", cfg.Discussion.TurnTimeoutSeconds)
	}
	if cfg.Discussion.Topic == "" {
		t.Error("default topic should not be empty")
	}
	if !cfg.Agents.Claude.Enabled || !cfg.Agents.Gemini.Enabled || !cfg.Agents.Codex.Enabled {
		t.Error("all agents should be enabled by default")
	}
	if len(cfg.Context.Files) != 3 {
		t.Errorf("Context.Files = %v, want 3 entries", cfg.Context.Files)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate cleanly, got: %v", errs)
	}
}

func TestTurnTimeout(t *testing.T) {
	d := DiscussionConfig{TurnTimeoutSeconds: 300}
	if d.TurnTimeout() != 5*time.Minute {
		t.Errorf("TurnTimeout() = %v, want 5m", d.TurnTimeout())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErrs int
	}{
		{
			name:     "valid",
			mutate:   func(c *Config) {},
			wantErrs: 0,
		},
		{
			name:     "zero rounds",
			mutate:   func(c *Config) { c.Discussion.Rounds = 0 },
			wantErrs: 1,
		},
		{
			name:     "negative timeout",
			mutate:   func(c *Config) { c.Discussion.TurnTimeoutSeconds = -5 },
			wantErrs: 1,
		},
		{
			name:     "bad log level",
			mutate:   func(c *Config) { c.Logging.Level = "verbose" },
			wantErrs: 1,
		},
		{
			name:     "poll interval too small",
			mutate:   func(c *Config) { c.TUI.PollIntervalMs = 1 },
			wantErrs: 1,
		},
		{
			name: "too few agents enabled",
			mutate: func(c *Config) {
				c.Agents.Gemini.Enabled = false
				c.Agents.Codex.Enabled = false
			},
			wantErrs: 1,
		},
		{
			name: "multiple failures",
			mutate: func(c *Config) {
				c.Discussion.Rounds = 0
				c.Logging.Level = "chatty"
			},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != tt.wantErrs {
				t.Errorf("Validate() returned %d errors, want %d: %v", len(errs), tt.wantErrs, errs)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "discussion.rounds", Value: 0, Message: "must be at least 1"},
		{Field: "logging.level", Value: "x", Message: "invalid"},
	}
	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected non-empty error message")
	}
	if ValidationErrors(nil).Error() != "" {
		t.Error("empty ValidationErrors should produce empty string")
	}
}
