package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "discussion.rounds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Discussion.Rounds < 1 {
		errs = append(errs, ValidationError{
			Field:   "discussion.rounds",
			Value:   c.Discussion.Rounds,
			Message: "must be at least 1",
		})
	}

	if c.Discussion.TurnTimeoutSeconds < 1 {
		errs = append(errs, ValidationError{
			Field:   "discussion.turn_timeout_seconds",
			Value:   c.Discussion.TurnTimeoutSeconds,
			Message: "must be at least 1",
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.TUI.PollIntervalMs < 10 {
		errs = append(errs, ValidationError{
			Field:   "tui.poll_interval_ms",
			Value:   c.TUI.PollIntervalMs,
			Message: "must be at least 10",
		})
	}

	enabled := 0
	for _, a := range []AgentConfig{c.Agents.Claude, c.Agents.Gemini, c.Agents.Codex} {
		if a.Enabled {
			enabled++
		}
	}
	if enabled < 2 {
		errs = append(errs, ValidationError{
			Field:   "agents",
			Value:   enabled,
			Message: "at least 2 agents must be enabled to hold a discussion",
		})
	}

	return errs
}
