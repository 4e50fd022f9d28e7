// Package config defines the Roundtable configuration, loaded through viper
// from a YAML file and ROUNDTABLE_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Roundtable configuration
type Config struct {
	Agents     AgentsConfig     `mapstructure:"agents"`
	Discussion DiscussionConfig `mapstructure:"discussion"`
	Context    ContextConfig    `mapstructure:"context"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	TUI        TUIConfig        `mapstructure:"tui"`
}

// AgentsConfig holds per-agent invocation settings. The struct order is the
// fixed speaking order within a round.
type AgentsConfig struct {
	Claude AgentConfig `mapstructure:"claude"`
	Gemini AgentConfig `mapstructure:"gemini"`
	Codex  AgentConfig `mapstructure:"codex"`
}

// AgentConfig controls one agent's invocation
type AgentConfig struct {
	// Command overrides the executable name resolved on PATH (default: the
	// agent's canonical CLI name)
	Command string `mapstructure:"command"`
	// Enabled includes the agent in the configured roster (default: true).
	// Availability is still probed at session start.
	Enabled bool `mapstructure:"enabled"`
}

// DiscussionConfig controls session behavior
type DiscussionConfig struct {
	// Rounds is the default number of discussion rounds before the
	// consensus phase (default: 3)
	Rounds int `mapstructure:"rounds"`
	// Topic is the default discussion topic when none is entered
	Topic string `mapstructure:"topic"`
	// TurnTimeoutSeconds is the per-turn deadline for an agent's CLI call
	// (default: 300)
	TurnTimeoutSeconds int `mapstructure:"turn_timeout_seconds"`
}

// ContextConfig controls the static project context fed into every prompt
type ContextConfig struct {
	// Files are project files read verbatim into the prompt context block,
	// relative to the working directory
	Files []string `mapstructure:"files"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for log files; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// PollIntervalMs is how often the UI drains the event feed (default: 80)
	PollIntervalMs int `mapstructure:"poll_interval_ms"`
	// ExportDir is the default directory for transcript exports
	// (default: working directory)
	ExportDir string `mapstructure:"export_dir"`
}

// DefaultTopic is used when the operator leaves the topic blank.
const DefaultTopic = "Discuss and reach agreement on the concrete project structure, " +
	"technology stack, folder organization, data models, and implementation " +
	"priorities for this project."

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Agents: AgentsConfig{
			Claude: AgentConfig{Enabled: true},
			Gemini: AgentConfig{Enabled: true},
			Codex:  AgentConfig{Enabled: true},
		},
		Discussion: DiscussionConfig{
			Rounds:             3,
			Topic:              DefaultTopic,
			TurnTimeoutSeconds: 300,
		},
		Context: ContextConfig{
			Files: []string{"CLAUDE.md", "GEMINI.md", "PLAN.md"},
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
		TUI: TUIConfig{
			PollIntervalMs: 80,
			ExportDir:      "",
		},
	}
}

// TurnTimeout returns the per-turn deadline as a time.Duration
func (d *DiscussionConfig) TurnTimeout() time.Duration {
	return time.Duration(d.TurnTimeoutSeconds) * time.Second
}

// PollInterval returns the feed drain cadence as a time.Duration
func (t *TUIConfig) PollInterval() time.Duration {
	return time.Duration(t.PollIntervalMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("agents.claude.command", defaults.Agents.Claude.Command)
	viper.SetDefault("agents.claude.enabled", defaults.Agents.Claude.Enabled)
	viper.SetDefault("agents.gemini.command", defaults.Agents.Gemini.Command)
	viper.SetDefault("agents.gemini.enabled", defaults.Agents.Gemini.Enabled)
	viper.SetDefault("agents.codex.command", defaults.Agents.Codex.Command)
	viper.SetDefault("agents.codex.enabled", defaults.Agents.Codex.Enabled)

	viper.SetDefault("discussion.rounds", defaults.Discussion.Rounds)
	viper.SetDefault("discussion.topic", defaults.Discussion.Topic)
	viper.SetDefault("discussion.turn_timeout_seconds", defaults.Discussion.TurnTimeoutSeconds)

	viper.SetDefault("context.files", defaults.Context.Files)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("tui.poll_interval_ms", defaults.TUI.PollIntervalMs)
	viper.SetDefault("tui.export_dir", defaults.TUI.ExportDir)
}

// Load unmarshals the current viper state into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "roundtable")
	}
	// Fall back to ~/.config/roundtable
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roundtable"
	}
	return filepath.Join(home, ".config", "roundtable")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
