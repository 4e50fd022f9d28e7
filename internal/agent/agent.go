// Package agent defines the discussion participants and their CLI invocation
// conventions. Each supported agent type knows its own executable, argument
// list, and how the prompt is delivered; nothing else in the codebase branches
// on agent identity.
package agent

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/roundtable/internal/config"
)

// Name identifies a supported discussion agent.
type Name string

const (
	NameClaude Name = "claude"
	NameGemini Name = "gemini"
	NameCodex  Name = "codex"
)

// Agent provides agent-specific invocation behavior. Every agent receives the
// full prompt on standard input; Args may additionally carry a short fixed
// directive (Gemini's convention) or a mode selector (Codex's `exec -`).
type Agent interface {
	Name() Name
	// DisplayName is the name shown in the transcript and addressed by
	// other agents in prompts.
	DisplayName() string
	// Command is the executable resolved on PATH.
	Command() string
	// Args is the fixed argument list for a one-shot, non-interactive turn.
	Args() []string
	// Color is a hex display attribute consumed by the observer; it has no
	// meaning to the orchestrator.
	Color() string
}

// ErrUnknownAgent is returned when a configured agent name is unsupported.
var ErrUnknownAgent = fmt.Errorf("unknown agent")

// New builds an Agent by name from its configuration.
func New(name string, cfg config.AgentConfig) (Agent, error) {
	switch Name(strings.ToLower(name)) {
	case NameClaude:
		return NewClaudeAgent(cfg), nil
	case NameGemini:
		return NewGeminiAgent(cfg), nil
	case NameCodex:
		return NewCodexAgent(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}
}

// Roster builds the configured agent set in fixed speaking order.
// Disabled agents are omitted.
func Roster(cfg config.AgentsConfig) []Agent {
	var roster []Agent
	if cfg.Claude.Enabled {
		roster = append(roster, NewClaudeAgent(cfg.Claude))
	}
	if cfg.Gemini.Enabled {
		roster = append(roster, NewGeminiAgent(cfg.Gemini))
	}
	if cfg.Codex.Enabled {
		roster = append(roster, NewCodexAgent(cfg.Codex))
	}
	return roster
}

// ClaudeAgent implements Agent for Claude Code.
// Invocation: `claude -p --verbose` with the prompt on stdin.
type ClaudeAgent struct {
	command string
}

// NewClaudeAgent creates a Claude agent from config.
func NewClaudeAgent(cfg config.AgentConfig) *ClaudeAgent {
	command := cfg.Command
	if command == "" {
		command = "claude"
	}
	return &ClaudeAgent{command: command}
}

func (a *ClaudeAgent) Name() Name          { return NameClaude }
func (a *ClaudeAgent) DisplayName() string { return "Claude Code" }
func (a *ClaudeAgent) Command() string     { return a.command }
func (a *ClaudeAgent) Args() []string      { return []string{"-p", "--verbose"} }
func (a *ClaudeAgent) Color() string       { return "#bb9af7" }

// GeminiAgent implements Agent for Gemini CLI.
// Invocation: `gemini -p <directive>` with the full prompt on stdin; the
// directive argument nudges the CLI into responding rather than planning.
type GeminiAgent struct {
	command string
}

// NewGeminiAgent creates a Gemini agent from config.
func NewGeminiAgent(cfg config.AgentConfig) *GeminiAgent {
	command := cfg.Command
	if command == "" {
		command = "gemini"
	}
	return &GeminiAgent{command: command}
}

func (a *GeminiAgent) Name() Name          { return NameGemini }
func (a *GeminiAgent) DisplayName() string { return "Gemini CLI" }
func (a *GeminiAgent) Command() string     { return a.command }
func (a *GeminiAgent) Args() []string {
	return []string{"-p", "Provide your architectural response now."}
}
func (a *GeminiAgent) Color() string { return "#7aa2f7" }

// CodexAgent implements Agent for Codex CLI.
// Invocation: `codex exec -` reading the prompt from stdin.
type CodexAgent struct {
	command string
}

// NewCodexAgent creates a Codex agent from config.
func NewCodexAgent(cfg config.AgentConfig) *CodexAgent {
	command := cfg.Command
	if command == "" {
		command = "codex"
	}
	return &CodexAgent{command: command}
}

func (a *CodexAgent) Name() Name          { return NameCodex }
func (a *CodexAgent) DisplayName() string { return "Codex" }
func (a *CodexAgent) Command() string     { return a.command }
func (a *CodexAgent) Args() []string      { return []string{"exec", "-"} }
func (a *CodexAgent) Color() string       { return "#9ece6a" }
