package agent

import (
	"reflect"
	"testing"

	"github.com/Iron-Ham/roundtable/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		agentName   string
		wantName    Name
		wantDisplay string
		wantCommand string
		wantArgs    []string
	}{
		{
			name:        "claude",
			agentName:   "claude",
			wantName:    NameClaude,
			wantDisplay: "Claude Code",
			wantCommand: "claude",
			wantArgs:    []string{"-p", "--verbose"},
		},
		{
			name:        "gemini",
			agentName:   "gemini",
			wantName:    NameGemini,
			wantDisplay: "Gemini CLI",
			wantCommand: "gemini",
			wantArgs:    []string{"-p", "Provide your architectural response now."},
		},
		{
			name:        "codex uppercase",
			agentName:   "Codex",
			wantName:    NameCodex,
			wantDisplay: "Codex",
			wantCommand: "codex",
			wantArgs:    []string{"exec", "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.agentName, config.AgentConfig{Enabled: true})
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.agentName, err)
			}
			if a.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", a.Name(), tt.wantName)
			}
			if a.DisplayName() != tt.wantDisplay {
				t.Errorf("DisplayName() = %q, want %q", a.DisplayName(), tt.wantDisplay)
			}
			if a.Command() != tt.wantCommand {
				t.Errorf("Command() = %q, want %q", a.Command(), tt.wantCommand)
			}
			if !reflect.DeepEqual(a.Args(), tt.wantArgs) {
				t.Errorf("Args() = %v, want %v", a.Args(), tt.wantArgs)
			}
			if a.Color() == "" {
				t.Error("Color() should not be empty")
			}
		})
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("copilot", config.AgentConfig{})
	if err == nil {
		t.Fatal("expected error for unknown agent")
	}
}

func TestNew_CommandOverride(t *testing.T) {
	a, err := New("claude", config.AgentConfig{Command: "/opt/bin/claude-dev"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Command() != "/opt/bin/claude-dev" {
		t.Errorf("Command() = %q, want override", a.Command())
	}
}

func TestRoster_Order(t *testing.T) {
	cfg := config.AgentsConfig{
		Claude: config.AgentConfig{Enabled: true},
		Gemini: config.AgentConfig{Enabled: true},
		Codex:  config.AgentConfig{Enabled: true},
	}

	roster := Roster(cfg)
	want := []Name{NameClaude, NameGemini, NameCodex}
	if len(roster) != len(want) {
		t.Fatalf("Roster() length = %d, want %d", len(roster), len(want))
	}
	for i, a := range roster {
		if a.Name() != want[i] {
			t.Errorf("Roster()[%d] = %q, want %q", i, a.Name(), want[i])
		}
	}
}

func TestRoster_DisabledOmitted(t *testing.T) {
	cfg := config.AgentsConfig{
		Claude: config.AgentConfig{Enabled: true},
		Codex:  config.AgentConfig{Enabled: true},
	}

	roster := Roster(cfg)
	if len(roster) != 2 {
		t.Fatalf("Roster() length = %d, want 2", len(roster))
	}
	if roster[0].Name() != NameClaude || roster[1].Name() != NameCodex {
		t.Errorf("Roster() = %v, want [claude codex]", roster)
	}
}

func TestFilterAvailable(t *testing.T) {
	cfg := config.AgentsConfig{
		Claude: config.AgentConfig{Enabled: true},
		Gemini: config.AgentConfig{Enabled: true},
		Codex:  config.AgentConfig{Enabled: true},
	}
	roster := Roster(cfg)

	probe := func(command string) bool { return command != "gemini" }

	active, available := FilterAvailable(roster, probe)

	if len(active) != 2 {
		t.Fatalf("active length = %d, want 2", len(active))
	}
	if active[0].Name() != NameClaude || active[1].Name() != NameCodex {
		t.Error("active set should preserve roster order without gemini")
	}
	if available[NameGemini] {
		t.Error("gemini should be reported unavailable")
	}
	if !available[NameClaude] || !available[NameCodex] {
		t.Error("claude and codex should be reported available")
	}
}
