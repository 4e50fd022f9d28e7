package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/roundtable/internal/agent"
	"github.com/Iron-Ham/roundtable/internal/config"
	"github.com/Iron-Ham/roundtable/internal/event"
	"github.com/Iron-Ham/roundtable/internal/session"
	"github.com/Iron-Ham/roundtable/internal/transcript"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.TUI.ExportDir = t.TempDir()
	store := transcript.NewStore()
	feed := event.NewFeed()
	sess := session.New(store, feed, nil, nil)
	roster := agent.Roster(cfg.Agents)
	return New(cfg, sess, store, feed, roster, nil, "(No project files found.)")
}

func TestTopicInputPrefilledWithDefault(t *testing.T) {
	m := newTestModel(t)
	if got := m.topicInput.Value(); got != config.DefaultTopic {
		t.Errorf("topic input prefill = %q, want default topic", got)
	}
	if got := m.currentTopic(); got != config.DefaultTopic {
		t.Errorf("currentTopic() = %q, want default topic", got)
	}
}

func TestCurrentTopicUsesOperatorInput(t *testing.T) {
	m := newTestModel(t)

	m.topicInput.SetValue("  Design the caching layer  ")
	if got := m.currentTopic(); got != "Design the caching layer" {
		t.Errorf("currentTopic() = %q, want trimmed operator topic", got)
	}

	// Blanking the field falls back to the default, as the original does.
	m.topicInput.SetValue("   ")
	if got := m.currentTopic(); got != config.DefaultTopic {
		t.Errorf("currentTopic() = %q, want default topic", got)
	}
}

func TestCycleRoundsWraps(t *testing.T) {
	m := newTestModel(t)
	if m.rounds != 3 {
		t.Fatalf("initial rounds = %d, want config default 3", m.rounds)
	}

	m.cycleRounds()
	if m.rounds != 4 {
		t.Errorf("rounds after one cycle = %d, want 4", m.rounds)
	}

	m.rounds = maxRounds
	m.cycleRounds()
	if m.rounds != 1 {
		t.Errorf("rounds after wrapping = %d, want 1", m.rounds)
	}
}

func TestToggleFocusSwitchesInputs(t *testing.T) {
	m := newTestModel(t)
	if m.focus != focusMessage || !m.input.Focused() {
		t.Fatal("message input should start focused")
	}

	m.toggleFocus()
	if m.focus != focusTopic || !m.topicInput.Focused() || m.input.Focused() {
		t.Error("focus did not move to the topic input")
	}

	m.toggleFocus()
	if m.focus != focusMessage || !m.input.Focused() || m.topicInput.Focused() {
		t.Error("focus did not return to the message input")
	}
}

func TestSystemNoticeColor(t *testing.T) {
	if got := systemStyle.GetForeground(); got != lipgloss.Color(colorSystem) {
		t.Errorf("system notice foreground = %v, want %v", got, lipgloss.Color(colorSystem))
	}
}

func TestReadyStatusListsAgents(t *testing.T) {
	m := newTestModel(t)
	status := m.readyStatus()
	for _, name := range []string{"Claude Code", "Gemini CLI", "Codex"} {
		if !strings.Contains(status, name) {
			t.Errorf("readyStatus() = %q, missing %q", status, name)
		}
	}
	if strings.Contains(status, "Missing:") {
		t.Errorf("readyStatus() = %q, unexpected missing section", status)
	}

	m.missing = []string{"Codex"}
	if status := m.readyStatus(); !strings.Contains(status, "Missing: Codex") {
		t.Errorf("readyStatus() = %q, want missing section", status)
	}
}

func TestApplyRendersEvents(t *testing.T) {
	m := newTestModel(t)

	m.apply(event.NewSystemNoticeEvent("Topic: T"))
	m.apply(event.NewSectionBreakEvent("ROUND 1 of 3"))
	m.apply(event.NewAgentTurnEvent("Claude Code", "my take"))
	m.apply(event.NewErrorNoticeEvent("[Codex error] boom"))
	m.apply(event.NewStatusUpdateEvent("Round 1/3 — Claude Code is thinking..."))

	joined := strings.Join(m.lines, "\n")
	for _, want := range []string{"Topic: T", "ROUND 1 of 3", "Claude Code:", "my take", "[Codex error] boom"} {
		if !strings.Contains(joined, want) {
			t.Errorf("chat log missing %q:\n%s", want, joined)
		}
	}
	if !strings.Contains(m.status, "is thinking") {
		t.Errorf("status = %q, want thinking status", m.status)
	}
	if strings.Contains(joined, "is thinking") {
		t.Error("status update leaked into the chat log")
	}
}

func TestExportTranscriptWritesFile(t *testing.T) {
	m := newTestModel(t)

	m.exportTranscript()
	if m.status != "No discussion to export yet." {
		t.Errorf("status = %q, want empty-transcript notice", m.status)
	}

	m.store.Append(transcript.Turn{Author: "Claude Code", Content: "use sqlite"})
	m.exportTranscript()
	if !strings.HasPrefix(m.status, "Exported to ") {
		t.Fatalf("status = %q, want export confirmation", m.status)
	}

	entries, err := os.ReadDir(m.cfg.TUI.ExportDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("export dir entries = %v, err = %v", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(m.cfg.TUI.ExportDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "use sqlite") {
		t.Errorf("exported file missing turn content:\n%s", data)
	}
}
