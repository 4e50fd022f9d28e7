// Package tui renders the discussion as a full-screen terminal application.
// It is a pure observer of the session: events arrive through the feed and
// are drained on a fixed cadence; the only writes back into the core are
// start, stop, export, and user-turn injection.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/roundtable/internal/agent"
	"github.com/Iron-Ham/roundtable/internal/config"
	"github.com/Iron-Ham/roundtable/internal/event"
	"github.com/Iron-Ham/roundtable/internal/session"
	"github.com/Iron-Ham/roundtable/internal/transcript"
)

const (
	sectionRuleWidth = 60
	// maxRounds bounds the Ctrl+R rounds selector.
	maxRounds = 10
)

// tickMsg drives the event feed drain cadence.
type tickMsg time.Time

// focusArea identifies which input has keyboard focus.
type focusArea int

const (
	focusMessage focusArea = iota
	focusTopic
)

// Model is the bubbletea application model.
type Model struct {
	cfg     *config.Config
	session *session.Session
	store   *transcript.Store
	feed    *event.Feed

	roster     []agent.Agent // available agents, fixed speaking order
	missing    []string      // display names of enabled agents whose CLI was not found
	colors     map[string]lipgloss.Style
	projectCtx string

	topic  string // topic of the current or most recent session
	rounds int

	viewport   viewport.Model
	input      textinput.Model
	topicInput textinput.Model
	focus      focusArea
	spinner    spinner.Model

	lines  []string // rendered chat log
	status string

	width  int
	height int
	ready  bool
}

// New builds the TUI around an assembled session.
func New(cfg *config.Config, sess *session.Session, store *transcript.Store, feed *event.Feed, roster []agent.Agent, missing []string, projectCtx string) Model {
	ti := textinput.New()
	ti.Placeholder = "Inject a message into the discussion..."
	ti.CharLimit = 2048
	ti.Focus()

	topic := cfg.Discussion.Topic
	if strings.TrimSpace(topic) == "" {
		topic = config.DefaultTopic
	}
	// Prefilled like the original's topic entry; editable between sessions.
	topicIn := textinput.New()
	topicIn.Placeholder = "Discussion topic"
	topicIn.CharLimit = 2048
	topicIn.SetValue(topic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))

	colors := make(map[string]lipgloss.Style, len(roster))
	for _, a := range roster {
		colors[a.DisplayName()] = agentNameStyle(a.Color())
	}

	m := Model{
		cfg:        cfg,
		session:    sess,
		store:      store,
		feed:       feed,
		roster:     roster,
		missing:    missing,
		colors:     colors,
		projectCtx: projectCtx,
		topic:      topic,
		rounds:     cfg.Discussion.Rounds,
		input:      ti,
		topicInput: topicIn,
		spinner:    sp,
	}
	m.status = m.readyStatus()
	return m
}

func (m Model) readyStatus() string {
	names := make([]string, len(m.roster))
	for i, a := range m.roster {
		names[i] = a.DisplayName()
	}
	found := "none"
	if len(names) > 0 {
		found = strings.Join(names, ", ")
	}
	parts := []string{"CLIs found: " + found}
	if len(m.missing) > 0 {
		parts = append(parts, "Missing: "+strings.Join(m.missing, ", "))
	}
	return strings.Join(parts, " | ")
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TUI.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			m.session.Stop()
			return m, tea.Quit

		case "ctrl+s":
			m.startDiscussion()
			return m, nil

		case "ctrl+x":
			m.session.Stop()
			return m, nil

		case "ctrl+e":
			m.exportTranscript()
			return m, nil

		case "ctrl+r":
			m.cycleRounds()
			return m, nil

		case "tab":
			m.toggleFocus()
			return m, nil

		case "enter":
			if m.focus == focusTopic {
				// Topic is read at start; Enter just returns to the message box.
				m.toggleFocus()
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if m.session.InjectUserTurn(text) {
				m.input.Reset()
				m.appendUserTurn(text)
				m.syncViewport()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case tickMsg:
		for _, e := range m.feed.Drain() {
			m.apply(e)
		}
		m.syncViewport()
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.topicInput, cmd = m.topicInput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// toggleFocus moves keyboard focus between the message and topic inputs.
func (m *Model) toggleFocus() {
	if m.focus == focusMessage {
		m.focus = focusTopic
		m.input.Blur()
		m.topicInput.Focus()
		return
	}
	m.focus = focusMessage
	m.topicInput.Blur()
	m.input.Focus()
}

// cycleRounds advances the per-session round count, wrapping back to 1.
func (m *Model) cycleRounds() {
	m.rounds++
	if m.rounds > maxRounds {
		m.rounds = 1
	}
}

// currentTopic resolves the operator-entered topic, falling back to the
// default when the field is blanked.
func (m *Model) currentTopic() string {
	if topic := strings.TrimSpace(m.topicInput.Value()); topic != "" {
		return topic
	}
	return config.DefaultTopic
}

func (m *Model) startDiscussion() {
	if m.session.Running() {
		return
	}
	m.lines = nil
	m.topic = m.currentTopic()
	err := m.session.Start(session.Config{
		Agents:         m.roster,
		Rounds:         m.rounds,
		Topic:          m.topic,
		ProjectContext: m.projectCtx,
	})
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Starting discussion..."
}

func (m *Model) exportTranscript() {
	turns := m.store.Snapshot()
	if len(turns) == 0 {
		m.status = "No discussion to export yet."
		return
	}
	names := make([]string, len(m.roster))
	for i, a := range m.roster {
		names[i] = a.DisplayName()
	}
	path := filepath.Join(m.cfg.TUI.ExportDir, transcript.DefaultExportName(time.Now()))
	meta := transcript.ExportMeta{Topic: m.topic, Agents: names, Date: time.Now()}
	if err := transcript.WriteMarkdown(path, turns, meta); err != nil {
		m.status = "Export failed: " + err.Error()
		return
	}
	m.status = "Exported to " + filepath.Base(path)
}

// apply renders one feed event into the chat log or the status line.
func (m *Model) apply(e event.Event) {
	switch ev := e.(type) {
	case event.SystemNoticeEvent:
		m.lines = append(m.lines, "", systemStyle.Render(ev.Text))
	case event.ErrorNoticeEvent:
		m.lines = append(m.lines, "", errorStyle.Render(ev.Text))
	case event.SectionBreakEvent:
		rule := sectionStyle.Render(strings.Repeat("─", sectionRuleWidth))
		m.lines = append(m.lines, "", rule, "  "+sectionLabelStyle.Render(ev.Label), rule)
	case event.AgentTurnEvent:
		style, ok := m.colors[ev.Agent]
		if !ok {
			style = userNameStyle
		}
		m.lines = append(m.lines, "", style.Render(ev.Agent+":"), bodyStyle.Render(ev.Content))
	case event.StatusUpdateEvent:
		m.status = ev.Text
	case event.SessionCompleteEvent:
		// Status text already arrived via StatusUpdate; nothing extra to draw.
	}
}

func (m *Model) appendUserTurn(text string) {
	m.lines = append(m.lines, "", userNameStyle.Render("You:"), bodyStyle.Render(text))
}

func (m *Model) layout() {
	chatHeight := m.height - 10
	if chatHeight < 3 {
		chatHeight = 3
	}
	m.viewport = viewport.New(m.width-4, chatHeight)
	m.input.Width = m.width - 8
	m.topicInput.Width = m.width - 24
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading roundtable..."
	}

	title := titleStyle.Render("ROUNDTABLE") +
		dimStyle.Render(fmt.Sprintf("  %d agents", len(m.roster)))

	chat := chatBoxStyle.Width(m.width - 2).Render(m.viewport.View())

	status := m.status
	if m.session.Running() {
		status = m.spinner.View() + " " + status
	}
	statusBar := statusStyle.Render(status)

	topicPane := inputBoxStyle.Width(m.width - 2).Render(
		dimStyle.Render("Topic: ") + m.topicInput.View() +
			dimStyle.Render(fmt.Sprintf("  Rounds: %d", m.rounds)))

	help := dimStyle.Render("Ctrl+S:start  Ctrl+X:stop  Ctrl+R:rounds  Tab:topic  Ctrl+E:export  Enter:inject  Ctrl+C:quit")

	inputPane := inputBoxStyle.Width(m.width - 2).Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, chat, statusBar, topicPane, inputPane, help)
}
