// Package session drives a multi-agent discussion: rounds of sequential
// turns, a closing consensus pass, and an ordered event feed for whatever
// front end is watching. The orchestration loop runs on its own goroutine;
// Stop may be called from any goroutine and takes effect at the loop's next
// check point, killing the in-flight agent process if one exists.
package session

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Iron-Ham/roundtable/internal/agent"
	"github.com/Iron-Ham/roundtable/internal/config"
	"github.com/Iron-Ham/roundtable/internal/errors"
	"github.com/Iron-Ham/roundtable/internal/event"
	"github.com/Iron-Ham/roundtable/internal/logging"
	"github.com/Iron-Ham/roundtable/internal/prompt"
	"github.com/Iron-Ham/roundtable/internal/runner"
	"github.com/Iron-Ham/roundtable/internal/transcript"
)

// Invoker runs one agent turn. *runner.Runner is the production
// implementation; tests substitute a scripted one.
type Invoker interface {
	Invoke(a agent.Agent, promptText string, slot *runner.Slot) (string, error)
}

// Config fixes the parameters of one discussion. Immutable once Start
// succeeds.
type Config struct {
	Agents         []agent.Agent
	Rounds         int
	Topic          string
	ProjectContext string
}

// Session orchestrates one discussion at a time. A Session is reusable:
// after a run completes (or is stopped) Start may be called again with a
// fresh Config.
type Session struct {
	store   *transcript.Store
	feed    *event.Feed
	invoker Invoker
	builder *prompt.Builder
	slot    *runner.Slot
	logger  *logging.Logger

	running atomic.Bool
}

// New creates a Session publishing to feed and recording turns into store.
func New(store *transcript.Store, feed *event.Feed, invoker Invoker, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Session{
		store:   store,
		feed:    feed,
		invoker: invoker,
		builder: prompt.NewBuilder(),
		slot:    runner.NewSlot(),
		logger:  logger,
	}
}

// Running reports whether a discussion is in progress.
func (s *Session) Running() bool {
	return s.running.Load()
}

// Start validates cfg and launches the discussion loop on its own goroutine.
// Rejections are synchronous: ErrNotEnoughAgents when fewer than two agents
// are available, ErrSessionActive when a discussion is already running. No
// events are emitted for a rejected start. A blank topic falls back to
// config.DefaultTopic; a non-positive round count is clamped to 1.
func (s *Session) Start(cfg Config) error {
	if len(cfg.Agents) < 2 {
		return errors.ErrNotEnoughAgents
	}
	if !s.running.CompareAndSwap(false, true) {
		return errors.ErrSessionActive
	}
	if cfg.Rounds < 1 {
		cfg.Rounds = 1
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		cfg.Topic = config.DefaultTopic
	}
	s.store.Clear()
	go s.run(cfg)
	return nil
}

// Stop requests cancellation. It flips the running flag and kills whatever
// process occupies the active slot, then returns without waiting for the
// loop to wind down. Safe to call when nothing is running.
func (s *Session) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.logger.Info("stop requested")
	s.slot.Kill()
	s.feed.Emit(event.NewStatusUpdateEvent("Stopped."))
}

// InjectUserTurn appends a user-authored turn to the transcript. It becomes
// part of the next prompt snapshot. Only accepted while a discussion is
// running; blank input is ignored.
func (s *Session) InjectUserTurn(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || !s.running.Load() {
		return false
	}
	s.store.Append(transcript.Turn{
		Author:  transcript.UserAuthor,
		Content: text,
		Phase:   transcript.PhaseNormal,
	})
	return true
}

func (s *Session) run(cfg Config) {
	log := s.logger.WithTopic(cfg.Topic)
	names := make([]string, len(cfg.Agents))
	for i, a := range cfg.Agents {
		names[i] = a.DisplayName()
	}
	log.Info("discussion started", "agents", names, "rounds", cfg.Rounds)

	s.feed.Emit(event.NewSystemNoticeEvent(fmt.Sprintf(
		"Discussion started with %d agents: %s", len(cfg.Agents), strings.Join(names, ", "))))
	s.feed.Emit(event.NewSystemNoticeEvent("Topic: " + cfg.Topic))
	s.feed.Emit(event.NewSystemNoticeEvent(fmt.Sprintf("Using %d rounds + consensus phase", cfg.Rounds)))
	s.feed.Emit(event.NewSystemNoticeEvent("Each agent may take 30-120 seconds to respond..."))
	s.feed.Emit(event.NewSectionBreakEvent("DISCUSSION BEGINS"))

	for rnd := 1; rnd <= cfg.Rounds && s.running.Load(); rnd++ {
		s.feed.Emit(event.NewSectionBreakEvent(fmt.Sprintf("ROUND %d of %d", rnd, cfg.Rounds)))
		roundLog := log.WithRound(rnd)

		for _, a := range cfg.Agents {
			if !s.running.Load() {
				break
			}
			s.feed.Emit(event.NewStatusUpdateEvent(fmt.Sprintf(
				"Round %d/%d — %s is thinking...", rnd, cfg.Rounds, a.DisplayName())))
			s.takeTurn(a, cfg, s.store.Render(), prompt.PhaseDiscussion, roundLog)
		}
	}

	if s.running.Load() {
		s.feed.Emit(event.NewSectionBreakEvent("CONSENSUS PHASE"))
		// Consensus prompts share one snapshot: agents summarize the same
		// discussion, not each other's summaries.
		snapshot := s.store.Render()

		for _, a := range cfg.Agents {
			if !s.running.Load() {
				break
			}
			s.feed.Emit(event.NewStatusUpdateEvent(fmt.Sprintf(
				"Consensus — %s is summarizing...", a.DisplayName())))
			s.takeTurn(a, cfg, snapshot, prompt.PhaseConsensus, log)
		}
	}

	s.feed.Emit(event.NewSectionBreakEvent("DISCUSSION COMPLETE"))
	s.feed.Emit(event.NewStatusUpdateEvent("Discussion complete. Export or start a new one."))
	s.feed.Emit(event.NewSessionCompleteEvent())
	s.running.Store(false)
	log.Info("discussion complete", "turns", s.store.Len())
}

// takeTurn builds the prompt for one agent, invokes it, and records the
// outcome. A failed normal-phase turn is appended to the transcript as an
// error-tagged Turn so later prompts see the gap; a failed consensus turn is
// reported on the feed only.
func (s *Session) takeTurn(a agent.Agent, cfg Config, snapshot string, phase prompt.Phase, log *logging.Logger) {
	name := a.DisplayName()

	text, err := s.builder.Build(&prompt.Context{
		AgentName:      name,
		ProjectContext: cfg.ProjectContext,
		Topic:          cfg.Topic,
		Transcript:     snapshot,
		Phase:          phase,
	})
	if err != nil {
		log.Error("prompt build failed", "agent", name, "error", err)
		s.feed.Emit(event.NewErrorNoticeEvent(fmt.Sprintf("[%s error] %s", name, err)))
		return
	}

	response, err := s.invoker.Invoke(a, text, s.slot)
	if err != nil {
		log.Warn("agent turn failed", "agent", name, "error", err)
		if phase == prompt.PhaseConsensus {
			var turnErr *errors.TurnError
			detail := err.Error()
			if errors.As(err, &turnErr) {
				detail = turnErr.Detail()
			}
			s.feed.Emit(event.NewErrorNoticeEvent(fmt.Sprintf("[%s consensus error] %s", name, detail)))
			return
		}
		annotation := err.Error()
		s.store.Append(transcript.Turn{Author: name, Content: annotation, Phase: transcript.PhaseNormal})
		s.feed.Emit(event.NewErrorNoticeEvent(annotation))
		return
	}

	if phase == prompt.PhaseConsensus {
		response = "[CONSENSUS]\n" + response
		s.store.Append(transcript.Turn{Author: name, Content: response, Phase: transcript.PhaseConsensus})
	} else {
		s.store.Append(transcript.Turn{Author: name, Content: response, Phase: transcript.PhaseNormal})
	}
	s.feed.Emit(event.NewAgentTurnEvent(name, response))
}
