// Package event defines the event stream between the discussion orchestrator
// and its observer. The orchestrator is the only producer; the observer (TUI
// or log sink) drains events on a steady cadence and renders each by type.
package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "turn.completed", "session.complete")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// AgentTurnEvent carries one agent's completed turn.
type AgentTurnEvent struct {
	baseEvent
	Agent   string // Agent display name
	Content string // The turn text, "[CONSENSUS]\n"-prefixed for consensus turns
}

// NewAgentTurnEvent creates an AgentTurnEvent.
func NewAgentTurnEvent(agent, content string) AgentTurnEvent {
	return AgentTurnEvent{
		baseEvent: newBaseEvent("turn.completed"),
		Agent:     agent,
		Content:   content,
	}
}

// SystemNoticeEvent carries an informational session message.
type SystemNoticeEvent struct {
	baseEvent
	Text string
}

// NewSystemNoticeEvent creates a SystemNoticeEvent.
func NewSystemNoticeEvent(text string) SystemNoticeEvent {
	return SystemNoticeEvent{
		baseEvent: newBaseEvent("session.notice"),
		Text:      text,
	}
}

// ErrorNoticeEvent carries a turn failure for distinct rendering.
// Turn failures never abort the session; this event is how they surface.
type ErrorNoticeEvent struct {
	baseEvent
	Text string
}

// NewErrorNoticeEvent creates an ErrorNoticeEvent.
func NewErrorNoticeEvent(text string) ErrorNoticeEvent {
	return ErrorNoticeEvent{
		baseEvent: newBaseEvent("turn.error"),
		Text:      text,
	}
}

// SectionBreakEvent marks a labeled boundary in the discussion
// (round starts, the consensus phase, completion).
type SectionBreakEvent struct {
	baseEvent
	Label string
}

// NewSectionBreakEvent creates a SectionBreakEvent.
func NewSectionBreakEvent(label string) SectionBreakEvent {
	return SectionBreakEvent{
		baseEvent: newBaseEvent("session.section"),
		Label:     label,
	}
}

// StatusUpdateEvent carries a transient status line (who is thinking).
type StatusUpdateEvent struct {
	baseEvent
	Text string
}

// NewStatusUpdateEvent creates a StatusUpdateEvent.
func NewStatusUpdateEvent(text string) StatusUpdateEvent {
	return StatusUpdateEvent{
		baseEvent: newBaseEvent("session.status"),
		Text:      text,
	}
}

// SessionCompleteEvent is emitted exactly once when the session winds down,
// whether it ran to completion or was stopped.
type SessionCompleteEvent struct {
	baseEvent
}

// NewSessionCompleteEvent creates a SessionCompleteEvent.
func NewSessionCompleteEvent() SessionCompleteEvent {
	return SessionCompleteEvent{
		baseEvent: newBaseEvent("session.complete"),
	}
}
