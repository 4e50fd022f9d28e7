package event

import "sync"

// defaultFeedCapacity is sized so a full session (rounds of turns plus
// notices) fits without the producer ever blocking on a slow observer.
const defaultFeedCapacity = 1024

// Feed is an ordered, asynchronous delivery path from the orchestrator to a
// single observer. Emit never blocks: the orchestrator must not stall on a
// slow or absent observer. Events are delivered strictly in emission order.
type Feed struct {
	mu sync.Mutex
	ch chan Event
}

// NewFeed creates a feed with the default capacity.
func NewFeed() *Feed {
	return NewFeedWithCapacity(defaultFeedCapacity)
}

// NewFeedWithCapacity creates a feed with an explicit buffer capacity.
func NewFeedWithCapacity(capacity int) *Feed {
	if capacity < 1 {
		capacity = 1
	}
	return &Feed{ch: make(chan Event, capacity)}
}

// Emit enqueues an event without blocking. If the buffer is full the oldest
// pending event is dropped to admit the new one, preserving order of what
// remains; completion events are what the observer must not miss, and those
// are always the newest.
func (f *Feed) Emit(e Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for {
		select {
		case f.ch <- e:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// TryNext returns the next pending event, or false when the feed is empty.
func (f *Feed) TryNext() (Event, bool) {
	select {
	case e := <-f.ch:
		return e, true
	default:
		return nil, false
	}
}

// Drain returns all pending events in emission order. It never blocks; an
// empty feed yields nil. Observers call this on a fixed cadence.
func (f *Feed) Drain() []Event {
	var out []Event
	for {
		select {
		case e := <-f.ch:
			out = append(out, e)
		default:
			return out
		}
	}
}

// Pending returns the number of undelivered events.
func (f *Feed) Pending() int {
	return len(f.ch)
}
