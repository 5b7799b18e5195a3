// pattern: Imperative Shell

package logging

import "sync"

// MemorySink buffers accepted events on a bounded channel for consumption
// by a UI or a test. Sends never block: once the buffer fills, the oldest
// event is dropped to make room.
type MemorySink struct {
	name   string
	events chan Event

	mu     sync.Mutex
	filter Filter
	closed bool
}

// NewMemorySink builds a sink holding up to bufferSize events.
func NewMemorySink(bufferSize int, filter Filter) *MemorySink {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	return &MemorySink{
		name:   "memory",
		events: make(chan Event, bufferSize),
		filter: filter,
	}
}

func (s *MemorySink) Name() string { return s.name }

// Send buffers ev if the filter accepts it, dropping the oldest buffered
// event when full.
func (s *MemorySink) Send(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.filter.Accepts(ev) {
		return
	}

	// Non-blocking send with overflow handling, protected by the mutex.
	select {
	case s.events <- ev:
	default:
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- ev:
		default:
		}
	}
}

// Flush is a no-op; buffered events stay available until consumed.
func (s *MemorySink) Flush() error { return nil }

// SetFilter swaps the sink's filter.
func (s *MemorySink) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// Events returns the channel for consuming buffered events. It is closed
// by Close.
func (s *MemorySink) Events() <-chan Event {
	return s.events
}

// Close closes the events channel. Safe to call more than once; later
// Sends are dropped.
func (s *MemorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.events)
	}
	return nil
}
