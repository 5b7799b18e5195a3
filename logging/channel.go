// pattern: Imperative Shell

package logging

import "sync"

// Channel receives events that pass its own filter and writes them to a
// sink. Send must tolerate any event; a channel whose sink has failed keeps
// accepting events and drops them (no retry, no error surface).
type Channel interface {
	Name() string
	Send(Event)
	Flush() error
}

// Refilterable is implemented by channels whose filter can be swapped at
// runtime. Watch uses it to apply config reloads.
type Refilterable interface {
	SetFilter(Filter)
}

// registry is the process-wide list of self-registered channels. Channels
// constructed as package-level values land here from init functions, so a
// translation unit can contribute a channel without any explicit wiring in
// main. Iteration order is registration order and is deterministic for a
// given binary.
var registry = struct {
	mu       sync.Mutex
	channels []Channel
}{}

// RegisterChannel adds ch to the process-wide channel list. Registered
// channels are never removed; every Manager fans events out to them unless
// explicitly detached.
func RegisterChannel(ch Channel) {
	if ch == nil {
		return
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.channels = append(registry.channels, ch)
}

// RegisteredChannels returns a snapshot of the process-wide channel list.
func RegisteredChannels() []Channel {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]Channel, len(registry.channels))
	copy(out, registry.channels)
	return out
}
