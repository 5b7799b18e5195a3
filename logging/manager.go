// pattern: Imperative Shell

package logging

import (
	"os"
	"sync"

	"diagkit/scope"
)

// Manager fans events out to its attached channels and, unless detached,
// to every self-registered channel in the process. Send snapshots the
// channel list before delivering, so a channel that logs from inside its
// own Send (for example while opening a sink lazily) re-enters the manager
// without deadlocking.
type Manager struct {
	mu       sync.Mutex
	channels []Channel
	detached bool
}

// NewManager builds a manager from config: a rotating file channel when a
// path is configured, plus an optional console channel. Self-registered
// channels are included in its fan-out.
func NewManager(cfg Config) (*Manager, error) {
	m := &Manager{}
	if cfg.File.Path != "" {
		fc, err := NewFileChannel(FileConfig{
			Path:       cfg.File.Path,
			MaxSizeMB:  cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAgeDays: cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
			Exclusive:  cfg.File.Exclusive,
			Layout:     cfg.Layout,
			Threshold:  ParseVerbosity(cfg.Verbosity),
			Scopes:     cfg.Scopes,
		})
		if err != nil {
			return nil, err
		}
		m.Attach(fc)
	}
	if cfg.Console {
		filter := NewFilter(ParseVerbosity(cfg.Verbosity), internAll(cfg.Scopes)...)
		m.Attach(NewConsoleChannel(os.Stderr, cfg.Layout, filter))
	}
	return m, nil
}

// NewDetachedManager builds an empty manager that ignores the process-wide
// channel registry. Tests use it to keep fan-out local.
func NewDetachedManager(channels ...Channel) *Manager {
	return &Manager{channels: channels, detached: true}
}

// Attach adds a channel the manager owns.
func (m *Manager) Attach(ch Channel) {
	if ch == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.channels = append(m.channels, ch)
}

// Send delivers ev to every channel; each channel applies its own filter.
// Returns the manager so sends can chain.
func (m *Manager) Send(ev Event) *Manager {
	for _, ch := range m.snapshot() {
		ch.Send(ev)
	}
	return m
}

// Flush flushes every channel, returning the first error encountered.
func (m *Manager) Flush() error {
	var first error
	for _, ch := range m.snapshot() {
		if err := ch.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// SetFilter applies f to every owned channel that supports refiltering.
// Self-registered channels keep their own filters.
func (m *Manager) SetFilter(f Filter) {
	for _, ch := range m.owned() {
		if rf, ok := ch.(Refilterable); ok {
			rf.SetFilter(f)
		}
	}
}

// Close flushes and closes every owned channel that can be closed.
// Self-registered channels live for the process and are left alone.
func (m *Manager) Close() error {
	var first error
	for _, ch := range m.owned() {
		if err := ch.Flush(); err != nil && first == nil {
			first = err
		}
		if closer, ok := ch.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

func (m *Manager) owned() []Channel {
	m.mu.Lock()
	defer m.mu.Unlock()
	owned := make([]Channel, len(m.channels))
	copy(owned, m.channels)
	return owned
}

func (m *Manager) snapshot() []Channel {
	m.mu.Lock()
	owned := make([]Channel, len(m.channels))
	copy(owned, m.channels)
	detached := m.detached
	m.mu.Unlock()

	if detached {
		return owned
	}
	return append(owned, RegisteredChannels()...)
}

// Log builds an event attributed to the caller and sends it.
func (m *Manager) Log(sev Severity, path scope.Path, format string, args ...any) *Manager {
	return m.Send(newEvent(2, sev, path, format, args...))
}

// Debugf sends a Debug event scoped to path.
func (m *Manager) Debugf(path scope.Path, format string, args ...any) *Manager {
	return m.Send(newEvent(2, Debug, path, format, args...))
}

// Infof sends an Info event scoped to path.
func (m *Manager) Infof(path scope.Path, format string, args ...any) *Manager {
	return m.Send(newEvent(2, Info, path, format, args...))
}

// Warningf sends a Warning event scoped to path.
func (m *Manager) Warningf(path scope.Path, format string, args ...any) *Manager {
	return m.Send(newEvent(2, Warning, path, format, args...))
}

// Errorf sends an Error event scoped to path; the event carries a stack.
func (m *Manager) Errorf(path scope.Path, format string, args ...any) *Manager {
	return m.Send(newEvent(2, Error, path, format, args...))
}

// Criticalf sends a Critical event scoped to path.
func (m *Manager) Criticalf(path scope.Path, format string, args ...any) *Manager {
	return m.Send(newEvent(2, Critical, path, format, args...))
}
