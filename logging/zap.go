// pattern: Imperative Shell

package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapChannel forwards accepted events to a zap logger, letting a host
// program that already runs on zap receive this pipeline's output as
// structured records. Critical and Fatal map to zap's error level with the
// original severity preserved as a field, because zap's own fatal level
// exits the process and its panic levels throw.
type ZapChannel struct {
	name string
	zap  *zap.Logger

	mu     sync.Mutex
	filter Filter
}

// NewZapChannel wraps logger in a channel with the given filter.
func NewZapChannel(logger *zap.Logger, filter Filter) *ZapChannel {
	return &ZapChannel{
		name:   "zap",
		zap:    logger,
		filter: filter,
	}
}

func (c *ZapChannel) Name() string { return c.name }

func (c *ZapChannel) Send(ev Event) {
	c.mu.Lock()
	accepted := c.filter.Accepts(ev)
	c.mu.Unlock()
	if !accepted {
		return
	}

	fields := []zap.Field{
		zap.String("context", ev.Scope.String()),
		zap.String("severity", ev.Severity.String()),
		zap.Uint64("goroutine", ev.Goroutine),
	}
	if ev.Function != "" {
		fields = append(fields, zap.String("function", ev.Function))
	}
	if ev.Stack != "" {
		fields = append(fields, zap.String("trace", ev.Stack))
	}

	if ce := c.zap.Check(zapLevel(ev.Severity), ev.Message); ce != nil {
		ce.Time = ev.Time
		ce.Write(fields...)
	}
}

func (c *ZapChannel) Flush() error { return c.zap.Sync() }

// SetFilter swaps the channel's filter.
func (c *ZapChannel) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

func zapLevel(s Severity) zapcore.Level {
	switch s {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
