// pattern: Imperative Shell

package logging

import (
	"io"
	"os"
	"sync"
)

// ConsoleChannel writes one formatted line per accepted event to a writer,
// stderr by default.
type ConsoleChannel struct {
	name   string
	format *Formatter

	mu     sync.Mutex
	filter Filter
	out    io.Writer
}

// NewConsoleChannel builds a console channel with the given layout and
// filter. A nil out writes to stderr.
func NewConsoleChannel(out io.Writer, layout string, filter Filter) *ConsoleChannel {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleChannel{
		name:   "console",
		format: NewFormatter(layout),
		filter: filter,
		out:    out,
	}
}

func (c *ConsoleChannel) Name() string { return c.name }

func (c *ConsoleChannel) Send(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filter.Accepts(ev) {
		return
	}
	_, _ = io.WriteString(c.out, c.format.Format(ev)+"\n")
}

// Flush syncs the writer when it is a file; console writes are otherwise
// unbuffered.
func (c *ConsoleChannel) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.out.(*os.File); ok {
		return f.Sync()
	}
	return nil
}

// SetFilter swaps the channel's filter.
func (c *ConsoleChannel) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}
