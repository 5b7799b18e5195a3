// pattern: Imperative Shell

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures a FileChannel.
type FileConfig struct {
	Path       string // log file path (required)
	MaxSizeMB  int    // size before rotation, default 10
	MaxBackups int    // rotated files to keep, default 5
	MaxAgeDays int    // days to keep rotated files, default 7
	Compress   bool   // gzip rotated files
	Layout     string // line layout, default DefaultLayout
	Exclusive  bool   // hold a file lock so no second process writes the path

	Threshold Verbosity
	Scopes    []string
}

func (c *FileConfig) init() {
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = 10
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = 5
	}
	if c.MaxAgeDays == 0 {
		c.MaxAgeDays = 7
	}
}

// FileChannel writes one formatted line per accepted event to a rotating
// log file. Write errors are dropped: a channel whose file has gone bad
// keeps accepting events and loses them, it never fails the caller.
type FileChannel struct {
	name   string
	format *Formatter

	mu     sync.Mutex
	filter Filter
	writer *lumberjack.Logger
	lock   *flock.Flock
}

// NewFileChannel opens a rotating file channel. With cfg.Exclusive set it
// first takes a lock next to the log file; two channels writing one path
// interleave unpredictably, so exclusive mode refuses to start instead.
func NewFileChannel(cfg FileConfig) (*FileChannel, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("logging: file channel needs a path")
	}
	cfg.init()

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, err
	}

	var lock *flock.Flock
	if cfg.Exclusive {
		lock = flock.New(cfg.Path + ".lock")
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("logging: failed to lock %s: %w", cfg.Path, err)
		}
		if !locked {
			return nil, fmt.Errorf("logging: %s is locked by another writer", cfg.Path)
		}
	}

	return &FileChannel{
		name:   cfg.Path,
		format: NewFormatter(cfg.Layout),
		filter: NewFilter(cfg.Threshold, internAll(cfg.Scopes)...),
		writer: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
		lock: lock,
	}, nil
}

func (c *FileChannel) Name() string { return c.name }

// Send writes ev if the filter accepts it.
func (c *FileChannel) Send(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filter.Accepts(ev) {
		return
	}
	_, _ = c.writer.Write(append([]byte(c.format.Format(ev)), '\n'))
}

// Flush is a no-op; lumberjack writes through on every call.
func (c *FileChannel) Flush() error { return nil }

// SetFilter swaps the channel's filter.
func (c *FileChannel) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// Close closes the underlying file and releases the exclusive lock.
func (c *FileChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.writer.Close()
	if c.lock != nil {
		_ = c.lock.Unlock()
	}
	return err
}
