// pattern: Imperative Shell

package unit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"diagkit/event"
	"diagkit/logging"
	"diagkit/scope"
)

var (
	// ErrRunEmpty means no registered suite matched the filter.
	ErrRunEmpty = errors.New("unit: no suites to run")
	// ErrRunFailed means at least one case failed, errored or was invalid.
	ErrRunFailed = errors.New("unit: run failed")
)

// Options configures Execute and Main.
type Options struct {
	// Filter selects suites by scope containment, e.g. "App|Net" runs
	// every suite at or under that path. Empty runs everything.
	Filter string

	// Verbose prints every record as it happens, not just the summary.
	Verbose bool

	// Color styles the final verdict.
	Color bool

	// Timeout bounds each test case (0 means unlimited).
	Timeout time.Duration

	// LogConfig is the path of a yaml logging config; empty leaves the
	// run's diagnostics silent.
	LogConfig string

	// Output receives the report, stdout when nil.
	Output io.Writer
}

// FlagSet exposes the options as command line flags, each prefixed, so a
// host binary can mount them next to its own. Defaults should be set
// before calling FlagSet.
func (o *Options) FlagSet(prefix string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	name := strings.Trim(prefix, ".-")
	f := flag.NewFlagSet(name, errorHandling)
	f.StringVar(&o.Filter, prefix+"run", o.Filter,
		"run only suites at or under this `context`")
	f.BoolVar(&o.Verbose, prefix+"v", o.Verbose,
		"verbose: print every result as it is recorded")
	f.BoolVar(&o.Color, prefix+"color", o.Color,
		"color the final verdict")
	f.DurationVar(&o.Timeout, prefix+"timeout", o.Timeout,
		"abandon a test case after duration `d` (0 means unlimited)")
	f.StringVar(&o.LogConfig, prefix+"logconfig", o.LogConfig,
		"yaml logging config `path`")
	return f
}

// Execute runs the registered suites selected by the options and writes
// the rendered report. It returns the report plus ErrRunEmpty when nothing
// matched or ErrRunFailed when the verdict is Failure or worse.
func Execute(opts Options) (Report, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var logs *logging.Manager
	if opts.LogConfig != "" {
		cfg, err := logging.LoadConfig(opts.LogConfig)
		if err != nil {
			return Report{}, fmt.Errorf("unit: loading log config: %w", err)
		}
		logs, err = logging.NewManager(cfg)
		if err != nil {
			return Report{}, fmt.Errorf("unit: building log manager: %w", err)
		}
		defer func() { _ = logs.Close() }()
	}

	runner := NewRunner(logs)
	runner.Timeout = opts.Timeout

	var verbose *event.Listener
	if opts.Verbose {
		verbose = runner.Records.Subscribe(func(rec Record) {
			fmt.Fprintf(out, "%s %s: %s\n", rec.Result, rec.Name, rec.Message)
		})
	}

	filter := scope.New(opts.Filter)
	matched := 0
	for _, s := range RegisteredSuites() {
		if filter.Contains(s.Name()) {
			matched++
		}
	}

	report := runner.Run(filter)
	if verbose != nil {
		verbose.Close()
	}
	fmt.Fprintln(out, report.Render(opts.Color))

	if matched == 0 {
		return report, ErrRunEmpty
	}
	if report.Result() >= Failure {
		return report, ErrRunFailed
	}
	return report, nil
}

// Main is the TestMain-style entry point: it runs Execute and maps the
// outcome to an exit code (0 passed or skipped, 1 failed, 2 nothing ran).
func Main(opts Options) int {
	_, err := Execute(opts)
	switch {
	case errors.Is(err, ErrRunEmpty):
		return 2
	case err != nil:
		return 1
	default:
		return 0
	}
}
