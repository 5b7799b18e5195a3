// pattern: Imperative Shell

package unit

import (
	"time"

	"diagkit/event"
	"diagkit/logging"
	"diagkit/scope"
)

// runnerScope names the runner's own diagnostics in the log pipeline.
var runnerScope = scope.New("unit|runner")

// Runner drives registered suites. It selects suites by scope containment,
// re-fires their records and messages with the suite name prefixed, and
// sums their reports into one.
type Runner struct {
	// Timeout, when nonzero, bounds each case of suites that set no
	// Timeout of their own. A suite's own setting wins.
	Timeout time.Duration

	// Records re-fires every suite record with a fully qualified name
	// ("Suite|Path|case").
	Records event.Event[Record]
	// Messages re-fires T.Log output, qualified the same way.
	Messages event.Event[Message]

	log *logging.Manager
}

// NewRunner builds a runner logging through m; a nil m silences the
// runner's own diagnostics.
func NewRunner(m *logging.Manager) *Runner {
	if m == nil {
		m = logging.NewDetachedManager()
	}
	return &Runner{log: m}
}

// Run executes every registered suite whose name falls under filter and
// returns the summed report. The report is named after the filter, or
// "run" for the root filter.
func (r *Runner) Run(filter scope.Path) Report {
	return r.RunSuites(RegisteredSuites(), filter)
}

// RunSuites is Run over an explicit suite list, for callers that manage
// their own collection instead of the process registry.
func (r *Runner) RunSuites(list []*Suite, filter scope.Path) Report {
	name := filter.String()
	if filter.IsRoot() {
		name = "run"
	}
	total := NewReport(name)

	for _, s := range list {
		if !filter.Contains(s.Name()) {
			continue
		}
		total.Merge(r.runSuite(s))
	}

	total.Finish()
	r.log.Infof(runnerScope, "run %q finished: %s in %v",
		name, total.Result(), total.Duration())
	return total
}

func (r *Runner) runSuite(s *Suite) Report {
	prefix := s.Name().String() + scope.Separator

	recs := s.Records.Subscribe(func(rec Record) {
		rec.Name = prefix + rec.Name
		r.Records.Notify(rec)
	})
	msgs := s.Messages.Subscribe(func(m Message) {
		m.Name = prefix + m.Name
		r.Messages.Notify(m)
	})
	defer recs.Merge(msgs).Close()

	timeout := s.Timeout
	if timeout == 0 {
		timeout = r.Timeout
	}

	r.log.Debugf(runnerScope, "running suite %q", s.Name())
	rep := s.run(timeout)
	if rep.Result() >= Failure {
		r.log.Warningf(runnerScope, "suite %q: %s", s.Name(), rep.Result())
	}
	return rep
}
