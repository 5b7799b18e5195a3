// pattern: Imperative Shell

package unit

import (
	"fmt"
	"sync"
	"time"

	"diagkit/event"
	"diagkit/scope"
)

// Case is one named unit of work bound to its suite's fixture.
type Case struct {
	Name string
	Run  func(*T)
}

// BeforeHook is implemented by fixtures that reset state before each case.
type BeforeHook interface {
	Before(*T)
}

// AfterHook is implemented by fixtures that clean up after each case. The
// hook runs even when the case body aborted or panicked.
type AfterHook interface {
	After(*T)
}

// Suite is a scope-named, ordered collection of cases sharing one fixture
// instance. The fixture is pooled: a single value serves every case in the
// suite, with Before/After hooks restoring state around each one, so
// fixture authors carry the isolation burden.
type Suite struct {
	name    scope.Path
	fixture any
	cases   []Case

	// Timeout bounds each case body; zero means unbounded. A case that
	// overruns is recorded as Error and its goroutine abandoned: its
	// records are dropped and its After hook skipped, but the stuck body
	// may still hold the pooled fixture while the next case runs. Bodies
	// that can overrun should not mutate shared fixture state.
	Timeout time.Duration

	// Records fires once per recorded outcome, tagged with the case name.
	Records event.Event[Record]
	// Messages fires for every T.Log call, tagged the same way.
	Messages event.Event[Message]
}

// NewSuite builds a suite named by path text, e.g. "App|Net". fixture may
// be nil for suites of pure functions.
func NewSuite(name string, fixture any) *Suite {
	return &Suite{name: scope.New(name), fixture: fixture}
}

// Name returns the suite's scope path.
func (s *Suite) Name() scope.Path {
	return s.name
}

// Add appends a case. Cases run in the order they were added. Adding two
// cases with one name panics: the duplicate is a programming error worth
// failing loudly at registration time.
func (s *Suite) Add(name string, run func(*T)) *Suite {
	for _, c := range s.cases {
		if c.Name == name {
			panic(fmt.Errorf("unit: duplicate case %q in suite %q", name, s.name))
		}
	}
	s.cases = append(s.cases, Case{Name: name, Run: run})
	return s
}

// AddCase appends a case whose body receives the suite fixture as *F. A
// suite whose fixture is not a *F records Invalid for the case at run
// time instead of executing it: the test is malformed, not failing.
func AddCase[F any](s *Suite, name string, run func(*T, *F)) *Suite {
	return s.Add(name, func(t *T) {
		f, ok := s.fixture.(*F)
		if !ok {
			t.record(2, Invalid, fmt.Sprintf(
				"case %q wants fixture %T, suite has %T", name, f, s.fixture))
			return
		}
		run(t, f)
	})
}

// Run executes every case in order against the pooled fixture and returns
// the summed report. Each case body runs on its own goroutine so that
// aborting assertions unwind it without touching the caller; a panic
// escaping the body is recorded as Error, and a body that records nothing
// at all as Invalid.
func (s *Suite) Run() Report {
	return s.run(s.Timeout)
}

func (s *Suite) run(timeout time.Duration) Report {
	report := NewReport(s.name.String())
	for _, c := range s.cases {
		caseReport := s.runCase(c, timeout)
		report.Merge(caseReport)
	}
	report.Finish()
	return report
}

func (s *Suite) runCase(c Case, timeout time.Duration) Report {
	caseReport := NewReport(c.Name)
	mu := &sync.Mutex{}
	open := true
	t := &T{
		caseName: c.Name,
		report:   &caseReport,
		records:  &s.Records,
		messages: &s.Messages,
		mu:       mu,
		open:     &open,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer s.runAfter(t)
		defer func() {
			if r := recover(); r != nil {
				t.record(3, Error, fmt.Sprintf("panic: %v", r))
			}
		}()
		if hook, ok := s.fixture.(BeforeHook); ok {
			hook.Before(t)
		}
		c.Run(t)
	}()

	if timeout > 0 {
		select {
		case <-done:
		case <-time.After(timeout):
			// Shut the record gate so the abandoned goroutine goes quiet,
			// then book the timeout on its behalf.
			mu.Lock()
			open = false
			mu.Unlock()
			late := &T{caseName: c.Name, report: &caseReport, records: &s.Records, mu: mu}
			late.record(1, Error, fmt.Sprintf("timed out after %v", timeout))
			caseReport.Finished = time.Now()
			return caseReport
		}
	} else {
		<-done
	}

	if caseReport.Total() == 0 {
		t.record(1, Invalid, "case recorded no results")
	}
	caseReport.Finish()
	return caseReport
}

// runAfter invokes the fixture's After hook behind its own recover so a
// panicking cleanup is still just an Error outcome.
func (s *Suite) runAfter(t *T) {
	hook, ok := s.fixture.(AfterHook)
	if !ok {
		return
	}
	if t.abandoned() {
		// The case timed out and the next one may already own the
		// fixture; running After here would race it.
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.record(3, Error, fmt.Sprintf("panic in After: %v", r))
		}
	}()
	hook.After(t)
}
