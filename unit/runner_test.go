package unit

import (
	"strings"
	"testing"
	"time"

	"diagkit/scope"
)

// Registered at package init, the way test files contribute suites in a
// real program: no call in any TestXxx body puts it in the registry.
var _ = Register(NewSuite("InitRegistered|Demo", nil).
	Add("present", func(t *T) { t.Assert(true, "registered before main") }))

func TestRegister_AtInitTime(t *testing.T) {
	rep := NewRunner(nil).Run(scope.New("InitRegistered"))
	if rep.Count(Success) != 1 {
		t.Errorf("init-registered suite did not run: %s", rep.String())
	}
}

func passingSuite(name string) *Suite {
	s := NewSuite(name, nil)
	s.Add("passes", func(tt *T) { tt.Assert(true, "ok") })
	return s
}

func TestRunner_FilterSelectsByContainment(t *testing.T) {
	var ran []string
	track := func(name string) *Suite {
		s := NewSuite(name, nil)
		s.Add("case", func(tt *T) {
			ran = append(ran, name)
			tt.Assert(true, "ok")
		})
		return s
	}
	list := []*Suite{track("A|X"), track("A|Y"), track("B|X")}

	r := NewRunner(nil)
	rep := r.RunSuites(list, scope.New("A"))

	if len(ran) != 2 || ran[0] != "A|X" || ran[1] != "A|Y" {
		t.Errorf("ran %v, want [A|X A|Y]", ran)
	}
	if rep.Count(Success) != 2 {
		t.Errorf("success count = %d, want 2", rep.Count(Success))
	}
}

func TestRunner_TimeoutLeavesSuiteUntouched(t *testing.T) {
	s := passingSuite("TimeoutFree|X")

	r := NewRunner(nil)
	r.Timeout = time.Minute
	r.RunSuites([]*Suite{s}, scope.New("TimeoutFree"))

	if s.Timeout != 0 {
		t.Errorf("runner wrote its timeout into the suite: %v", s.Timeout)
	}
}

func TestRunner_SuiteTimeoutWins(t *testing.T) {
	s := NewSuite("TimeoutOwn|X", nil)
	s.Timeout = time.Second
	s.Add("slowish", func(tt *T) {
		time.Sleep(30 * time.Millisecond)
		tt.Assert(true, "finished")
	})

	r := NewRunner(nil)
	r.Timeout = 5 * time.Millisecond
	rep := r.RunSuites([]*Suite{s}, scope.New("TimeoutOwn"))

	if rep.Result() != Success {
		t.Errorf("suite's own timeout should bound the case, got %s", rep.String())
	}
}

func TestRunner_RootFilterRunsEverything(t *testing.T) {
	list := []*Suite{passingSuite("A|X"), passingSuite("B|X")}
	rep := NewRunner(nil).RunSuites(list, scope.Root)
	if rep.Count(Success) != 2 {
		t.Errorf("success count = %d, want 2", rep.Count(Success))
	}
	if rep.Name != "run" {
		t.Errorf("root run report named %q, want run", rep.Name)
	}
}

func TestRunner_ExactNameMatches(t *testing.T) {
	list := []*Suite{passingSuite("A|X"), passingSuite("A|X|Deep")}
	rep := NewRunner(nil).RunSuites(list, scope.New("A|X"))
	if rep.Count(Success) != 2 {
		t.Error("a filter should select its own suite and descendants")
	}
}

func TestRunner_QualifiesRecordNames(t *testing.T) {
	s := NewSuite("App|Net", nil)
	s.Add("connect", func(tt *T) { tt.Assert(true, "ok") })

	r := NewRunner(nil)
	var names []string
	l := r.Records.Subscribe(func(rec Record) { names = append(names, rec.Name) })
	defer l.Close()

	r.RunSuites([]*Suite{s}, scope.Root)
	if len(names) != 1 || names[0] != "App|Net|connect" {
		t.Errorf("qualified names = %v, want [App|Net|connect]", names)
	}
}

func TestRunner_QualifiesMessages(t *testing.T) {
	s := NewSuite("App|Net", nil)
	s.Add("chatty", func(tt *T) {
		tt.Log("dialing %s", "example")
		tt.Assert(true, "ok")
	})

	r := NewRunner(nil)
	var msgs []Message
	l := r.Messages.Subscribe(func(m Message) { msgs = append(msgs, m) })
	defer l.Close()

	r.RunSuites([]*Suite{s}, scope.Root)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if msgs[0].Name != "App|Net|chatty" || msgs[0].Text != "dialing example" {
		t.Errorf("message = %+v", msgs[0])
	}
}

func TestRunner_DetachesListenersAfterSuite(t *testing.T) {
	s := passingSuite("App|Once")

	r := NewRunner(nil)
	count := 0
	l := r.Records.Subscribe(func(Record) { count++ })
	defer l.Close()

	r.RunSuites([]*Suite{s}, scope.Root)
	// A second, direct run must not reach the runner's listeners.
	s.Run()

	if count != 1 {
		t.Errorf("runner records fired %d times, want 1", count)
	}
}

func TestRunner_AggregatesAcrossSuites(t *testing.T) {
	pass := passingSuite("A|Pass")
	fail := NewSuite("A|Fail", nil)
	fail.Add("fails", func(tt *T) { tt.Check(false, "nope") })

	rep := NewRunner(nil).RunSuites([]*Suite{pass, fail}, scope.New("A"))
	if rep.Count(Success) != 1 || rep.Count(Failure) != 1 {
		t.Errorf("counts = %d/%d, want 1 success and 1 failure",
			rep.Count(Success), rep.Count(Failure))
	}
	if rep.Result() != Failure {
		t.Errorf("Result() = %v, want Failure", rep.Result())
	}
}

func TestRegister_AndRunFromRegistry(t *testing.T) {
	// The registry is process-wide; names here are unique to this test.
	Register(passingSuite("RegistryRun|A|X"))
	Register(passingSuite("RegistryRun|A|Y"))
	Register(passingSuite("RegistryRun|B|X"))

	rep := NewRunner(nil).Run(scope.New("RegistryRun|A"))
	if rep.Count(Success) != 2 {
		t.Errorf("success count = %d, want 2", rep.Count(Success))
	}
}

func TestRegister_PreservesOrder(t *testing.T) {
	Register(passingSuite("RegistryOrder|First"))
	Register(passingSuite("RegistryOrder|Second"))

	var seen []string
	for _, s := range RegisteredSuites() {
		name := s.Name().String()
		if strings.HasPrefix(name, "RegistryOrder|") {
			seen = append(seen, name)
		}
	}
	if len(seen) != 2 || seen[0] != "RegistryOrder|First" || seen[1] != "RegistryOrder|Second" {
		t.Errorf("registry order = %v", seen)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register(passingSuite("RegistryDup|Same"))
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate suite name should panic")
		}
	}()
	Register(passingSuite("RegistryDup|Same"))
}
