// pattern: Imperative Shell

package unit

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"

	"diagkit/event"
)

// T is the handle a test body receives. It records assertion outcomes into
// the case report and forwards them upward through the owning suite's
// events. T is passed explicitly down the call stack; there is no ambient
// "current test" state, so bodies may hand it to helpers freely. A single
// T must not be used from more than one goroutine.
type T struct {
	caseName string
	report   *Report
	records  *event.Event[Record]
	messages *event.Event[Message]
	failed   bool
	skipped  bool

	// mu serializes records from the case goroutine against the suite
	// after a timeout; open is cleared when the case is abandoned so late
	// records from a stuck body are dropped instead of racing.
	mu   *sync.Mutex
	open *bool
}

// Assert records Success when cond holds, otherwise records Failure and
// aborts the rest of the case.
func (t *T) Assert(cond bool, msg string) {
	if cond {
		t.record(2, Success, msg)
		return
	}
	t.record(2, Failure, msg)
	t.abort()
}

// Expect gates a case on a runtime precondition: when cond is false the
// case is recorded as Skipped and aborted. Call it before other
// assertions.
func (t *T) Expect(cond bool, msg string) {
	if cond {
		return
	}
	t.skipped = true
	t.record(2, Skipped, msg)
	t.abort()
}

// Check is the soft assert: it records Success or Failure and lets the
// case keep running either way. Returns cond for call-site chaining.
func (t *T) Check(cond bool, msg string) bool {
	if cond {
		t.record(2, Success, msg)
	} else {
		t.record(2, Failure, msg)
	}
	return cond
}

// Skip records Skipped with the given reason and aborts the case.
func (t *T) Skip(reason string) {
	t.skipped = true
	t.record(2, Skipped, reason)
	t.abort()
}

// Equal asserts got == want by deep comparison. On mismatch the failure
// message carries both rendered values, and the case aborts.
func (t *T) Equal(got, want any, msg string) {
	if equal(got, want) {
		t.record(2, Success, msg)
		return
	}
	t.record(2, Failure, fmt.Sprintf("%s: got %#v, want %#v", msg, got, want))
	t.abort()
}

// Log emits a free-form diagnostic message attached to the case.
func (t *T) Log(format string, args ...any) {
	if t.messages == nil {
		return
	}
	if t.mu != nil {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.open != nil && !*t.open {
			return
		}
	}
	t.messages.Notify(Message{Name: t.caseName, Text: fmt.Sprintf(format, args...)})
}

// Failed reports whether the case has recorded a Failure or worse so far.
func (t *T) Failed() bool {
	return t.failed
}

// Skipped reports whether the case was skipped via Skip or a failed Expect.
func (t *T) Skipped() bool {
	return t.skipped
}

// abandoned reports whether the record gate has been shut because the
// case overran its timeout.
func (t *T) abandoned() bool {
	if t.mu == nil || t.open == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return !*t.open
}

// record books an outcome into the case report and forwards it upward,
// tagged with the case name and the caller's source location. skip counts
// frames as in runtime.Caller, from record itself.
func (t *T) record(skip int, res Result, msg string) {
	if t.mu != nil {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.open != nil && !*t.open {
			return
		}
	}
	if res >= Failure {
		t.failed = true
	}
	t.report.Add(res)
	if t.records == nil {
		return
	}
	rec := Record{
		Name:    t.caseName,
		Result:  res,
		Message: msg,
	}
	if pc, file, line, ok := runtime.Caller(skip); ok {
		rec.File = file
		rec.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			rec.Function = fn.Name()
		}
	}
	t.records.Notify(rec)
}

// abort stops the case body. The case goroutine unwinds through its
// deferred After hook, so cleanup still happens.
func (t *T) abort() {
	runtime.Goexit()
}

func equal(got, want any) bool {
	return reflect.DeepEqual(got, want)
}
