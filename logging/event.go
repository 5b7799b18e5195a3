// pattern: Functional Core

package logging

import (
	"bytes"
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"

	"diagkit/scope"
)

// Event is one log record. It is built once at the call site and never
// mutated afterwards; every accepting channel sees the same value.
type Event struct {
	Time      time.Time
	Goroutine uint64
	Severity  Severity
	Scope     scope.Path
	Message   string
	File      string
	Line      int
	Function  string
	Stack     string // captured for Error and above, else empty
}

// NewEvent builds an event for the caller's location. skip counts stack
// frames above NewEvent exactly as in runtime.Caller: 0 attributes the
// event to the caller of NewEvent itself.
func NewEvent(sev Severity, path scope.Path, format string, args ...any) Event {
	return newEvent(2, sev, path, format, args...)
}

func newEvent(skip int, sev Severity, path scope.Path, format string, args ...any) Event {
	ev := Event{
		Time:      time.Now(),
		Goroutine: goroutineID(),
		Severity:  sev,
		Scope:     path,
		Message:   fmt.Sprintf(format, args...),
	}
	if pc, file, line, ok := runtime.Caller(skip); ok {
		ev.File = file
		ev.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			ev.Function = fn.Name()
		}
	}
	if sev >= Error {
		ev.Stack = string(debug.Stack())
	}
	return ev
}

// goroutineID parses the header of the current goroutine's stack dump
// ("goroutine N [running]:"). There is no cheaper supported way to name the
// calling goroutine; the id only labels output and is never dereferenced.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
