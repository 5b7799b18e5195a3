// pattern: Functional Core

// Package unit is a self-registering test framework. Suites register
// themselves into a process-wide list from init functions, a Runner
// selects them by hierarchical scope and runs their cases against a
// pooled fixture, and outcomes bubble up through events into summable
// reports.
package unit

// Result classifies one test outcome. Values order by severity: when
// outcomes aggregate, the most severe one observed wins.
type Result int8

const (
	Success Result = iota
	Skipped
	Failure
	Error   // unhandled fault (panic, timeout) during execution
	Invalid // malformed test: wrong binding, or a body recording nothing
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Skipped:
		return "skipped"
	case Failure:
		return "failure"
	case Error:
		return "error"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Record is one reported outcome, bubbling from a test body up through
// case, suite and runner. Each level prefixes its own name, so by the time
// a record leaves the runner its Name reads "Suite|Path|case".
type Record struct {
	Name     string
	Result   Result
	Message  string
	File     string
	Line     int
	Function string
}

// Message is a free-form diagnostic emitted by a test body via T.Log,
// qualified like Record.Name as it bubbles upward.
type Message struct {
	Name string
	Text string
}
