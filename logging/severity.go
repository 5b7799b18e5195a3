// pattern: Functional Core

// Package logging is a structured diagnostic pipeline: log events carry a
// severity and a hierarchical scope, filters gate them by verbosity
// threshold and scope containment, and channels fan accepted events out to
// sinks (file, console, zap, memory). Channels may be owned by a Manager or
// register themselves into a process-wide list at construction.
package logging

import "strings"

// Severity grades the importance of a single log event.
type Severity int8

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Critical
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a level name to a Severity. Unknown names map to Info.
func ParseSeverity(text string) Severity {
	switch strings.ToLower(text) {
	case "debug":
		return Debug
	case "info", "informative":
		return Info
	case "warn", "warning":
		return Warning
	case "error":
		return Error
	case "critical":
		return Critical
	case "fatal":
		return Fatal
	default:
		return Info
	}
}

// Verbosity is a filter threshold over the same ordinal scale as Severity,
// extended with All (accept everything) and Off (accept nothing).
type Verbosity int8

const (
	All Verbosity = Verbosity(Debug) - 1
	Off Verbosity = Verbosity(Fatal) + 1
)

// V converts a Severity to the equivalent threshold, e.g. V(Warning)
// accepts Warning and above.
func V(s Severity) Verbosity {
	return Verbosity(s)
}

// Accepts reports whether an event of severity s passes the threshold.
func (v Verbosity) Accepts(s Severity) bool {
	if v == Off {
		return false
	}
	return Verbosity(s) >= v
}

func (v Verbosity) String() string {
	switch v {
	case All:
		return "all"
	case Off:
		return "off"
	default:
		return Severity(v).String()
	}
}

// ParseVerbosity maps a name to a Verbosity. Unknown names map to All so a
// misspelled config errs on the side of keeping output.
func ParseVerbosity(text string) Verbosity {
	switch strings.ToLower(text) {
	case "", "all":
		return All
	case "off", "none":
		return Off
	default:
		return V(ParseSeverity(text))
	}
}
