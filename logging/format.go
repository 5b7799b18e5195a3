// pattern: Functional Core

package logging

import (
	"strconv"
	"strings"
)

// DefaultLayout is the line format used when a channel is given none.
const DefaultLayout = "%date %time [%severity] %context: %message"

// Layout tokens. Any "%" sequence not listed here is emitted verbatim.
var formatTokens = []string{
	"%time", "%date", "%severity", "%thread",
	"%context", "%trace", "%function", "%message", "%%",
}

// Formatter renders events as text lines by substituting layout tokens.
// Layouts are compiled once; Format is allocation-light and goroutine-safe.
type Formatter struct {
	segments []segment
}

type segment struct {
	literal string
	token   string // empty for literals
}

// NewFormatter compiles layout. An empty layout compiles DefaultLayout.
func NewFormatter(layout string) *Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	var f Formatter
	var lit strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] != '%' {
			lit.WriteByte(layout[i])
			i++
			continue
		}
		token := matchToken(layout[i:])
		if token == "" {
			// Not a known token: keep the "%" verbatim.
			lit.WriteByte('%')
			i++
			continue
		}
		if lit.Len() > 0 {
			f.segments = append(f.segments, segment{literal: lit.String()})
			lit.Reset()
		}
		f.segments = append(f.segments, segment{token: token})
		i += len(token)
	}
	if lit.Len() > 0 {
		f.segments = append(f.segments, segment{literal: lit.String()})
	}
	return &f
}

func matchToken(s string) string {
	for _, tok := range formatTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

// Format renders ev according to the compiled layout, without a trailing
// newline.
func (f *Formatter) Format(ev Event) string {
	var sb strings.Builder
	for _, seg := range f.segments {
		if seg.token == "" {
			sb.WriteString(seg.literal)
			continue
		}
		switch seg.token {
		case "%time":
			sb.WriteString(ev.Time.Format("15:04:05.000"))
		case "%date":
			sb.WriteString(ev.Time.Format("2006-01-02"))
		case "%severity":
			sb.WriteString(ev.Severity.String())
		case "%thread":
			sb.WriteString(strconv.FormatUint(ev.Goroutine, 10))
		case "%context":
			sb.WriteString(ev.Scope.String())
		case "%trace":
			sb.WriteString(ev.Stack)
		case "%function":
			sb.WriteString(ev.Function)
		case "%message":
			sb.WriteString(ev.Message)
		case "%%":
			sb.WriteByte('%')
		}
	}
	return sb.String()
}
