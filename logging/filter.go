// pattern: Functional Core

package logging

import "diagkit/scope"

// Filter gates events by verbosity threshold and scope containment.
type Filter struct {
	Threshold Verbosity
	Scopes    []scope.Path
}

// NewFilter builds a filter accepting events at or above threshold whose
// scope falls under any of the given paths. With no paths the filter spans
// the whole hierarchy (root contains everything).
func NewFilter(threshold Verbosity, paths ...scope.Path) Filter {
	return Filter{Threshold: threshold, Scopes: paths}
}

// internAll interns a list of path strings.
func internAll(texts []string) []scope.Path {
	paths := make([]scope.Path, len(texts))
	for i, t := range texts {
		paths[i] = scope.New(t)
	}
	return paths
}

// Accepts reports whether ev passes the threshold and lies under at least
// one of the filter's scopes.
func (f Filter) Accepts(ev Event) bool {
	if !f.Threshold.Accepts(ev.Severity) {
		return false
	}
	if len(f.Scopes) == 0 {
		return true
	}
	for _, s := range f.Scopes {
		if s.Contains(ev.Scope) {
			return true
		}
	}
	return false
}
