// pattern: Functional Core

// Package scope provides interned, hierarchical, pipe-delimited paths used
// to route log events and select test suites. A path like "App|Net|Socket"
// names a node in a hierarchy; Contains answers ancestor/descendant
// questions with exact separator boundaries.
package scope

import "strings"

// Separator delimits path segments.
const Separator = "|"

// Path is a handle to an interned path string. Paths constructed from equal
// text are equal handles, so comparison is a single integer compare. The
// zero value is Root.
type Path struct {
	id uint32
}

// Root is the empty path. It contains every other path.
var Root = Path{}

// New interns text and returns its Path. Construction never fails; empty
// text yields Root. Interned strings live for the lifetime of the process.
func New(text string) Path {
	if text == "" {
		return Root
	}
	return Path{id: intern(text)}
}

// String returns the path's canonical text.
func (p Path) String() string {
	return lookup(p.id)
}

// IsRoot reports whether p is the empty path.
func (p Path) IsRoot() bool {
	return p.id == 0
}

// Contains reports whether other equals p or is a descendant of p. A
// descendant extends p's text with a separator and at least one more
// segment: "A" contains "A|B" but not "AB". Root contains everything.
func (p Path) Contains(other Path) bool {
	if p.id == other.id || p.IsRoot() {
		return true
	}
	prefix, text := lookup(p.id), lookup(other.id)
	if !strings.HasPrefix(text, prefix) {
		return false
	}
	return strings.HasPrefix(text[len(prefix):], Separator)
}

// Segments splits the path at separators. Root has no segments.
func (p Path) Segments() []string {
	if p.IsRoot() {
		return nil
	}
	return strings.Split(lookup(p.id), Separator)
}

// Join returns the path extended by one segment.
func (p Path) Join(segment string) Path {
	if p.IsRoot() {
		return New(segment)
	}
	return New(lookup(p.id) + Separator + segment)
}

// Compare orders paths by their canonical text. Handle order is not used
// because it depends on interning order.
func (p Path) Compare(other Path) int {
	return strings.Compare(lookup(p.id), lookup(other.id))
}
