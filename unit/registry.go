// pattern: Imperative Shell

package unit

import (
	"fmt"
	"sync"
)

// suites is the process-wide list of self-registered suites. Suites built
// as package-level values land here from init functions, so any linked-in
// test file contributes its suites with no wiring in main. Nothing is ever
// removed; iteration order is registration order, which for init-driven
// registration follows package initialization order and is stable for a
// given binary.
var suites = struct {
	mu    sync.Mutex
	list  []*Suite
	names map[string]bool
}{names: make(map[string]bool)}

// Register adds s to the process-wide suite list and returns it, so a
// package-level declaration can build, populate and register in one
// expression. Registering two suites with the same name panics.
func Register(s *Suite) *Suite {
	suites.mu.Lock()
	defer suites.mu.Unlock()

	name := s.Name().String()
	if suites.names[name] {
		panic(fmt.Errorf("unit: duplicate suite %q", name))
	}
	suites.names[name] = true
	suites.list = append(suites.list, s)
	return s
}

// RegisteredSuites returns a snapshot of the process-wide suite list.
func RegisteredSuites() []*Suite {
	suites.mu.Lock()
	defer suites.mu.Unlock()
	out := make([]*Suite, len(suites.list))
	copy(out, suites.list)
	return out
}
