// pattern: Functional Core

package unit

import (
	"fmt"
	"strings"
	"time"
)

// Report accumulates outcome counts for one case, suite or whole run.
// Reports sum: a suite's report is the merge of its case reports, a run's
// the merge of its suite reports. Merging is associative and commutative
// over the counters.
type Report struct {
	Name     string
	Started  time.Time
	Finished time.Time

	counts [Invalid + 1]int
}

// NewReport starts a report clocked at now.
func NewReport(name string) Report {
	return Report{Name: name, Started: time.Now()}
}

// Add counts one outcome.
func (r *Report) Add(res Result) {
	r.counts[res]++
}

// Merge folds other's counters into r and widens the time span to cover
// both.
func (r *Report) Merge(other Report) {
	for i := range r.counts {
		r.counts[i] += other.counts[i]
	}
	if r.Started.IsZero() || (!other.Started.IsZero() && other.Started.Before(r.Started)) {
		r.Started = other.Started
	}
	if other.Finished.After(r.Finished) {
		r.Finished = other.Finished
	}
}

// Count returns how many outcomes of the given kind were recorded.
func (r *Report) Count(res Result) int {
	return r.counts[res]
}

// Total returns the number of recorded outcomes.
func (r *Report) Total() int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}

// Result derives the overall verdict: the most severe outcome with a
// nonzero count. An empty report is a Success.
func (r *Report) Result() Result {
	for res := Invalid; res > Success; res-- {
		if r.counts[res] > 0 {
			return res
		}
	}
	return Success
}

// Finish stamps the end of the report's span.
func (r *Report) Finish() {
	r.Finished = time.Now()
}

// Duration returns the covered time span, zero when never finished.
func (r *Report) Duration() time.Duration {
	if r.Finished.IsZero() || r.Started.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

// String renders the report human-readably, one line per field.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name: %s\n", r.Name)
	for res := Success; res <= Invalid; res++ {
		fmt.Fprintf(&sb, "%s: %d\n", res, r.counts[res])
	}
	fmt.Fprintf(&sb, "result: %s", r.Result())
	return sb.String()
}
