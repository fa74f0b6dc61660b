// Package observ holds light timing instrumentation for the front-end
// pipeline.
package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase is one timed stage of a driver run.
type Phase struct {
	Name  string
	Dur   time.Duration
	Extra string

	start time.Time
}

// Timer collects phase durations. It is not safe for concurrent use;
// the driver keeps one per file and merges afterwards.
type Timer struct {
	phases []Phase
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Start opens a phase and returns its index for Stop.
func (t *Timer) Start(name string) int {
	t.phases = append(t.phases, Phase{Name: name, start: time.Now()})
	return len(t.phases) - 1
}

// Stop closes a phase by index. Extra becomes a short annotation in
// the report, e.g. a token count. Unknown indexes are ignored.
func (t *Timer) Stop(idx int, extra string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.start)
	p.Extra = extra
}

// Add appends an already-measured phase, used when merging per-file
// timers into a run-level one.
func (t *Timer) Add(p Phase) {
	t.phases = append(t.phases, p)
}

// Phases returns the recorded phases in start order.
func (t *Timer) Phases() []Phase { return t.phases }

// Total sums the closed phase durations.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
	}
	return total
}

// Report writes a human-readable timing table.
func (t *Timer) Report(w io.Writer) {
	for _, p := range t.phases {
		fmt.Fprintf(w, "  %-12s %8.2f ms", p.Name, millis(p.Dur))
		if p.Extra != "" {
			fmt.Fprintf(w, "  (%s)", p.Extra)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  %-12s %8.2f ms\n", "total", millis(t.Total()))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
