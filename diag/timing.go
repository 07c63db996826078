package diag

import (
	"sync"
	"time"
)

// Timings accumulates bind-pass durations. Append-only until read;
// intended for coarse diagnostic display, not telemetry.
type Timings struct {
	mu      sync.Mutex
	samples []time.Duration
}

// NewTimings creates an empty collector.
func NewTimings() *Timings {
	return &Timings{}
}

// Record appends one duration.
func (t *Timings) Record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples = append(t.samples, d)
}

// Total returns the sum of all recorded durations.
func (t *Timings) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sum time.Duration
	for _, d := range t.samples {
		sum += d
	}
	return sum
}

// Count returns the number of recorded durations.
func (t *Timings) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.samples)
}

// defaultTimings is process-wide, like the binding registry: every
// handler bind pass records into it.
var defaultTimings = NewTimings()

// DefaultTimings returns the process-wide collector.
func DefaultTimings() *Timings {
	return defaultTimings
}
