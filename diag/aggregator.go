package diag

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/SofianeGUEZZAR/d365-event-decorators/internal/logging"
)

// Aggregator groups identical warning messages until flushed.
// Emission order follows first insertion; a message seen n > 1 times
// flushes as one line carrying an "nx " prefix.
type Aggregator struct {
	mu     sync.Mutex
	logger zerolog.Logger
	order  []string
	counts map[string]int
}

// NewAggregator creates an aggregator emitting through logger.
func NewAggregator(logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
		counts: make(map[string]int),
	}
}

// New creates an aggregator emitting through the package-wide logger.
func New() *Aggregator {
	return NewAggregator(logging.Component("diag"))
}

// Warnf queues one formatted warning. Identical messages coalesce into
// a single entry with an incremented count.
func (a *Aggregator) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, seen := a.counts[msg]; !seen {
		a.order = append(a.order, msg)
	}
	a.counts[msg]++
}

// Len returns the number of distinct queued messages.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.order)
}

// Flush emits every queued message once, in first-insertion order,
// then clears the queue. It returns the emitted lines.
func (a *Aggregator) Flush() []string {
	a.mu.Lock()
	order := a.order
	counts := a.counts
	a.order = nil
	a.counts = make(map[string]int)
	a.mu.Unlock()

	if len(order) == 0 {
		return nil
	}

	lines := make([]string, 0, len(order))
	for _, msg := range order {
		line := msg
		if n := counts[msg]; n > 1 {
			line = fmt.Sprintf("%dx %s", n, msg)
		}
		lines = append(lines, line)
		a.logger.Warn().Msg(line)
	}
	return lines
}
