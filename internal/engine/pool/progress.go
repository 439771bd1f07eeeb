package pool

import (
	"sync/atomic"

	"github.com/dnflock/dnflock/internal/core/ports"
)

// renderCadence is how many completions pass between progress redraws.
// Rendering every increment would make the terminal the contention point.
const renderCadence = 10

// Tracker counts completed items across all workers of one batch
// operation. It is created at the start of the operation and discarded at
// its end, never shared across operations.
//
// The counter is a single atomic; per-worker counters would need a
// reconciliation step at the end and the original's file-locked shared
// counter needed cross-process coordination this design no longer has.
type Tracker struct {
	total     int64
	completed atomic.Int64
	renderer  ports.ProgressRenderer
}

// NewTracker creates a tracker for total items reporting to renderer.
func NewTracker(total int64, renderer ports.ProgressRenderer) *Tracker {
	t := &Tracker{total: total, renderer: renderer}
	t.renderer.Render(0, total)
	return t
}

// Advance adds n completed items. Safe for concurrent use from every
// worker. A redraw happens only when the count crosses a cadence multiple.
func (t *Tracker) Advance(n int64) {
	now := t.completed.Add(n)
	if now/renderCadence != (now-n)/renderCadence {
		t.renderer.Render(now, t.total)
	}
}

// Snapshot returns the current completed count and the total.
func (t *Tracker) Snapshot() (completed, total int64) {
	return t.completed.Load(), t.total
}

// Finish renders the final 100% line. Always called exactly once, after
// the join barrier.
func (t *Tracker) Finish() {
	t.renderer.Done(t.total)
}
