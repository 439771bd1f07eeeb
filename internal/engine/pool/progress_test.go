package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnflock/dnflock/internal/engine/pool"
)

// recordingRenderer captures every draw for assertions.
type recordingRenderer struct {
	mu       sync.Mutex
	rendered []int64
	done     []int64
}

func (r *recordingRenderer) Render(completed, _ int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rendered = append(r.rendered, completed)
}

func (r *recordingRenderer) Done(total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = append(r.done, total)
}

func TestTracker_ConcurrentAdvance(t *testing.T) {
	const (
		workers = 4
		perWork = 250
	)
	rec := &recordingRenderer{}
	tr := pool.NewTracker(workers*perWork, rec)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWork {
				tr.Advance(1)
			}
		}()
	}
	wg.Wait()
	tr.Finish()

	completed, total := tr.Snapshot()
	assert.Equal(t, int64(workers*perWork), completed, "no lost updates")
	assert.Equal(t, int64(workers*perWork), total)
	require.Equal(t, []int64{int64(workers * perWork)}, rec.done)
}

func TestTracker_ThrottledRendering(t *testing.T) {
	rec := &recordingRenderer{}
	tr := pool.NewTracker(25, rec)

	for range 25 {
		tr.Advance(1)
	}
	tr.Finish()

	// Initial 0, then only cadence crossings: 10 and 20.
	assert.Equal(t, []int64{0, 10, 20}, rec.rendered)
	assert.Equal(t, []int64{25}, rec.done)
}

func TestTracker_SnapshotMonotonic(t *testing.T) {
	rec := &recordingRenderer{}
	tr := pool.NewTracker(30, rec)

	var last int64
	for range 30 {
		tr.Advance(1)
		completed, _ := tr.Snapshot()
		require.GreaterOrEqual(t, completed, last)
		last = completed
	}
	assert.Equal(t, int64(30), last)
}
