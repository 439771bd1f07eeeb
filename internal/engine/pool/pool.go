// Package pool implements the chunked bounded-concurrency worker pool used
// by the gather and verify passes.
package pool

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of items one worker processes sequentially.
const DefaultChunkSize = 25

// Options configures a pool run.
type Options struct {
	// ChunkSize is the maximum number of items per chunk. Defaults to
	// DefaultChunkSize when zero or negative.
	ChunkSize int

	// MaxConcurrency bounds the number of chunks executing at once.
	// Defaults to the host core count when zero or negative.
	MaxConcurrency int

	// Timeout bounds one worker invocation. Zero means no timeout; a hung
	// external lookup then blocks its slot, which matches the historical
	// behavior this knob exists to override.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = runtime.NumCPU()
	}
	return o
}

// Outcome is the per-item result. A failed item carries its error here and
// never aborts the run.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Run splits items into contiguous chunks, executes up to
// opts.MaxConcurrency chunks concurrently, and returns one outcome per item
// in the original input order regardless of chunk completion order.
//
// Chunks are submitted in index order and each worker processes its chunk
// strictly sequentially into a chunk-local sink; the final merge
// concatenates sinks by chunk index, which restores global input order.
// That determinism is what makes downstream lock artifacts reproducible
// byte-for-byte.
//
// Cancelling ctx stops work early: remaining items are marked with the
// context error, still one outcome per input item.
func Run[T, R any](ctx context.Context, items []T, opts Options, worker func(context.Context, T) (R, error)) []Outcome[R] {
	opts = opts.withDefaults()
	if len(items) == 0 {
		return []Outcome[R]{}
	}

	chunkCount := (len(items) + opts.ChunkSize - 1) / opts.ChunkSize
	sinks := make([][]Outcome[R], chunkCount)

	g := &errgroup.Group{}
	g.SetLimit(opts.MaxConcurrency)

	for ci := range chunkCount {
		start := ci * opts.ChunkSize
		end := min(start+opts.ChunkSize, len(items))
		chunk := items[start:end]

		// Go blocks until a slot frees up, so chunks start in strict
		// index order (FIFO, no work stealing).
		g.Go(func() error {
			sink := make([]Outcome[R], 0, len(chunk))
			for _, item := range chunk {
				sink = append(sink, runOne(ctx, opts, item, worker))
			}
			sinks[ci] = sink
			return nil
		})
	}

	// Workers absorb all item errors; the join is a pure barrier.
	_ = g.Wait()

	merged := make([]Outcome[R], 0, len(items))
	for _, sink := range sinks {
		merged = append(merged, sink...)
	}
	return merged
}

func runOne[T, R any](ctx context.Context, opts Options, item T, worker func(context.Context, T) (R, error)) Outcome[R] {
	if err := ctx.Err(); err != nil {
		return Outcome[R]{Err: err}
	}

	itemCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	value, err := worker(itemCtx, item)
	return Outcome[R]{Value: value, Err: err}
}
