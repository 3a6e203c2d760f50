// Package parallel provides the worker partitioning used by the knapsack dispatchers.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrNoWorkers is returned when a configuration resolves to an empty worker pool.
var ErrNoWorkers = errors.New("knapsack/parallel: worker pool must have at least one worker")

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// Workers returns the effective worker count for cfg.
// A disabled config runs on a single worker.
func Workers(cfg Config) (int, error) {
	if !cfg.Enabled {
		return 1, nil
	}
	if cfg.NumWorkers < 1 {
		return 0, ErrNoWorkers
	}
	return cfg.NumWorkers, nil
}

// Stripe runs f(t, i) for every i in [0, n) on a fixed pool of workers using a
// striped partition: worker t handles t, t+workers, t+2*workers, ... in order.
//
// Each index is visited exactly once. The pool is forked once and joined before
// Stripe returns. The first error stops the remaining workers at their next
// index and is returned; ctx cancellation is treated the same way.
func Stripe(ctx context.Context, n, workers int, f func(worker, i int) error) error {
	if workers < 1 {
		return ErrNoWorkers
	}
	workers = min(workers, max(n, 1))

	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < workers; t++ {
		g.Go(func() error {
			for i := t; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := f(t, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
