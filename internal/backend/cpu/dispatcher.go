// Package cpu implements the CPU parallel dispatcher: a fixed pool of worker
// goroutines solving a batch with the memoized sequential solver.
package cpu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/knapsack/internal/metrics"
	"github.com/born-ml/knapsack/internal/parallel"
	"github.com/born-ml/knapsack/internal/problem"
	"github.com/born-ml/knapsack/internal/solver"
)

// ErrBackendInit is returned when the worker pool cannot be set up.
var ErrBackendInit = errors.New("knapsack/cpu: backend initialization failed")

const name = "cpu"

// CPUBackend solves batches on a striped pool of worker goroutines.
//
//nolint:revive // CPUBackend mirrors the public backend/cpu.Backend alias.
type CPUBackend struct {
	cfg      parallel.Config
	workers  int
	log      *zap.Logger
	recorder *metrics.Recorder
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithConfig replaces the parallel configuration.
func WithConfig(cfg parallel.Config) Option {
	return func(b *CPUBackend) { b.cfg = cfg }
}

// WithWorkers fixes the pool size. Values below 1 fail New.
func WithWorkers(n int) Option {
	return func(b *CPUBackend) {
		b.cfg.Enabled = true
		b.cfg.NumWorkers = n
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(b *CPUBackend) { b.log = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(b *CPUBackend) { b.recorder = r }
}

// New creates a CPU backend. The pool size defaults to runtime.NumCPU.
func New(opts ...Option) (*CPUBackend, error) {
	b := &CPUBackend{
		cfg: parallel.DefaultConfig(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	workers, err := parallel.Workers(b.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendInit, err)
	}
	b.workers = workers
	b.log = b.log.With(zap.String("backend", name))
	return b, nil
}

// Name returns the backend name.
func (b *CPUBackend) Name() string {
	return name
}

// Workers returns the size of the worker pool.
func (b *CPUBackend) Workers() int {
	return b.workers
}

// Solve computes the optimal value of every instance in the batch.
//
// Worker t solves instances t, t+T, t+2T, ... and writes only those result
// slots, so no locking is needed. The batch is only read. On error no results
// are returned.
func (b *CPUBackend) Solve(ctx context.Context, batch problem.Batch) (problem.Results, error) {
	start := time.Now()
	results := make(problem.Results, len(batch))

	b.log.Debug("dispatching batch", zap.Int("problems", len(batch)), zap.Int("workers", b.workers))

	err := parallel.Stripe(ctx, len(batch), b.workers, func(_, i int) error {
		in := &batch[i]
		results[i] = solver.Memoized(in.Capacity, in.Weights, in.Values, in.Len())
		return nil
	})
	if err != nil {
		b.recorder.ObserveError(name, reason(err))
		b.log.Error("batch solve failed", zap.Error(err))
		return nil, fmt.Errorf("knapsack/cpu: solve: %w", err)
	}

	elapsed := time.Since(start)
	b.recorder.ObserveSolve(name, len(batch), elapsed)
	b.log.Info("batch solved",
		zap.Int("problems", len(batch)),
		zap.Int("workers", b.workers),
		zap.Duration("elapsed", elapsed))
	return results, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline"
	default:
		return "internal"
	}
}

var _ problem.Solver = (*CPUBackend)(nil)
