package gpu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/knapsack/internal/metrics"
	"github.com/born-ml/knapsack/internal/problem"
)

var (
	// ErrCapacityBound is matched by a *CapacityError.
	ErrCapacityBound = errors.New("knapsack/gpu: capacity exceeds DP row bound")

	// ErrValueOverflow is returned when an instance's total value does not fit in int32.
	ErrValueOverflow = errors.New("knapsack/gpu: instance value overflows int32")

	// ErrResultLength is returned when a device returns the wrong number of results.
	ErrResultLength = errors.New("knapsack/gpu: device returned wrong number of results")
)

// CapacityError reports an instance whose capacity does not fit in the DP row.
type CapacityError struct {
	Index    int
	Capacity int
	Bound    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("knapsack/gpu: instance %d capacity %d exceeds DP row bound %d", e.Index, e.Capacity, e.Bound)
}

// Is makes errors.Is(err, ErrCapacityBound) hold.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityBound
}

// Dispatcher solves batches on a Device.
type Dispatcher struct {
	dev      Device
	log      *zap.Logger
	recorder *metrics.Recorder
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// New returns a dispatcher submitting work to dev. The dispatcher does not own
// dev; callers release it.
func New(dev Device, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		dev: dev,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(zap.String("backend", d.Name()))
	return d
}

// Name returns "gpu/" followed by the device name.
func (d *Dispatcher) Name() string {
	return "gpu/" + d.dev.Name()
}

// Validate rejects batches a launch cannot solve exactly: capacities above
// RowBound and instances whose values could overflow an int32 DP cell.
func Validate(batch problem.Batch) error {
	if _, err := batch.ItemCount(); err != nil {
		return err
	}
	for i := range batch {
		in := &batch[i]
		if in.Capacity > RowBound {
			return &CapacityError{Index: i, Capacity: in.Capacity, Bound: RowBound}
		}
		if in.TotalValue() > math.MaxInt32 {
			return fmt.Errorf("%w: instance %d", ErrValueOverflow, i)
		}
	}
	return nil
}

// NewLaunch validates the batch and marshals it into launch arguments.
func NewLaunch(batch problem.Batch) (*Launch, error) {
	if err := Validate(batch); err != nil {
		return nil, err
	}
	flat, err := problem.Flatten(batch)
	if err != nil {
		return nil, err
	}
	return &Launch{
		Capacities:  flat.Capacities,
		Weights:     flat.Weights,
		Values:      flat.Values,
		ItemCount:   int32(flat.ItemCount),      //nolint:gosec // G115: bounded by Flatten.
		MaxCapacity: int32(batch.MaxCapacity()), //nolint:gosec // G115: bounded by RowBound.
	}, nil
}

// Solve validates and marshals the batch, launches one work-item per instance
// and blocks until the results are back on the host. On error no results are
// returned.
func (d *Dispatcher) Solve(ctx context.Context, batch problem.Batch) (problem.Results, error) {
	if len(batch) == 0 {
		return problem.Results{}, nil
	}
	start := time.Now()

	launch, err := NewLaunch(batch)
	if err != nil {
		d.recorder.ObserveError(d.Name(), errorReason(err))
		return nil, err
	}

	d.log.Debug("launching batch",
		zap.Int("problems", launch.Problems()),
		zap.Int32("items", launch.ItemCount),
		zap.Int32("maxCapacity", launch.MaxCapacity))

	out, err := d.dev.Run(ctx, launch)
	if err != nil {
		d.recorder.ObserveError(d.Name(), errorReason(err))
		d.log.Error("launch failed", zap.Error(err))
		return nil, fmt.Errorf("knapsack/gpu: launch on %s: %w", d.dev.Name(), err)
	}
	if len(out) != len(batch) {
		d.recorder.ObserveError(d.Name(), "result_length")
		return nil, fmt.Errorf("%w: got %d, want %d", ErrResultLength, len(out), len(batch))
	}

	results := make(problem.Results, len(out))
	for i, v := range out {
		results[i] = int(v)
	}

	elapsed := time.Since(start)
	d.recorder.ObserveSolve(d.Name(), len(batch), elapsed)
	d.log.Info("batch solved", zap.Int("problems", len(batch)), zap.Duration("elapsed", elapsed))
	return results, nil
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrCapacityBound):
		return "capacity_bound"
	case errors.Is(err, ErrValueOverflow):
		return "value_overflow"
	case errors.Is(err, problem.ErrRaggedBatch):
		return "ragged_batch"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "device"
	}
}

var _ problem.Solver = (*Dispatcher)(nil)
