// Package gpu implements the GPU batch dispatcher.
//
// The dispatcher validates a batch against the fixed DP row bound, marshals it
// into flat problem-major int32 arrays and hands one Launch to a Device, which
// runs one work-item per problem and returns one int32 per problem. Devices own
// everything about adapters, queues, shaders and buffers.
package gpu

import (
	"context"
	"errors"
	"fmt"
)

// RowBound is the largest capacity a work-item can handle. Every work-item
// keeps a private DP row of RowBound+1 cells, sized once for the whole launch.
const RowBound = 1024

// WorkgroupSize is the number of work-items per workgroup on devices that group them.
const WorkgroupSize = 64

// ErrMalformedLaunch is returned by devices given inconsistent launch arguments.
var ErrMalformedLaunch = errors.New("knapsack/gpu: malformed launch")

// Launch carries the kernel arguments of one batch launch: three read-only
// input arrays, the item count and the launch-wide capacity. The result
// buffer has one slot per problem.
type Launch struct {
	Capacities  []int32 // One per problem.
	Weights     []int32 // Problem-major: Weights[p*ItemCount+i].
	Values      []int32 // Problem-major: Values[p*ItemCount+i].
	ItemCount   int32
	MaxCapacity int32 // Largest capacity in the launch; never above RowBound.
}

// Problems returns the global work size.
func (l *Launch) Problems() int {
	return len(l.Capacities)
}

// Check verifies that the arrays agree with ItemCount and that MaxCapacity
// covers every capacity without exceeding RowBound. Devices call it before
// touching any memory.
func (l *Launch) Check() error {
	n := l.Problems()
	want := n * int(l.ItemCount)
	if l.ItemCount < 0 || len(l.Weights) != want || len(l.Values) != want {
		return fmt.Errorf("%w: %d problems x %d items, got %d weights and %d values",
			ErrMalformedLaunch, n, l.ItemCount, len(l.Weights), len(l.Values))
	}
	if l.MaxCapacity < 0 || l.MaxCapacity > RowBound {
		return fmt.Errorf("%w: max capacity %d outside [0, %d]", ErrMalformedLaunch, l.MaxCapacity, RowBound)
	}
	for p, c := range l.Capacities {
		if c < 0 || c > l.MaxCapacity {
			return fmt.Errorf("%w: problem %d capacity %d outside [0, %d]", ErrMalformedLaunch, p, c, l.MaxCapacity)
		}
	}
	return nil
}

// Device is a compute backend able to run a knapsack launch.
//
// Run blocks until the device has finished and the results have been copied
// back to host memory. It returns exactly l.Problems() values, index-aligned
// with l.Capacities, or an error and no values.
type Device interface {
	Name() string
	Run(ctx context.Context, l *Launch) ([]int32, error)
	Release()
}
