// Package emulated provides a host-side gpu.Device.
//
// It runs the knapsack kernel exactly as a work-item does, with a private DP
// row of gpu.RowBound+1 cells per work-item, and spreads work-items over
// goroutines. It needs no driver, so it backs tests and machines without a GPU.
package emulated

import (
	"context"

	"github.com/born-ml/knapsack/internal/backend/gpu"
	"github.com/born-ml/knapsack/internal/parallel"
)

// Device executes launches on the host.
type Device struct {
	cfg parallel.Config
}

// New returns an emulated device using the default parallel configuration.
func New() *Device {
	return &Device{cfg: parallel.DefaultConfig()}
}

// NewWithConfig returns an emulated device using cfg to spread work-items.
func NewWithConfig(cfg parallel.Config) *Device {
	return &Device{cfg: cfg}
}

// Name returns the device name.
func (d *Device) Name() string {
	return "emulated"
}

// Run executes one work-item per problem and returns their results.
func (d *Device) Run(ctx context.Context, l *gpu.Launch) ([]int32, error) {
	if err := l.Check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]int32, l.Problems())
	parallel.For(l.Problems(), func(idx int) {
		results[idx] = workItem(l, idx)
	}, d.cfg)
	return results, nil
}

// Release is a no-op; the device holds no resources.
func (d *Device) Release() {}

// workItem is the knapsack kernel body for global id idx.
func workItem(l *gpu.Launch, idx int) int32 {
	var row [gpu.RowBound + 1]int32

	maxCap := int(l.MaxCapacity)
	base := idx * int(l.ItemCount)
	for i := 0; i < int(l.ItemCount); i++ {
		w := int(l.Weights[base+i])
		v := l.Values[base+i]
		for c := maxCap; c >= w; c-- {
			row[c] = max(row[c], row[c-w]+v)
		}
	}
	return row[l.Capacities[idx]]
}

var _ gpu.Device = (*Device)(nil)
