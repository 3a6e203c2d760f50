// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gpu provides the GPU batch dispatcher for knapsack batches.
//
// The dispatcher validates a batch against RowBound, flattens it into
// problem-major arrays and runs one work-item per instance on a Device.
// Devices are provided by backend/webgpu, or by NewEmulated for hosts
// without a GPU.
package gpu

import (
	"github.com/born-ml/knapsack/internal/backend/emulated"
	internalgpu "github.com/born-ml/knapsack/internal/backend/gpu"
	"github.com/born-ml/knapsack/problem"
)

// RowBound is the largest capacity any instance may have.
const RowBound = internalgpu.RowBound

type (
	// Dispatcher solves batches on a Device.
	Dispatcher = internalgpu.Dispatcher
	// Device is a compute backend able to run a Launch.
	Device = internalgpu.Device
	// Launch carries the flat kernel arguments of one batch.
	Launch = internalgpu.Launch
	// Option configures a Dispatcher.
	Option = internalgpu.Option
	// CapacityError reports an instance above RowBound.
	CapacityError = internalgpu.CapacityError
)

// Errors returned before or after a launch.
var (
	ErrCapacityBound = internalgpu.ErrCapacityBound
	ErrValueOverflow = internalgpu.ErrValueOverflow
	ErrResultLength  = internalgpu.ErrResultLength
)

// Options re-exported from the internal dispatcher.
var (
	WithLogger   = internalgpu.WithLogger
	WithRecorder = internalgpu.WithRecorder
)

// Compile-time check that Dispatcher implements problem.Solver.
var _ problem.Solver = (*Dispatcher)(nil)

// New returns a dispatcher running on dev. The caller keeps ownership of dev.
func New(dev Device, opts ...Option) *Dispatcher {
	return internalgpu.New(dev, opts...)
}

// NewEmulated returns a host device that runs work-items on goroutines.
func NewEmulated() Device {
	return emulated.New()
}
