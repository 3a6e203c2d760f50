// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/knapsack/internal/backend/cpu"
	"github.com/born-ml/knapsack/problem"
)

// Backend represents the CPU dispatcher implementation.
type Backend = internalcpu.CPUBackend

// Option configures a Backend.
type Option = internalcpu.Option

// ErrBackendInit is returned by New when the worker pool cannot be set up.
var ErrBackendInit = internalcpu.ErrBackendInit

// Compile-time check that Backend implements problem.Solver.
var _ problem.Solver = (*Backend)(nil)

// Options re-exported from the internal backend.
var (
	WithConfig   = internalcpu.WithConfig
	WithWorkers  = internalcpu.WithWorkers
	WithLogger   = internalcpu.WithLogger
	WithRecorder = internalcpu.WithRecorder
)

// New creates a new CPU backend. The worker count defaults to runtime.NumCPU.
//
// Example:
//
//	backend, err := cpu.New(cpu.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := backend.Solve(ctx, batch)
func New(opts ...Option) (*Backend, error) {
	return internalcpu.New(opts...)
}
