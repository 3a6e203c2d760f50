// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU compute device for knapsack batches.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via Dawn/D3D12)
//   - macOS (via Dawn/Metal)
//   - Linux (via Dawn/Vulkan)
//
// The go-webgpu bindings currently load on Windows only. On other platforms
// New returns ErrUnavailable.
//
// Example:
//
//	import (
//	    "github.com/born-ml/knapsack/backend/gpu"
//	    "github.com/born-ml/knapsack/backend/webgpu"
//	)
//
//	func main() {
//	    dev, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer dev.Release()
//
//	    results, err := gpu.New(dev).Solve(ctx, batch)
//	}
package webgpu

import (
	"github.com/born-ml/knapsack/backend/gpu"
	internalwebgpu "github.com/born-ml/knapsack/internal/backend/webgpu"
)

// Device represents the WebGPU compute device.
type Device = internalwebgpu.Device

// Errors reported while bringing up the device.
var (
	ErrUnavailable = internalwebgpu.ErrUnavailable
	ErrInit        = internalwebgpu.ErrInit
	ErrKernelBuild = internalwebgpu.ErrKernelBuild
)

// Compile-time check that Device implements gpu.Device.
var _ gpu.Device = (*Device)(nil)

// New creates a new WebGPU device.
//
// This function initializes the adapter, device and queue and builds the
// knapsack kernel. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Device, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It is useful for graceful fallback to the emulated device:
//
//	var dev gpu.Device = gpu.NewEmulated()
//	if webgpu.IsAvailable() {
//	    if d, err := webgpu.New(); err == nil {
//	        dev = d
//	    }
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
