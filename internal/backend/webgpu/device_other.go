//go:build !windows

// Package webgpu implements a gpu.Device on WebGPU.
// The go-webgpu bindings currently load on Windows only; elsewhere New reports
// ErrUnavailable so that callers can fall back to another device.
package webgpu

import (
	"context"

	"github.com/born-ml/knapsack/internal/backend/gpu"
)

// Device is the WebGPU device. It cannot be constructed on this platform.
type Device struct{}

// New reports that WebGPU is unavailable on this platform.
func New() (*Device, error) {
	return nil, ErrUnavailable
}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}

// Name returns the device name.
func (d *Device) Name() string {
	return "webgpu"
}

// Run always fails on this platform.
func (d *Device) Run(_ context.Context, _ *gpu.Launch) ([]int32, error) {
	return nil, ErrUnavailable
}

// Release is a no-op on this platform.
func (d *Device) Release() {}

var _ gpu.Device = (*Device)(nil)
