package webgpu

import "errors"

var (
	// ErrUnavailable is returned when no WebGPU adapter or native library can be found.
	ErrUnavailable = errors.New("knapsack/webgpu: backend unavailable")

	// ErrInit is returned when a bootstrap step fails after an adapter was found.
	ErrInit = errors.New("knapsack/webgpu: backend initialization failed")

	// ErrKernelBuild is returned when the knapsack shader or pipeline cannot be built.
	ErrKernelBuild = errors.New("knapsack/webgpu: kernel build failed")

	// ErrReleased is returned by Run after Release.
	ErrReleased = errors.New("knapsack/webgpu: device released")
)
