//go:build windows

// Package webgpu implements a gpu.Device on WebGPU.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/born-ml/knapsack/internal/backend/gpu"
)

// Device runs knapsack launches on a WebGPU adapter.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	// Launches are serialized on the single queue.
	runMu sync.Mutex
}

// New creates a WebGPU device.
// Returns an error wrapping ErrUnavailable or ErrInit naming the step that failed.
func New() (dev *Device, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			dev = nil
			err = fmt.Errorf("%w: native library not available: %v", ErrUnavailable, r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, fmt.Errorf("%w: create instance", ErrUnavailable)
	}

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: request adapter: %w", ErrUnavailable, adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: request device: %w", ErrInit, deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: get queue", ErrInit)
	}

	d := &Device{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
	}

	// Build the kernel up front so that a bad driver fails here, not mid-batch.
	if _, err := d.pipeline(); err != nil {
		d.Release()
		return nil, err
	}
	return d, nil
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// Name returns the device name.
func (d *Device) Name() string {
	return "webgpu"
}

// Release releases all WebGPU resources.
// Must be called when the device is no longer needed.
func (d *Device) Release() {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.pipelines {
		p.Release()
	}
	d.pipelines = nil

	for _, s := range d.shaders {
		s.Release()
	}
	d.shaders = nil

	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}

// pipeline returns the cached knapsack pipeline, compiling it on first use.
func (d *Device) pipeline() (p *wgpu.ComputePipeline, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("%w: %v", ErrKernelBuild, r)
		}
	}()

	shader := d.compileShader(knapsackShaderName, knapsackShader)
	if shader == nil {
		return nil, fmt.Errorf("%w: shader module is nil", ErrKernelBuild)
	}
	p = d.getOrCreatePipeline(knapsackShaderName, shader)
	if p == nil {
		return nil, fmt.Errorf("%w: pipeline is nil", ErrKernelBuild)
	}
	return p, nil
}

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Device's shaders map.
func (d *Device) compileShader(name, code string) *wgpu.ShaderModule {
	d.mu.RLock()
	if shader, exists := d.shaders[name]; exists {
		d.mu.RUnlock()
		return shader
	}
	d.mu.RUnlock()

	shader := d.device.CreateShaderModuleWGSL(code)

	d.mu.Lock()
	d.shaders[name] = shader
	d.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (d *Device) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	d.mu.RLock()
	if pipeline, exists := d.pipelines[name]; exists {
		d.mu.RUnlock()
		return pipeline
	}
	d.mu.RUnlock()

	// Create compute pipeline with auto layout (nil layout)
	pipeline := d.device.CreateComputePipelineSimple(nil, shader, "main")

	d.mu.Lock()
	d.pipelines[name] = pipeline
	d.mu.Unlock()

	return pipeline
}

// Run uploads the launch, dispatches one invocation per problem, waits for the
// queue and reads the results back.
func (d *Device) Run(ctx context.Context, l *gpu.Launch) ([]int32, error) {
	if err := l.Check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.runMu.Lock()
	defer d.runMu.Unlock()
	if d.device == nil {
		return nil, ErrReleased
	}

	pipeline, err := d.pipeline()
	if err != nil {
		return nil, err
	}

	n := l.Problems()
	bufferCapacities := d.createBuffer(int32Bytes(l.Capacities), wgpu.BufferUsageStorage)
	defer bufferCapacities.Release()
	bufferWeights := d.createBuffer(int32Bytes(l.Weights), wgpu.BufferUsageStorage)
	defer bufferWeights.Release()
	bufferValues := d.createBuffer(int32Bytes(l.Values), wgpu.BufferUsageStorage)
	defer bufferValues.Release()

	resultSize := alignedSize(uint64(n) * 4) //nolint:gosec // G115: n is a slice length.
	bufferResults := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc,
		Size:  resultSize,
	})
	defer bufferResults.Release()

	params := make([]byte, 16) // 16-byte aligned
	//nolint:gosec // G115: launch arguments are validated non-negative by Check.
	binary.LittleEndian.PutUint32(params[0:4], uint32(l.ItemCount))
	//nolint:gosec // G115: launch arguments are validated non-negative by Check.
	binary.LittleEndian.PutUint32(params[4:8], uint32(l.MaxCapacity))
	//nolint:gosec // G115: n is a slice length.
	binary.LittleEndian.PutUint32(params[8:12], uint32(n))
	bufferParams := d.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := d.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferCapacities, 0, bufferSize(l.Capacities)),
		wgpu.BufferBindingEntry(1, bufferWeights, 0, bufferSize(l.Weights)),
		wgpu.BufferBindingEntry(2, bufferValues, 0, bufferSize(l.Values)),
		wgpu.BufferBindingEntry(3, bufferResults, 0, resultSize),
		wgpu.BufferBindingEntry(4, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := d.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	//nolint:gosec // G115: workgroup count is non-negative.
	workgroups := uint32((n + gpu.WorkgroupSize - 1) / gpu.WorkgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	d.queue.Submit(cmdBuffer)

	raw, err := d.readBuffer(bufferResults, resultSize)
	if err != nil {
		return nil, err
	}

	results := make([]int32, n)
	for i := range results {
		results[i] = int32(binary.LittleEndian.Uint32(raw[i*4:])) //nolint:gosec // G115: reinterpreting i32 bits.
	}
	return results, nil
}

// createBuffer creates a GPU buffer with initial data.
// Storage buffers may not be empty, so short data is zero-padded to 4 bytes.
func (d *Device) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := alignedSize(uint64(len(data)))

	buffer := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer creates a uniform buffer with proper alignment.
// Uniform buffers require 16-byte alignment for struct fields.
func (d *Device) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	padded := (size + 15) &^ 15 // Round up to 16-byte boundary

	buffer := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             padded,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, padded)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), padded)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
// MapAsync blocks until the queued work, including the dispatch, has completed.
func (d *Device) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := d.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	d.queue.Submit(cmdBuffer)

	err := stagingBuffer.MapAsync(d.device, wgpu.MapModeRead, 0, size)
	if err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)

	stagingBuffer.Unmap()

	return result, nil
}

var _ gpu.Device = (*Device)(nil)
