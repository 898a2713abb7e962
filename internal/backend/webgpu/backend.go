//go:build windows

// Package webgpu places tensors in GPU memory through WebGPU.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/born-ml/born-data/internal/tensor"
	"github.com/go-webgpu/webgpu/wgpu"
)

// Backend uploads tensors into WebGPU storage buffers.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	mu sync.Mutex

	// Memory tracking
	activeBuffers  int64
	allocatedBytes uint64
}

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (backend *Backend, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			backend = nil
			err = fmt.Errorf("%w: native library not available: %v", ErrUnavailable, r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: failed to request adapter: %v", ErrUnavailable, adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: failed to request device: %v", ErrUnavailable, deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: failed to get queue", ErrUnavailable)
	}

	return &Backend{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
	}, nil
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// Place implements tensor.Placer. The tensor bytes are copied into a storage
// buffer created with MappedAtCreation; the host mirror is kept so the data
// layer can keep indexing on the CPU.
func (b *Backend) Place(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device == nil {
		return nil, fmt.Errorf("%w: backend released", ErrUnavailable)
	}

	data := t.Data()
	// WebGPU requires buffer sizes aligned to 4 bytes and non-zero.
	size := (uint64(len(data)) + 3) &^ 3
	if size == 0 {
		size = 4
	}

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	if buffer == nil {
		return nil, fmt.Errorf("webgpu: failed to allocate %d bytes", size)
	}

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	b.activeBuffers++
	b.allocatedBytes += size

	return t.OnDevice(tensor.WebGPU, &deviceBuffer{backend: b, buffer: buffer, size: size}), nil
}

// ActiveBuffers returns the number of live GPU buffers created by Place.
func (b *Backend) ActiveBuffers() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activeBuffers
}

// Release releases all WebGPU resources.
// Must be called when the backend is no longer needed.
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// deviceBuffer is a GPU storage buffer backing a placed tensor.
type deviceBuffer struct {
	backend *Backend
	buffer  *wgpu.Buffer
	size    uint64
}

func (d *deviceBuffer) Size() uint64 {
	return d.size
}

func (d *deviceBuffer) Release() {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()

	if d.buffer == nil {
		return
	}
	d.buffer.Release()
	d.buffer = nil
	d.backend.activeBuffers--
}

var _ tensor.Placer = (*Backend)(nil)
