//go:build !windows

// Package webgpu places tensors in GPU memory through WebGPU.
// The go-webgpu bindings are only wired on Windows; elsewhere New reports
// ErrUnavailable so callers fall back to CPU placement.
package webgpu

import (
	"fmt"
	"runtime"

	"github.com/born-ml/born-data/internal/tensor"
)

// Backend is unavailable on this platform.
type Backend struct{}

// New always fails with ErrUnavailable on this platform.
func New() (*Backend, error) {
	return nil, fmt.Errorf("%w: unsupported platform %s", ErrUnavailable, runtime.GOOS)
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// Place always fails with ErrUnavailable on this platform.
func (b *Backend) Place(*tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, ErrUnavailable
}

// ActiveBuffers always returns 0 on this platform.
func (b *Backend) ActiveBuffers() int64 {
	return 0
}

// Release is a no-op on this platform.
func (b *Backend) Release() {}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}

var _ tensor.Placer = (*Backend)(nil)
