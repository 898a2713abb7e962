// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides GPU placement for served tensors via WebGPU.
//
// Placement uploads the tensor bytes into a GPU storage buffer and keeps the
// host copy, so indexing stays on the CPU while the training loop reads the
// device buffer. It is supported on Windows; elsewhere New returns
// ErrUnavailable.
//
// Example:
//
//	import (
//	    "github.com/born-ml/born-data/backend/cpu"
//	    "github.com/born-ml/born-data/backend/webgpu"
//	    "github.com/born-ml/born-data/data"
//	    "github.com/born-ml/born-data/tensor"
//	)
//
//	func main() {
//	    var placer tensor.Placer = cpu.New()
//	    if webgpu.IsAvailable() {
//	        gpu, err := webgpu.New()
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        defer gpu.Release()
//	        placer = gpu
//	    }
//	    ds, _ := data.NewDataset(x, y, data.WithDevice(placer))
//	}
package webgpu

import (
	internalwebgpu "github.com/born-ml/born-data/internal/backend/webgpu"
	"github.com/born-ml/born-data/tensor"
)

// Backend places tensors in WebGPU storage buffers.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Placer.
var _ tensor.Placer = (*Backend)(nil)

// ErrUnavailable is returned when no WebGPU device can be used.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend
// ready for tensor placement. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It is useful for graceful fallback to the CPU backend when no GPU is
// present.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
