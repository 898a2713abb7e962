// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/born-data/internal/backend/cpu"
	"github.com/born-ml/born-data/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend indexes tensors in host memory and places them on the CPU.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Placer.
var _ tensor.Placer = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/born-data/backend/cpu"
//	    "github.com/born-ml/born-data/data"
//	)
//
//	func main() {
//	    ds, _ := data.NewDataset(x, y, data.WithDevice(cpu.New()))
//	}
func New() *Backend {
	return internalcpu.New()
}
