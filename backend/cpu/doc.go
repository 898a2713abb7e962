// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-memory backend for tensor indexing and
// placement.
//
// # Overview
//
// This package implements:
//   - IndexSelect: row gather with an Int64/Int32 index tensor
//   - Narrow: strided row slices
//   - Row: single row with the first dimension dropped
//   - Place: CPU placement (a shallow clone for host tensors)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/born-data/backend/cpu"
//	    "github.com/born-ml/born-data/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, tensor.CPU)
//	    evens, _ := backend.Narrow(x, 0, 3, 2) // rows 0 and 2
//	}
package cpu
