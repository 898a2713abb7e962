// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the device-aware tensor type served by the data
// layer.
//
// # Overview
//
// This package provides:
//   - RawTensor: reference-counted tensor with shape, dtype and device
//   - Placer: materializes host tensors on a compute device
//   - IndexTensor: the integer index representation used for row selection
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/born-data/backend/cpu"
//	    "github.com/born-ml/born-data/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
//	    rows, _ := cpu.New().IndexSelect(x, tensor.IndexTensor([]int{1, 0}))
//	    fmt.Println(rows.AsFloat32()) // [3 4 1 2]
//	}
//
// # Placement
//
// Tensors always keep a host copy of their data. Placing a tensor on an
// accelerator (see backend/webgpu) additionally uploads it into device
// memory; Release frees both once the last reference is gone.
package tensor
