// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data connects structured training data to a batch-consuming
// training loop.
//
// # Overview
//
// Training data is a Container: an Array, a Tensor, a Frame of named
// columns, or Mappings and Sequences nesting any of these. This package
// provides:
//   - Select: one indexing operation over every container shape
//   - Resolve / ResolveKeyed: the sample count of a nested container
//   - Dataset: (x, y) pairs served as device-placed tensors
//   - CVSplit: one reproducible train/validation partition from a loose
//     cross-validation spec
//   - Batches: in-order batch iteration over any Source
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/born-data/cv"
//	    "github.com/born-ml/born-data/data"
//	)
//
//	func main() {
//	    x := data.Mapping{"age": ages, "income": incomes}
//	    split, _ := data.NewCVSplit(cv.Fraction(0.2), data.WithSeed(42))
//	    parts, _ := split.Split(x, labels)
//
//	    train, _ := data.NewDataset(parts.XTrain, parts.YTrain)
//	    for b, err := range data.Batches(train, 32) {
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        step(b.X, b.Y)
//	    }
//	}
//
// # Missing targets
//
// A Dataset without a target serves PlaceholderTarget, a float32 zero
// vector matching the batch, because batch consumers cannot represent an
// absent target. CVSplit therefore returns placeholders for irregular data
// (anything that is not nil, an Array or a Frame) even when y is nil.
package data
