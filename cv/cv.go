// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cv provides cross-validation splitters producing (train, valid)
// index pairs.
//
// Splitters:
//   - KFold / StratifiedKFold: k contiguous (per-class) folds
//   - ShuffleSplit / StratifiedShuffleSplit: random held-out fraction
//   - PredefinedSplit: explicit index pairs
//
// A Spec describes a split loosely and is what data.CVSplit takes:
//
//	cv.Spec{}                        // 3 folds
//	cv.Folds(5)                      // 5 folds
//	cv.Fraction(0.2)                 // hold out 20%
//	cv.Using(&cv.KFold{NSplits: 4})  // a concrete splitter
//	cv.Pairs(cv.Fold{Train: tr, Valid: va})
package cv

import (
	"github.com/born-ml/born-data/internal/cv"
)

// Splitter produces (train, valid) index pairs.
type Splitter = cv.Splitter

// Stratified is implemented by splitters that preserve class proportions.
type Stratified = cv.Stratified

// Fold is one (train, valid) partition of sample positions.
type Fold = cv.Fold

// KFold splits samples into contiguous folds.
type KFold = cv.KFold

// StratifiedKFold is KFold applied per class.
type StratifiedKFold = cv.StratifiedKFold

// ShuffleSplit draws random train/valid partitions.
type ShuffleSplit = cv.ShuffleSplit

// StratifiedShuffleSplit draws random partitions that keep class proportions.
type StratifiedShuffleSplit = cv.StratifiedShuffleSplit

// PredefinedSplit yields explicit folds.
type PredefinedSplit = cv.PredefinedSplit

// Spec is a loosely specified split strategy.
type Spec = cv.Spec

// Target holds the values a split is computed for.
type Target = cv.Target

// TargetType classifies a target.
type TargetType = cv.TargetType

// Target types.
const (
	Unknown     TargetType = cv.Unknown
	Binary      TargetType = cv.Binary
	Multiclass  TargetType = cv.Multiclass
	Continuous  TargetType = cv.Continuous
	MultiOutput TargetType = cv.MultiOutput
)

// Defaults.
const (
	DefaultFolds         = cv.DefaultFolds
	DefaultShuffleSplits = cv.DefaultShuffleSplits
)

// Errors.
var (
	ErrInvalidSplit   = cv.ErrInvalidSplit
	ErrLabelsRequired = cv.ErrLabelsRequired
)

// Number is a numeric spec: integral values are fold counts, others
// held-out fractions.
func Number(v float64) Spec { return cv.Number(v) }

// Folds is a k-fold spec.
func Folds(k int) Spec { return cv.Folds(k) }

// Fraction is a held-out fraction spec.
func Fraction(f float64) Spec { return cv.Fraction(f) }

// Using wraps a concrete splitter.
func Using(s Splitter) Spec { return cv.Using(s) }

// Pairs wraps explicit index pairs.
func Pairs(folds ...Fold) Spec { return cv.Pairs(folds...) }

// Check resolves spec into a concrete splitter.
func Check(spec Spec, target *Target, classifier bool) (Splitter, error) {
	return cv.Check(spec, target, classifier)
}

// IsStratified reports whether s preserves class proportions.
func IsStratified(s Splitter) bool { return cv.IsStratified(s) }

// First returns the first fold yielded by s.
func First(s Splitter, n int, labels []int) (Fold, error) { return cv.First(s, n, labels) }

// EncodeLabels maps values to dense class ids ordered by value.
func EncodeLabels(values []float64) ([]int, []float64) { return cv.EncodeLabels(values) }
