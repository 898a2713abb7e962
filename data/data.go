// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"iter"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/born-data/cv"
	"github.com/born-ml/born-data/internal/data"
	"github.com/born-ml/born-data/tensor"
)

// Container is a closed union over *Array, *Tensor, *Frame, Mapping and
// Sequence.
type Container = data.Container

// Kind tags the variants of Container.
type Kind = data.Kind

// Container kinds.
const (
	KindArray    Kind = data.KindArray
	KindTensor   Kind = data.KindTensor
	KindFrame    Kind = data.KindFrame
	KindMapping  Kind = data.KindMapping
	KindSequence Kind = data.KindSequence
)

// Element is the set of Go types an Array can hold.
type Element = data.Element

// Array is a homogeneous n-dimensional host array.
type Array = data.Array

// Tensor is a container leaf holding a device-aware tensor.
type Tensor = data.Tensor

// Frame is a table of named 1-d columns of equal length.
type Frame = data.Frame

// Mapping is a set of named containers.
type Mapping = data.Mapping

// Sequence is an ordered list of containers or scalars.
type Sequence = data.Sequence

// Index selects samples along the first axis.
type Index = data.Index

// At selects a single sample and drops the first dimension.
type At = data.At

// Slice selects a strided range of samples.
type Slice = data.Slice

// Positions selects samples by position.
type Positions = data.Positions

// Mask selects the samples whose entry is true.
type Mask = data.Mask

// End is a Slice bound meaning "through the last sample".
const End = data.End

// LengthTree mirrors a container with its leaf lengths.
type LengthTree = data.LengthTree

// Source serves (x, y) samples to a batch loop.
type Source = data.Source

// Dataset serves slices of an input and an optional target as tensors.
type Dataset = data.Dataset

// Option configures a Dataset.
type Option = data.Option

// Batch is one window of samples served by a Source.
type Batch = data.Batch

// CVSplit performs the internal train/validation split.
type CVSplit = data.CVSplit

// SplitOption configures a CVSplit.
type SplitOption = data.SplitOption

// SplitResult holds one train/validation partition.
type SplitResult = data.SplitResult

// Errors.
var (
	ErrConfiguration      = data.ErrConfiguration
	ErrLengthMismatch     = data.ErrLengthMismatch
	ErrInconsistentLength = data.ErrInconsistentLength
	ErrIndexType          = data.ErrIndexType
	ErrStratification     = data.ErrStratification
	ErrUnsized            = data.ErrUnsized
	ErrOutOfRange         = data.ErrOutOfRange
	ErrUnsupported        = data.ErrUnsupported
)

// NewArray creates an array holding a copy of values; 1-d without a shape.
func NewArray[T Element](values []T, shape ...int) (*Array, error) {
	return data.NewArray(values, shape...)
}

// Vector creates a 1-d array holding a copy of values.
func Vector[T Element](values []T) *Array {
	return data.Vector(values)
}

// Scalar creates a 0-d array.
func Scalar[T Element](v T) *Array {
	return data.Scalar(v)
}

// FromMatrix copies a gonum matrix into a 2-d float64 array.
func FromMatrix(m mat.Matrix) *Array {
	return data.FromMatrix(m)
}

// NewTensor wraps a tensor as a container leaf.
func NewTensor(raw *tensor.RawTensor) *Tensor {
	return data.NewTensor(raw)
}

// NewFrame creates a frame from column names and 1-d columns.
func NewFrame(names []string, cols ...*Array) (*Frame, error) {
	return data.NewFrame(names, cols...)
}

// Span returns the slice [start, stop).
func Span(start, stop int) Slice {
	return data.Span(start, stop)
}

// All returns the slice covering every sample.
func All() Slice {
	return data.All()
}

// Select returns the samples of c addressed by idx.
func Select(c Container, idx Index) (Container, error) {
	return data.Select(c, idx)
}

// Resolve returns the common length of every leaf of c.
func Resolve(c Container) (int, error) {
	return data.Resolve(c)
}

// ResolveKeyed returns the length of every leaf of c, keeping its nesting.
func ResolveKeyed(c Container) (LengthTree, error) {
	return data.ResolveKeyed(c)
}

// ToTensor converts every leaf of c into a tensor placed by p.
func ToTensor(c Container, p tensor.Placer) (Container, error) {
	return data.ToTensor(c, p)
}

// ToNumeric coerces c into a numeric array.
func ToNumeric(c Container) (*Array, error) {
	return data.ToNumeric(c)
}

// NewDataset creates a dataset over x and an optional target y.
func NewDataset(x, y Container, opts ...Option) (*Dataset, error) {
	return data.NewDataset(x, y, opts...)
}

// WithLength sets the dataset length explicitly.
func WithLength(n int) Option {
	return data.WithLength(n)
}

// WithDevice places every served tensor with p.
func WithDevice(p tensor.Placer) Option {
	return data.WithDevice(p)
}

// WithLogger sets the dataset logger.
func WithLogger(l *zap.Logger) Option {
	return data.WithLogger(l)
}

// PlaceholderTarget is the target served when a dataset has none.
func PlaceholderTarget(n int) *Array {
	return data.PlaceholderTarget(n)
}

// Batches walks src in order in windows of size samples.
func Batches(src Source, size int) iter.Seq2[Batch, error] {
	return data.Batches(src, size)
}

// NewCVSplit creates a validation splitter.
//
// Example:
//
//	split, err := data.NewCVSplit(cv.Folds(5), data.WithStratified(true))
func NewCVSplit(spec cv.Spec, opts ...SplitOption) (*CVSplit, error) {
	return data.NewCVSplit(spec, opts...)
}

// WithStratified requests class-proportion preserving splits.
func WithStratified(stratified bool) SplitOption {
	return data.WithStratified(stratified)
}

// WithSeed seeds the shuffle splitters built for fraction specs.
func WithSeed(seed int64) SplitOption {
	return data.WithSeed(seed)
}

// WithSplitLogger sets the split logger.
func WithSplitLogger(l *zap.Logger) SplitOption {
	return data.WithSplitLogger(l)
}
