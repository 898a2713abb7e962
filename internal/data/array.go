package data

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/born-data/internal/tensor"
)

// Element is the set of Go types an Array can hold.
type Element interface {
	float32 | float64 | int32 | int64 | uint8 | bool
}

// Array is a homogeneous n-dimensional host array stored in row-major order.
// Its length is the extent of the first dimension; a 0-d array is unsized.
type Array struct {
	shape tensor.Shape
	dtype tensor.DataType
	data  any // []float32 | []float64 | []int32 | []int64 | []uint8 | []bool
}

// NewArray creates an array holding a copy of values. Without a shape the
// array is 1-d.
//
// Example:
//
//	a, err := data.NewArray([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
func NewArray[T Element](values []T, shape ...int) (*Array, error) {
	s := tensor.Shape(shape)
	if shape == nil {
		s = tensor.Shape{len(values)}
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}
	if s.NumElements() != len(values) {
		return nil, errors.Wrapf(ErrUnsupported, "shape %v requires %d elements, got %d",
			s, s.NumElements(), len(values))
	}
	out := make([]T, len(values))
	copy(out, values)
	return &Array{shape: s.Clone(), dtype: tensor.DataTypeOf[T](), data: out}, nil
}

// Vector creates a 1-d array holding a copy of values.
func Vector[T Element](values []T) *Array {
	out := make([]T, len(values))
	copy(out, values)
	return &Array{shape: tensor.Shape{len(values)}, dtype: tensor.DataTypeOf[T](), data: out}
}

// Scalar creates a 0-d array.
func Scalar[T Element](v T) *Array {
	return &Array{shape: tensor.Shape{}, dtype: tensor.DataTypeOf[T](), data: []T{v}}
}

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }
func (a *Array) container() {}
func (a *Array) index()     {}

// Shape returns a copy of the array shape.
func (a *Array) Shape() tensor.Shape {
	return a.shape.Clone()
}

// DType returns the element type.
func (a *Array) DType() tensor.DataType {
	return a.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Len returns the extent of the first dimension.
func (a *Array) Len() (int, error) {
	if len(a.shape) == 0 {
		return 0, errors.Wrap(ErrUnsized, "0-d array")
	}
	return a.shape[0], nil
}

// Data returns the backing slice, one of []float32, []float64, []int32,
// []int64, []uint8 or []bool. It is not copied.
func (a *Array) Data() any {
	return a.data
}

// Float64s returns the elements converted to float64. Booleans become 0 or 1.
func (a *Array) Float64s() []float64 {
	switch d := a.data.(type) {
	case []float32:
		return convert(d, func(v float32) float64 { return float64(v) })
	case []float64:
		return append([]float64(nil), d...)
	case []int32:
		return convert(d, func(v int32) float64 { return float64(v) })
	case []int64:
		return convert(d, func(v int64) float64 { return float64(v) })
	case []uint8:
		return convert(d, func(v uint8) float64 { return float64(v) })
	case []bool:
		return convert(d, func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	default:
		panic(fmt.Sprintf("array: unexpected storage %T", a.data))
	}
}

// Ints returns the elements of an integer array as ints.
func (a *Array) Ints() ([]int, error) {
	switch d := a.data.(type) {
	case []int32:
		return convert(d, func(v int32) int { return int(v) }), nil
	case []int64:
		return convert(d, func(v int64) int { return int(v) }), nil
	case []uint8:
		return convert(d, func(v uint8) int { return int(v) }), nil
	default:
		return nil, errors.Wrapf(ErrIndexType, "got %s", a.dtype)
	}
}

// Reshape returns an array sharing a's data with a new shape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	s := tensor.Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}
	if s.NumElements() != a.shape.NumElements() {
		return nil, errors.Wrapf(ErrUnsupported, "cannot reshape %v into %v", a.shape, s)
	}
	return &Array{shape: s.Clone(), dtype: a.dtype, data: a.data}, nil
}

// String returns a short description of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array(%v, %s)", a.shape, a.dtype)
}

// rows gathers the given rows. positions must already be in range.
func (a *Array) rows(positions []int) *Array {
	rowSize := a.shape.RowSize()
	return &Array{
		shape: a.shape.WithRows(len(positions)),
		dtype: a.dtype,
		data:  takeRows(a.data, rowSize, positions),
	}
}

// row returns row i with the first dimension dropped. i must be in range.
func (a *Array) row(i int) *Array {
	rowSize := a.shape.RowSize()
	return &Array{
		shape: a.shape[1:].Clone(),
		dtype: a.dtype,
		data:  takeRows(a.data, rowSize, []int{i}),
	}
}

// raw copies the array into a host tensor.
func (a *Array) raw() (*tensor.RawTensor, error) {
	switch d := a.data.(type) {
	case []float32:
		return tensor.FromSlice(d, a.shape, tensor.CPU)
	case []float64:
		return tensor.FromSlice(d, a.shape, tensor.CPU)
	case []int32:
		return tensor.FromSlice(d, a.shape, tensor.CPU)
	case []int64:
		return tensor.FromSlice(d, a.shape, tensor.CPU)
	case []uint8:
		return tensor.FromSlice(d, a.shape, tensor.CPU)
	case []bool:
		return tensor.FromSlice(d, a.shape, tensor.CPU)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "array storage %T", a.data)
	}
}

// arrayFromRaw copies the host data of t into an array.
func arrayFromRaw(t *tensor.RawTensor) *Array {
	var d any
	switch t.DType() {
	case tensor.Float32:
		d = append([]float32{}, t.AsFloat32()...)
	case tensor.Float64:
		d = append([]float64{}, t.AsFloat64()...)
	case tensor.Int32:
		d = append([]int32{}, t.AsInt32()...)
	case tensor.Int64:
		d = append([]int64{}, t.AsInt64()...)
	case tensor.Uint8:
		d = append([]uint8{}, t.AsUint8()...)
	case tensor.Bool:
		d = append([]bool{}, t.AsBool()...)
	default:
		panic(fmt.Sprintf("array: unsupported dtype %s", t.DType()))
	}
	return &Array{shape: t.Shape().Clone(), dtype: t.DType(), data: d}
}

// takeRows is the generic fallback indexer: it gathers rows of rowSize
// elements from any typed slice.
func takeRows(data any, rowSize int, positions []int) any {
	switch d := data.(type) {
	case []float32:
		return gather(d, rowSize, positions)
	case []float64:
		return gather(d, rowSize, positions)
	case []int32:
		return gather(d, rowSize, positions)
	case []int64:
		return gather(d, rowSize, positions)
	case []uint8:
		return gather(d, rowSize, positions)
	case []bool:
		return gather(d, rowSize, positions)
	case []any:
		return gather(d, rowSize, positions)
	default:
		panic(fmt.Sprintf("take: unsupported storage %T", data))
	}
}

func gather[T any](src []T, rowSize int, positions []int) []T {
	out := make([]T, 0, len(positions)*rowSize)
	for _, p := range positions {
		out = append(out, src[p*rowSize:(p+1)*rowSize]...)
	}
	return out
}

func convert[S, D any](src []S, f func(S) D) []D {
	out := make([]D, len(src))
	for i, v := range src {
		out[i] = f(v)
	}
	return out
}
