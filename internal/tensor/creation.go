package tensor

import "fmt"

// FromSlice creates a host tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
func FromSlice[T DType](data []T, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T](), device)
	if err != nil {
		return nil, err
	}
	copy(view[T](raw), data)
	return raw, nil
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return NewRaw(shape, dtype, device)
}

// IndexTensor converts integer positions into the tensor index representation:
// a 1-D Int64 host tensor.
func IndexTensor(positions []int) *RawTensor {
	raw, err := NewRaw(Shape{len(positions)}, Int64, CPU)
	if err != nil {
		panic(fmt.Sprintf("index tensor: %v", err)) // a 1-D non-negative shape is always valid
	}
	idx := raw.AsInt64()
	for i, p := range positions {
		idx[i] = int64(p)
	}
	return raw
}
