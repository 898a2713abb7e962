package data

import (
	"github.com/pkg/errors"

	"github.com/born-ml/born-data/internal/tensor"
)

// Tensor is a container leaf holding a device-aware tensor. It is indexed
// with the tensor backend's own index operations.
type Tensor struct {
	raw *tensor.RawTensor
}

// NewTensor wraps raw.
func NewTensor(raw *tensor.RawTensor) *Tensor {
	return &Tensor{raw: raw}
}

// Kind returns KindTensor.
func (t *Tensor) Kind() Kind { return KindTensor }
func (t *Tensor) container() {}

// Raw returns the wrapped tensor.
func (t *Tensor) Raw() *tensor.RawTensor {
	return t.raw
}

// Len returns the extent of the first dimension.
func (t *Tensor) Len() (int, error) {
	shape := t.raw.Shape()
	if len(shape) == 0 {
		return 0, errors.Wrap(ErrUnsized, "0-d tensor")
	}
	return shape[0], nil
}

// Array copies the tensor's host data into an array.
func (t *Tensor) Array() *Array {
	return arrayFromRaw(t.raw)
}
