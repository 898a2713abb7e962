package cpu

import (
	"fmt"

	"github.com/born-ml/born-data/internal/tensor"
)

// IndexSelect selects rows (slices along dim 0) of x using an index tensor.
// Similar to torch.index_select(input, 0, index).
//
// The index tensor must be 1-D with dtype int64 or int32. Negative indices
// count from the end. The result is a host tensor with shape
// [len(index), x.Shape()[1:]...].
//
// Example:
//
//	x:     [4, 2] = [[1, 2], [3, 4], [5, 6], [7, 8]]
//	index: [3]    = [2, 0, -1]
//	out:   [3, 2] = [[5, 6], [1, 2], [7, 8]]
func (cpu *CPUBackend) IndexSelect(x, index *tensor.RawTensor) (*tensor.RawTensor, error) {
	if len(index.Shape()) != 1 {
		return nil, fmt.Errorf("index_select: index must be 1-D, got shape %v", index.Shape())
	}
	if len(x.Shape()) == 0 {
		return nil, fmt.Errorf("index_select: cannot index a 0-d tensor")
	}

	var positions []int
	switch index.DType() {
	case tensor.Int64:
		for _, v := range index.AsInt64() {
			positions = append(positions, int(v))
		}
	case tensor.Int32:
		for _, v := range index.AsInt32() {
			positions = append(positions, int(v))
		}
	default:
		return nil, fmt.Errorf("index_select: index tensor must have dtype int64 or int32, got %s", index.DType())
	}

	rows := x.Shape()[0]
	for i, p := range positions {
		if p < 0 {
			p += rows
		}
		if p < 0 || p >= rows {
			return nil, fmt.Errorf("index_select: index %d out of bounds [0, %d) at position %d", positions[i], rows, i)
		}
		positions[i] = p
	}

	result, err := tensor.NewRaw(x.Shape().WithRows(len(positions)), x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("index_select: failed to create result tensor: %w", err)
	}

	rowBytes := x.Shape().RowSize() * x.DType().Size()
	src, dst := x.Data(), result.Data()
	for i, p := range positions {
		copy(dst[i*rowBytes:(i+1)*rowBytes], src[p*rowBytes:(p+1)*rowBytes])
	}
	return result, nil
}

// Narrow copies the rows start, start+step, ... (stopping before stop) of x.
// Bounds must already be resolved against x.Shape()[0]; step must be non-zero.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, start, stop, step int) (*tensor.RawTensor, error) {
	if len(x.Shape()) == 0 {
		return nil, fmt.Errorf("narrow: cannot slice a 0-d tensor")
	}
	if step == 0 {
		return nil, fmt.Errorf("narrow: step must be non-zero")
	}

	var positions []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		positions = append(positions, i)
	}
	return cpu.IndexSelect(x, tensor.IndexTensor(positions))
}

// Row returns x[i] with the first dimension dropped.
func (cpu *CPUBackend) Row(x *tensor.RawTensor, i int) (*tensor.RawTensor, error) {
	sel, err := cpu.IndexSelect(x, tensor.IndexTensor([]int{i}))
	if err != nil {
		return nil, err
	}
	out, err := tensor.NewRaw(x.Shape()[1:], x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	copy(out.Data(), sel.Data())
	return out, nil
}
