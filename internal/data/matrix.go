package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/born-data/internal/tensor"
)

// FromMatrix copies a gonum matrix into an (rows, cols) float64 array.
func FromMatrix(m mat.Matrix) *Array {
	r, c := m.Dims()
	values := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			values = append(values, m.At(i, j))
		}
	}
	return &Array{shape: tensor.Shape{r, c}, dtype: tensor.Float64, data: values}
}

// Matrix copies a 1-d or 2-d array into a dense gonum matrix. A 1-d array
// becomes a column vector.
func (a *Array) Matrix() (*mat.Dense, error) {
	var r, c int
	switch len(a.shape) {
	case 1:
		r, c = a.shape[0], 1
	case 2:
		r, c = a.shape[0], a.shape[1]
	default:
		return nil, errors.Wrapf(ErrUnsupported, "matrix from %d-d array", len(a.shape))
	}
	if r == 0 || c == 0 {
		return nil, errors.Wrapf(ErrUnsupported, "matrix from empty array of shape %v", a.shape)
	}
	return mat.NewDense(r, c, a.Float64s()), nil
}
