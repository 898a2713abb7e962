package data

import (
	"github.com/pkg/errors"

	"github.com/born-ml/born-data/internal/tensor"
)

// Frame is a table of named 1-d columns of equal length, accessed by row
// position.
type Frame struct {
	names []string
	cols  []*Array
	n     int
}

// NewFrame creates a frame from column names and 1-d columns.
func NewFrame(names []string, cols ...*Array) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, errors.Wrapf(ErrUnsupported, "%d column names for %d columns", len(names), len(cols))
	}
	seen := make(map[string]bool, len(names))
	n := 0
	for i, c := range cols {
		if seen[names[i]] {
			return nil, errors.Wrapf(ErrUnsupported, "duplicate column %q", names[i])
		}
		seen[names[i]] = true
		if c == nil || c.NDim() != 1 {
			return nil, errors.Wrapf(ErrUnsupported, "column %q must be a 1-d array", names[i])
		}
		if i == 0 {
			n = c.shape[0]
		} else if c.shape[0] != n {
			return nil, errors.Wrapf(ErrInconsistentLength, "column %q has %d rows, expected %d",
				names[i], c.shape[0], n)
		}
	}
	return &Frame{
		names: append([]string(nil), names...),
		cols:  append([]*Array(nil), cols...),
		n:     n,
	}, nil
}

// Kind returns KindFrame.
func (f *Frame) Kind() Kind { return KindFrame }
func (f *Frame) container() {}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.n
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Array, bool) {
	for i, n := range f.names {
		if n == name {
			return f.cols[i], true
		}
	}
	return nil, false
}

// Drop returns a frame without the named column.
func (f *Frame) Drop(name string) (*Frame, error) {
	names := make([]string, 0, len(f.names))
	cols := make([]*Array, 0, len(f.cols))
	for i, n := range f.names {
		if n != name {
			names = append(names, n)
			cols = append(cols, f.cols[i])
		}
	}
	if len(names) == len(f.names) {
		return nil, errors.Wrapf(ErrUnsupported, "no column %q", name)
	}
	out, err := NewFrame(names, cols...)
	if err != nil {
		return nil, err
	}
	out.n = f.n
	return out, nil
}

// Expand returns a mapping from column name to the column reshaped to
// (n, 1), one feature per sample.
func (f *Frame) Expand() Mapping {
	out := make(Mapping, len(f.cols))
	for i, c := range f.cols {
		out[f.names[i]] = &Array{shape: tensor.Shape{f.n, 1}, dtype: c.dtype, data: c.data}
	}
	return out
}

// Values returns the frame as an (n, columns) float64 array.
func (f *Frame) Values() *Array {
	nCols := len(f.cols)
	values := make([]float64, f.n*nCols)
	for j, c := range f.cols {
		for i, v := range c.Float64s() {
			values[i*nCols+j] = v
		}
	}
	a, _ := NewArray(values, f.n, nCols)
	return a
}

// rows selects rows by position. positions must already be in range.
func (f *Frame) rows(positions []int) *Frame {
	cols := make([]*Array, len(f.cols))
	for i, c := range f.cols {
		cols[i] = c.rows(positions)
	}
	return &Frame{names: append([]string(nil), f.names...), cols: cols, n: len(positions)}
}

// row returns row i as a mapping from column name to a 0-d array.
func (f *Frame) row(i int) Mapping {
	out := make(Mapping, len(f.cols))
	for j, c := range f.cols {
		out[f.names[j]] = c.row(i)
	}
	return out
}
