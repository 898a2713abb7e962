package data

import (
	"math"

	"github.com/pkg/errors"
)

// Index selects samples along the first axis of a container.
//
// Implementations: At, Slice, Positions, Mask and *Array (boolean or
// integer dtype).
type Index interface {
	index()
}

// At selects a single sample and drops the first dimension.
// Negative values count from the end.
type At int

// End is a Slice bound meaning "through the last sample".
const End = math.MaxInt

// Slice selects samples Start, Start+Step, ... before Stop. Negative bounds
// count from the end, out-of-range bounds are clamped, and a zero Step
// means 1. Step must not be negative.
type Slice struct {
	Start int
	Stop  int
	Step  int
}

// Span returns the slice [start, stop).
func Span(start, stop int) Slice {
	return Slice{Start: start, Stop: stop, Step: 1}
}

// All returns the slice covering every sample.
func All() Slice {
	return Slice{Stop: End, Step: 1}
}

// Positions selects samples by position, in the given order. Negative
// values count from the end.
type Positions []int

// Mask selects the samples whose entry is true. Its length must match the
// container length.
type Mask []bool

func (At) index()        {}
func (Slice) index()     {}
func (Positions) index() {}
func (Mask) index()      {}

// resolve clamps the slice against n samples.
func (s Slice) resolve(n int) (start, stop, step int, err error) {
	step = s.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return 0, 0, 0, errors.Wrapf(ErrIndexType, "negative slice step %d", step)
	}
	start, stop = clampBound(s.Start, n), clampBound(s.Stop, n)
	if stop < start {
		stop = start
	}
	return start, stop, step, nil
}

// positions expands the slice against n samples.
func (s Slice) positions(n int) ([]int, error) {
	start, stop, step, err := s.resolve(n)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		out = append(out, i)
	}
	return out, nil
}

func clampBound(b, n int) int {
	if b < 0 {
		b += n
		if b < 0 {
			b = 0
		}
	}
	if b > n {
		b = n
	}
	return b
}

// normalizeIndex turns masks and array indices into Positions.
func normalizeIndex(idx Index) (Index, error) {
	switch v := idx.(type) {
	case nil:
		return nil, errors.Wrap(ErrIndexType, "nil index")
	case Mask:
		return maskPositions(v), nil
	case *Array:
		if v.dtype.IsInteger() {
			if v.NDim() != 1 {
				return nil, errors.Wrapf(ErrIndexType, "index array must be 1-d, got shape %v", v.shape)
			}
			ints, err := v.Ints()
			if err != nil {
				return nil, err
			}
			return Positions(ints), nil
		}
		if d, ok := v.data.([]bool); ok && v.NDim() == 1 {
			return maskPositions(d), nil
		}
		return nil, errors.Wrapf(ErrIndexType, "got %s array of shape %v", v.dtype, v.shape)
	default:
		return idx, nil
	}
}

// maskLen returns the length of a boolean index, if idx is one.
func maskLen(idx Index) (int, bool) {
	switch v := idx.(type) {
	case Mask:
		return len(v), true
	case *Array:
		if d, ok := v.data.([]bool); ok {
			return len(d), true
		}
	}
	return 0, false
}

func maskPositions(mask []bool) Positions {
	out := Positions{}
	for i, keep := range mask {
		if keep {
			out = append(out, i)
		}
	}
	return out
}

// resolvePositions wraps negative positions and checks bounds against n.
func resolvePositions(p Positions, n int) ([]int, error) {
	out := make([]int, len(p))
	for i, v := range p {
		r, err := resolveAt(v, n)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func resolveAt(i, n int) (int, error) {
	r := i
	if r < 0 {
		r += n
	}
	if r < 0 || r >= n {
		return 0, errors.Wrapf(ErrOutOfRange, "index %d is out of bounds for length %d", i, n)
	}
	return r, nil
}
