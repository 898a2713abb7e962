package data

import (
	"github.com/pkg/errors"

	"github.com/born-ml/born-data/internal/backend/cpu"
	"github.com/born-ml/born-data/internal/tensor"
)

// host performs tensor indexing in host memory.
var host = cpu.New()

// Select returns the samples of c addressed by idx, dispatching on the
// container kind:
//   - Mapping: every value is indexed, keys are kept
//   - Sequence of containers: every element is indexed
//   - opaque Sequence: idx is applied to the sequence itself
//   - Tensor: tensor index operations (IndexSelect, Narrow, Row)
//   - Frame: positional row selection; At yields a Mapping row
//   - Array: row selection; Positions go through the generic row gather
//
// Boolean masks and integer arrays are normalized to Positions first.
// A mask must be as long as c.
func Select(c Container, idx Index) (Container, error) {
	if !isIndexableContainer(c) {
		return nil, errors.Wrapf(ErrUnsupported, "cannot index %T", c)
	}
	if m, ok := maskLen(idx); ok {
		if n, err := Resolve(c); err == nil && n != m {
			return nil, errors.Wrapf(ErrIndexType, "boolean index of length %d does not match length %d", m, n)
		}
	}
	norm, err := normalizeIndex(idx)
	if err != nil {
		return nil, err
	}
	return selectNormalized(c, norm)
}

func selectNormalized(c Container, idx Index) (Container, error) {
	switch v := c.(type) {
	case Mapping:
		out := make(Mapping, len(v))
		for _, k := range v.Keys() {
			if !isIndexableContainer(v[k]) {
				return nil, errors.Wrapf(ErrUnsupported, "key %q holds %T", k, v[k])
			}
			s, err := selectNormalized(v[k], idx)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			out[k] = s
		}
		return out, nil
	case Sequence:
		if !v.Nested() {
			return selectOpaque(v, idx)
		}
		out := make(Sequence, len(v))
		for i, e := range v {
			s, err := selectNormalized(e.(Container), idx)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = s
		}
		return out, nil
	case *Tensor:
		return selectTensor(v, idx)
	case *Frame:
		return selectFrame(v, idx)
	case *Array:
		return selectArray(v, idx)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "cannot index %T", c)
	}
}

func selectArray(a *Array, idx Index) (Container, error) {
	n, err := a.Len()
	if err != nil {
		return nil, err
	}
	switch v := idx.(type) {
	case At:
		i, err := resolveAt(int(v), n)
		if err != nil {
			return nil, err
		}
		return a.row(i), nil
	case Slice:
		positions, err := v.positions(n)
		if err != nil {
			return nil, err
		}
		return a.rows(positions), nil
	case Positions:
		positions, err := resolvePositions(v, n)
		if err != nil {
			return nil, err
		}
		return a.rows(positions), nil
	default:
		return nil, errors.Wrapf(ErrIndexType, "%T", idx)
	}
}

func selectFrame(f *Frame, idx Index) (Container, error) {
	switch v := idx.(type) {
	case At:
		i, err := resolveAt(int(v), f.n)
		if err != nil {
			return nil, err
		}
		return f.row(i), nil
	case Slice:
		positions, err := v.positions(f.n)
		if err != nil {
			return nil, err
		}
		return f.rows(positions), nil
	case Positions:
		positions, err := resolvePositions(v, f.n)
		if err != nil {
			return nil, err
		}
		return f.rows(positions), nil
	default:
		return nil, errors.Wrapf(ErrIndexType, "%T", idx)
	}
}

func selectTensor(t *Tensor, idx Index) (Container, error) {
	n, err := t.Len()
	if err != nil {
		return nil, err
	}
	var out *tensor.RawTensor
	switch v := idx.(type) {
	case At:
		i, err := resolveAt(int(v), n)
		if err != nil {
			return nil, err
		}
		out, err = host.Row(t.raw, i)
		if err != nil {
			return nil, errors.Wrap(err, "select tensor row")
		}
	case Slice:
		start, stop, step, err := v.resolve(n)
		if err != nil {
			return nil, err
		}
		out, err = host.Narrow(t.raw, start, stop, step)
		if err != nil {
			return nil, errors.Wrap(err, "select tensor slice")
		}
	case Positions:
		positions, err := resolvePositions(v, n)
		if err != nil {
			return nil, err
		}
		out, err = host.IndexSelect(t.raw, tensor.IndexTensor(positions))
		if err != nil {
			return nil, errors.Wrap(err, "select tensor positions")
		}
	default:
		return nil, errors.Wrapf(ErrIndexType, "%T", idx)
	}
	return NewTensor(out), nil
}

// selectOpaque applies idx to a sequence treated as a single leaf.
func selectOpaque(s Sequence, idx Index) (Container, error) {
	switch v := idx.(type) {
	case At:
		i, err := resolveAt(int(v), len(s))
		if err != nil {
			return nil, err
		}
		return elementContainer(s[i])
	case Slice:
		positions, err := v.positions(len(s))
		if err != nil {
			return nil, err
		}
		return Sequence(takeRows([]any(s), 1, positions).([]any)), nil
	case Positions:
		positions, err := resolvePositions(v, len(s))
		if err != nil {
			return nil, err
		}
		return Sequence(takeRows([]any(s), 1, positions).([]any)), nil
	default:
		return nil, errors.Wrapf(ErrIndexType, "%T", idx)
	}
}

// elementContainer returns a single sequence element as a container:
// containers as is, numeric scalars as 0-d arrays.
func elementContainer(e any) (Container, error) {
	if isIndexableContainer(e) {
		return e.(Container), nil
	}
	if a, ok := scalarArray(e); ok {
		return a, nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "sequence element of type %T", e)
}
