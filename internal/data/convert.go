package data

import (
	"github.com/pkg/errors"

	"github.com/born-ml/born-data/internal/tensor"
)

// ToTensor converts every leaf of c into a tensor placed by p, keeping the
// nesting of mappings and sequences. A Frame becomes a Mapping of column
// tensors and an opaque numeric Sequence a 1-d tensor. A nil placer keeps
// tensors in host memory.
func ToTensor(c Container, p tensor.Placer) (Container, error) {
	if p == nil {
		p = host
	}
	switch v := c.(type) {
	case *Array:
		raw, err := v.raw()
		if err != nil {
			return nil, err
		}
		return place(raw, p)
	case *Tensor:
		return place(v.raw, p)
	case *Frame:
		cols := make(Mapping, len(v.cols))
		for i, col := range v.cols {
			cols[v.names[i]] = col
		}
		return ToTensor(cols, p)
	case Mapping:
		out := make(Mapping, len(v))
		for _, k := range v.Keys() {
			t, err := ToTensor(v[k], p)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			out[k] = t
		}
		return out, nil
	case Sequence:
		if !v.Nested() {
			a, err := sequenceArray(v)
			if err != nil {
				return nil, err
			}
			return ToTensor(a, p)
		}
		out := make(Sequence, len(v))
		for i, e := range v {
			t, err := ToTensor(e.(Container), p)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = t
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrUnsupported, "cannot convert %T to a tensor", c)
	}
}

func place(raw *tensor.RawTensor, p tensor.Placer) (Container, error) {
	placed, err := p.Place(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "place on %s", p.Device())
	}
	return NewTensor(placed), nil
}

// ToNumeric coerces c into a numeric array: arrays as is, tensors copied to
// host, single-column frames as their column, wider frames as an (n, k)
// float64 array, opaque numeric sequences as a 1-d array.
func ToNumeric(c Container) (*Array, error) {
	switch v := c.(type) {
	case *Array:
		return v, nil
	case *Tensor:
		return v.Array(), nil
	case *Frame:
		if len(v.cols) == 1 {
			return v.cols[0], nil
		}
		return v.Values(), nil
	case Sequence:
		if !v.Nested() {
			return sequenceArray(v)
		}
	}
	return nil, errors.Wrapf(ErrUnsupported, "cannot coerce %T to a numeric array", c)
}

// sequenceArray converts an opaque sequence of scalars into a 1-d array:
// bool when every element is a bool, int64 when every element is an
// integer, float64 otherwise.
func sequenceArray(s Sequence) (*Array, error) {
	if len(s) == 0 {
		return Vector([]float32{}), nil
	}
	allBool, allInt := true, true
	for i, e := range s {
		switch e.(type) {
		case bool:
			allInt = false
		case int, int32, int64, uint8:
			allBool = false
		case float32, float64:
			allBool, allInt = false, false
		default:
			return nil, errors.Wrapf(ErrUnsupported, "sequence element %d has type %T", i, e)
		}
	}
	switch {
	case allBool:
		return Vector(convert(s, func(e any) bool { return e.(bool) })), nil
	case allInt:
		return Vector(convert(s, func(e any) int64 { return toInt64(e) })), nil
	default:
		values := make([]float64, len(s))
		for i, e := range s {
			v, ok := toFloat64(e)
			if !ok {
				return nil, errors.Wrapf(ErrUnsupported, "sequence element %d has type %T", i, e)
			}
			values[i] = v
		}
		return Vector(values), nil
	}
}

// scalarArray wraps a numeric scalar into a 0-d array.
func scalarArray(e any) (*Array, bool) {
	switch v := e.(type) {
	case float32:
		return Scalar(v), true
	case float64:
		return Scalar(v), true
	case int:
		return Scalar(int64(v)), true
	case int32:
		return Scalar(v), true
	case int64:
		return Scalar(v), true
	case uint8:
		return Scalar(v), true
	case bool:
		return Scalar(v), true
	default:
		return nil, false
	}
}

func toInt64(e any) int64 {
	switch v := e.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint8:
		return int64(v)
	default:
		return 0
	}
}

func toFloat64(e any) (float64, bool) {
	switch v := e.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int, int32, int64, uint8:
		return float64(toInt64(v)), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
