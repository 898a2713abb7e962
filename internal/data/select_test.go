package data

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/born-data/internal/tensor"
)

func positionsOf(mask []bool) Positions {
	out := Positions{}
	for i, keep := range mask {
		if keep {
			out = append(out, i)
		}
	}
	return out
}

// testContainers returns containers of four samples, one per shape.
func testContainers(t *testing.T) map[string]Container {
	t.Helper()
	return map[string]Container{
		"array":    Vector([]float32{1, 2, 3, 4}),
		"2-d":      mustArray(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, 4, 2),
		"frame":    mustFrame(t, []string{"a", "b"}, arange(4), Vector([]int64{10, 20, 30, 40})),
		"mapping":  Mapping{"x": arange(4), "y": Mapping{"z": Vector([]bool{true, false, true, false})}},
		"sequence": Sequence{arange(4), Vector([]uint8{9, 8, 7, 6})},
		"opaque":   Sequence{1, 2.5, 3, 4},
	}
}

func TestSelectFullRange(t *testing.T) {
	for name, c := range testContainers(t) {
		t.Run(name, func(t *testing.T) {
			got, err := Select(c, All())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestSelectMaskEqualsPositions(t *testing.T) {
	masks := [][]bool{
		{false, false, false, false},
		{true, true, true, true},
		{true, false, true, false},
		{false, false, false, true},
		{false, true, true, false},
	}
	for name, c := range testContainers(t) {
		for _, mask := range masks {
			t.Run(fmt.Sprintf("%s/%v", name, mask), func(t *testing.T) {
				byMask, err := Select(c, Mask(mask))
				require.NoError(t, err)
				byPositions, err := Select(c, positionsOf(mask))
				require.NoError(t, err)
				assert.Equal(t, byPositions, byMask)

				byArray, err := Select(c, Vector(mask))
				require.NoError(t, err)
				assert.Equal(t, byPositions, byArray)
			})
		}
	}
}

func TestSelectArray(t *testing.T) {
	a := arange(10)

	tests := []struct {
		name string
		idx  Index
		want []float64
	}{
		{"span", Span(2, 5), []float64{2, 3, 4}},
		{"negative start", Slice{Start: -3, Stop: End}, []float64{7, 8, 9}},
		{"negative stop", Slice{Stop: -8}, []float64{0, 1}},
		{"step", Slice{Stop: End, Step: 4}, []float64{0, 4, 8}},
		{"clamped", Span(8, 100), []float64{8, 9}},
		{"inverted", Span(5, 2), []float64{}},
		{"positions", Positions{3, 0, -1}, []float64{3, 0, 9}},
		{"int array", Vector([]int64{1, 1}), []float64{1, 1}},
		{"uint8 array", Vector([]uint8{4}), []float64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(a, tt.idx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.(*Array).Data())
		})
	}
}

func TestSelectArrayAt(t *testing.T) {
	m := mustArray(t, []int32{1, 2, 3, 4, 5, 6}, 3, 2)

	got, err := Select(m, At(1))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, got.(*Array).Shape())
	assert.Equal(t, []int32{3, 4}, got.(*Array).Data())

	got, err = Select(m, At(-1))
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 6}, got.(*Array).Data())
}

func TestSelectErrors(t *testing.T) {
	a := arange(3)

	tests := []struct {
		name string
		c    Container
		idx  Index
		want error
	}{
		{"float index array", a, Vector([]float32{0, 1}), ErrIndexType},
		{"2-d index array", a, mustArray(t, []int64{0, 1}, 1, 2), ErrIndexType},
		{"nil index", a, nil, ErrIndexType},
		{"short mask", a, Mask{true, false}, ErrIndexType},
		{"negative step", a, Slice{Stop: End, Step: -1}, ErrIndexType},
		{"at past end", a, At(3), ErrOutOfRange},
		{"position before start", a, Positions{-4}, ErrOutOfRange},
		{"0-d array", Scalar(1.0), At(0), ErrUnsized},
		{"nil container", nil, At(0), ErrUnsupported},
		{"nil mapping value", Mapping{"a": nil}, At(0), ErrUnsupported},
		{"string element", Sequence{"a", "b"}, At(0), ErrUnsupported},
		{"nested out of range", Mapping{"a": a}, Positions{5}, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(tt.c, tt.idx)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSelectFrame(t *testing.T) {
	f := mustFrame(t, []string{"a", "b"}, Vector([]float64{1, 2, 3}), Vector([]int64{10, 20, 30}))

	row, err := Select(f, At(1))
	require.NoError(t, err)
	assert.Equal(t, Mapping{"a": Scalar(2.0), "b": Scalar(int64(20))}, row)

	rows, err := Select(f, Positions{2, 0})
	require.NoError(t, err)
	sub := rows.(*Frame)
	assert.Equal(t, []string{"a", "b"}, sub.Columns())
	assert.Equal(t, 2, sub.Len())
	b, ok := sub.Column("b")
	require.True(t, ok)
	assert.Equal(t, []int64{30, 10}, b.Data())
}

func TestSelectOpaqueSequence(t *testing.T) {
	s := Sequence{"a", 2, "c"}

	got, err := Select(s, Positions{2, 0})
	require.NoError(t, err)
	assert.Equal(t, Sequence{"c", "a"}, got)

	got, err = Select(s, At(1))
	require.NoError(t, err)
	assert.Equal(t, Scalar(int64(2)), got)

	nested := Sequence{arange(3), "x"}
	got, err = Select(nested, At(0))
	require.NoError(t, err)
	assert.Same(t, nested[0], got)
}

func TestSelectTensor(t *testing.T) {
	raw, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{4, 2}, tensor.CPU)
	require.NoError(t, err)
	x := NewTensor(raw)

	t.Run("positions", func(t *testing.T) {
		got, err := Select(x, Positions{3, -4})
		require.NoError(t, err)
		out := got.(*Tensor).Raw()
		assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
		assert.Equal(t, []float32{7, 8, 1, 2}, out.AsFloat32())
	})

	t.Run("mask", func(t *testing.T) {
		got, err := Select(x, Mask{false, true, false, true})
		require.NoError(t, err)
		assert.Equal(t, []float32{3, 4, 7, 8}, got.(*Tensor).Raw().AsFloat32())
	})

	t.Run("slice", func(t *testing.T) {
		got, err := Select(x, Slice{Start: 1, Stop: End, Step: 2})
		require.NoError(t, err)
		assert.Equal(t, []float32{3, 4, 7, 8}, got.(*Tensor).Raw().AsFloat32())
	})

	t.Run("at", func(t *testing.T) {
		got, err := Select(x, At(2))
		require.NoError(t, err)
		out := got.(*Tensor).Raw()
		assert.Equal(t, tensor.Shape{2}, out.Shape())
		assert.Equal(t, []float32{5, 6}, out.AsFloat32())
	})

	t.Run("matches array selection", func(t *testing.T) {
		positions := Positions{1, 1, 0}
		fromTensor, err := Select(x, positions)
		require.NoError(t, err)
		fromArray, err := Select(x.Array(), positions)
		require.NoError(t, err)
		assert.Equal(t, fromArray, fromTensor.(*Tensor).Array())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := Select(x, Positions{4})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}
