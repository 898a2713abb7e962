package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/born-data/internal/tensor"
)

func mustArray[T Element](t *testing.T, values []T, shape ...int) *Array {
	t.Helper()
	a, err := NewArray(values, shape...)
	require.NoError(t, err)
	return a
}

func mustFrame(t *testing.T, names []string, cols ...*Array) *Frame {
	t.Helper()
	f, err := NewFrame(names, cols...)
	require.NoError(t, err)
	return f
}

// arange returns the float64 vector [0, 1, ..., n-1].
func arange(n int) *Array {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return Vector(values)
}

func TestResolve(t *testing.T) {
	raw, err := tensor.FromSlice(make([]float32, 10), tensor.Shape{5, 2}, tensor.CPU)
	require.NoError(t, err)

	tests := []struct {
		name string
		c    Container
		want int
	}{
		{"array", Vector([]float32{1, 2, 3}), 3},
		{"2-d array", mustArray(t, []int64{1, 2, 3, 4, 5, 6}, 3, 2), 3},
		{"tensor", NewTensor(raw), 5},
		{"frame", mustFrame(t, []string{"a", "b"}, arange(4), arange(4)), 4},
		{"mapping", Mapping{"a": arange(3), "b": Mapping{"c": Vector([]bool{true, false, true})}}, 3},
		{"sequence of containers", Sequence{arange(3), Vector([]int32{1, 2, 3})}, 3},
		{"opaque sequence", Sequence{1.0, 2.0}, 2},
		{"mixed sequence is opaque", Sequence{arange(5), 3.0}, 2},
		{"empty sequence", Sequence{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		c    Container
		want error
	}{
		{"leaves disagree", Mapping{"a": arange(3), "b": arange(2)}, ErrInconsistentLength},
		{"nested leaves disagree", Sequence{arange(3), Mapping{"x": arange(4)}}, ErrInconsistentLength},
		{"empty mapping", Mapping{}, ErrInconsistentLength},
		{"0-d array", Scalar(1.5), ErrUnsized},
		{"0-d leaf in mapping", Mapping{"a": Scalar(int64(1))}, ErrUnsized},
		{"nil value", Mapping{"a": nil}, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.c)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolveKeyed(t *testing.T) {
	c := Mapping{
		"a": arange(2),
		"b": Sequence{arange(2), Vector([]int64{7, 8})},
	}
	tree, err := ResolveKeyed(c)
	require.NoError(t, err)

	want := LengthTree{Keys: map[string]LengthTree{
		"a": {Leaf: 2},
		"b": {Items: []LengthTree{{Leaf: 2}, {Leaf: 2}}},
	}}
	assert.Equal(t, want, tree)
	assert.Equal(t, []int{2, 2, 2}, tree.Flatten())
	assert.False(t, tree.IsLeaf())
	assert.True(t, tree.Keys["a"].IsLeaf())
}

func TestSequenceNested(t *testing.T) {
	assert.True(t, Sequence{arange(1), Mapping{}}.Nested())
	assert.False(t, Sequence{arange(1), "x"}.Nested())
	assert.False(t, Sequence{}.Nested())
	assert.False(t, Sequence{nil}.Nested())
}
