package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatches(t *testing.T) {
	ds, err := NewDataset(arange(10), Vector([]int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, err)

	var windows [][2]int
	var labels []int64
	for b, err := range Batches(ds, 4) {
		require.NoError(t, err)
		windows = append(windows, [2]int{b.Start, b.Stop})
		labels = append(labels, b.Y.(*Tensor).Raw().AsInt64()...)
	}
	assert.Equal(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, windows)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, labels)
}

func TestBatchesEarlyStop(t *testing.T) {
	ds, err := NewDataset(arange(10), nil)
	require.NoError(t, err)

	count := 0
	for range Batches(ds, 3) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestBatchesErrors(t *testing.T) {
	ds, err := NewDataset(arange(4), nil)
	require.NoError(t, err)

	for _, err := range Batches(ds, 0) {
		assert.ErrorIs(t, err, ErrConfiguration)
	}

	var got []error
	for _, err := range Batches(failingSource{n: 5}, 2) {
		got = append(got, err)
	}
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0], ErrOutOfRange)
}

type failingSource struct {
	n int
}

func (s failingSource) Len() int { return s.n }

func (s failingSource) Item(Index) (Container, Container, error) {
	return nil, nil, ErrOutOfRange
}
