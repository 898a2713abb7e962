package cv

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPartition checks that train and valid are disjoint and cover [0, n).
func assertPartition(t *testing.T, n int, train, valid []int) {
	t.Helper()
	all := append(append([]int(nil), train...), valid...)
	sort.Ints(all)
	assert.Equal(t, arange(n), all, "train and valid must cover every sample exactly once")
}

func collect(t *testing.T, s Splitter, n int, labels []int) []Fold {
	t.Helper()
	folds, err := s.Split(n, labels)
	require.NoError(t, err)
	var out []Fold
	for train, valid := range folds {
		out = append(out, Fold{Train: train, Valid: valid})
	}
	return out
}

func TestKFold(t *testing.T) {
	folds := collect(t, &KFold{NSplits: 3}, 10, nil)
	require.Len(t, folds, 3)

	assert.Equal(t, []int{0, 1, 2, 3}, folds[0].Valid)
	assert.Equal(t, []int{4, 5, 6}, folds[1].Valid)
	assert.Equal(t, []int{7, 8, 9}, folds[2].Valid)
	for _, f := range folds {
		assertPartition(t, 10, f.Train, f.Valid)
	}
}

func TestKFoldShuffleIsSeeded(t *testing.T) {
	a := collect(t, &KFold{NSplits: 2, Shuffle: true, Seed: 7}, 10, nil)
	b := collect(t, &KFold{NSplits: 2, Shuffle: true, Seed: 7}, 10, nil)
	assert.Equal(t, a, b)
	assertPartition(t, 10, a[0].Train, a[0].Valid)
}

func TestKFoldErrors(t *testing.T) {
	_, err := (&KFold{NSplits: 1}).Split(10, nil)
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = (&KFold{NSplits: 11}).Split(10, nil)
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestStratifiedKFold(t *testing.T) {
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1}
	folds := collect(t, &StratifiedKFold{NSplits: 2}, 8, labels)
	require.Len(t, folds, 2)

	for _, f := range folds {
		assertPartition(t, 8, f.Train, f.Valid)
		counts := map[int]int{}
		for _, v := range f.Valid {
			counts[labels[v]]++
		}
		assert.Equal(t, map[int]int{0: 2, 1: 2}, counts)
	}
	assert.Equal(t, []int{0, 1, 4, 5}, folds[0].Valid)
}

func TestStratifiedKFoldErrors(t *testing.T) {
	_, err := (&StratifiedKFold{NSplits: 2}).Split(4, nil)
	assert.ErrorIs(t, err, ErrLabelsRequired)

	_, err = (&StratifiedKFold{NSplits: 3}).Split(4, []int{0, 0, 1, 1})
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = (&StratifiedKFold{NSplits: 2}).Split(4, []int{0, 1})
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestShuffleSplit(t *testing.T) {
	s := &ShuffleSplit{TestSize: 0.3, Seed: 0}
	assert.Equal(t, DefaultShuffleSplits, s.NumSplits())

	folds := collect(t, s, 10, nil)
	require.Len(t, folds, DefaultShuffleSplits)
	for _, f := range folds {
		assert.Len(t, f.Valid, 3)
		assertPartition(t, 10, f.Train, f.Valid)
	}

	again := collect(t, &ShuffleSplit{TestSize: 0.3, Seed: 0}, 10, nil)
	assert.Equal(t, folds, again, "identical seeds must give identical splits")
}

func TestShuffleSplitSizes(t *testing.T) {
	tests := []struct {
		n        int
		testSize float64
		want     int
	}{
		{10, 0.2, 2},
		{10, 0.7, 7},
		{7, 0.5, 4},
		{100, 0.25, 25},
	}
	for _, tt := range tests {
		first, err := First(&ShuffleSplit{TestSize: tt.testSize, Seed: 1}, tt.n, nil)
		require.NoError(t, err)
		assert.Len(t, first.Valid, tt.want, "n=%d test_size=%v", tt.n, tt.testSize)
	}
}

func TestShuffleSplitErrors(t *testing.T) {
	for _, size := range []float64{0, 1, 1.5, -0.2} {
		_, err := (&ShuffleSplit{TestSize: size}).Split(10, nil)
		assert.ErrorIs(t, err, ErrInvalidSplit, "test size %v", size)
	}
	_, err := (&ShuffleSplit{TestSize: 0.9}).Split(1, nil)
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestStratifiedShuffleSplit(t *testing.T) {
	labels := []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}
	s := &StratifiedShuffleSplit{NSplits: 5, TestSize: 0.2, Seed: 42}

	for _, f := range collect(t, s, 10, labels) {
		require.Len(t, f.Valid, 2)
		assert.NotEqual(t, labels[f.Valid[0]], labels[f.Valid[1]], "one validation sample per class")
		assertPartition(t, 10, f.Train, f.Valid)
	}
}

func TestStratifiedShuffleSplitErrors(t *testing.T) {
	s := &StratifiedShuffleSplit{TestSize: 0.5}

	_, err := s.Split(4, []int{0, 0, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidSplit, "class with a single member")

	_, err = (&StratifiedShuffleSplit{TestSize: 0.1}).Split(10, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrInvalidSplit, "test set smaller than class count")

	_, err = s.Split(4, nil)
	assert.ErrorIs(t, err, ErrLabelsRequired)
}

func TestApproximateMode(t *testing.T) {
	rng := newRand(0)
	assert.Equal(t, []int{4, 4}, approximateMode([]int{5, 5}, 8, rng))
	assert.Equal(t, []int{1, 1}, approximateMode([]int{1, 1}, 2, rng))

	got := approximateMode([]int{3, 3, 3}, 4, rng)
	sum := 0
	for _, v := range got {
		sum += v
		assert.GreaterOrEqual(t, v, 1)
	}
	assert.Equal(t, 4, sum)
}

func TestPredefinedSplit(t *testing.T) {
	p := &PredefinedSplit{Folds: []Fold{{Train: []int{0, 1}, Valid: []int{2}}, {Train: []int{2}, Valid: []int{0, 1}}}}
	assert.Equal(t, 2, p.NumSplits())

	first, err := First(p, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, Fold{Train: []int{0, 1}, Valid: []int{2}}, first)

	_, err = p.Split(2, nil)
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = (&PredefinedSplit{}).Split(2, nil)
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestIsStratified(t *testing.T) {
	assert.True(t, IsStratified(&StratifiedKFold{}))
	assert.True(t, IsStratified(&StratifiedShuffleSplit{}))
	assert.False(t, IsStratified(&KFold{}))
	assert.False(t, IsStratified(&ShuffleSplit{}))
	assert.False(t, IsStratified(&PredefinedSplit{}))
}
