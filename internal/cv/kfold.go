package cv

import (
	"fmt"
	"iter"
)

// DefaultFolds is the fold count used when no split is specified.
const DefaultFolds = 3

// KFold splits samples into NSplits contiguous folds. Each fold is used once
// as validation while the remaining folds form the training set. The first
// n % NSplits folds hold one extra sample.
type KFold struct {
	NSplits int   // Number of folds, at least 2.
	Shuffle bool  // Shuffle samples before folding.
	Seed    int64 // Shuffle seed. -1 = random.
}

// NumSplits returns the number of folds.
func (k *KFold) NumSplits() int {
	return k.NSplits
}

// Split implements Splitter. labels are ignored.
func (k *KFold) Split(n int, _ []int) (iter.Seq2[[]int, []int], error) {
	if k.NSplits < 2 {
		return nil, fmt.Errorf("%w: k-fold needs at least 2 splits, got %d", ErrInvalidSplit, k.NSplits)
	}
	if k.NSplits > n {
		return nil, fmt.Errorf("%w: cannot have %d splits with %d samples", ErrInvalidSplit, k.NSplits, n)
	}

	return func(yield func([]int, []int) bool) {
		indices := arange(n)
		if k.Shuffle {
			rng := newRand(k.Seed)
			rng.Shuffle(n, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
		}

		current := 0
		for _, size := range foldSizes(n, k.NSplits) {
			valid := append([]int(nil), indices[current:current+size]...)
			train := make([]int, 0, n-size)
			train = append(train, indices[:current]...)
			train = append(train, indices[current+size:]...)
			current += size
			if !yield(train, valid) {
				return
			}
		}
	}, nil
}

// StratifiedKFold is KFold applied per class: validation fold i is the union
// of every class's fold i, so each fold keeps the class proportions.
type StratifiedKFold struct {
	NSplits int   // Number of folds, at least 2.
	Shuffle bool  // Shuffle samples within each class before folding.
	Seed    int64 // Shuffle seed. -1 = random.
}

func (k *StratifiedKFold) stratified() {}

// NumSplits returns the number of folds.
func (k *StratifiedKFold) NumSplits() int {
	return k.NSplits
}

// Split implements Splitter. labels are required.
func (k *StratifiedKFold) Split(n int, labels []int) (iter.Seq2[[]int, []int], error) {
	if k.NSplits < 2 {
		return nil, fmt.Errorf("%w: k-fold needs at least 2 splits, got %d", ErrInvalidSplit, k.NSplits)
	}
	if err := checkLabels(n, labels); err != nil {
		return nil, err
	}

	members := classMembers(labels)
	largest := 0
	for _, m := range members {
		largest = max(largest, len(m))
	}
	if k.NSplits > largest {
		return nil, fmt.Errorf("%w: n_splits=%d cannot be greater than the number of members in each class",
			ErrInvalidSplit, k.NSplits)
	}

	return func(yield func([]int, []int) bool) {
		rng := newRand(k.Seed)
		testFold := make([]int, n)
		for _, m := range members {
			order := append([]int(nil), m...)
			if k.Shuffle {
				rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			}
			current := 0
			for fold, size := range foldSizes(len(order), k.NSplits) {
				for _, idx := range order[current : current+size] {
					testFold[idx] = fold
				}
				current += size
			}
		}

		for fold := 0; fold < k.NSplits; fold++ {
			var train, valid []int
			for i, f := range testFold {
				if f == fold {
					valid = append(valid, i)
				} else {
					train = append(train, i)
				}
			}
			if !yield(train, valid) {
				return
			}
		}
	}, nil
}

// foldSizes distributes n samples over k folds, larger folds first.
func foldSizes(n, k int) []int {
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = n / k
		if i < n%k {
			sizes[i]++
		}
	}
	return sizes
}

func checkLabels(n int, labels []int) error {
	if labels == nil {
		return ErrLabelsRequired
	}
	if len(labels) != n {
		return fmt.Errorf("%w: got %d labels for %d samples", ErrInvalidSplit, len(labels), n)
	}
	for i, l := range labels {
		if l < 0 {
			return fmt.Errorf("%w: negative class id %d at position %d", ErrInvalidSplit, l, i)
		}
	}
	return nil
}
