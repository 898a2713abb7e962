package cv

import (
	"fmt"
	"iter"
)

// PredefinedSplit yields an explicit list of (train, valid) index pairs.
type PredefinedSplit struct {
	Folds []Fold
}

// NumSplits returns the number of folds.
func (p *PredefinedSplit) NumSplits() int {
	return len(p.Folds)
}

// Split implements Splitter. labels are ignored; every index must fall in [0, n).
func (p *PredefinedSplit) Split(n int, _ []int) (iter.Seq2[[]int, []int], error) {
	if len(p.Folds) == 0 {
		return nil, fmt.Errorf("%w: no predefined folds", ErrInvalidSplit)
	}
	for i, f := range p.Folds {
		for _, idx := range append(append([]int(nil), f.Train...), f.Valid...) {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: fold %d index %d out of range [0, %d)", ErrInvalidSplit, i, idx, n)
			}
		}
	}

	return func(yield func([]int, []int) bool) {
		for _, f := range p.Folds {
			if !yield(append([]int(nil), f.Train...), append([]int(nil), f.Valid...)) {
				return
			}
		}
	}, nil
}
