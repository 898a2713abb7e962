// Package cv implements cross-validation splitters: strategies producing
// (train, valid) index pairs from a sample count and optional class labels.
//
// Splitters:
//   - KFold / StratifiedKFold: k contiguous (per-class) folds
//   - ShuffleSplit / StratifiedShuffleSplit: random held-out fraction
//   - PredefinedSplit: an explicit list of index pairs
//
// Check turns a loose Spec (default, fold count, splitter, index pairs) into
// a concrete Splitter, the way the data layer's validation split needs it.
package cv

import (
	"errors"
	"iter"
	"math/rand"
)

// Common errors.
var (
	ErrInvalidSplit   = errors.New("invalid split")
	ErrLabelsRequired = errors.New("stratified split requires class labels")
)

// Fold is one (train, valid) partition of sample positions.
type Fold struct {
	Train []int
	Valid []int
}

// Splitter produces (train, valid) index pairs.
type Splitter interface {
	// Split validates the request and returns an iterator over the folds of
	// n samples. labels holds one dense class id per sample; it may be nil
	// for splitters that do not stratify.
	Split(n int, labels []int) (iter.Seq2[[]int, []int], error)
	// NumSplits returns the number of folds Split yields.
	NumSplits() int
}

// Stratified is implemented by splitters that preserve class proportions.
type Stratified interface {
	Splitter
	stratified()
}

// IsStratified reports whether s preserves class proportions.
func IsStratified(s Splitter) bool {
	_, ok := s.(Stratified)
	return ok
}

// First returns the first fold yielded by s.
func First(s Splitter, n int, labels []int) (Fold, error) {
	folds, err := s.Split(n, labels)
	if err != nil {
		return Fold{}, err
	}
	for train, valid := range folds {
		return Fold{Train: train, Valid: valid}, nil
	}
	return Fold{}, ErrInvalidSplit
}

// newRand returns a deterministic source for seed >= 0 and a randomly seeded
// one otherwise.
func newRand(seed int64) *rand.Rand {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	}
	return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // User requested random seed
}

// arange returns [0, 1, ..., n-1].
func arange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// classMembers groups sample positions by class id, preserving order.
func classMembers(labels []int) [][]int {
	nClasses := 0
	for _, l := range labels {
		if l+1 > nClasses {
			nClasses = l + 1
		}
	}
	members := make([][]int, nClasses)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}
	return members
}
