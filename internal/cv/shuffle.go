package cv

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
	"sort"
)

// DefaultShuffleSplits is the number of random splits a shuffle splitter
// yields when NSplits is zero.
const DefaultShuffleSplits = 10

// ShuffleSplit draws random train/valid partitions. The validation size is
// ceil(TestSize * n); the remaining samples form the training set.
type ShuffleSplit struct {
	NSplits  int     // Number of re-shuffles. 0 = DefaultShuffleSplits.
	TestSize float64 // Held-out fraction in (0, 1).
	Seed     int64   // Random seed. -1 = random.
}

// NumSplits returns the number of splits.
func (s *ShuffleSplit) NumSplits() int {
	return splitsOrDefault(s.NSplits)
}

// Split implements Splitter. labels are ignored.
func (s *ShuffleSplit) Split(n int, _ []int) (iter.Seq2[[]int, []int], error) {
	nTrain, nTest, err := validateShuffle(n, s.TestSize)
	if err != nil {
		return nil, err
	}

	return func(yield func([]int, []int) bool) {
		rng := newRand(s.Seed)
		for i := 0; i < s.NumSplits(); i++ {
			perm := rng.Perm(n)
			valid := perm[:nTest]
			train := perm[nTest : nTest+nTrain]
			if !yield(train, valid) {
				return
			}
		}
	}, nil
}

// StratifiedShuffleSplit draws random partitions that keep class
// proportions: each class contributes to the validation set in proportion to
// its frequency, rounding by largest remainder.
type StratifiedShuffleSplit struct {
	NSplits  int     // Number of re-shuffles. 0 = DefaultShuffleSplits.
	TestSize float64 // Held-out fraction in (0, 1).
	Seed     int64   // Random seed. -1 = random.
}

func (s *StratifiedShuffleSplit) stratified() {}

// NumSplits returns the number of splits.
func (s *StratifiedShuffleSplit) NumSplits() int {
	return splitsOrDefault(s.NSplits)
}

// Split implements Splitter. labels are required.
func (s *StratifiedShuffleSplit) Split(n int, labels []int) (iter.Seq2[[]int, []int], error) {
	nTrain, nTest, err := validateShuffle(n, s.TestSize)
	if err != nil {
		return nil, err
	}
	if err := checkLabels(n, labels); err != nil {
		return nil, err
	}

	members := classMembers(labels)
	counts := make([]int, len(members))
	for c, m := range members {
		counts[c] = len(m)
		if len(m) < 2 {
			return nil, fmt.Errorf("%w: the least populated class has only %d member; the minimum is 2",
				ErrInvalidSplit, len(m))
		}
	}
	if nTrain < len(members) {
		return nil, fmt.Errorf("%w: train size %d should be greater or equal to the number of classes %d",
			ErrInvalidSplit, nTrain, len(members))
	}
	if nTest < len(members) {
		return nil, fmt.Errorf("%w: test size %d should be greater or equal to the number of classes %d",
			ErrInvalidSplit, nTest, len(members))
	}

	return func(yield func([]int, []int) bool) {
		rng := newRand(s.Seed)
		for i := 0; i < s.NumSplits(); i++ {
			trainCounts := approximateMode(counts, nTrain, rng)
			remaining := make([]int, len(counts))
			for c := range counts {
				remaining[c] = counts[c] - trainCounts[c]
			}
			testCounts := approximateMode(remaining, nTest, rng)

			var train, valid []int
			for c, m := range members {
				perm := rng.Perm(len(m))
				for _, p := range perm[:trainCounts[c]] {
					train = append(train, m[p])
				}
				for _, p := range perm[trainCounts[c] : trainCounts[c]+testCounts[c]] {
					valid = append(valid, m[p])
				}
			}
			rng.Shuffle(len(train), func(a, b int) { train[a], train[b] = train[b], train[a] })
			rng.Shuffle(len(valid), func(a, b int) { valid[a], valid[b] = valid[b], valid[a] })
			if !yield(train, valid) {
				return
			}
		}
	}, nil
}

func splitsOrDefault(n int) int {
	if n <= 0 {
		return DefaultShuffleSplits
	}
	return n
}

// validateShuffle computes train and test sizes for n samples.
func validateShuffle(n int, testSize float64) (nTrain, nTest int, err error) {
	if math.IsNaN(testSize) || testSize <= 0 || testSize >= 1 {
		return 0, 0, fmt.Errorf("%w: test size must be in (0, 1), got %v", ErrInvalidSplit, testSize)
	}
	// The epsilon keeps products such as 0.7*10 = 7.000000000000001 from
	// rounding up to an extra sample.
	nTest = int(math.Ceil(testSize*float64(n) - 1e-9))
	nTrain = n - nTest
	if nTrain <= 0 || nTest <= 0 {
		return 0, 0, fmt.Errorf("%w: with n_samples=%d and test_size=%v the resulting train set would be empty",
			ErrInvalidSplit, n, testSize)
	}
	return nTrain, nTest, nil
}

// approximateMode distributes draws samples over classes proportionally to
// counts. Floors are taken first; the remaining draws go to the classes with
// the largest fractional remainder, ties broken at random.
func approximateMode(counts []int, draws int, rng *rand.Rand) []int {
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]int, len(counts))
	if total == 0 {
		return out
	}

	remainders := make([]float64, len(counts))
	assigned := 0
	for i, c := range counts {
		continuous := float64(c) * float64(draws) / float64(total)
		out[i] = int(math.Floor(continuous))
		remainders[i] = continuous - float64(out[i])
		assigned += out[i]
	}

	need := draws - assigned
	if need <= 0 {
		return out
	}

	// Group classes by remainder, largest first.
	values := make([]float64, 0, len(remainders))
	seen := make(map[float64]bool)
	for _, r := range remainders {
		if !seen[r] {
			seen[r] = true
			values = append(values, r)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	for _, v := range values {
		var inds []int
		for i, r := range remainders {
			if r == v {
				inds = append(inds, i)
			}
		}
		rng.Shuffle(len(inds), func(a, b int) { inds[a], inds[b] = inds[b], inds[a] })
		take := min(len(inds), need)
		for _, i := range inds[:take] {
			out[i]++
		}
		need -= take
		if need == 0 {
			break
		}
	}
	return out
}
