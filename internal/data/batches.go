package data

import (
	"iter"

	"github.com/pkg/errors"
)

// Batch is one window of samples served by a Source.
type Batch struct {
	X, Y        Container
	Start, Stop int
}

// Batches walks src in order in windows of size samples. The last batch
// may be smaller. Iteration stops after the first error.
//
// Example:
//
//	for b, err := range data.Batches(ds, 32) {
//		if err != nil {
//			return err
//		}
//		train(b.X, b.Y)
//	}
func Batches(src Source, size int) iter.Seq2[Batch, error] {
	return func(yield func(Batch, error) bool) {
		if size <= 0 {
			yield(Batch{}, errors.Wrapf(ErrConfiguration, "batch size %d", size))
			return
		}
		n := src.Len()
		for start := 0; start < n; start += size {
			stop := min(start+size, n)
			x, y, err := src.Item(Span(start, stop))
			if err != nil {
				yield(Batch{Start: start, Stop: stop}, errors.Wrapf(err, "batch [%d, %d)", start, stop))
				return
			}
			if !yield(Batch{X: x, Y: y, Start: start, Stop: stop}, nil) {
				return
			}
		}
	}
}
