package data

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/born-ml/born-data/internal/tensor"
)

// Source serves (x, y) samples to a batch loop.
type Source interface {
	// Len returns the number of samples.
	Len() int
	// Item returns the samples addressed by idx as placed tensors.
	Item(idx Index) (Container, Container, error)
}

// Dataset pairs an input container with an optional target container and
// serves slices of both as device-placed tensors.
type Dataset struct {
	x, y   Container
	length int
	placer tensor.Placer
	logger *zap.Logger
}

// Option configures a Dataset.
type Option func(*datasetOptions)

type datasetOptions struct {
	length    int
	hasLength bool
	placer    tensor.Placer
	logger    *zap.Logger
}

// WithLength sets the dataset length explicitly. X and y are then not
// checked against each other.
func WithLength(n int) Option {
	return func(o *datasetOptions) {
		o.length, o.hasLength = n, true
	}
}

// WithDevice places every served tensor with p. The default keeps tensors
// in host memory.
func WithDevice(p tensor.Placer) Option {
	return func(o *datasetOptions) {
		o.placer = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *datasetOptions) {
		o.logger = l
	}
}

// NewDataset creates a dataset over x and an optional target y. Unless
// WithLength is given, x and y must resolve to the same length.
func NewDataset(x, y Container, opts ...Option) (*Dataset, error) {
	o := datasetOptions{placer: host, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if x == nil {
		return nil, errors.Wrap(ErrUnsupported, "dataset requires X")
	}

	d := &Dataset{x: x, y: y, placer: o.placer, logger: o.logger}
	if o.placer == nil {
		d.placer = host
	}
	if o.hasLength {
		if o.length < 0 {
			return nil, errors.Wrapf(ErrConfiguration, "negative dataset length %d", o.length)
		}
		d.length = o.length
		return d, nil
	}

	lenX, err := Resolve(x)
	if err != nil {
		return nil, errors.Wrap(err, "resolve X")
	}
	if y != nil {
		lenY, err := Resolve(y)
		if err != nil {
			return nil, errors.Wrap(err, "resolve y")
		}
		if lenX != lenY {
			return nil, errors.Wrapf(ErrLengthMismatch, "X has %d samples, y has %d", lenX, lenY)
		}
	}
	d.length = lenX
	return d, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return d.length
}

// Item returns the samples addressed by idx. A Frame X is served as a
// Mapping of (n, 1) columns. When the dataset has no target, y is a
// PlaceholderTarget matching the selected input length.
func (d *Dataset) Item(idx Index) (Container, Container, error) {
	x := d.x
	if f, ok := x.(*Frame); ok {
		x = f.Expand()
	}

	xi, err := Select(x, idx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "select X")
	}

	var yi Container
	if d.y == nil {
		n, err := Resolve(xi)
		if err != nil {
			return nil, nil, errors.Wrap(err, "placeholder target")
		}
		yi = PlaceholderTarget(n)
		d.logger.Debug("synthesized placeholder target", zap.Int("len", n))
	} else {
		yi, err = Select(d.y, idx)
		if err != nil {
			return nil, nil, errors.Wrap(err, "select y")
		}
	}

	tx, err := ToTensor(xi, d.placer)
	if err != nil {
		return nil, nil, errors.Wrap(err, "X to tensor")
	}
	ty, err := ToTensor(yi, d.placer)
	if err != nil {
		return nil, nil, errors.Wrap(err, "y to tensor")
	}
	return tx, ty, nil
}

// PlaceholderTarget is the target served when a dataset has none: n zeros
// of type float32. Batch consumers cannot represent an absent target.
func PlaceholderTarget(n int) *Array {
	return Vector(make([]float32, n))
}

var _ Source = (*Dataset)(nil)
