package data

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/born-ml/born-data/internal/cv"
)

// SplitResult holds one train/validation partition. The target fields are
// nil when the split ran on regular data without a target.
type SplitResult struct {
	XTrain, XValid Container
	YTrain, YValid Container
}

// CVSplit performs the internal train/validation split of a training run.
// It takes a loose cross-validation spec the way grid searches do, but only
// ever uses the first fold it yields.
//
// Spec forms:
//   - cv.Spec{}: 3 folds
//   - cv.Folds(k): k folds, (stratified) k-fold
//   - cv.Fraction(f): held-out fraction f of the samples
//   - cv.Using(s): the splitter s
//   - cv.Pairs(folds...): explicit train/valid index pairs
//
// Regular data (nil, *Array, *Frame) is indexed directly. Anything else is
// wrapped in a Dataset and split through its tensor-serving path; there a
// missing target comes back as a PlaceholderTarget rather than nil.
type CVSplit struct {
	spec       cv.Spec
	stratified bool
	seed       int64
	logger     *zap.Logger
}

// SplitOption configures a CVSplit.
type SplitOption func(*CVSplit)

// WithStratified requests class-proportion preserving splits. It only works
// for binary or multiclass targets.
func WithStratified(stratified bool) SplitOption {
	return func(c *CVSplit) {
		c.stratified = stratified
	}
}

// WithSeed seeds the shuffle splitters built for fraction specs.
// -1 means random.
func WithSeed(seed int64) SplitOption {
	return func(c *CVSplit) {
		c.seed = seed
	}
}

// WithSplitLogger sets the logger. The default discards everything.
func WithSplitLogger(l *zap.Logger) SplitOption {
	return func(c *CVSplit) {
		c.logger = l
	}
}

// NewCVSplit creates a validation splitter. Numeric specs must be positive.
func NewCVSplit(spec cv.Spec, opts ...SplitOption) (*CVSplit, error) {
	c := &CVSplit{spec: spec, seed: -1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if spec.IsNumeric() && spec.Value() <= 0 {
		return nil, errors.Wrapf(ErrConfiguration,
			"numbers less than or equal to 0 are not allowed for cv, got %v", spec)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

// Stratified reports whether the split preserves class proportions.
func (c *CVSplit) Stratified() bool {
	return c.stratified
}

// String describes the split configuration.
func (c *CVSplit) String() string {
	return fmt.Sprintf("CVSplit(cv=%v, stratified=%t)", c.spec, c.stratified)
}

// Resolve turns the spec into a concrete splitter for target y. When the
// split is stratified y is coerced to a numeric target first; a target that
// cannot be coerced is ignored, which then fails the stratification check.
func (c *CVSplit) Resolve(y Container) (cv.Splitter, error) {
	var target *cv.Target
	if c.stratified && y != nil {
		t, err := targetOf(y)
		if err != nil {
			c.logger.Debug("target not coercible to numeric", zap.Error(err))
		} else {
			target = t
		}
	}

	var s cv.Splitter
	if c.spec.IsFraction() {
		f := c.spec.Value()
		if f <= 0 || f >= 1 {
			return nil, errors.Wrapf(ErrConfiguration, "held-out fraction must be in (0, 1), got %v", f)
		}
		if c.stratified {
			s = &cv.StratifiedShuffleSplit{TestSize: f, Seed: c.seed}
		} else {
			s = &cv.ShuffleSplit{TestSize: f, Seed: c.seed}
		}
	} else {
		var err error
		s, err = cv.Check(c.spec, target, c.stratified)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}

	if c.stratified && !cv.IsStratified(s) {
		return nil, errors.Wrapf(ErrStratification, "resolved %T for target type %s", s, target.Type())
	}
	c.logger.Debug("resolved splitter", zap.String("splitter", fmt.Sprintf("%T", s)), zap.Stringer("spec", c.spec))
	return s, nil
}

// Split partitions X and the optional target y into the first fold of the
// resolved splitter.
func (c *CVSplit) Split(x, y Container) (SplitResult, error) {
	if x == nil {
		return SplitResult{}, errors.Wrap(ErrUnsupported, "split requires X")
	}
	s, err := c.Resolve(y)
	if err != nil {
		return SplitResult{}, err
	}
	if isRegular(x) && isRegular(y) {
		c.logger.Debug("splitting regular data")
		return c.splitRegular(s, x, y)
	}
	c.logger.Debug("splitting through dataset")
	return c.splitDataset(s, x, y)
}

func (c *CVSplit) splitRegular(s cv.Splitter, x, y Container) (SplitResult, error) {
	n, err := Resolve(x)
	if err != nil {
		return SplitResult{}, errors.Wrap(err, "resolve X")
	}
	if y != nil {
		ny, err := Resolve(y)
		if err != nil {
			return SplitResult{}, errors.Wrap(err, "resolve y")
		}
		if ny != n {
			return SplitResult{}, errors.Wrapf(ErrLengthMismatch, "X has %d samples, y has %d", n, ny)
		}
	}

	var labels []int
	if c.stratified {
		if labels, err = labelsOf(y); err != nil {
			return SplitResult{}, err
		}
	}
	fold, err := first(s, n, labels)
	if err != nil {
		return SplitResult{}, err
	}

	var res SplitResult
	if res.XTrain, err = Select(x, Positions(fold.Train)); err != nil {
		return SplitResult{}, errors.Wrap(err, "take X train")
	}
	if res.XValid, err = Select(x, Positions(fold.Valid)); err != nil {
		return SplitResult{}, errors.Wrap(err, "take X valid")
	}
	if y == nil {
		return res, nil
	}
	if res.YTrain, err = Select(y, Positions(fold.Train)); err != nil {
		return SplitResult{}, errors.Wrap(err, "take y train")
	}
	if res.YValid, err = Select(y, Positions(fold.Valid)); err != nil {
		return SplitResult{}, errors.Wrap(err, "take y valid")
	}
	return res, nil
}

func (c *CVSplit) splitDataset(s cv.Splitter, x, y Container) (SplitResult, error) {
	ds, err := NewDataset(x, y, WithLogger(c.logger))
	if err != nil {
		return SplitResult{}, err
	}

	var labels []int
	if cv.IsStratified(s) {
		if labels, err = labelsOf(y); err != nil {
			return SplitResult{}, err
		}
	}
	fold, err := first(s, ds.Len(), labels)
	if err != nil {
		return SplitResult{}, err
	}

	var res SplitResult
	if res.XTrain, res.YTrain, err = ds.Item(Positions(fold.Train)); err != nil {
		return SplitResult{}, errors.Wrap(err, "train partition")
	}
	if res.XValid, res.YValid, err = ds.Item(Positions(fold.Valid)); err != nil {
		return SplitResult{}, errors.Wrap(err, "valid partition")
	}
	return res, nil
}

// first returns the first fold of s, mapping splitter failures onto the
// data layer errors.
func first(s cv.Splitter, n int, labels []int) (cv.Fold, error) {
	fold, err := cv.First(s, n, labels)
	switch {
	case err == nil:
		return fold, nil
	case errors.Is(err, cv.ErrLabelsRequired):
		return cv.Fold{}, fmt.Errorf("%w: %w", ErrStratification, err)
	default:
		return cv.Fold{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
}

// isRegular reports whether c can be indexed directly by position.
func isRegular(c Container) bool {
	switch c.(type) {
	case nil, *Array, *Frame:
		return true
	default:
		return false
	}
}

// targetOf coerces y into a splitter target.
func targetOf(y Container) (*cv.Target, error) {
	a, err := ToNumeric(y)
	if err != nil {
		return nil, err
	}
	switch a.NDim() {
	case 0:
		return nil, errors.Wrap(ErrUnsized, "0-d target")
	case 1:
		return &cv.Target{Values: a.Float64s(), Cols: 1}, nil
	default:
		return &cv.Target{Values: a.Float64s(), Cols: a.shape.RowSize()}, nil
	}
}

// labelsOf encodes a single-output target as dense class ids.
func labelsOf(y Container) ([]int, error) {
	if y == nil {
		return nil, errors.Wrap(ErrStratification, "no target")
	}
	t, err := targetOf(y)
	if err != nil {
		return nil, errors.Wrapf(ErrStratification, "coerce target: %v", err)
	}
	if t.Cols != 1 {
		return nil, errors.Wrapf(ErrStratification, "target has %d outputs", t.Cols)
	}
	labels, _ := cv.EncodeLabels(t.Values)
	return labels, nil
}
