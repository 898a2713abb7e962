package cv

import (
	"fmt"
	"math"
	"strconv"
)

type specKind int

const (
	specDefault specKind = iota
	specNumber
	specSplitter
	specPairs
)

// Spec is a loosely specified split strategy. The zero value selects the
// default DefaultFolds-fold split.
type Spec struct {
	kind     specKind
	number   float64
	splitter Splitter
	folds    []Fold
}

// Number is a numeric spec: an integral value is a fold count, a
// non-integral value a held-out fraction.
func Number(v float64) Spec {
	return Spec{kind: specNumber, number: v}
}

// Folds is a k-fold spec.
func Folds(k int) Spec {
	return Number(float64(k))
}

// Fraction is a held-out fraction spec.
func Fraction(f float64) Spec {
	return Number(f)
}

// Using wraps an already concrete splitter.
func Using(s Splitter) Spec {
	return Spec{kind: specSplitter, splitter: s}
}

// Pairs wraps explicit (train, valid) index pairs.
func Pairs(folds ...Fold) Spec {
	return Spec{kind: specPairs, folds: folds}
}

// IsNumeric reports whether the spec is a Number.
func (s Spec) IsNumeric() bool {
	return s.kind == specNumber
}

// Value returns the numeric value of a Number spec.
func (s Spec) Value() float64 {
	return s.number
}

// IsFraction reports whether the spec is a non-integral Number.
func (s Spec) IsFraction() bool {
	return s.kind == specNumber && s.number != math.Trunc(s.number)
}

// String describes the spec.
func (s Spec) String() string {
	switch s.kind {
	case specNumber:
		return strconv.FormatFloat(s.number, 'g', -1, 64)
	case specSplitter:
		return fmt.Sprintf("%T", s.splitter)
	case specPairs:
		return fmt.Sprintf("%d predefined folds", len(s.folds))
	default:
		return "default"
	}
}

// Check resolves spec into a concrete splitter:
//   - default: DefaultFolds folds
//   - integral number k: k folds, stratified when classifier is set and the
//     target is binary or multiclass
//   - splitter: returned as is
//   - pairs: a PredefinedSplit
//
// Fractions are not resolved here; callers build a shuffle splitter for them.
func Check(spec Spec, target *Target, classifier bool) (Splitter, error) {
	switch spec.kind {
	case specDefault:
		return folds(DefaultFolds, target, classifier), nil
	case specNumber:
		if spec.IsFraction() {
			return nil, fmt.Errorf("%w: expected a fold count, got %v", ErrInvalidSplit, spec.number)
		}
		if spec.number > math.MaxInt32 {
			return nil, fmt.Errorf("%w: fold count %v too large", ErrInvalidSplit, spec.number)
		}
		return folds(int(spec.number), target, classifier), nil
	case specSplitter:
		if spec.splitter == nil {
			return nil, fmt.Errorf("%w: nil splitter", ErrInvalidSplit)
		}
		return spec.splitter, nil
	case specPairs:
		return &PredefinedSplit{Folds: spec.folds}, nil
	default:
		return nil, fmt.Errorf("%w: unknown spec", ErrInvalidSplit)
	}
}

func folds(k int, target *Target, classifier bool) Splitter {
	if classifier && target.Type().IsClassification() {
		return &StratifiedKFold{NSplits: k}
	}
	return &KFold{NSplits: k}
}
