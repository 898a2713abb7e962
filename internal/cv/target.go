package cv

import (
	"math"
	"sort"
)

// TargetType classifies a label vector.
type TargetType int

// Target types.
const (
	Unknown     TargetType = iota // Not numeric, or empty.
	Binary                        // At most two distinct integral values.
	Multiclass                    // More than two distinct integral values.
	Continuous                    // At least one non-integral value.
	MultiOutput                   // More than one column per sample.
)

// String returns the name of the target type.
func (t TargetType) String() string {
	switch t {
	case Binary:
		return "binary"
	case Multiclass:
		return "multiclass"
	case Continuous:
		return "continuous"
	case MultiOutput:
		return "multioutput"
	default:
		return "unknown"
	}
}

// IsClassification reports whether a target of this type can be stratified.
func (t TargetType) IsClassification() bool {
	return t == Binary || t == Multiclass
}

// Target is a numeric label column, row-major with Cols values per sample.
type Target struct {
	Values []float64
	Cols   int
}

// Type classifies the target. A nil target is Unknown.
func (t *Target) Type() TargetType {
	if t == nil || len(t.Values) == 0 {
		return Unknown
	}
	if t.Cols > 1 {
		return MultiOutput
	}
	distinct := make(map[float64]struct{})
	for _, v := range t.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return Continuous
		}
		distinct[v] = struct{}{}
	}
	if len(distinct) <= 2 {
		return Binary
	}
	return Multiclass
}

// EncodeLabels maps each value to a dense class id. Class ids follow the
// sorted order of the distinct values, which are returned as classes.
func EncodeLabels(values []float64) (labels []int, classes []float64) {
	ids := make(map[float64]int)
	for _, v := range values {
		if _, ok := ids[v]; !ok {
			ids[v] = 0
			classes = append(classes, v)
		}
	}
	sort.Float64s(classes)
	for i, c := range classes {
		ids[c] = i
	}

	labels = make([]int, len(values))
	for i, v := range values {
		labels[i] = ids[v]
	}
	return labels, classes
}
