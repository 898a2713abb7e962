package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetType(t *testing.T) {
	tests := []struct {
		name   string
		target *Target
		want   TargetType
	}{
		{"nil", nil, Unknown},
		{"empty", &Target{Cols: 1}, Unknown},
		{"binary", &Target{Values: []float64{0, 1, 1, 0}, Cols: 1}, Binary},
		{"single class", &Target{Values: []float64{3, 3}, Cols: 1}, Binary},
		{"multiclass", &Target{Values: []float64{0, 1, 2}, Cols: 1}, Multiclass},
		{"continuous", &Target{Values: []float64{0.5, 1, 2}, Cols: 1}, Continuous},
		{"multioutput", &Target{Values: []float64{0, 1, 1, 0}, Cols: 2}, MultiOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Type())
		})
	}
}

func TestEncodeLabels(t *testing.T) {
	labels, classes := EncodeLabels([]float64{5, 2, 5, 9, 2})
	assert.Equal(t, []int{1, 0, 1, 2, 0}, labels)
	assert.Equal(t, []float64{2, 5, 9}, classes)
}

func TestCheck(t *testing.T) {
	classes := &Target{Values: []float64{0, 0, 1, 1}, Cols: 1}
	continuous := &Target{Values: []float64{0.1, 0.2, 0.3, 0.4}, Cols: 1}

	t.Run("default", func(t *testing.T) {
		s, err := Check(Spec{}, nil, false)
		require.NoError(t, err)
		assert.Equal(t, &KFold{NSplits: DefaultFolds}, s)
	})

	t.Run("folds", func(t *testing.T) {
		s, err := Check(Folds(4), classes, false)
		require.NoError(t, err)
		assert.Equal(t, &KFold{NSplits: 4}, s)
	})

	t.Run("stratified folds", func(t *testing.T) {
		s, err := Check(Folds(2), classes, true)
		require.NoError(t, err)
		assert.Equal(t, &StratifiedKFold{NSplits: 2}, s)
	})

	t.Run("continuous target is not stratified", func(t *testing.T) {
		s, err := Check(Folds(2), continuous, true)
		require.NoError(t, err)
		assert.False(t, IsStratified(s))
	})

	t.Run("integral float", func(t *testing.T) {
		s, err := Check(Number(5.0), nil, false)
		require.NoError(t, err)
		assert.Equal(t, &KFold{NSplits: 5}, s)
	})

	t.Run("splitter", func(t *testing.T) {
		given := &ShuffleSplit{TestSize: 0.25}
		s, err := Check(Using(given), nil, false)
		require.NoError(t, err)
		assert.Same(t, given, s)
	})

	t.Run("pairs", func(t *testing.T) {
		fold := Fold{Train: []int{1}, Valid: []int{0}}
		s, err := Check(Pairs(fold), nil, false)
		require.NoError(t, err)
		assert.Equal(t, &PredefinedSplit{Folds: []Fold{fold}}, s)
	})

	t.Run("fraction", func(t *testing.T) {
		_, err := Check(Fraction(0.2), nil, false)
		assert.ErrorIs(t, err, ErrInvalidSplit)
	})
}

func TestSpec(t *testing.T) {
	assert.True(t, Fraction(0.3).IsFraction())
	assert.False(t, Folds(3).IsFraction())
	assert.True(t, Folds(3).IsNumeric())
	assert.False(t, Spec{}.IsNumeric())
	assert.Equal(t, "0.3", Fraction(0.3).String())
	assert.Equal(t, "default", Spec{}.String())
}
