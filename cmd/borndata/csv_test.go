package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `age,income,label
31,52000,0
45,61000,1
27,38000,0
52,70000,1
`

func TestLoadCSV(t *testing.T) {
	x, y, err := loadCSV(strings.NewReader(sampleCSV), "label")
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "income"}, x.Columns())
	assert.Equal(t, 4, x.Len())
	age, ok := x.Column("age")
	require.True(t, ok)
	assert.Equal(t, []float64{31, 45, 27, 52}, age.Data())

	require.NotNil(t, y)
	assert.Equal(t, []int64{0, 1, 0, 1}, y.Data())
}

func TestLoadCSVContinuousTarget(t *testing.T) {
	_, y, err := loadCSV(strings.NewReader("a,b\n1,0.5\n2,1.5\n"), "b")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.5}, y.Data())
}

func TestLoadCSVWithoutTarget(t *testing.T) {
	x, y, err := loadCSV(strings.NewReader(sampleCSV), "")
	require.NoError(t, err)
	assert.Nil(t, y)
	assert.Len(t, x.Columns(), 3)
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target string
	}{
		{"empty", "", ""},
		{"header only", "a,b\n", ""},
		{"not numeric", "a\nx\n", ""},
		{"missing target", "a\n1\n", "label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadCSV(strings.NewReader(tt.input), tt.target)
			assert.Error(t, err)
		})
	}
}
