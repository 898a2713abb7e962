package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSplit(t *testing.T) {
	path := writeFile(t, "data.csv", sampleCSV)
	seed := int64(0)

	var out bytes.Buffer
	err := runSplit(&splitCmd{CSV: path, Target: "label", Folds: 2, Stratified: true, Seed: &seed}, &out)
	require.NoError(t, err)

	assert.Equal(t, `train: 2 samples
valid: 2 samples
train classes: 0=1 1=1
valid classes: 0=1 1=1
column  train mean  valid mean
age     39.5        38
income  5.4e+04     5.65e+04
`, out.String())
}

func TestRunSplitErrors(t *testing.T) {
	var out bytes.Buffer
	err := runSplit(&splitCmd{CSV: writeFile(t, "data.csv", sampleCSV), Target: "label", Folds: 5}, &out)
	assert.Error(t, err, "more folds than samples")

	err = runSplit(&splitCmd{CSV: "does-not-exist.csv"}, &out)
	assert.Error(t, err)
}

func TestClassCounts(t *testing.T) {
	_, y, err := loadCSV(bytes.NewBufferString("y\n2\n1\n2\n"), "y")
	require.NoError(t, err)
	assert.Equal(t, "1=1 2=2", classCounts(y))
}
