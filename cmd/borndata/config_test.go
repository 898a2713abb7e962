package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/born-data/cv"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "split.yaml", "fraction: 0.25\nstratified: true\nseed: 7\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, SplitConfig{Folds: 5, Fraction: 0.25, Stratified: true, Seed: 7}, cfg)

	spec, err := cfg.Spec()
	require.NoError(t, err)
	assert.True(t, spec.IsFraction())
	assert.Equal(t, 0.25, spec.Value())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfig(writeFile(t, "bad.yaml", "folds: [1, 2"))
	assert.Error(t, err)
}

func TestMergeFlagsOverrideFile(t *testing.T) {
	seed := int64(3)
	file := SplitConfig{Folds: 5, Fraction: 0.25, Seed: 7}

	tests := []struct {
		name string
		cmd  splitCmd
		want SplitConfig
	}{
		{"no flags", splitCmd{}, file},
		{"folds replaces fraction", splitCmd{Folds: 4}, SplitConfig{Folds: 4, Seed: 7}},
		{"fraction", splitCmd{Fraction: 0.1}, SplitConfig{Folds: 5, Fraction: 0.1, Seed: 7}},
		{"stratified and seed", splitCmd{Stratified: true, Seed: &seed},
			SplitConfig{Folds: 5, Fraction: 0.25, Stratified: true, Seed: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd
			got, err := file.merge(&cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := file.merge(&splitCmd{Folds: 3, Fraction: 0.2})
	assert.Error(t, err)
}

func TestSplitConfigSpec(t *testing.T) {
	spec, err := DefaultSplitConfig().Spec()
	require.NoError(t, err)
	assert.Equal(t, cv.Folds(5), spec)

	spec, err = SplitConfig{}.Spec()
	require.NoError(t, err)
	assert.Equal(t, cv.Spec{}, spec)

	_, err = SplitConfig{Fraction: 1.5}.Spec()
	assert.Error(t, err)
}
