package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/born-data/cv"
)

// SplitConfig is the split configuration read from YAML and flags.
// A non-zero Fraction takes precedence over Folds.
type SplitConfig struct {
	Folds      int     `yaml:"folds"`
	Fraction   float64 `yaml:"fraction"`
	Stratified bool    `yaml:"stratified"`
	Seed       int64   `yaml:"seed"`
}

// DefaultSplitConfig returns 5 folds with a random seed.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		Folds: 5,
		Seed:  -1,
	}
}

// loadConfig reads a YAML file over the defaults.
func loadConfig(path string) (SplitConfig, error) {
	cfg := DefaultSplitConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overrides the config with the flags that were given.
func (c SplitConfig) merge(cmd *splitCmd) (SplitConfig, error) {
	if cmd.Folds != 0 && cmd.Fraction != 0 {
		return c, fmt.Errorf("--folds and --fraction are mutually exclusive")
	}
	if cmd.Folds != 0 {
		c.Folds, c.Fraction = cmd.Folds, 0
	}
	if cmd.Fraction != 0 {
		c.Fraction = cmd.Fraction
	}
	if cmd.Stratified {
		c.Stratified = true
	}
	if cmd.Seed != nil {
		c.Seed = *cmd.Seed
	}
	return c, nil
}

// Spec returns the cross-validation spec of the config.
func (c SplitConfig) Spec() (cv.Spec, error) {
	switch {
	case c.Fraction != 0:
		if c.Fraction <= 0 || c.Fraction >= 1 {
			return cv.Spec{}, fmt.Errorf("fraction must be in (0, 1), got %v", c.Fraction)
		}
		return cv.Fraction(c.Fraction), nil
	case c.Folds != 0:
		return cv.Folds(c.Folds), nil
	default:
		return cv.Spec{}, nil
	}
}

// newLogger builds a production JSON logger, or a development logger with
// debug output when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return config.Build()
}
