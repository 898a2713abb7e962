// Package main provides the borndata CLI: it splits a CSV dataset into
// training and validation partitions and summarizes both.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	arg "github.com/alexflint/go-arg"
	"go.uber.org/zap"

	"github.com/born-ml/born-data/data"
)

const version = "v0.0.1-dev"

type versionCmd struct{}

type splitCmd struct {
	CSV        string  `arg:"--csv,required" help:"input CSV file with a header row"`
	Target     string  `arg:"--target" help:"target column; empty for data without a target"`
	Config     string  `arg:"--config" help:"YAML file with folds, fraction, stratified and seed"`
	Folds      int     `arg:"--folds" help:"number of folds (the first one is used)"`
	Fraction   float64 `arg:"--fraction" help:"held-out fraction in (0, 1)"`
	Stratified bool    `arg:"--stratified" help:"keep class proportions"`
	Seed       *int64  `arg:"--seed" help:"random seed, -1 for random"`
	Verbose    bool    `arg:"-v,--verbose" help:"debug logging"`
}

type args struct {
	Version *versionCmd `arg:"subcommand:version" help:"show version"`
	Split   *splitCmd   `arg:"subcommand:split" help:"split a CSV dataset"`
}

func (args) Description() string {
	return "Born data - train/validation splitting for Born ML"
}

func main() {
	var a args
	p := arg.MustParse(&a)

	switch {
	case a.Version != nil:
		fmt.Printf("Born data %s\n", version)
	case a.Split != nil:
		if err := runSplit(a.Split, os.Stdout); err != nil {
			log.Fatal(err)
		}
	default:
		p.WriteHelp(os.Stdout)
	}
}

func runSplit(cmd *splitCmd, out io.Writer) error {
	logger, err := newLogger(cmd.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	cfg := DefaultSplitConfig()
	if cmd.Config != "" {
		if cfg, err = loadConfig(cmd.Config); err != nil {
			return err
		}
	}
	if cfg, err = cfg.merge(cmd); err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}

	f, err := os.Open(cmd.CSV)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	x, y, err := loadCSV(f, cmd.Target)
	if err != nil {
		return err
	}

	split, err := data.NewCVSplit(spec,
		data.WithStratified(cfg.Stratified),
		data.WithSeed(cfg.Seed),
		data.WithSplitLogger(logger))
	if err != nil {
		return err
	}

	var target data.Container
	if y != nil {
		target = y
	}
	res, err := split.Split(x, target)
	if err != nil {
		return err
	}
	logger.Info("split done",
		zap.Stringer("split", split),
		zap.String("file", cmd.CSV),
		zap.Int("samples", x.Len()))

	return writeReport(out, res)
}
