package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/born-data/data"
)

// writeReport prints partition sizes, class counts and per-column means.
func writeReport(w io.Writer, res data.SplitResult) error {
	train, ok := res.XTrain.(*data.Frame)
	if !ok {
		return fmt.Errorf("unexpected training partition %T", res.XTrain)
	}
	valid, ok := res.XValid.(*data.Frame)
	if !ok {
		return fmt.Errorf("unexpected validation partition %T", res.XValid)
	}

	fmt.Fprintf(w, "train: %d samples\n", train.Len())
	fmt.Fprintf(w, "valid: %d samples\n", valid.Len())
	if res.YTrain != nil {
		fmt.Fprintf(w, "train classes: %s\n", classCounts(res.YTrain))
		fmt.Fprintf(w, "valid classes: %s\n", classCounts(res.YValid))
	}

	trainMeans, err := columnMeans(train)
	if err != nil {
		return err
	}
	validMeans, err := columnMeans(valid)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\ttrain mean\tvalid mean")
	for j, name := range train.Columns() {
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\n", name, trainMeans[j], validMeans[j])
	}
	return tw.Flush()
}

// columnMeans returns the mean of every frame column.
func columnMeans(f *data.Frame) ([]float64, error) {
	m, err := f.Values().Matrix()
	if err != nil {
		return nil, fmt.Errorf("column means: %w", err)
	}
	_, c := m.Dims()
	means := make([]float64, c)
	for j := range means {
		means[j] = stat.Mean(mat.Col(nil, j, m), nil)
	}
	return means, nil
}

// classCounts formats "value=count" pairs in value order.
func classCounts(y data.Container) string {
	a, err := data.ToNumeric(y)
	if err != nil {
		return "n/a"
	}
	counts := map[float64]int{}
	for _, v := range a.Float64s() {
		counts[v]++
	}
	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	out := ""
	for i, v := range values {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%g=%d", v, counts[v])
	}
	return out
}
