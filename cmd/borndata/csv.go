package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/born-ml/born-data/data"
)

// loadCSV reads a numeric CSV with a header row into a frame of float64
// columns. The target column, when named, is split off; it becomes an int64
// vector when every value is integral.
//
// CSV Format:
//
//	age,income,label
//	31,52000,0
//	45,61000,1
func loadCSV(r io.Reader, target string) (*data.Frame, *data.Array, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("CSV file is empty or missing header")
	}

	header, rows := records[0], records[1:]
	columns := make([][]float64, len(header))
	for j := range columns {
		columns[j] = make([]float64, len(rows))
	}
	for i, record := range rows {
		if len(record) != len(header) {
			return nil, nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+1, len(record), len(header))
		}
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid value at row %d, column %q: %w", i+1, header[j], err)
			}
			columns[j][i] = v
		}
	}

	var (
		names []string
		cols  []*data.Array
		y     *data.Array
	)
	for j, name := range header {
		if name == target {
			y = targetVector(columns[j])
			continue
		}
		names = append(names, name)
		cols = append(cols, data.Vector(columns[j]))
	}
	if target != "" && y == nil {
		return nil, nil, fmt.Errorf("target column %q not found", target)
	}

	x, err := data.NewFrame(names, cols...)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func targetVector(values []float64) *data.Array {
	labels := make([]int64, len(values))
	for i, v := range values {
		if v != math.Trunc(v) {
			return data.Vector(values)
		}
		labels[i] = int64(v)
	}
	return data.Vector(labels)
}
