/*
Copyright 2023 The termplot Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/termplot/termplot/plot"
)

// loadSeriesCSV reads chart data from CSV: the first column is X, each
// remaining column is one series.  A non-numeric first row names the
// series; otherwise they get col1, col2, ... as IDs.  Empty cells are
// treated as missing points.  With timeAxis set, X values may also be
// RFC 3339 timestamps or epoch seconds/millis, normalized to epoch millis.
func loadSeriesCSV(r io.Reader, timeAxis bool) ([]plot.Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows in CSV input")
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, fmt.Errorf("need at least an X column and one value column, got %d column(s)", cols)
	}

	names := make([]string, cols-1)
	for i := range names {
		names[i] = fmt.Sprintf("col%d", i+1)
	}
	if isHeaderRow(records[0]) {
		for i, name := range records[0][1:] {
			if name != "" {
				names[i] = name
			}
		}
		records = records[1:]
	}

	series := make([]plot.Series, cols-1)
	for i, name := range names {
		series[i] = plot.Series{ID: name, Name: name}
	}

	for rowIdx, record := range records {
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: need at least 2 fields, got %d", rowIdx+1, len(record))
		}
		x, err := parseX(record[0], timeAxis)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowIdx+1, err)
		}
		for colIdx, field := range record[1:] {
			if colIdx >= len(series) || field == "" {
				continue
			}
			y, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", rowIdx+1, names[colIdx], err)
			}
			series[colIdx].Points = append(series[colIdx].Points, plot.Point{X: x, Y: y})
		}
	}

	return series, nil
}

// isHeaderRow guesses whether the first row is a header: it is if its X
// cell doesn't parse as a number or timestamp.
func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	if _, err := strconv.ParseFloat(record[0], 64); err == nil {
		return false
	}
	if _, err := time.Parse(time.RFC3339, record[0]); err == nil {
		return false
	}
	return true
}

func parseX(field string, timeAxis bool) (float64, error) {
	if v, err := strconv.ParseFloat(field, 64); err == nil {
		if timeAxis && v < 1e12 {
			// small enough to be epoch seconds rather than millis
			return v * 1000, nil
		}
		return v, nil
	}
	if timeAxis {
		if ts, err := time.Parse(time.RFC3339, field); err == nil {
			return float64(ts.UnixMilli()), nil
		}
	}
	return 0, fmt.Errorf("unable to parse X value %q", field)
}
