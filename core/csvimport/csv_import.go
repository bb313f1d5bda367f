/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Crosstab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package csvimport loads record sequences from CSV data, detecting
// per-column value types from a sample of the rows.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/crosstab/core/records"
)

// ColumnType specifies the value type for a column.
type ColumnType int

const (
	// ColumnTypeAuto auto-detects the type from data (default).
	ColumnTypeAuto ColumnType = iota
	// ColumnTypeString forces string values.
	ColumnTypeString
	// ColumnTypeNumber forces numeric values.
	ColumnTypeNumber
	// ColumnTypeBool forces boolean values.
	ColumnTypeBool
)

// ImportOptions configures CSV import behavior.
type ImportOptions struct {
	// HasHeader indicates whether the first row contains attribute names.
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma).
	Delimiter rune
	// ColumnTypes overrides type detection for specific columns by name.
	ColumnTypes map[string]ColumnType
	// SampleSize is the number of rows sampled for type detection
	// (default: 100).
	SampleSize int
}

// DefaultOptions returns default import options.
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:   true,
		Delimiter:   ',',
		ColumnTypes: make(map[string]ColumnType),
		SampleSize:  100,
	}
}

// ImportFromFile imports a CSV file and returns the record sequence.
func ImportFromFile(filepath string, options ImportOptions) ([]records.Record, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader imports CSV data from an io.Reader and returns the
// record sequence. Empty fields are absent from the produced records, so
// lookups yield the missing sentinel.
func ImportFromReader(reader io.Reader, options ImportOptions) ([]records.Record, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	// Tolerate ragged rows; short rows leave attributes absent.
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV input is empty")
	}

	var headers []string
	var dataRows [][]string
	if options.HasHeader {
		headers = rows[0]
		dataRows = rows[1:]
	} else {
		headers = make([]string, len(rows[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = rows
	}

	types := detectTypes(headers, dataRows, options)

	recs := make([]records.Record, 0, len(dataRows))
	for _, row := range dataRows {
		rec := make(records.Record, len(headers))
		for i, name := range headers {
			if i >= len(row) || row[i] == "" {
				continue
			}
			rec[name] = parseValue(row[i], types[name])
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// detectTypes resolves a type per column: explicit overrides win,
// otherwise a sample of the non-empty values decides. A column where all
// sampled values parse as numbers is numeric; all booleans, boolean;
// anything else stays string.
func detectTypes(headers []string, dataRows [][]string, options ImportOptions) map[string]ColumnType {
	sampleSize := options.SampleSize
	if sampleSize <= 0 {
		sampleSize = 100
	}

	types := make(map[string]ColumnType, len(headers))
	for i, name := range headers {
		if forced, ok := options.ColumnTypes[name]; ok && forced != ColumnTypeAuto {
			types[name] = forced
			continue
		}
		types[name] = detectColumnType(i, dataRows, sampleSize)
	}
	return types
}

func detectColumnType(col int, dataRows [][]string, sampleSize int) ColumnType {
	sampled := 0
	allNumber, allBool := true, true
	for _, row := range dataRows {
		if sampled >= sampleSize {
			break
		}
		if col >= len(row) || row[col] == "" {
			continue
		}
		v := row[col]
		sampled++
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allNumber = false
		}
		if v != "true" && v != "false" {
			allBool = false
		}
		if !allNumber && !allBool {
			return ColumnTypeString
		}
	}
	if sampled == 0 {
		return ColumnTypeString
	}
	if allBool {
		return ColumnTypeBool
	}
	if allNumber {
		return ColumnTypeNumber
	}
	return ColumnTypeString
}

// parseValue converts a CSV field under the column's type. A field that
// fails to parse under a forced type falls back to string rather than
// erroring; the engine treats it like any other value.
func parseValue(field string, t ColumnType) records.Value {
	switch t {
	case ColumnTypeNumber:
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return records.Number(f)
		}
	case ColumnTypeBool:
		if field == "true" {
			return records.Bool(true)
		}
		if field == "false" {
			return records.Bool(false)
		}
	}
	return records.String(field)
}
