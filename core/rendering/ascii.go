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

package rendering

import (
	"strings"

	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/records"
)

// AsciiOptions configures ASCII output.
type AsciiOptions struct {
	// MaxWidth clips the rendered table to a terminal width; 0 means no
	// clipping.
	MaxWidth int
}

// ToAscii renders the pivot table as an ASCII grid: one header row with
// the column key labels, one body row per row key, a totals column and a
// totals row. Empty cells render blank.
func ToAscii(t *pivot.Table, options AsciiOptions) string {
	colKeys := t.ColKeys()
	rowKeys := t.RowKeys()

	header := make([]string, 0, len(colKeys)+2)
	header = append(header, cornerLabel(t))
	for _, ck := range colKeys {
		header = append(header, TupleLabel(ck))
	}
	header = append(header, "Totals")

	grid := [][]string{header}
	for _, rk := range rowKeys {
		row := make([]string, 0, len(colKeys)+2)
		row = append(row, TupleLabel(rk))
		for _, ck := range colKeys {
			row = append(row, CellText(t.Cell(rk, ck)))
		}
		row = append(row, CellText(t.RowTotal(rk)))
		grid = append(grid, row)
	}

	totals := make([]string, 0, len(colKeys)+2)
	totals = append(totals, "Totals")
	for _, ck := range colKeys {
		totals = append(totals, CellText(t.ColTotal(ck)))
	}
	totals = append(totals, CellText(t.GrandTotal()))
	grid = append(grid, totals)

	return drawGrid(grid, options.MaxWidth)
}

// cornerLabel is the top-left header: row attributes, then the column
// attributes, separated so the reader can tell which axis is which.
func cornerLabel(t *pivot.Table) string {
	rows := strings.Join(t.RowAttrs(), " / ")
	cols := strings.Join(t.ColAttrs(), " / ")
	switch {
	case rows == "" && cols == "":
		return ""
	case cols == "":
		return rows
	case rows == "":
		return "\\ " + cols
	default:
		return rows + " \\ " + cols
	}
}

// TupleLabel formats a key tuple for display, components joined by
// " / ". The empty tuple labels as "All".
func TupleLabel(tuple []records.Value) string {
	if len(tuple) == 0 {
		return "All"
	}
	parts := make([]string, len(tuple))
	for i, v := range tuple {
		parts[i] = v.Display()
	}
	return strings.Join(parts, " / ")
}

// CellText formats a cell's accumulators, one per active aggregation,
// joined by "; ". A nil cell (no ingested records) renders blank.
func CellText(accs []aggregators.Accumulator) string {
	if len(accs) == 0 {
		return ""
	}
	parts := make([]string, len(accs))
	for i, acc := range accs {
		parts[i] = acc.Format()
	}
	return strings.Join(parts, "; ")
}

// drawGrid lays out rows of cells with per-column widths and a border
// after the header row and before the totals row.
func drawGrid(grid [][]string, maxWidth int) string {
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range grid {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeBorder := func() {
		line := "+"
		for _, w := range widths {
			line += strings.Repeat("-", w+2) + "+"
		}
		sb.WriteString(clip(line, maxWidth))
		sb.WriteString("\n")
	}

	writeBorder()
	for r, row := range grid {
		line := "|"
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			line += " " + pad(cell, widths[i]) + " |"
		}
		sb.WriteString(clip(line, maxWidth))
		sb.WriteString("\n")
		if r == 0 || r == len(grid)-2 {
			writeBorder()
		}
	}
	writeBorder()
	return sb.String()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func clip(s string, maxWidth int) string {
	if maxWidth <= 0 || len(s) <= maxWidth {
		return s
	}
	return s[:maxWidth]
}
