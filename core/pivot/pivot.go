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

// Package pivot implements the cross-tabulation engine: a single pass
// over a flat record collection producing a (row key × column key) grid
// of aggregated cells with row, column and grand totals.
//
// A build is synchronous and allocates all of its own state; the
// resulting Table is immutable and holds no references into previous
// builds. Any change to the records or the configuration is a full
// rebuild.
package pivot

import (
	"fmt"

	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/records"
)

// AggregatorSpec names a registered aggregator and the ordered value
// attributes bound to it.
type AggregatorSpec struct {
	Name  string
	Attrs []string
}

// Label is the display label for cell legends and menus.
func (s AggregatorSpec) Label() string {
	if len(s.Attrs) == 0 {
		return s.Name
	}
	label := s.Name + " of " + s.Attrs[0]
	for _, attr := range s.Attrs[1:] {
		label += " / " + attr
	}
	return label
}

// Config is the full configuration of one build. The zero value is a
// valid configuration: no grouping attributes, no filter, a single Count
// aggregation over the built-in registry.
type Config struct {
	// Rows and Cols are the attribute names whose values compose the row
	// and column key tuples.
	Rows []string
	Cols []string

	// Aggregations are evaluated simultaneously, each producing its own
	// parallel cell tree over the shared key sequences. Empty defaults to
	// a single Count.
	Aggregations []AggregatorSpec

	// Filter excludes records before any cell or total sees them. The
	// attribute index is built before filtering and is unaffected.
	Filter records.Filter

	// Derivations are merged into every record before indexing.
	Derivations records.Derivations

	// SortAs holds explicit value orders per attribute, consulted by key
	// ordering before natural sort.
	SortAs map[string][]string

	// RowOrder and ColOrder choose the display ordering policies.
	RowOrder Order
	ColOrder Order

	// Limit caps how many row keys and column keys the finished table
	// keeps, applied after ordering so a value-ordered build keeps the
	// top keys; 0 means keep all. Totals still aggregate every routed
	// record, so a limited view's visible cells need not sum to them.
	Limit int

	// Registry resolves aggregator names; nil means the built-in set.
	Registry *aggregators.Registry
}

// Build runs the single aggregation pass and returns the finished table.
// It fails only on configuration errors: an unknown aggregator name or an
// aggregation bound to more attributes than its algorithm consumes. An
// empty record sequence yields an empty table.
func (c Config) Build(recs []records.Record) (*Table, error) {
	registry := c.Registry
	if registry == nil {
		registry = aggregators.Builtin()
	}

	specs := c.Aggregations
	if len(specs) == 0 {
		specs = []AggregatorSpec{{Name: aggregators.Count}}
	}

	factories := make([]aggregators.Factory, len(specs))
	for i, spec := range specs {
		f, err := registry.Lookup(spec.Name)
		if err != nil {
			return nil, err
		}
		// Fewer bound attributes than the arity is tolerated (the missing
		// inputs read as the sentinel); more is a caller error.
		if len(spec.Attrs) > f.NumInputs() {
			return nil, fmt.Errorf("aggregator %q takes %d value attribute(s), got %d",
				spec.Name, f.NumInputs(), len(spec.Attrs))
		}
		factories[i] = f
	}

	newAccumulators := func() []aggregators.Accumulator {
		accs := make([]aggregators.Accumulator, len(specs))
		for i, f := range factories {
			accs[i] = f.New(specs[i].Attrs)
		}
		return accs
	}

	materialized := records.Materialize(recs, c.Derivations)
	index := records.BuildIndex(materialized)

	t := &Table{
		rowAttrs:     append([]string(nil), c.Rows...),
		colAttrs:     append([]string(nil), c.Cols...),
		specs:        append([]AggregatorSpec(nil), specs...),
		rowOrder:     c.RowOrder,
		colOrder:     c.ColOrder,
		cells:        make(map[string]map[string][]aggregators.Accumulator),
		rowTotals:    make(map[string][]aggregators.Accumulator),
		colTotals:    make(map[string][]aggregators.Accumulator),
		grandTotal:   newAccumulators(),
		index:        index,
		materialized: materialized,
	}

	for _, rec := range materialized {
		if c.Filter.Excludes(rec) {
			continue
		}

		rowTuple := tupleOf(rec, c.Rows)
		colTuple := tupleOf(rec, c.Cols)
		rowKey := encodeTuple(rowTuple)
		colKey := encodeTuple(colTuple)

		rowTotal, seen := t.rowTotals[rowKey]
		if !seen {
			rowTotal = newAccumulators()
			t.rowTotals[rowKey] = rowTotal
			t.rowKeys = append(t.rowKeys, rowTuple)
		}
		colTotal, seen := t.colTotals[colKey]
		if !seen {
			colTotal = newAccumulators()
			t.colTotals[colKey] = colTotal
			t.colKeys = append(t.colKeys, colTuple)
		}

		row := t.cells[rowKey]
		if row == nil {
			row = make(map[string][]aggregators.Accumulator)
			t.cells[rowKey] = row
		}
		cell := row[colKey]
		if cell == nil {
			cell = newAccumulators()
			row[colKey] = cell
		}

		for i := range specs {
			cell[i].Push(rec)
			rowTotal[i].Push(rec)
			colTotal[i].Push(rec)
			t.grandTotal[i].Push(rec)
		}
	}

	// Normalize the first-seen key order into the configured policies.
	rowCmp := tupleComparator(t.rowAttrs, c.SortAs)
	colCmp := tupleComparator(t.colAttrs, c.SortAs)
	sortKeys(t.rowKeys, rowCmp, c.RowOrder, func(key []records.Value) float64 {
		return t.rowTotals[encodeTuple(key)][0].Value()
	})
	sortKeys(t.colKeys, colCmp, c.ColOrder, func(key []records.Value) float64 {
		return t.colTotals[encodeTuple(key)][0].Value()
	})

	if c.Limit > 0 {
		if len(t.rowKeys) > c.Limit {
			t.rowKeys = t.rowKeys[:c.Limit]
		}
		if len(t.colKeys) > c.Limit {
			t.colKeys = t.colKeys[:c.Limit]
		}
	}

	return t, nil
}
