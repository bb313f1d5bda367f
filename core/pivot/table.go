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

package pivot

import (
	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/records"
)

// Table is the finished result of one build: the ordered row and column
// key sequences, the cell lookup, and the totals. It is immutable once
// Build returns; a rebuild produces a new Table that shares nothing with
// it.
type Table struct {
	rowAttrs []string
	colAttrs []string
	specs    []AggregatorSpec
	rowOrder Order
	colOrder Order

	// rowKeys and colKeys hold the display ordering; the maps below are
	// keyed by the collision-free encoded form of each tuple.
	rowKeys [][]records.Value
	colKeys [][]records.Value

	cells      map[string]map[string][]aggregators.Accumulator
	rowTotals  map[string][]aggregators.Accumulator
	colTotals  map[string][]aggregators.Accumulator
	grandTotal []aggregators.Accumulator

	index        *records.AttributeIndex
	materialized []records.Record
}

// RowAttrs returns the attribute names composing the row keys.
func (t *Table) RowAttrs() []string {
	return append([]string(nil), t.rowAttrs...)
}

// ColAttrs returns the attribute names composing the column keys.
func (t *Table) ColAttrs() []string {
	return append([]string(nil), t.colAttrs...)
}

// Aggregations returns the active aggregator specs, in cell order.
func (t *Table) Aggregations() []AggregatorSpec {
	return append([]AggregatorSpec(nil), t.specs...)
}

// RowOrder returns the policy the row keys are ordered by.
func (t *Table) RowOrder() Order {
	return t.rowOrder
}

// ColOrder returns the policy the column keys are ordered by.
func (t *Table) ColOrder() Order {
	return t.colOrder
}

// RowKeys returns the row key tuples in display order.
func (t *Table) RowKeys() [][]records.Value {
	return t.rowKeys
}

// ColKeys returns the column key tuples in display order.
func (t *Table) ColKeys() [][]records.Value {
	return t.colKeys
}

// Cell returns the accumulators for a (row key, column key) pair, one per
// active aggregation, or nil when no record routed there. A nil cell is
// an empty cell, not an error.
func (t *Table) Cell(row, col []records.Value) []aggregators.Accumulator {
	cells, ok := t.cells[encodeTuple(row)]
	if !ok {
		return nil
	}
	return cells[encodeTuple(col)]
}

// RowTotal returns the accumulators aggregating every record in the row,
// regardless of column, or nil for an unknown row key.
func (t *Table) RowTotal(row []records.Value) []aggregators.Accumulator {
	return t.rowTotals[encodeTuple(row)]
}

// ColTotal returns the accumulators aggregating every record in the
// column, regardless of row, or nil for an unknown column key.
func (t *Table) ColTotal(col []records.Value) []aggregators.Accumulator {
	return t.colTotals[encodeTuple(col)]
}

// GrandTotal returns the accumulators that ingested every filtered
// record.
func (t *Table) GrandTotal() []aggregators.Accumulator {
	return t.grandTotal
}

// Index returns the attribute value index over the materialized,
// unfiltered records.
func (t *Table) Index() *records.AttributeIndex {
	return t.index
}

// Records returns the materialized record sequence (original records
// with derived attributes merged in), for downstream re-aggregation.
func (t *Table) Records() []records.Record {
	return t.materialized
}
