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

// Package views builds render-ready view models from a finished pivot
// table and the URL state that produced it.
package views

import (
	"strings"

	"github.com/google/safehtml"

	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/query"
	"github.com/google/crosstab/core/rendering"
)

// PivotRow is one rendered body row: the row key label, one formatted
// value per column key, and the row total.
type PivotRow struct {
	Label string
	Cells []string
	Total string
}

// AttributeMenu is one attribute's entry in the selection sidebar: its
// distinct values with occurrence counts and filter-toggle links.
type AttributeMenu struct {
	Name   string
	RowURL safehtml.URL
	ColURL safehtml.URL
	IsRow  bool
	IsCol  bool
	Values []AttributeMenuValue
}

// AttributeMenuValue is one distinct value in an attribute menu.
type AttributeMenuValue struct {
	Label    string
	Count    int
	Excluded bool
	URL      safehtml.URL
}

// PivotViewModel is everything the HTML template needs.
type PivotViewModel struct {
	Title            string
	AggregationLabel string
	RowHeader        string
	ColHeader        string
	RowOrderSymbol   string
	ColOrderSymbol   string
	RowOrderURL      safehtml.URL
	ColOrderURL      safehtml.URL
	ColLabels        []string
	Rows             []PivotRow
	ColTotals        []string
	GrandTotal       string
	Attributes       []AttributeMenu
}

// BuildPivotViewModel flattens the pivot table into a view model, with
// order-toggle and filter-toggle URLs derived from the query state.
func BuildPivotViewModel(t *pivot.Table, q *query.Query, title string) *PivotViewModel {
	vm := &PivotViewModel{
		Title:          title,
		RowHeader:      strings.Join(t.RowAttrs(), " / "),
		ColHeader:      strings.Join(t.ColAttrs(), " / "),
		RowOrderSymbol: t.RowOrder().Symbol(),
		ColOrderSymbol: t.ColOrder().Symbol(),
		RowOrderURL:    q.WithRowOrderToggled(),
		ColOrderURL:    q.WithColOrderToggled(),
		GrandTotal:     rendering.CellText(t.GrandTotal()),
	}

	labels := make([]string, 0, len(t.Aggregations()))
	for _, spec := range t.Aggregations() {
		labels = append(labels, spec.Label())
	}
	vm.AggregationLabel = strings.Join(labels, "; ")

	colKeys := t.ColKeys()
	for _, ck := range colKeys {
		vm.ColLabels = append(vm.ColLabels, rendering.TupleLabel(ck))
		vm.ColTotals = append(vm.ColTotals, rendering.CellText(t.ColTotal(ck)))
	}

	for _, rk := range t.RowKeys() {
		row := PivotRow{
			Label: rendering.TupleLabel(rk),
			Total: rendering.CellText(t.RowTotal(rk)),
		}
		for _, ck := range colKeys {
			row.Cells = append(row.Cells, rendering.CellText(t.Cell(rk, ck)))
		}
		vm.Rows = append(vm.Rows, row)
	}

	vm.Attributes = buildAttributeMenus(t, q)
	return vm
}

// buildAttributeMenus lists every indexed attribute with its distinct
// values and counts; the index reflects the unfiltered records, so menus
// stay stable while filters change.
func buildAttributeMenus(t *pivot.Table, q *query.Query) []AttributeMenu {
	idx := t.Index()
	menus := make([]AttributeMenu, 0, len(idx.Attributes()))
	for _, attr := range idx.Attributes() {
		menu := AttributeMenu{
			Name:   attr,
			RowURL: q.WithRowToggled(attr),
			ColURL: q.WithColToggled(attr),
			IsRow:  contains(q.Rows, attr),
			IsCol:  contains(q.Cols, attr),
		}
		for _, value := range idx.Values(attr) {
			menu.Values = append(menu.Values, AttributeMenuValue{
				Label:    value,
				Count:    idx.Count(attr, value),
				Excluded: q.IsExcluded(attr, value),
				URL:      q.WithValueFilterToggled(attr, value),
			})
		}
		menus = append(menus, menu)
	}
	return menus
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
