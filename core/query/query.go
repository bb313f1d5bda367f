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

// Package query parses and serializes pivot configuration carried in a
// URL, so a renderer can emit links that toggle attributes, filters and
// ordering policies without holding server-side state.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"

	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/records"
)

// Query represents the parsed pivot state of a URL.
type Query struct {
	// Path is the base path (e.g. "/pivot").
	Path string

	// Rows and Cols are the grouping attribute lists.
	Rows []string
	Cols []string

	// Agg is the selected aggregator name; Vals are the value attributes
	// bound to it.
	Agg  string
	Vals []string

	// RowOrder and ColOrder are the key ordering policies.
	RowOrder pivot.Order
	ColOrder pivot.Order

	// Limit caps the number of row and column keys shown, applied after
	// ordering; 0 means no cap.
	Limit int

	// Filters maps attribute names to excluded values.
	Filters map[string][]string
}

// NewQuery creates a Query from a URL. Unknown or malformed parameters
// fall back to defaults rather than erroring; the URL is caller input.
func NewQuery(u *url.URL) *Query {
	state := &Query{
		Path:    u.Path,
		Filters: make(map[string][]string),
	}

	q := u.Query()
	state.Rows = splitList(q.Get("rows"))
	state.Cols = splitList(q.Get("cols"))
	state.Agg = q.Get("agg")
	state.Vals = splitList(q.Get("vals"))
	state.RowOrder, _ = pivot.ParseOrder(q.Get("roworder"))
	state.ColOrder, _ = pivot.ParseOrder(q.Get("colorder"))
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		state.Limit = n
	}

	// Filter parameters use the format filter:attribute=value1,value2.
	for key, values := range q {
		if strings.HasPrefix(key, "filter:") && len(values) > 0 {
			attr := strings.TrimPrefix(key, "filter:")
			state.Filters[attr] = splitList(values[0])
		}
	}

	return state
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Clone creates a deep copy of the Query.
func (s *Query) Clone() *Query {
	clone := &Query{
		Path:     s.Path,
		Rows:     append([]string(nil), s.Rows...),
		Cols:     append([]string(nil), s.Cols...),
		Agg:      s.Agg,
		Vals:     append([]string(nil), s.Vals...),
		RowOrder: s.RowOrder,
		ColOrder: s.ColOrder,
		Limit:    s.Limit,
		Filters:  make(map[string][]string, len(s.Filters)),
	}
	for attr, values := range s.Filters {
		clone.Filters[attr] = append([]string(nil), values...)
	}
	return clone
}

// ToURL converts the Query back to a URL string.
func (s *Query) ToURL() string {
	u := &url.URL{Path: s.Path}
	q := u.Query()

	if len(s.Rows) > 0 {
		q.Set("rows", strings.Join(s.Rows, ","))
	}
	if len(s.Cols) > 0 {
		q.Set("cols", strings.Join(s.Cols, ","))
	}
	if s.Agg != "" {
		q.Set("agg", s.Agg)
	}
	if len(s.Vals) > 0 {
		q.Set("vals", strings.Join(s.Vals, ","))
	}
	if s.RowOrder != pivot.KeyAToZ {
		q.Set("roworder", s.RowOrder.String())
	}
	if s.ColOrder != pivot.KeyAToZ {
		q.Set("colorder", s.ColOrder.String())
	}
	if s.Limit > 0 {
		q.Set("limit", strconv.Itoa(s.Limit))
	}
	for attr, values := range s.Filters {
		if len(values) > 0 {
			q.Set("filter:"+attr, strings.Join(values, ","))
		}
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL.
func (s *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}

// WithRowOrderToggled returns a URL with the row ordering policy advanced
// one step in its cycle.
func (s *Query) WithRowOrderToggled() safehtml.URL {
	newState := s.Clone()
	newState.RowOrder = s.RowOrder.Next()
	return newState.ToSafeURL()
}

// WithColOrderToggled returns a URL with the column ordering policy
// advanced one step in its cycle.
func (s *Query) WithColOrderToggled() safehtml.URL {
	newState := s.Clone()
	newState.ColOrder = s.ColOrder.Next()
	return newState.ToSafeURL()
}

// WithRowToggled returns a URL with the attribute added to or removed
// from the row grouping list.
func (s *Query) WithRowToggled(attr string) safehtml.URL {
	newState := s.Clone()
	newState.Rows = toggle(s.Rows, attr)
	return newState.ToSafeURL()
}

// WithColToggled returns a URL with the attribute added to or removed
// from the column grouping list.
func (s *Query) WithColToggled(attr string) safehtml.URL {
	newState := s.Clone()
	newState.Cols = toggle(s.Cols, attr)
	return newState.ToSafeURL()
}

// WithValueFilterToggled returns a URL with the value added to or removed
// from the attribute's excluded set.
func (s *Query) WithValueFilterToggled(attr, value string) safehtml.URL {
	newState := s.Clone()
	existing := newState.Filters[attr]
	filtered := make([]string, 0, len(existing))
	found := false
	for _, v := range existing {
		if v == value {
			found = true
		} else {
			filtered = append(filtered, v)
		}
	}
	if !found {
		filtered = append(filtered, value)
	}
	if len(filtered) > 0 {
		newState.Filters[attr] = filtered
	} else {
		delete(newState.Filters, attr)
	}
	return newState.ToSafeURL()
}

func toggle(list []string, item string) []string {
	out := make([]string, 0, len(list))
	found := false
	for _, v := range list {
		if v == item {
			found = true
		} else {
			out = append(out, v)
		}
	}
	if !found {
		out = append(out, item)
	}
	return out
}

// IsExcluded reports whether the value is in the attribute's excluded
// set.
func (s *Query) IsExcluded(attr, value string) bool {
	for _, v := range s.Filters[attr] {
		if v == value {
			return true
		}
	}
	return false
}

// Config assembles the engine configuration for this query state. The
// aggregator name is validated against the registry here, at the controls
// boundary: an unknown or empty name falls back to the registry's first
// registered aggregator rather than propagating into the engine.
func (s *Query) Config(registry *aggregators.Registry) pivot.Config {
	if registry == nil {
		registry = aggregators.Builtin()
	}

	name := s.Agg
	if !registry.Has(name) {
		if names := registry.Names(); len(names) > 0 {
			name = names[0]
		}
	}

	// Trim over-bound value attributes to the algorithm's arity; the
	// engine rejects over-binding, but a URL is caller input.
	vals := append([]string(nil), s.Vals...)
	if f, err := registry.Lookup(name); err == nil && len(vals) > f.NumInputs() {
		vals = vals[:f.NumInputs()]
	}

	filter := make(records.Filter, len(s.Filters))
	for attr, values := range s.Filters {
		for _, v := range values {
			filter.Exclude(attr, v)
		}
	}

	return pivot.Config{
		Rows:         append([]string(nil), s.Rows...),
		Cols:         append([]string(nil), s.Cols...),
		Aggregations: []pivot.AggregatorSpec{{Name: name, Attrs: vals}},
		Filter:       filter,
		RowOrder:     s.RowOrder,
		ColOrder:     s.ColOrder,
		Limit:        s.Limit,
		Registry:     registry,
	}
}
