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

package records

import (
	"sort"

	"github.com/google/crosstab/core/naturalsort"
)

// AttributeIndex records, per attribute, each distinct value (by display
// string) and its occurrence count over the unfiltered record sequence.
// It feeds attribute selection menus and filter popovers, so it always
// reflects the raw input, independent of any value filter.
type AttributeIndex struct {
	counts map[string]map[string]int
	// attrs holds attribute names in first-seen order.
	attrs []string
	seen  int
}

// BuildIndex indexes the record sequence in input order. An attribute
// first observed at record k retroactively counts k sentinel occurrences,
// so records with heterogeneous attribute sets index consistently. The
// back-fill reflects input order as observed, nothing stronger.
func BuildIndex(recs []Record) *AttributeIndex {
	idx := &AttributeIndex{counts: make(map[string]map[string]int)}
	for _, r := range recs {
		idx.Add(r)
	}
	return idx
}

// Add indexes one record. Exposed so loaders that stream records can index
// as they go; BuildIndex is the usual entry point.
func (idx *AttributeIndex) Add(r Record) {
	// Register attributes this record introduces, crediting the sentinel
	// for every record observed before the attribute first appeared.
	for _, attr := range r.Attrs() {
		if _, known := idx.counts[attr]; !known {
			idx.counts[attr] = make(map[string]int)
			idx.attrs = append(idx.attrs, attr)
			if idx.seen > 0 {
				idx.counts[attr][MissingLabel] = idx.seen
			}
		}
	}
	// Count this record's value for every known attribute; attributes the
	// record lacks count the sentinel.
	for attr, values := range idx.counts {
		values[r.Get(attr).Display()]++
	}
	idx.seen++
}

// Attributes returns indexed attribute names in first-seen order.
func (idx *AttributeIndex) Attributes() []string {
	out := make([]string, len(idx.attrs))
	copy(out, idx.attrs)
	return out
}

// Values returns the distinct values observed for an attribute in natural
// order, matching the key ordering menus sit next to, or nil for an
// unindexed attribute.
func (idx *AttributeIndex) Values(attr string) []string {
	counts, ok := idx.counts[attr]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		return naturalsort.CompareStrings(values[i], values[j]) < 0
	})
	return values
}

// Count returns how often a value occurred for an attribute.
func (idx *AttributeIndex) Count(attr, value string) int {
	return idx.counts[attr][value]
}

// Records returns the number of records indexed.
func (idx *AttributeIndex) Records() int {
	return idx.seen
}
