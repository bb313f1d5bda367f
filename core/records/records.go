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

import "sort"

// Record maps attribute names to values. Records in one dataset may carry
// heterogeneous attribute sets; a lookup for an attribute the record does
// not hold yields the missing sentinel.
type Record map[string]Value

// Get returns the record's value for the attribute, or the sentinel when
// the attribute is absent.
func (r Record) Get(attr string) Value {
	return r[attr]
}

// Attrs returns the record's attribute names in sorted order, so callers
// that iterate a record do so deterministically.
func (r Record) Attrs() []string {
	attrs := make([]string, 0, len(r))
	for a := range r {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// Clone returns a copy of the record that shares no storage with it.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for a, v := range r {
		c[a] = v
	}
	return c
}

// Derivation computes an attribute value from a record. Derivations must
// be deterministic and side-effect-free.
type Derivation func(Record) Value

// Derivations maps new attribute names to their derivation functions.
type Derivations map[string]Derivation

// Materialize applies every derivation to every record and returns the
// merged records. The input records are never mutated; each output record
// is a fresh copy. A derivation that panics contributes the sentinel for
// that record and attribute rather than aborting the build.
func Materialize(recs []Record, derivations Derivations) []Record {
	if len(derivations) == 0 {
		out := make([]Record, len(recs))
		for i, r := range recs {
			out[i] = r.Clone()
		}
		return out
	}

	// Apply derivations in name order so repeated builds behave identically.
	names := make([]string, 0, len(derivations))
	for name := range derivations {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Record, len(recs))
	for i, r := range recs {
		m := r.Clone()
		for _, name := range names {
			m[name] = derive(derivations[name], r)
		}
		out[i] = m
	}
	return out
}

// derive evaluates a single derivation, recovering a panic to the sentinel.
func derive(d Derivation, r Record) (v Value) {
	defer func() {
		if recover() != nil {
			v = Missing()
		}
	}()
	return d(r)
}

// Filter maps attribute names to the set of excluded values, identified by
// their display strings. The sentinel is excludable under its "null"
// label. An attribute absent from the filter excludes nothing.
type Filter map[string]map[string]bool

// Excludes reports whether the filter rejects the record: a record is
// excluded when any of its values for filtered attributes falls in the
// corresponding excluded set.
func (f Filter) Excludes(r Record) bool {
	for attr, excluded := range f {
		if len(excluded) == 0 {
			continue
		}
		if excluded[r.Get(attr).Display()] {
			return true
		}
	}
	return false
}

// Exclude adds a value to the excluded set for an attribute.
func (f Filter) Exclude(attr, value string) {
	if f[attr] == nil {
		f[attr] = make(map[string]bool)
	}
	f[attr][value] = true
}
