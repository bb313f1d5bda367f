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
	"fmt"
	"sort"

	"github.com/google/crosstab/core/records"
)

// Order selects how discovered row or column key tuples are sequenced for
// display. Ordering never affects cell routing.
type Order int

const (
	// KeyAToZ orders key tuples naturally, component by component.
	KeyAToZ Order = iota
	// ValueAToZ orders key tuples by the per-key total of the first
	// aggregation, ascending; ties break to key order.
	ValueAToZ
	// ValueZToA is ValueAToZ descending.
	ValueZToA
)

// Next cycles key_a_to_z → value_a_to_z → value_z_to_a → key_a_to_z, the
// sequence a caller steps through when the ordering control is toggled.
func (o Order) Next() Order {
	switch o {
	case KeyAToZ:
		return ValueAToZ
	case ValueAToZ:
		return ValueZToA
	default:
		return KeyAToZ
	}
}

// String returns the canonical policy name.
func (o Order) String() string {
	switch o {
	case ValueAToZ:
		return "value_a_to_z"
	case ValueZToA:
		return "value_z_to_a"
	default:
		return "key_a_to_z"
	}
}

// Symbol returns the header symbol surfaced to renderers for the policy.
func (o Order) Symbol() string {
	switch o {
	case ValueAToZ:
		return "↓"
	case ValueZToA:
		return "↑"
	default:
		return "↕"
	}
}

// ParseOrder resolves a canonical policy name.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "key_a_to_z":
		return KeyAToZ, nil
	case "value_a_to_z":
		return ValueAToZ, nil
	case "value_z_to_a":
		return ValueZToA, nil
	default:
		return KeyAToZ, fmt.Errorf("unknown key order %q", s)
	}
}

// tupleComparator builds the component-wise key comparator for a list of
// attributes, honoring per-attribute explicit orders (sort-as) and
// falling back to natural sort.
func tupleComparator(attrs []string, sortAs map[string][]string) func(a, b []records.Value) int {
	cmps := make([]func(a, b records.Value) int, len(attrs))
	for i, attr := range attrs {
		if order, ok := sortAs[attr]; ok {
			cmps[i] = records.SortAs(order)
		} else {
			cmps[i] = records.Compare
		}
	}
	return func(a, b []records.Value) int {
		for i := range cmps {
			if c := cmps[i](a[i], b[i]); c != 0 {
				return c
			}
		}
		return 0
	}
}

// sortKeys orders the key tuples in place according to the policy.
// totalOf yields the per-key total of the first aggregation, used by the
// value policies.
func sortKeys(keys [][]records.Value, byKey func(a, b []records.Value) int, order Order, totalOf func(key []records.Value) float64) {
	switch order {
	case KeyAToZ:
		sort.SliceStable(keys, func(i, j int) bool {
			return byKey(keys[i], keys[j]) < 0
		})
	case ValueAToZ, ValueZToA:
		sort.SliceStable(keys, func(i, j int) bool {
			vi, vj := totalOf(keys[i]), totalOf(keys[j])
			if vi != vj {
				if order == ValueZToA {
					return vi > vj
				}
				return vi < vj
			}
			return byKey(keys[i], keys[j]) < 0
		})
	}
}
