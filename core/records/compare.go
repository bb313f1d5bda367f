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
	"strings"

	"github.com/google/crosstab/core/naturalsort"
)

// classRank partitions values for comparison: the missing sentinel first,
// then booleans, then everything numeric, then times, then the remaining
// strings. A string that parses as a number classifies as numeric, so one
// attribute holding a mix of typed numbers and numeric strings orders
// numerically. The class depends only on the value itself, never on what
// it is compared against, which keeps the order transitive.
func classRank(v Value) int {
	switch v.kind {
	case KindMissing:
		return 0
	case KindBool:
		return 1
	case KindNumber:
		return 2
	case KindTime:
		return 3
	default:
		if _, ok := v.Num(); ok {
			return 2
		}
		return 4
	}
}

// Compare is the natural total order over values. Classes order by rank;
// within the numeric class values compare as float64 with kind and
// display string as tiebreaks (so 7 and "007" stay distinct keys with a
// consistent order); non-numeric strings compare naturally.
func Compare(a, b Value) int {
	ca, cb := classRank(a), classRank(b)
	if ca != cb {
		return compareInts(ca, cb)
	}
	switch ca {
	case 0:
		return 0
	case 1:
		return compareBools(a.b, b.b)
	case 2:
		na, _ := a.Num()
		nb, _ := b.Num()
		if c := compareFloats(na, nb); c != 0 {
			return c
		}
		if c := compareInts(int(a.kind), int(b.kind)); c != 0 {
			return c
		}
		return strings.Compare(a.Display(), b.Display())
	case 3:
		if a.t.Before(b.t) {
			return -1
		}
		if a.t.After(b.t) {
			return 1
		}
		return 0
	default:
		return naturalsort.CompareStrings(a.Display(), b.Display())
	}
}

// SortAs returns a comparator that ranks values listed in order by their
// position in that list; values absent from the list rank after every
// listed value and fall back to Compare among themselves. The result is a
// total order, which key ordering relies on.
func SortAs(order []string) func(a, b Value) int {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		if _, dup := rank[v]; !dup {
			rank[v] = i
		}
	}
	return func(a, b Value) int {
		ia, aok := rank[a.Display()]
		ib, bok := rank[b.Display()]
		switch {
		case aok && bok:
			return compareInts(ia, ib)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return Compare(a, b)
		}
	}
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareFloats(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}
