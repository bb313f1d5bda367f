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

// Package naturalsort provides natural string comparison: embedded digit
// runs compare by numeric value, so "a2" sorts before "a10". It is the
// string leg of the value ordering in package records and orders the
// display strings in attribute menus.
package naturalsort

import "strings"

// CompareStrings compares two strings naturally: both are split into
// alternating runs of digits and non-digits, digit runs compare
// numerically (so "a2" sorts before "a10") and other runs compare
// case-insensitively, with a case-sensitive comparison as the final
// tiebreak so the order stays total.
func CompareStrings(a, b string) int {
	ra, rb := a, b
	for ra != "" && rb != "" {
		var da, db string
		da, ra = splitRun(ra)
		db, rb = splitRun(rb)

		if isDigits(da) && isDigits(db) {
			if c := compareDigitRuns(da, db); c != 0 {
				return c
			}
			continue
		}
		if c := strings.Compare(strings.ToLower(da), strings.ToLower(db)); c != 0 {
			return c
		}
	}
	if ra != "" {
		return 1
	}
	if rb != "" {
		return -1
	}
	// Runs were equal ignoring case; fall back to a byte comparison so
	// "a" and "A" compare consistently instead of colliding.
	return strings.Compare(a, b)
}

// splitRun removes the leading run of digits or non-digits from s.
func splitRun(s string) (run, rest string) {
	digits := s[0] >= '0' && s[0] <= '9'
	for i := 0; i < len(s); i++ {
		d := s[i] >= '0' && s[i] <= '9'
		if d != digits {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareDigitRuns compares two digit runs numerically without parsing,
// so arbitrarily long runs cannot overflow: strip leading zeros, compare
// lengths, then compare digit by digit. Runs that differ only in leading
// zeros tiebreak on run length ("007" after "7").
func compareDigitRuns(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return 0
}
