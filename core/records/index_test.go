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
	"reflect"
	"testing"
)

func TestBuildIndexCounts(t *testing.T) {
	recs := []Record{
		{"region": String("North"), "status": String("Open")},
		{"region": String("North"), "status": String("Closed")},
		{"region": String("South"), "status": String("Open")},
	}
	idx := BuildIndex(recs)

	if idx.Records() != 3 {
		t.Fatalf("expected 3 records indexed, got %d", idx.Records())
	}
	if got := idx.Count("region", "North"); got != 2 {
		t.Errorf("Count(region, North) = %d, want 2", got)
	}
	if got := idx.Count("region", "South"); got != 1 {
		t.Errorf("Count(region, South) = %d, want 1", got)
	}
	if got := idx.Values("status"); !reflect.DeepEqual(got, []string{"Closed", "Open"}) {
		t.Errorf("Values(status) = %v", got)
	}
	if idx.Values("unknown") != nil {
		t.Error("unindexed attribute should return nil values")
	}
}

func TestBuildIndexValuesNaturalOrder(t *testing.T) {
	recs := []Record{
		{"host": String("node10")},
		{"host": String("node2")},
		{"host": String("node1")},
	}
	idx := BuildIndex(recs)

	// Menu values order naturally, matching the key ordering shown next
	// to them, not byte-wise.
	want := []string{"node1", "node2", "node10"}
	if got := idx.Values("host"); !reflect.DeepEqual(got, want) {
		t.Errorf("Values(host) = %v, want %v", got, want)
	}
}

func TestBuildIndexSentinelBackfill(t *testing.T) {
	// The "late" attribute first appears at record index 2, so the two
	// earlier records retroactively count as sentinel occurrences.
	recs := []Record{
		{"a": String("x")},
		{"a": String("y")},
		{"a": String("z"), "late": String("v")},
		{"a": String("x")},
	}
	idx := BuildIndex(recs)

	if got := idx.Count("late", MissingLabel); got != 3 {
		t.Errorf("Count(late, null) = %d, want 3 (2 back-filled + 1 genuinely missing)", got)
	}
	if got := idx.Count("late", "v"); got != 1 {
		t.Errorf("Count(late, v) = %d, want 1", got)
	}
}

func TestBuildIndexIdempotent(t *testing.T) {
	recs := []Record{
		{"a": String("x"), "n": Number(1)},
		{"b": String("y")},
		{"a": String("x")},
	}
	first := BuildIndex(recs)
	second := BuildIndex(recs)

	if !reflect.DeepEqual(first.Attributes(), second.Attributes()) {
		t.Errorf("attribute order differs across rebuilds: %v vs %v",
			first.Attributes(), second.Attributes())
	}
	for _, attr := range first.Attributes() {
		if !reflect.DeepEqual(first.Values(attr), second.Values(attr)) {
			t.Errorf("values for %q differ across rebuilds", attr)
		}
		for _, v := range first.Values(attr) {
			if first.Count(attr, v) != second.Count(attr, v) {
				t.Errorf("count for %q=%q differs across rebuilds", attr, v)
			}
		}
	}
}

func TestBuildIndexEmpty(t *testing.T) {
	idx := BuildIndex(nil)
	if idx.Records() != 0 {
		t.Errorf("expected 0 records, got %d", idx.Records())
	}
	if len(idx.Attributes()) != 0 {
		t.Errorf("expected no attributes, got %v", idx.Attributes())
	}
}
