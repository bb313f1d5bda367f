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

package rendering

import (
	"strings"
	"testing"

	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/records"
)

func buildTable(t *testing.T) *pivot.Table {
	t.Helper()
	recs := []records.Record{
		{"region": records.String("A"), "status": records.String("X"), "amount": records.Number(1)},
		{"region": records.String("A"), "status": records.String("Y"), "amount": records.Number(2)},
		{"region": records.String("B"), "status": records.String("X"), "amount": records.Number(3)},
	}
	cfg := pivot.Config{
		Rows:         []string{"region"},
		Cols:         []string{"status"},
		Aggregations: []pivot.AggregatorSpec{{Name: aggregators.Sum, Attrs: []string{"amount"}}},
	}
	table, err := cfg.Build(recs)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return table
}

func TestToAscii(t *testing.T) {
	out := ToAscii(buildTable(t), AsciiOptions{})

	want := strings.Join([]string{
		"+-----------------+---+---+--------+",
		"| region \\ status | X | Y | Totals |",
		"+-----------------+---+---+--------+",
		"| A               | 1 | 2 | 3      |",
		"| B               | 3 |   | 3      |",
		"+-----------------+---+---+--------+",
		"| Totals          | 4 | 2 | 6      |",
		"+-----------------+---+---+--------+",
		"",
	}, "\n")
	if out != want {
		t.Errorf("ToAscii output:\n%s\nwant:\n%s", out, want)
	}
}

func TestToAsciiMaxWidth(t *testing.T) {
	out := ToAscii(buildTable(t), AsciiOptions{MaxWidth: 20})
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 20 {
			t.Errorf("line exceeds the width limit: %q", line)
		}
	}
}

func TestToAsciiEmptyTable(t *testing.T) {
	cfg := pivot.Config{Rows: []string{"region"}}
	table, err := cfg.Build(nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	out := ToAscii(table, AsciiOptions{})
	if !strings.Contains(out, "Totals") {
		t.Errorf("empty table output lacks a totals row:\n%s", out)
	}
	if !strings.Contains(out, "| 0 ") && !strings.Contains(out, "| 0") {
		t.Errorf("empty table should show a zero Count grand total:\n%s", out)
	}
}

func TestTupleLabel(t *testing.T) {
	tests := []struct {
		tuple []records.Value
		want  string
	}{
		{nil, "All"},
		{[]records.Value{records.String("A")}, "A"},
		{[]records.Value{records.String("A"), records.Number(7)}, "A / 7"},
		{[]records.Value{records.Missing()}, "null"},
	}
	for _, tt := range tests {
		if got := TupleLabel(tt.tuple); got != tt.want {
			t.Errorf("TupleLabel(%v) = %q, want %q", tt.tuple, got, tt.want)
		}
	}
}

func TestCellText(t *testing.T) {
	if got := CellText(nil); got != "" {
		t.Errorf("nil cell text = %q, want empty", got)
	}

	registry := aggregators.Builtin()
	count, err := registry.Lookup(aggregators.Count)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	sum, err := registry.Lookup(aggregators.Sum)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	accs := []aggregators.Accumulator{count.New(nil), sum.New([]string{"v"})}
	accs[0].Push(records.Record{"v": records.Number(5)})
	accs[1].Push(records.Record{"v": records.Number(5)})
	if got := CellText(accs); got != "1; 5" {
		t.Errorf("multi-aggregation cell text = %q, want \"1; 5\"", got)
	}
}
