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

package aggregators

import (
	"errors"
	"math"
	"testing"

	"github.com/google/crosstab/core/records"
)

func pushAll(acc Accumulator, values ...float64) {
	for _, v := range values {
		acc.Push(records.Record{"v": records.Number(v)})
	}
}

func newAcc(t *testing.T, name string, attrs ...string) Accumulator {
	t.Helper()
	f, err := Builtin().Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) failed: %v", name, err)
	}
	return f.New(attrs)
}

func TestRegistryUnknownName(t *testing.T) {
	_, err := Builtin().Lookup("No Such Aggregator")
	if err == nil {
		t.Fatal("expected an error for an unknown aggregator name")
	}
	if !errors.Is(err, ErrUnknownAggregator) {
		t.Errorf("expected ErrUnknownAggregator, got %v", err)
	}
}

func TestRegistryNamesOrder(t *testing.T) {
	names := Builtin().Names()
	if len(names) == 0 {
		t.Fatal("built-in registry should not be empty")
	}
	// Count is registered first: it is the fallback the controls layer
	// substitutes for unknown names.
	if names[0] != Count {
		t.Errorf("first registered aggregator = %q, want %q", names[0], Count)
	}
}

func TestCount(t *testing.T) {
	acc := newAcc(t, Count)
	if acc.Format() != "0" {
		t.Errorf("neutral Count = %q, want \"0\"", acc.Format())
	}
	// Count takes no value attributes, so even all-sentinel records count.
	acc.Push(records.Record{})
	acc.Push(records.Record{"v": records.Number(1)})
	if acc.Format() != "2" {
		t.Errorf("Count = %q, want \"2\"", acc.Format())
	}
}

func TestSum(t *testing.T) {
	acc := newAcc(t, Sum, "v")
	pushAll(acc, 1, 2, 3.5)
	// Non-numeric and missing values contribute nothing.
	acc.Push(records.Record{"v": records.String("abc")})
	acc.Push(records.Record{})
	if acc.Value() != 6.5 {
		t.Errorf("Sum value = %v, want 6.5", acc.Value())
	}
	if acc.Format() != "6.5" {
		t.Errorf("Sum format = %q, want \"6.5\"", acc.Format())
	}
}

func TestIntSum(t *testing.T) {
	acc := newAcc(t, IntSum, "v")
	pushAll(acc, 1.9, 2.9)
	if acc.Format() != "3" {
		t.Errorf("IntSum = %q, want \"3\" (values truncate)", acc.Format())
	}
}

func TestAverage(t *testing.T) {
	acc := newAcc(t, Average, "v")
	if acc.Format() != "" {
		t.Errorf("neutral Average = %q, want empty", acc.Format())
	}
	pushAll(acc, 2, 4, 6)
	if acc.Value() != 4 {
		t.Errorf("Average = %v, want 4", acc.Value())
	}
}

func TestMedian(t *testing.T) {
	odd := newAcc(t, Median, "v")
	pushAll(odd, 5, 1, 3)
	if odd.Value() != 3 {
		t.Errorf("odd Median = %v, want 3", odd.Value())
	}

	even := newAcc(t, Median, "v")
	pushAll(even, 4, 1, 2, 3)
	if even.Value() != 2.5 {
		t.Errorf("even Median = %v, want 2.5", even.Value())
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	// Values 2, 4, 4, 4, 5, 5, 7, 9: population variance 4, stddev 2.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	popVar := newAcc(t, PopulationVariance, "v")
	pushAll(popVar, values...)
	if math.Abs(popVar.Value()-4) > 1e-9 {
		t.Errorf("population variance = %v, want 4", popVar.Value())
	}

	popDev := newAcc(t, PopulationStdDev, "v")
	pushAll(popDev, values...)
	if math.Abs(popDev.Value()-2) > 1e-9 {
		t.Errorf("population stddev = %v, want 2", popDev.Value())
	}

	sampleVar := newAcc(t, SampleVariance, "v")
	pushAll(sampleVar, values...)
	want := 32.0 / 7.0
	if math.Abs(sampleVar.Value()-want) > 1e-9 {
		t.Errorf("sample variance = %v, want %v", sampleVar.Value(), want)
	}

	// A single value has no sample variance; the result stays neutral.
	single := newAcc(t, SampleVariance, "v")
	pushAll(single, 42)
	if single.Value() != 0 {
		t.Errorf("sample variance of one value = %v, want 0", single.Value())
	}
}

func TestMinimumMaximum(t *testing.T) {
	min := newAcc(t, Minimum, "v")
	max := newAcc(t, Maximum, "v")
	for _, v := range []float64{5, -2, 9, 3} {
		min.Push(records.Record{"v": records.Number(v)})
		max.Push(records.Record{"v": records.Number(v)})
	}
	if min.Value() != -2 {
		t.Errorf("Minimum = %v, want -2", min.Value())
	}
	if max.Value() != 9 {
		t.Errorf("Maximum = %v, want 9", max.Value())
	}

	empty := newAcc(t, Minimum, "v")
	if empty.Format() != "" {
		t.Errorf("neutral Minimum = %q, want empty", empty.Format())
	}
}

func TestFirstLast(t *testing.T) {
	first := newAcc(t, First, "v")
	last := newAcc(t, Last, "v")
	for _, s := range []string{"b3", "a10", "a2"} {
		first.Push(records.Record{"v": records.String(s)})
		last.Push(records.Record{"v": records.String(s)})
	}
	// First and Last are by natural order of the value, not arrival order.
	if first.Format() != "a2" {
		t.Errorf("First = %q, want \"a2\"", first.Format())
	}
	if last.Format() != "b3" {
		t.Errorf("Last = %q, want \"b3\"", last.Format())
	}
}

func TestCountUniqueAndListUnique(t *testing.T) {
	unique := newAcc(t, CountUnique, "v")
	list := newAcc(t, ListUnique, "v")
	for _, s := range []string{"x", "y", "x", "z", "y"} {
		unique.Push(records.Record{"v": records.String(s)})
		list.Push(records.Record{"v": records.String(s)})
	}
	if unique.Format() != "3" {
		t.Errorf("CountUnique = %q, want \"3\"", unique.Format())
	}
	if list.Format() != "x, y, z" {
		t.Errorf("ListUnique = %q, want \"x, y, z\"", list.Format())
	}
}

func TestSumOverSum(t *testing.T) {
	acc := newAcc(t, SumOverSum, "num", "den")
	acc.Push(records.Record{"num": records.Number(3), "den": records.Number(2)})
	acc.Push(records.Record{"num": records.Number(1), "den": records.Number(6)})
	if acc.Value() != 0.5 {
		t.Errorf("SumOverSum = %v, want 0.5", acc.Value())
	}

	pct := newAcc(t, SumOverSumPct, "num", "den")
	pct.Push(records.Record{"num": records.Number(1), "den": records.Number(4)})
	if pct.Format() != "25.0%" {
		t.Errorf("SumOverSumPct = %q, want \"25.0%%\"", pct.Format())
	}

	// Zero denominator stays neutral instead of dividing by zero.
	zero := newAcc(t, SumOverSum, "num", "den")
	zero.Push(records.Record{"num": records.Number(1)})
	if zero.Format() != "" {
		t.Errorf("SumOverSum with zero denominator = %q, want empty", zero.Format())
	}
}

func TestUnderBoundAttributes(t *testing.T) {
	// Sum with no bound attribute reads the sentinel for every record:
	// degenerate but non-crashing.
	acc := newAcc(t, Sum)
	acc.Push(records.Record{"v": records.Number(5)})
	if acc.Value() != 0 {
		t.Errorf("under-bound Sum = %v, want 0", acc.Value())
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{3.25, "3.25"},
		{3.10, "3.1"},
		{-2, "-2"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
