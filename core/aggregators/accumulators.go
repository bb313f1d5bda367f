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
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/crosstab/core/records"
)

// countAcc counts records. It consumes no value attributes, so every
// ingested record counts, sentinel or not.
type countAcc struct {
	n int64
}

func (a *countAcc) Push(r records.Record) { a.n++ }
func (a *countAcc) Value() float64        { return float64(a.n) }
func (a *countAcc) Format() string        { return fmt.Sprintf("%d", a.n) }

// uniqueAcc tracks the distinct display values of one attribute. In list
// mode it formats the values themselves, in first-seen order; otherwise
// it formats their count.
type uniqueAcc struct {
	attr  string
	list  bool
	seen  map[string]bool
	order []string
}

func newUniqueAcc(attr string, list bool) *uniqueAcc {
	return &uniqueAcc{attr: attr, list: list, seen: make(map[string]bool)}
}

func (a *uniqueAcc) Push(r records.Record) {
	v := r.Get(a.attr).Display()
	if !a.seen[v] {
		a.seen[v] = true
		a.order = append(a.order, v)
	}
}

func (a *uniqueAcc) Value() float64 { return float64(len(a.seen)) }

func (a *uniqueAcc) Format() string {
	if a.list {
		return strings.Join(a.order, ", ")
	}
	return fmt.Sprintf("%d", len(a.seen))
}

// sumAcc sums the numeric values of one attribute. Records whose value
// does not coerce to a number, including the sentinel, contribute
// nothing.
type sumAcc struct {
	attr string
	sum  float64
}

func (a *sumAcc) Push(r records.Record) {
	if f, ok := r.Get(a.attr).Num(); ok {
		a.sum += f
	}
}

func (a *sumAcc) Value() float64 { return a.sum }
func (a *sumAcc) Format() string { return formatNumber(a.sum) }

// intSumAcc sums values truncated to integers.
type intSumAcc struct {
	attr string
	sum  int64
}

func (a *intSumAcc) Push(r records.Record) {
	if f, ok := r.Get(a.attr).Num(); ok {
		a.sum += int64(f)
	}
}

func (a *intSumAcc) Value() float64 { return float64(a.sum) }
func (a *intSumAcc) Format() string { return fmt.Sprintf("%d", a.sum) }

type statMode int

const (
	statAvg statMode = iota
	statVar
	statStdDev
)

// statAcc keeps the running count, sum and sum of squares of one
// attribute's numeric values and derives average, variance or standard
// deviation. ddof selects sample (1) versus population (0) statistics.
type statAcc struct {
	attr  string
	mode  statMode
	ddof  int64
	n     int64
	sum   float64
	sumSq float64
}

func (a *statAcc) Push(r records.Record) {
	if f, ok := r.Get(a.attr).Num(); ok {
		a.n++
		a.sum += f
		a.sumSq += f * f
	}
}

func (a *statAcc) variance() float64 {
	if a.n <= a.ddof {
		return 0
	}
	v := (a.sumSq - a.sum*a.sum/float64(a.n)) / float64(a.n-a.ddof)
	if v < 0 {
		// Floating point cancellation can push a zero variance negative.
		v = 0
	}
	return v
}

func (a *statAcc) Value() float64 {
	if a.n == 0 {
		return 0
	}
	switch a.mode {
	case statAvg:
		return a.sum / float64(a.n)
	case statVar:
		return a.variance()
	default:
		return math.Sqrt(a.variance())
	}
}

func (a *statAcc) Format() string {
	if a.n == 0 {
		return ""
	}
	return formatNumber(a.Value())
}

// medianAcc collects every numeric value and sorts at finalize time.
type medianAcc struct {
	attr   string
	values []float64
}

func (a *medianAcc) Push(r records.Record) {
	if f, ok := r.Get(a.attr).Num(); ok {
		a.values = append(a.values, f)
	}
}

func (a *medianAcc) Value() float64 {
	n := len(a.values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, a.values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func (a *medianAcc) Format() string {
	if len(a.values) == 0 {
		return ""
	}
	return formatNumber(a.Value())
}

// extremumAcc tracks the numeric minimum or maximum of one attribute.
type extremumAcc struct {
	attr    string
	wantMax bool
	has     bool
	best    float64
}

func (a *extremumAcc) Push(r records.Record) {
	f, ok := r.Get(a.attr).Num()
	if !ok {
		return
	}
	if !a.has {
		a.has = true
		a.best = f
		return
	}
	if a.wantMax {
		if f > a.best {
			a.best = f
		}
	} else if f < a.best {
		a.best = f
	}
}

func (a *extremumAcc) Value() float64 {
	if !a.has {
		return 0
	}
	return a.best
}

func (a *extremumAcc) Format() string {
	if !a.has {
		return ""
	}
	return formatNumber(a.best)
}

// edgeAcc tracks the naturally-first or naturally-last value of one
// attribute, sentinel values excluded.
type edgeAcc struct {
	attr     string
	wantLast bool
	has      bool
	best     records.Value
}

func (a *edgeAcc) Push(r records.Record) {
	v := r.Get(a.attr)
	if v.IsMissing() {
		return
	}
	if !a.has {
		a.has = true
		a.best = v
		return
	}
	c := records.Compare(v, a.best)
	if a.wantLast {
		if c > 0 {
			a.best = v
		}
	} else if c < 0 {
		a.best = v
	}
}

func (a *edgeAcc) Value() float64 {
	if f, ok := a.best.Num(); ok {
		return f
	}
	return 0
}

func (a *edgeAcc) Format() string {
	if !a.has {
		return ""
	}
	return a.best.Display()
}

// sumOverSumAcc divides the sum of one attribute by the sum of another,
// the ratio-style two-input aggregator.
type sumOverSumAcc struct {
	num     string
	denom   string
	percent bool
	sumNum  float64
	sumDen  float64
	n       int64
}

func (a *sumOverSumAcc) Push(r records.Record) {
	a.n++
	if f, ok := r.Get(a.num).Num(); ok {
		a.sumNum += f
	}
	if f, ok := r.Get(a.denom).Num(); ok {
		a.sumDen += f
	}
}

func (a *sumOverSumAcc) Value() float64 {
	if a.sumDen == 0 {
		return 0
	}
	ratio := a.sumNum / a.sumDen
	if a.percent {
		return ratio * 100
	}
	return ratio
}

func (a *sumOverSumAcc) Format() string {
	if a.n == 0 || a.sumDen == 0 {
		return ""
	}
	if a.percent {
		return fmt.Sprintf("%.1f%%", a.Value())
	}
	return formatNumber(a.Value())
}

// formatNumber formats a float64 for display: integral values print
// without a decimal point, everything else with up to two decimals,
// trailing zeros trimmed.
func formatNumber(v float64) string {
	if v == float64(int64(v)) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	formatted := fmt.Sprintf("%.2f", v)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	return formatted
}
