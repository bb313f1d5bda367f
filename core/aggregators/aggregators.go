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

// Package aggregators provides the registry of named aggregation
// algorithms and their accumulators. A factory, bound to an ordered list
// of value attributes, produces a fresh accumulator per pivot cell;
// accumulators ingest records one at a time and format a final value on
// demand.
package aggregators

import (
	"errors"
	"fmt"

	"github.com/google/crosstab/core/records"
)

// ErrUnknownAggregator is returned when a name is not in the registry.
// The engine rejects unknown names rather than substituting a default;
// the controls layer may apply its own fallback before calling in.
var ErrUnknownAggregator = errors.New("unknown aggregator")

// Accumulator is per-cell aggregation state. Push ingests one record
// using only the accumulator's bound attributes; Format returns the
// current finalized display value and is safe to call at any time,
// including before the first Push.
type Accumulator interface {
	Push(r records.Record)
	// Value returns the numeric result, used for value-ordered key
	// sorting. Accumulators without a numeric result return 0.
	Value() float64
	Format() string
}

// Factory creates accumulators for one named aggregation algorithm.
type Factory interface {
	// NumInputs is the number of value attributes the algorithm consumes.
	NumInputs() int
	// New returns a fresh accumulator bound to the given value
	// attributes. Fewer attributes than NumInputs is tolerated: the
	// missing bindings read as the sentinel, which value-based
	// accumulators skip.
	New(attrs []string) Accumulator
}

// funcFactory adapts a constructor function to the Factory interface.
type funcFactory struct {
	numInputs int
	construct func(attrs []string) Accumulator
}

func (f funcFactory) NumInputs() int                 { return f.numInputs }
func (f funcFactory) New(attrs []string) Accumulator { return f.construct(attrs) }

// NewFactory wraps a constructor function as a Factory.
func NewFactory(numInputs int, construct func(attrs []string) Accumulator) Factory {
	return funcFactory{numInputs: numInputs, construct: construct}
}

// Registry maps aggregator names to factories. The built-in set is closed
// over known algorithms; Register is the extension point for callers that
// bring their own.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces a named factory.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.factories[name] = f
}

// Lookup resolves a name, failing with ErrUnknownAggregator.
func (r *Registry) Lookup(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregator, name)
	}
	return f, nil
}

// Has reports whether the name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in registration order, for menus and
// for fallback-to-first policies in the controls layer.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Built-in aggregator names.
const (
	Count              = "Count"
	CountUnique        = "Count Unique Values"
	ListUnique         = "List Unique Values"
	Sum                = "Sum"
	IntSum             = "Integer Sum"
	Average            = "Average"
	Median             = "Median"
	SampleVariance     = "Sample Variance"
	SampleStdDev       = "Sample Standard Deviation"
	PopulationVariance = "Variance"
	PopulationStdDev   = "Standard Deviation"
	Minimum            = "Minimum"
	Maximum            = "Maximum"
	First              = "First"
	Last               = "Last"
	SumOverSum         = "Sum over Sum"
	SumOverSumPct      = "Sum over Sum %"
)

// Builtin returns a registry populated with the built-in aggregators.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(Count, NewFactory(0, func(attrs []string) Accumulator {
		return &countAcc{}
	}))
	r.Register(CountUnique, NewFactory(1, func(attrs []string) Accumulator {
		return newUniqueAcc(first(attrs), false)
	}))
	r.Register(ListUnique, NewFactory(1, func(attrs []string) Accumulator {
		return newUniqueAcc(first(attrs), true)
	}))
	r.Register(Sum, NewFactory(1, func(attrs []string) Accumulator {
		return &sumAcc{attr: first(attrs)}
	}))
	r.Register(IntSum, NewFactory(1, func(attrs []string) Accumulator {
		return &intSumAcc{attr: first(attrs)}
	}))
	r.Register(Average, NewFactory(1, func(attrs []string) Accumulator {
		return &statAcc{attr: first(attrs), mode: statAvg}
	}))
	r.Register(Median, NewFactory(1, func(attrs []string) Accumulator {
		return &medianAcc{attr: first(attrs)}
	}))
	r.Register(SampleVariance, NewFactory(1, func(attrs []string) Accumulator {
		return &statAcc{attr: first(attrs), mode: statVar, ddof: 1}
	}))
	r.Register(SampleStdDev, NewFactory(1, func(attrs []string) Accumulator {
		return &statAcc{attr: first(attrs), mode: statStdDev, ddof: 1}
	}))
	r.Register(PopulationVariance, NewFactory(1, func(attrs []string) Accumulator {
		return &statAcc{attr: first(attrs), mode: statVar}
	}))
	r.Register(PopulationStdDev, NewFactory(1, func(attrs []string) Accumulator {
		return &statAcc{attr: first(attrs), mode: statStdDev}
	}))
	r.Register(Minimum, NewFactory(1, func(attrs []string) Accumulator {
		return &extremumAcc{attr: first(attrs), wantMax: false}
	}))
	r.Register(Maximum, NewFactory(1, func(attrs []string) Accumulator {
		return &extremumAcc{attr: first(attrs), wantMax: true}
	}))
	r.Register(First, NewFactory(1, func(attrs []string) Accumulator {
		return &edgeAcc{attr: first(attrs), wantLast: false}
	}))
	r.Register(Last, NewFactory(1, func(attrs []string) Accumulator {
		return &edgeAcc{attr: first(attrs), wantLast: true}
	}))
	r.Register(SumOverSum, NewFactory(2, func(attrs []string) Accumulator {
		return &sumOverSumAcc{num: first(attrs), denom: second(attrs)}
	}))
	r.Register(SumOverSumPct, NewFactory(2, func(attrs []string) Accumulator {
		return &sumOverSumAcc{num: first(attrs), denom: second(attrs), percent: true}
	}))
	return r
}

// first and second tolerate under-bound attribute lists: a missing
// binding reads as the empty attribute name, which every record resolves
// to the sentinel.
func first(attrs []string) string {
	if len(attrs) > 0 {
		return attrs[0]
	}
	return ""
}

func second(attrs []string) string {
	if len(attrs) > 1 {
		return attrs[1]
	}
	return ""
}
