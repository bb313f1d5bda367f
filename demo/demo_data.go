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

// Package demo provides a small sample dataset for trying the pivot
// engine without loading a CSV.
package demo

import "github.com/google/crosstab/core/records"

// CreateDemoRecords returns a small orders dataset. One record omits the
// region attribute on purpose, so the sentinel shows up in demos.
func CreateDemoRecords() []records.Record {
	type order struct {
		region   string
		status   string
		product  string
		amount   float64
		quantity float64
	}
	orders := []order{
		{"North", "Open", "Widget", 100, 5},
		{"North", "Open", "Gadget", 200, 10},
		{"North", "Closed", "Widget", 150, 8},
		{"South", "Open", "Gadget", 300, 15},
		{"South", "Closed", "Widget", 250, 12},
		{"South", "Closed", "Gadget", 350, 18},
		{"East", "Open", "Widget", 120, 6},
		{"East", "Pending", "Gadget", 80, 4},
		{"West", "Closed", "Widget", 410, 20},
		{"", "Pending", "Widget", 60, 3},
	}

	recs := make([]records.Record, 0, len(orders))
	for _, o := range orders {
		rec := records.Record{
			"status":   records.String(o.status),
			"product":  records.String(o.product),
			"amount":   records.Number(o.amount),
			"quantity": records.Number(o.quantity),
		}
		if o.region != "" {
			rec["region"] = records.String(o.region)
		}
		recs = append(recs, rec)
	}
	return recs
}
