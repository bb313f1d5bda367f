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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render [file.csv]",
	Short: "Render a pivot table as ASCII.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows, _ := cmd.Flags().GetStringSlice("rows")
		cols, _ := cmd.Flags().GetStringSlice("cols")
		agg, _ := cmd.Flags().GetString("agg")
		vals, _ := cmd.Flags().GetStringSlice("vals")
		excludes, _ := cmd.Flags().GetStringSlice("exclude")
		rowOrderName, _ := cmd.Flags().GetString("row-order")
		colOrderName, _ := cmd.Flags().GetString("col-order")
		width, _ := cmd.Flags().GetInt("width")

		filter, err := parseExcludes(excludes)
		if err != nil {
			fail(err)
		}
		rowOrder, err := pivot.ParseOrder(rowOrderName)
		if err != nil {
			fail(err)
		}
		colOrder, err := pivot.ParseOrder(colOrderName)
		if err != nil {
			fail(err)
		}

		recs := loadRecords(args[0])
		table, err := pivot.Config{
			Rows:         rows,
			Cols:         cols,
			Aggregations: []pivot.AggregatorSpec{{Name: agg, Attrs: vals}},
			Filter:       filter,
			RowOrder:     rowOrder,
			ColOrder:     colOrder,
		}.Build(recs)
		if err != nil {
			fail(err)
		}

		if width == 0 {
			// Size the output to the terminal when stdout is one.
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
			}
		}

		fmt.Print(rendering.ToAscii(table, rendering.AsciiOptions{MaxWidth: width}))
	},
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringSlice("rows", nil, "row grouping attributes")
	renderCmd.Flags().StringSlice("cols", nil, "column grouping attributes")
	renderCmd.Flags().String("agg", aggregators.Count, "aggregator name")
	renderCmd.Flags().StringSlice("vals", nil, "value attributes bound to the aggregator")
	renderCmd.Flags().StringSlice("exclude", nil, "exclude attribute=value from aggregation (repeatable)")
	renderCmd.Flags().String("row-order", "key_a_to_z", "row key ordering policy")
	renderCmd.Flags().String("col-order", "key_a_to_z", "column key ordering policy")
	renderCmd.Flags().Int("width", 0, "clip output to width (0 = terminal width)")
}
