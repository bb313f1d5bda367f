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

	"github.com/spf13/cobra"

	"github.com/google/crosstab/core/records"
)

var attrsCmd = &cobra.Command{
	Use:   "attrs [file.csv]",
	Short: "List attributes and their distinct values with counts.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		recs := loadRecords(args[0])
		idx := records.BuildIndex(recs)
		for _, attr := range idx.Attributes() {
			fmt.Printf("%s:\n", attr)
			for _, value := range idx.Values(attr) {
				fmt.Printf("  %s (%d)\n", value, idx.Count(attr, value))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(attrsCmd)
}
