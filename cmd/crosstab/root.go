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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/google/crosstab/core/csvimport"
	"github.com/google/crosstab/core/records"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crosstab",
	Short: "Pivot cross-tabulation over flat record collections.",
	Long: "crosstab builds pivot tables from CSV data: pick row and column " +
		"attributes, an aggregator and value attributes, and render the " +
		"result as ASCII or serve it as HTML.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// loadRecords reads the record collection named on the command line.
func loadRecords(path string) []records.Record {
	recs, err := csvimport.ImportFromFile(path, csvimport.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.WithFields(log.Fields{"file": path, "records": len(recs)}).Debug("loaded records")
	return recs
}

// parseExcludes parses repeated --exclude attr=value flags into a filter.
func parseExcludes(excludes []string) (records.Filter, error) {
	filter := make(records.Filter)
	for _, e := range excludes {
		eq := strings.Index(e, "=")
		if eq < 1 {
			return nil, fmt.Errorf("invalid exclude %q, want attribute=value", e)
		}
		filter.Exclude(e[:eq], e[eq+1:])
	}
	return filter, nil
}
