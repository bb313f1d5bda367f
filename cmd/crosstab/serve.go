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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/google/crosstab/core/records"
	"github.com/google/crosstab/core/server"
	"github.com/google/crosstab/demo"
)

var serveCmd = &cobra.Command{
	Use:   "serve [file.csv]",
	Short: "Serve an interactive HTML pivot view over HTTP.",
	Long: "Serve renders the pivot table as an HTML page. All pivot state " +
		"(rows, cols, aggregator, filters, key ordering) travels in the URL, " +
		"so every link on the page is a full rebuild.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		title, _ := cmd.Flags().GetString("title")
		useDemo, _ := cmd.Flags().GetBool("demo")

		var recs []records.Record
		switch {
		case useDemo:
			recs = demo.CreateDemoRecords()
		case len(args) == 1:
			recs = loadRecords(args[0])
		default:
			_ = cmd.Help()
			os.Exit(1)
		}

		srv, err := server.NewServer(title, recs, nil)
		if err != nil {
			fail(err)
		}
		if err := srv.ListenAndServe(addr); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "localhost:8080", "listen address")
	serveCmd.Flags().String("title", "Crosstab", "page title")
	serveCmd.Flags().Bool("demo", false, "serve the built-in demo dataset")
}
