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

// Package server serves an HTML view of a pivot table over one record
// collection. All pivot configuration travels in the URL; every request
// is a full rebuild, so the server holds no mutable view state.
package server

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/google/crosstab/core/aggregators"
	"github.com/google/crosstab/core/query"
	"github.com/google/crosstab/core/records"
	"github.com/google/crosstab/core/rendering"
	"github.com/google/crosstab/core/views"
)

// Server renders pivot views over one dataset.
type Server struct {
	title    string
	records  []records.Record
	registry *aggregators.Registry
	renderer *rendering.PivotRenderer
}

// NewServer creates a server over the record collection. A nil registry
// means the built-in aggregators.
func NewServer(title string, recs []records.Record, registry *aggregators.Registry) (*Server, error) {
	renderer, err := rendering.NewPivotRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if registry == nil {
		registry = aggregators.Builtin()
	}
	return &Server{
		title:    title,
		records:  recs,
		registry: registry,
		renderer: renderer,
	}, nil
}

// Handler returns the HTTP handler for the pivot view.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePivot)
	return mux
}

// ListenAndServe serves the pivot view on the given address until the
// listener fails.
func (s *Server) ListenAndServe(addr string) error {
	log.WithField("addr", addr).Info("serving pivot table")
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handlePivot(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := query.NewQuery(r.URL)
	table, err := q.Config(s.registry).Build(s.records)
	if err != nil {
		// The query layer substitutes known aggregators, so a build error
		// here means a malformed URL.
		log.WithError(err).Warn("pivot build failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vm := views.BuildPivotViewModel(table, q, s.title)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPivot(w, vm); err != nil {
		log.WithError(err).Error("render failed")
		return
	}

	log.WithFields(log.Fields{
		"records": len(s.records),
		"rows":    len(table.RowKeys()),
		"cols":    len(table.ColKeys()),
		"elapsed": time.Since(start),
	}).Debug("pivot rendered")
}
