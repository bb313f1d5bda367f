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

// Package rendering turns a finished pivot table into output: an HTML
// page via safehtml templates, or an ASCII grid for terminals.
package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

// PivotRenderer renders pivot view models to HTML.
type PivotRenderer struct {
	pivotTemplate *template.Template
}

// NewPivotRenderer creates a renderer from the embedded templates.
func NewPivotRenderer() (*PivotRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	pivotTemplate, err := template.New("pivot.html").ParseFS(trustedFS, "templates/pivot.html")
	if err != nil {
		return nil, err
	}

	return &PivotRenderer{pivotTemplate: pivotTemplate}, nil
}

// RenderPivot writes the HTML page for the view model. The view model
// type is interface{} here to keep this package free of a dependency on
// the views package; in practice it is a *views.PivotViewModel.
func (r *PivotRenderer) RenderPivot(w io.Writer, viewModel interface{}) error {
	return r.pivotTemplate.Execute(w, viewModel)
}
