// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/modelgen/model"

// ResolveDeps expands a model filter to include all transitively
// referenced nested models. Returns nil if filter is nil
// (meaning "generate all models").
func ResolveDeps(models []model.Model, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	byName := make(map[string]*model.Model, len(models))
	for i := range models {
		byName[models[i].Name] = &models[i]
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(byName, name, expanded)
	}
	return expanded
}

// collectDeps recursively collects all models referenced by name.
func collectDeps(byName map[string]*model.Model, name string, visited map[string]bool) {
	if visited[name] {
		return // Already processed or cycle
	}
	visited[name] = true

	m, ok := byName[name]
	if !ok {
		return
	}
	for _, ref := range m.References() {
		collectDeps(byName, ref, visited)
	}
}

// Filter returns the models selected by filter, preserving order.
// A nil filter selects every model.
func Filter(models []model.Model, filter map[string]bool) []model.Model {
	if filter == nil {
		return models
	}
	var out []model.Model
	for _, m := range models {
		if filter[m.Name] {
			out = append(out, m)
		}
	}
	return out
}
