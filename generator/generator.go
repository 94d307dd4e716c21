// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for model fragment synthesizers.
//
// A synthesizer variant targets one mapping library. It turns each
// [model.PropertyDescriptor] into a [PropertyFragments] record and appends it
// to a [Bundle]; the bundle is later rendered into a file skeleton named by
// the variant's [Metadata].
package generator

import "github.com/albertocavalcante/modelgen/model"

// Synthesizer is the interface that all fragment synthesizers must implement.
type Synthesizer interface {
	// Metadata returns information about this synthesizer variant.
	Metadata() Metadata

	// Synthesize appends the fragments for d to b. Null descriptors append
	// nothing. d must have passed [model.PropertyDescriptor.Validate].
	Synthesize(d model.PropertyDescriptor, b *Bundle)
}

// Metadata describes a synthesizer variant. All values are static.
type Metadata struct {
	// Name is the short identifier (e.g., "objectmapper").
	Name string

	// Version is the synthesizer version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// ModuleName is the framework module imported by generated files.
	ModuleName string

	// BaseElementName is the protocol or base type generated models adopt.
	BaseElementName string

	// TemplateName is the file skeleton the renderer fills in.
	TemplateName string

	// FileExtensions lists typical output extensions (e.g., [".swift"]).
	FileExtensions []string
}
