// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"strings"
)

// ConstructKind selects whether the generated type has value or reference
// semantics. Only the file skeleton depends on it.
type ConstructKind int

const (
	// Struct generates a value type.
	Struct ConstructKind = iota

	// Class generates a reference type.
	Class
)

// String returns the Swift keyword for the construct.
func (k ConstructKind) String() string {
	switch k {
	case Struct:
		return "struct"
	case Class:
		return "class"
	default:
		return fmt.Sprintf("ConstructKind(%d)", int(k))
	}
}

// ParseConstructKind parses "struct" or "class", ignoring case.
func ParseConstructKind(s string) (ConstructKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "struct":
		return Struct, nil
	case "class":
		return Class, nil
	}
	return 0, fmt.Errorf("unknown construct kind %q (want struct or class)", s)
}

// Config contains the model generation configuration.
type Config struct {
	// Construct selects value or reference semantics.
	Construct ConstructKind

	// BaseClassName names the root model.
	BaseClassName string

	// Prefix is prepended to every generated type name.
	Prefix string

	// Author and Company fill the file header.
	Author  string
	Company string

	// NSCoding adds NSCoding conformance (classes only).
	NSCoding bool

	// Final marks generated classes final.
	Final bool

	// IncludeHeader emits the comment header at the top of each file.
	IncludeHeader bool

	// Types filters to specific model names (empty = all).
	Types []string

	// ResolveDeps includes nested models referenced by filtered ones.
	ResolveDeps bool

	// Options contains template options. The renderer exposes them as
	// options.<key>; "module" replaces the imported module name.
	Options map[string]string
}

// Option returns a variant-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
