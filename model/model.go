// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the classified description of one property discovered
// in a sample document.
//
// A PropertyDescriptor is the contract between the classifier, which inspects
// sample values, and the synthesizers, which turn descriptors into source
// fragments. Descriptors are plain values and are never mutated after
// classification.
package model

import (
	"errors"
	"fmt"
)

// Category is the inferred shape of a property value.
type Category int

// Property categories. The zero value is not a valid category.
const (
	// Scalar is a single primitive value (string, number, boolean).
	Scalar Category = iota + 1

	// ScalarArray is a collection of primitive values.
	ScalarArray

	// NestedObject is a single object that becomes its own model type.
	NestedObject

	// NestedObjectArray is a collection of objects sharing one model type.
	NestedObjectArray

	// EmptyArray is a collection observed with no elements, so its element
	// type cannot be inferred.
	EmptyArray

	// Null is a value observed only as null. Null properties produce no
	// fragments.
	Null
)

var categoryNames = map[Category]string{
	Scalar:            "scalar",
	ScalarArray:       "scalarArray",
	NestedObject:      "nestedObject",
	NestedObjectArray: "nestedObjectArray",
	EmptyArray:        "emptyArray",
	Null:              "null",
}

// String returns the lower camel case name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// IsTyped reports whether descriptors of this category must carry a type name.
func (c Category) IsTyped() bool {
	switch c {
	case Scalar, ScalarArray, NestedObject, NestedObjectArray:
		return true
	}
	return false
}

// IsCollection reports whether the category describes an array.
func (c Category) IsCollection() bool {
	switch c {
	case ScalarArray, NestedObjectArray, EmptyArray:
		return true
	}
	return false
}

// Boundary validation errors.
var (
	ErrMissingName     = errors.New("missing property name")
	ErrMissingKey      = errors.New("missing serialization key")
	ErrUnknownCategory = errors.New("unrecognized property category")
	ErrMissingTypeName = errors.New("missing type name for typed category")
)

// PropertyDescriptor is the classified metadata of one property.
type PropertyDescriptor struct {
	// Name is the identifier-safe property name (e.g., "firstName").
	Name string

	// Key is the original serialization key in the sample (e.g., "first_name").
	Key string

	// Category is the inferred shape of the value.
	Category Category

	// TypeName is the scalar type name, or the element/object type name for
	// collection and object categories. Empty for EmptyArray and Null.
	TypeName string
}

// Validate checks that d satisfies the descriptor contract. Synthesizers
// assume validated input.
func (d PropertyDescriptor) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("key %q: %w", d.Key, ErrMissingName)
	case d.Key == "":
		return fmt.Errorf("property %q: %w", d.Name, ErrMissingKey)
	case !d.Category.Valid():
		return fmt.Errorf("property %q: %w: %s", d.Name, ErrUnknownCategory, d.Category)
	case d.Category.IsTyped() && d.TypeName == "":
		return fmt.Errorf("property %q: %w: %s", d.Name, ErrMissingTypeName, d.Category)
	}
	return nil
}

// Model is one generated type: a name and its properties in document order.
type Model struct {
	// Name is the type name (e.g., "Person", "PersonAddress").
	Name string

	// Properties lists the classified properties in document order.
	Properties []PropertyDescriptor
}

// References returns the names of the nested model types that m refers to,
// in property order and without duplicates.
func (m *Model) References() []string {
	var refs []string
	seen := make(map[string]bool)
	for _, p := range m.Properties {
		if p.Category != NestedObject && p.Category != NestedObjectArray {
			continue
		}
		if seen[p.TypeName] {
			continue
		}
		seen[p.TypeName] = true
		refs = append(refs, p.TypeName)
	}
	return refs
}
