// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package swift provides Swift type names, identifier rules and literal
// escaping shared by the classifier and the synthesizers.
package swift

// Swift type names produced by classification.
const (
	TypeString = "String"
	TypeInt    = "Int"
	TypeFloat  = "Float"
	TypeBool   = "Bool"
	TypeAny    = "Any"
)

// scalarTypes is the set of all Swift types a scalar sample value maps to.
var scalarTypes = map[string]bool{
	TypeString: true,
	TypeInt:    true,
	TypeFloat:  true,
	TypeBool:   true,
}

// IsScalar reports whether name is a type a scalar sample value maps to.
func IsScalar(name string) bool {
	return scalarTypes[name]
}

// ArrayOf returns the Swift array type with the given element type.
func ArrayOf(element string) string {
	return "[" + element + "]"
}
