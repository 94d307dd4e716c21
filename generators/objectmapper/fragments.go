// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package objectmapper

import (
	"fmt"

	"github.com/albertocavalcante/modelgen/internal/swift"
)

// keysType is the nested type holding the serialization key constants.
const keysType = "SerializationKeys"

func constantName(name string) string {
	return keysType + "." + name
}

// ── Declarations ────────────────────────────────────────────────────

func declaration(name, typ string) string {
	return fmt.Sprintf("public var %s: %s?", name, typ)
}

func stringConstant(name, key string) string {
	return fmt.Sprintf("static let %s = %s", name, swift.Quote(key))
}

// ── dictionaryRepresentation ────────────────────────────────────────

func primitiveDescription(name, constant string) string {
	return fmt.Sprintf("if let value = %s { dictionary[%s] = value }", name, constant)
}

func objectDescription(name, constant string) string {
	return fmt.Sprintf("if let value = %s { dictionary[%s] = value.dictionaryRepresentation() }", name, constant)
}

func objectArrayDescription(name, constant string) string {
	return fmt.Sprintf("if let value = %s { dictionary[%s] = value.map { $0.dictionaryRepresentation() } }", name, constant)
}

// ── NSCoding ────────────────────────────────────────────────────────

func decoder(name, typ, constant string) string {
	return fmt.Sprintf("self.%s = aDecoder.decodeObject(forKey: %s) as? %s", name, constant, typ)
}

func encoder(name, constant string) string {
	return fmt.Sprintf("aCoder.encode(%s, forKey: %s)", name, constant)
}

// arrayEncoder pins the array type so the element type survives encoding.
func arrayEncoder(name, typ, constant string) string {
	return fmt.Sprintf("aCoder.encode(%s as %s?, forKey: %s)", name, typ, constant)
}

// ── ImmutableMappable ───────────────────────────────────────────────

// initializer binds the field only when the key is present and well typed.
func initializer(name, constant string) string {
	return fmt.Sprintf("self.%s = try? map.value(%s)", name, constant)
}
