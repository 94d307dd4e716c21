// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package swift

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reserved holds Swift keywords, names that clash with members every
// generated model inherits, and the parameters and locals of the generated
// methods, which would shadow a property of the same name.
var reserved = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "protocol": true, "public": true,
	"rethrows": true, "static": true, "struct": true, "subscript": true,
	"typealias": true, "var": true, "break": true, "case": true,
	"continue": true, "default": true, "defer": true, "do": true, "else": true,
	"fallthrough": true, "for": true, "guard": true, "if": true, "in": true,
	"repeat": true, "return": true, "switch": true, "where": true,
	"while": true, "as": true, "catch": true, "false": true, "is": true,
	"nil": true, "super": true, "self": true, "throw": true, "throws": true,
	"true": true, "try": true, "Any": true, "Self": true, "Type": true,
	"Protocol": true, "description": true,

	// mapping(map:), dictionaryRepresentation() and NSCoding.
	"map": true, "dictionary": true, "aCoder": true, "aDecoder": true,

	// Types the generated file refers to.
	"Map": true, "NSCoder": true, "NSObject": true,
}

// IsReserved reports whether name cannot be used as-is for a generated
// identifier.
func IsReserved(name string) bool {
	return reserved[name]
}

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// LowerFirst lowercases the leading run of capitals in name. When the run
// is followed by a lowercase letter its last capital starts the next word
// and is kept ("URLPath" -> "urlPath", "ID" -> "id").
func LowerFirst(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n == 0 {
		return name
	}
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}
	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// CamelCase splits s at every character that cannot appear in an
// identifier and joins the capitalized words. Capitals inside a word are
// kept ("user_ID" -> "UserID").
func CamelCase(s string) string {
	var b strings.Builder
	for _, w := range strings.FieldsFunc(s, isSeparator) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func startsWithDigit(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsDigit(r)
}

// VariableName converts a serialization key to a Swift property name.
func VariableName(key string) string {
	name := LowerFirst(CamelCase(key))
	switch {
	case name == "":
		return "property"
	case startsWithDigit(name):
		return "_" + name
	case IsReserved(name):
		return name + "Value"
	}
	return name
}

// ClassName converts a serialization key to a Swift type name with prefix.
func ClassName(prefix, key string) string {
	name := CamelCase(key)
	if name == "" {
		name = "Model"
	}
	name = prefix + name
	switch {
	case startsWithDigit(name):
		return "_" + name
	case IsReserved(name), IsScalar(name):
		return name + "Model"
	}
	return name
}

// Quote returns s as a double-quoted Swift string literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
