// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// PropertyFragments holds every source fragment generated for one property.
type PropertyFragments struct {
	// Name is the property name the fragments were generated for.
	Name string

	// Constant is the identifier bound to the serialization key
	// (e.g., "SerializationKeys.id").
	Constant string

	Declaration    string
	Description    string
	Decoder        string
	Encoder        string
	StringConstant string
	Initializer    string
}

// Bundle accumulates the fragments of one model file in submission order.
//
// A Bundle is owned by a single synthesis pass and is not safe for concurrent
// writers. Entries are never removed or reordered, so index i of every
// projection belongs to the i-th appended property.
type Bundle struct {
	props []PropertyFragments
}

// NewBundle creates an empty Bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// Append adds the fragments of one property.
func (b *Bundle) Append(f PropertyFragments) {
	b.props = append(b.props, f)
}

// Len returns the number of properties in the bundle.
func (b *Bundle) Len() int {
	return len(b.props)
}

// Properties returns a copy of the per-property records.
func (b *Bundle) Properties() []PropertyFragments {
	out := make([]PropertyFragments, len(b.props))
	copy(out, b.props)
	return out
}

// Declarations returns the declaration fragments.
func (b *Bundle) Declarations() []string {
	return b.project(func(f PropertyFragments) string { return f.Declaration })
}

// Descriptions returns the description fragments.
func (b *Bundle) Descriptions() []string {
	return b.project(func(f PropertyFragments) string { return f.Description })
}

// Decoders returns the decoder fragments.
func (b *Bundle) Decoders() []string {
	return b.project(func(f PropertyFragments) string { return f.Decoder })
}

// Encoders returns the encoder fragments.
func (b *Bundle) Encoders() []string {
	return b.project(func(f PropertyFragments) string { return f.Encoder })
}

// StringConstants returns the serialization-key constant fragments.
func (b *Bundle) StringConstants() []string {
	return b.project(func(f PropertyFragments) string { return f.StringConstant })
}

// Initializers returns the initializer fragments.
func (b *Bundle) Initializers() []string {
	return b.project(func(f PropertyFragments) string { return f.Initializer })
}

func (b *Bundle) project(field func(PropertyFragments) string) []string {
	out := make([]string, len(b.props))
	for i, f := range b.props {
		out[i] = field(f)
	}
	return out
}
