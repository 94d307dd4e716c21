// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package objectmapper synthesizes Swift property fragments for models that
// adopt ObjectMapper's ImmutableMappable protocol.
//
// Every supported property contributes:
//   - a `public var` optional declaration
//   - a dictionaryRepresentation line
//   - NSCoding decode and encode statements
//   - a SerializationKeys constant holding the JSON key
//   - a `try? map.value(...)` initializer statement
//
// Decoders, encoders and initializers refer to the SerializationKeys
// constant, never to the key literal.
package objectmapper

import (
	"fmt"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/swift"
	"github.com/albertocavalcante/modelgen/model"
)

// Synthesizer implements [generator.Synthesizer] for ImmutableMappable models.
type Synthesizer struct{}

// New creates a new ObjectMapper synthesizer.
func New() *Synthesizer {
	return &Synthesizer{}
}

// Metadata returns information about this synthesizer.
func (s *Synthesizer) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:            "objectmapper",
		Version:         "1.0.0",
		Description:     "Generate Swift models conforming to ObjectMapper's ImmutableMappable",
		ModuleName:      "ObjectMapper",
		BaseElementName: "ImmutableMappable",
		TemplateName:    "ImmutableObjectMapperTemplate",
		FileExtensions:  []string{".swift"},
	}
}

// Synthesize appends the fragments for d to b. Null properties are skipped.
// It panics if d has an unrecognized category; validate descriptors first.
func (s *Synthesizer) Synthesize(d model.PropertyDescriptor, b *generator.Bundle) {
	f, ok := fragmentsFor(d)
	if !ok {
		return
	}
	b.Append(f)
}

func fragmentsFor(d model.PropertyDescriptor) (generator.PropertyFragments, bool) {
	k := constantName(d.Name)
	f := generator.PropertyFragments{Name: d.Name, Constant: k}

	switch d.Category {
	case model.Scalar:
		f.Declaration = declaration(d.Name, d.TypeName)
		f.Description = primitiveDescription(d.Name, k)
		f.Decoder = decoder(d.Name, d.TypeName, k)
		f.Encoder = encoder(d.Name, k)

	case model.ScalarArray:
		typ := swift.ArrayOf(d.TypeName)
		f.Declaration = declaration(d.Name, typ)
		f.Description = primitiveDescription(d.Name, k)
		f.Decoder = decoder(d.Name, typ, k)
		f.Encoder = arrayEncoder(d.Name, typ, k)

	case model.NestedObject:
		f.Declaration = declaration(d.Name, d.TypeName)
		f.Description = objectDescription(d.Name, k)
		f.Decoder = decoder(d.Name, d.TypeName, k)
		f.Encoder = encoder(d.Name, k)

	case model.NestedObjectArray:
		typ := swift.ArrayOf(d.TypeName)
		f.Declaration = declaration(d.Name, typ)
		f.Description = objectArrayDescription(d.Name, k)
		f.Decoder = decoder(d.Name, typ, k)
		f.Encoder = arrayEncoder(d.Name, typ, k)

	case model.EmptyArray:
		// No element to infer from: fall back to an untyped array.
		typ := swift.ArrayOf(swift.TypeAny)
		f.Declaration = declaration(d.Name, typ)
		f.Description = primitiveDescription(d.Name, k)
		f.Decoder = decoder(d.Name, typ, k)
		f.Encoder = arrayEncoder(d.Name, typ, k)

	case model.Null:
		// Null-only values are not supported yet; the property is left out.
		return f, false

	default:
		panic(fmt.Sprintf("objectmapper: property %q: %s: %s", d.Name, model.ErrUnknownCategory, d.Category))
	}

	f.StringConstant = stringConstant(d.Name, d.Key)
	f.Initializer = initializer(d.Name, k)
	return f, true
}
