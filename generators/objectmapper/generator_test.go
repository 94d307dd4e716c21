// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package objectmapper

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/swift"
	"github.com/albertocavalcante/modelgen/model"
)

func synthesize(descs ...model.PropertyDescriptor) *generator.Bundle {
	s := New()
	b := generator.NewBundle()
	for _, d := range descs {
		s.Synthesize(d, b)
	}
	return b
}

func TestSynthesize_Categories(t *testing.T) {
	tests := []struct {
		name string
		desc model.PropertyDescriptor
		want generator.PropertyFragments
	}{
		{
			name: "scalar",
			desc: model.PropertyDescriptor{Name: "id", Key: "id", Category: model.Scalar, TypeName: "Int"},
			want: generator.PropertyFragments{
				Name:           "id",
				Constant:       "SerializationKeys.id",
				Declaration:    "public var id: Int?",
				Description:    "if let value = id { dictionary[SerializationKeys.id] = value }",
				Decoder:        "self.id = aDecoder.decodeObject(forKey: SerializationKeys.id) as? Int",
				Encoder:        "aCoder.encode(id, forKey: SerializationKeys.id)",
				StringConstant: `static let id = "id"`,
				Initializer:    "self.id = try? map.value(SerializationKeys.id)",
			},
		},
		{
			name: "scalar array",
			desc: model.PropertyDescriptor{Name: "tags", Key: "tags", Category: model.ScalarArray, TypeName: "String"},
			want: generator.PropertyFragments{
				Name:           "tags",
				Constant:       "SerializationKeys.tags",
				Declaration:    "public var tags: [String]?",
				Description:    "if let value = tags { dictionary[SerializationKeys.tags] = value }",
				Decoder:        "self.tags = aDecoder.decodeObject(forKey: SerializationKeys.tags) as? [String]",
				Encoder:        "aCoder.encode(tags as [String]?, forKey: SerializationKeys.tags)",
				StringConstant: `static let tags = "tags"`,
				Initializer:    "self.tags = try? map.value(SerializationKeys.tags)",
			},
		},
		{
			name: "nested object",
			desc: model.PropertyDescriptor{Name: "homeAddress", Key: "home_address", Category: model.NestedObject, TypeName: "HomeAddress"},
			want: generator.PropertyFragments{
				Name:           "homeAddress",
				Constant:       "SerializationKeys.homeAddress",
				Declaration:    "public var homeAddress: HomeAddress?",
				Description:    "if let value = homeAddress { dictionary[SerializationKeys.homeAddress] = value.dictionaryRepresentation() }",
				Decoder:        "self.homeAddress = aDecoder.decodeObject(forKey: SerializationKeys.homeAddress) as? HomeAddress",
				Encoder:        "aCoder.encode(homeAddress, forKey: SerializationKeys.homeAddress)",
				StringConstant: `static let homeAddress = "home_address"`,
				Initializer:    "self.homeAddress = try? map.value(SerializationKeys.homeAddress)",
			},
		},
		{
			name: "nested object array",
			desc: model.PropertyDescriptor{Name: "addresses", Key: "addresses", Category: model.NestedObjectArray, TypeName: "Address"},
			want: generator.PropertyFragments{
				Name:           "addresses",
				Constant:       "SerializationKeys.addresses",
				Declaration:    "public var addresses: [Address]?",
				Description:    "if let value = addresses { dictionary[SerializationKeys.addresses] = value.map { $0.dictionaryRepresentation() } }",
				Decoder:        "self.addresses = aDecoder.decodeObject(forKey: SerializationKeys.addresses) as? [Address]",
				Encoder:        "aCoder.encode(addresses as [Address]?, forKey: SerializationKeys.addresses)",
				StringConstant: `static let addresses = "addresses"`,
				Initializer:    "self.addresses = try? map.value(SerializationKeys.addresses)",
			},
		},
		{
			name: "empty array",
			desc: model.PropertyDescriptor{Name: "friends", Key: "friends", Category: model.EmptyArray},
			want: generator.PropertyFragments{
				Name:           "friends",
				Constant:       "SerializationKeys.friends",
				Declaration:    "public var friends: [Any]?",
				Description:    "if let value = friends { dictionary[SerializationKeys.friends] = value }",
				Decoder:        "self.friends = aDecoder.decodeObject(forKey: SerializationKeys.friends) as? [Any]",
				Encoder:        "aCoder.encode(friends as [Any]?, forKey: SerializationKeys.friends)",
				StringConstant: `static let friends = "friends"`,
				Initializer:    "self.friends = try? map.value(SerializationKeys.friends)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := synthesize(tt.desc)
			if b.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", b.Len())
			}
			if diff := cmp.Diff(tt.want, b.Properties()[0]); diff != "" {
				t.Errorf("fragments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSynthesize_NullIsNoop(t *testing.T) {
	b := synthesize(model.PropertyDescriptor{Name: "deletedAt", Key: "deleted_at", Category: model.Null})
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	for name, seq := range projections(b) {
		if len(seq) != 0 {
			t.Errorf("%s has %d entries, want 0", name, len(seq))
		}
	}
}

func TestSynthesize_ParallelIndex(t *testing.T) {
	descs := []model.PropertyDescriptor{
		{Name: "id", Key: "id", Category: model.Scalar, TypeName: "Int"},
		{Name: "deletedAt", Key: "deleted_at", Category: model.Null},
		{Name: "name", Key: "name", Category: model.Scalar, TypeName: "String"},
		{Name: "friends", Key: "friends", Category: model.EmptyArray},
		{Name: "address", Key: "address", Category: model.NestedObject, TypeName: "Address"},
	}
	b := synthesize(descs...)

	wantNames := []string{"id", "name", "friends", "address"}
	for name, seq := range projections(b) {
		if len(seq) != len(wantNames) {
			t.Fatalf("%s has %d entries, want %d", name, len(seq), len(wantNames))
		}
		for i, prop := range wantNames {
			if !strings.Contains(seq[i], prop) {
				t.Errorf("%s[%d] = %q, want fragment for %q", name, i, seq[i], prop)
			}
		}
	}
}

// Scalar, Null, Scalar keeps fragments for the first and third descriptors only.
func TestSynthesize_NullBetweenScalars(t *testing.T) {
	b := synthesize(
		model.PropertyDescriptor{Name: "first", Key: "first", Category: model.Scalar, TypeName: "String"},
		model.PropertyDescriptor{Name: "middle", Key: "middle", Category: model.Null},
		model.PropertyDescriptor{Name: "last", Key: "last", Category: model.Scalar, TypeName: "Bool"},
	)

	want := []string{"public var first: String?", "public var last: Bool?"}
	if diff := cmp.Diff(want, b.Declarations()); diff != "" {
		t.Errorf("declarations mismatch (-want +got):\n%s", diff)
	}
	for name, seq := range projections(b) {
		if len(seq) != 2 {
			t.Errorf("%s has %d entries, want 2", name, len(seq))
		}
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	descs := []model.PropertyDescriptor{
		{Name: "id", Key: "id", Category: model.Scalar, TypeName: "Int"},
		{Name: "addresses", Key: "addresses", Category: model.NestedObjectArray, TypeName: "Address"},
		{Name: "tags", Key: "tags", Category: model.EmptyArray},
	}
	for _, d := range descs {
		first := synthesize(d).Properties()
		second := synthesize(d).Properties()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: repeated synthesis differs (-first +second):\n%s", d.Name, diff)
		}
	}
}

func TestSynthesize_KeyIndirection(t *testing.T) {
	descs := []model.PropertyDescriptor{
		{Name: "id", Key: "id", Category: model.Scalar, TypeName: "Int"},
		{Name: "firstName", Key: "first_name", Category: model.Scalar, TypeName: "String"},
		{Name: "items", Key: "items", Category: model.NestedObjectArray, TypeName: "Items"},
		{Name: "quoted", Key: `weird "key"`, Category: model.ScalarArray, TypeName: "Float"},
	}

	for _, d := range descs {
		f := synthesize(d).Properties()[0]
		literal := swift.Quote(d.Key)
		for _, frag := range []string{f.Decoder, f.Encoder, f.Initializer} {
			if strings.Contains(frag, literal) {
				t.Errorf("%s: fragment %q contains key literal %s", d.Name, frag, literal)
			}
			if !strings.Contains(frag, f.Constant) {
				t.Errorf("%s: fragment %q does not reference %s", d.Name, frag, f.Constant)
			}
		}
		if !strings.HasSuffix(f.StringConstant, " = "+literal) {
			t.Errorf("%s: constant %q does not bind %s", d.Name, f.StringConstant, literal)
		}
	}
}

func TestSynthesize_EmptyArrayIsUntyped(t *testing.T) {
	// A stray type name on an empty array must not leak into the declaration.
	f := synthesize(model.PropertyDescriptor{Name: "list", Key: "list", Category: model.EmptyArray, TypeName: "String"}).Properties()[0]
	if !strings.Contains(f.Declaration, "[Any]") {
		t.Errorf("declaration %q does not use [Any]", f.Declaration)
	}
	if strings.Contains(f.Declaration, "String") {
		t.Errorf("declaration %q uses a concrete element type", f.Declaration)
	}
}

func TestSynthesize_UnknownCategoryPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown category")
		}
		if msg, _ := r.(string); !strings.Contains(msg, model.ErrUnknownCategory.Error()) {
			t.Errorf("panic message %q does not mention %q", msg, model.ErrUnknownCategory)
		}
	}()
	synthesize(model.PropertyDescriptor{Name: "x", Key: "x", Category: model.Category(42), TypeName: "Int"})
}

func TestMetadata(t *testing.T) {
	meta := New().Metadata()
	if meta.Name != "objectmapper" {
		t.Errorf("Name = %q, want %q", meta.Name, "objectmapper")
	}
	if meta.ModuleName != "ObjectMapper" {
		t.Errorf("ModuleName = %q, want %q", meta.ModuleName, "ObjectMapper")
	}
	if meta.BaseElementName != "ImmutableMappable" {
		t.Errorf("BaseElementName = %q, want %q", meta.BaseElementName, "ImmutableMappable")
	}
	if meta.TemplateName != "ImmutableObjectMapperTemplate" {
		t.Errorf("TemplateName = %q, want %q", meta.TemplateName, "ImmutableObjectMapperTemplate")
	}
}

func projections(b *generator.Bundle) map[string][]string {
	return map[string][]string{
		"declarations":    b.Declarations(),
		"descriptions":    b.Descriptions(),
		"decoders":        b.Decoders(),
		"encoders":        b.Encoders(),
		"stringConstants": b.StringConstants(),
		"initializers":    b.Initializers(),
	}
}
