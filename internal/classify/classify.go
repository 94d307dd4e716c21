// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package classify infers model types from a sample document.
//
// The sample is walked as a yaml.v3 node tree, which accepts JSON as well as
// YAML and keeps mapping keys in document order. Every object becomes a
// [model.Model]; every key becomes a [model.PropertyDescriptor] whose
// category is inferred from the sample value:
//
//	string, number, boolean      → Scalar (String, Int, Float, Bool)
//	null                         → Null
//	object                       → NestedObject (new nested model)
//	[]                           → EmptyArray
//	[object, ...]                → NestedObjectArray (elements merged)
//	[scalar, ...]                → ScalarArray (Any when element types differ)
//
// Keys that are empty strings cannot be mapped and are skipped with a warning.
package classify

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/modelgen/internal/swift"
	"github.com/albertocavalcante/modelgen/model"
)

var log = commonlog.GetLogger("modelgen.classify")

// DefaultRootName names the root model when Options.RootName is empty.
const DefaultRootName = "BaseModel"

// ErrUnsupportedRoot is returned when the sample root is not an object or a
// non-empty array of objects.
var ErrUnsupportedRoot = errors.New("sample root must be an object or an array of objects")

// Options configures classification.
type Options struct {
	// RootName is the name of the root model.
	RootName string

	// Prefix is prepended to every model name.
	Prefix string
}

// Classify walks the sample document and returns the models it describes.
// The root model comes first, followed by nested models in the order they
// were discovered. Nested objects sharing a type name are merged into one
// model.
func Classify(doc *yaml.Node, opts Options) ([]model.Model, error) {
	if doc == nil {
		return nil, fmt.Errorf("classify: %w", ErrUnsupportedRoot)
	}
	root := resolve(doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("classify: empty document: %w", ErrUnsupportedRoot)
		}
		root = resolve(root.Content[0])
	}

	rootName := opts.RootName
	if rootName == "" {
		rootName = DefaultRootName
	}

	c := &classifier{
		prefix: opts.Prefix,
		models: newOrderedMap[*builder](),
	}
	name := swift.ClassName(opts.Prefix, rootName)

	switch root.Kind {
	case yaml.MappingNode:
		c.addObject(name, root)
	case yaml.SequenceNode:
		objects, ok := objectElements(root)
		if !ok || len(objects) == 0 {
			return nil, fmt.Errorf("classify: %w", ErrUnsupportedRoot)
		}
		for _, obj := range objects {
			c.addObject(name, obj)
		}
	default:
		return nil, fmt.Errorf("classify: %w", ErrUnsupportedRoot)
	}

	return c.result(), nil
}

type classifier struct {
	prefix string
	models *orderedMap[*builder]
}

// builder accumulates the properties of one model.
type builder struct {
	name  string
	props []model.PropertyDescriptor
	index map[string]int  // serialization key → position in props
	names map[string]bool // variable names in use
}

func (c *classifier) model(name string) *builder {
	if b, ok := c.models.get(name); ok {
		return b
	}
	b := &builder{
		name:  name,
		index: make(map[string]int),
		names: make(map[string]bool),
	}
	c.models.set(name, b)
	return b
}

func (c *classifier) result() []model.Model {
	keys := c.models.keys()
	out := make([]model.Model, 0, len(keys))
	for _, k := range keys {
		b, _ := c.models.get(k)
		out = append(out, model.Model{Name: b.name, Properties: b.props})
	}
	return out
}

func (c *classifier) addObject(name string, obj *yaml.Node) {
	b := c.model(name)
	for i := 0; i+1 < len(obj.Content); i += 2 {
		key := obj.Content[i].Value
		if key == "" {
			log.Warningf("%s: skipping property with an empty key", name)
			continue
		}
		category, typeName := c.classify(key, resolve(obj.Content[i+1]))
		b.add(key, category, typeName)
	}
}

func (c *classifier) classify(key string, v *yaml.Node) (model.Category, string) {
	switch v.Kind {
	case yaml.MappingNode:
		name := swift.ClassName(c.prefix, key)
		c.addObject(name, v)
		return model.NestedObject, name

	case yaml.SequenceNode:
		return c.classifySequence(key, v)

	case yaml.ScalarNode:
		if t := scalarType(v); t != "" {
			return model.Scalar, t
		}
	}
	return model.Null, ""
}

func (c *classifier) classifySequence(key string, seq *yaml.Node) (model.Category, string) {
	if len(seq.Content) == 0 {
		return model.EmptyArray, ""
	}

	if objects, ok := objectElements(seq); ok && len(objects) > 0 {
		name := swift.ClassName(c.prefix, key)
		for _, obj := range objects {
			c.addObject(name, obj)
		}
		return model.NestedObjectArray, name
	}

	elem := ""
	for _, item := range seq.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode {
			return model.ScalarArray, swift.TypeAny
		}
		t := scalarType(item)
		if t == "" {
			continue
		}
		elem = widen(elem, t)
	}
	if elem == "" {
		elem = swift.TypeAny
	}
	return model.ScalarArray, elem
}

// add records a property, merging with an earlier occurrence of the same key.
func (b *builder) add(key string, category model.Category, typeName string) {
	if i, ok := b.index[key]; ok {
		b.props[i] = merge(b.props[i], category, typeName)
		return
	}
	name := b.uniqueName(swift.VariableName(key))
	b.index[key] = len(b.props)
	b.props = append(b.props, model.PropertyDescriptor{
		Name:     name,
		Key:      key,
		Category: category,
		TypeName: typeName,
	})
}

func (b *builder) uniqueName(name string) string {
	candidate := name
	for n := 2; b.names[candidate]; n++ {
		candidate = fmt.Sprintf("%s%d", name, n)
	}
	b.names[candidate] = true
	return candidate
}

// merge combines two observations of the same key. Null and empty arrays
// give way to anything more specific; Int widens to Float; any other
// conflict keeps the first observation.
func merge(prev model.PropertyDescriptor, category model.Category, typeName string) model.PropertyDescriptor {
	switch {
	case category == model.Null:
		return prev
	case prev.Category == model.Null,
		prev.Category == model.EmptyArray && category.IsCollection():
		prev.Category = category
		prev.TypeName = typeName
	case prev.Category == category && (category == model.Scalar || category == model.ScalarArray):
		prev.TypeName = widen(prev.TypeName, typeName)
	}
	return prev
}

// widen returns the type that holds values of both a and b.
func widen(a, b string) string {
	switch {
	case a == "" || a == b:
		return b
	case isNumber(a) && isNumber(b):
		return swift.TypeFloat
	}
	return swift.TypeAny
}

func isNumber(t string) bool {
	return t == swift.TypeInt || t == swift.TypeFloat
}

// scalarType maps a scalar node to its Swift type. Returns "" for null.
func scalarType(v *yaml.Node) string {
	switch v.ShortTag() {
	case "!!null":
		return ""
	case "!!int":
		return swift.TypeInt
	case "!!float":
		return swift.TypeFloat
	case "!!bool":
		return swift.TypeBool
	default:
		return swift.TypeString
	}
}

// objectElements returns the mapping elements of seq, skipping nulls. ok is
// false when any other kind of element is present.
func objectElements(seq *yaml.Node) (objects []*yaml.Node, ok bool) {
	for _, item := range seq.Content {
		item = resolve(item)
		switch {
		case item.Kind == yaml.MappingNode:
			objects = append(objects, item)
		case item.Kind == yaml.ScalarNode && item.ShortTag() == "!!null":
		default:
			return nil, false
		}
	}
	return objects, true
}

// resolve follows YAML aliases to their anchored node.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
