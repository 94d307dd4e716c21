// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config handles modelgen project configuration files.
//
// A configuration file is TOML (modelgen.toml) or YAML/JSON (modelgen.yaml,
// modelgen.yml, modelgen.json). Command-line flags override file values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/modelgen/generator"
)

// Defaults applied by [File.Generator].
const (
	DefaultBaseClass = "BaseModel"
	DefaultConstruct = "class"
	DefaultLibrary   = "objectmapper"
)

// Names lists the file names FindAndLoad looks for, in priority order.
var Names = []string{"modelgen.toml", "modelgen.yaml", "modelgen.yml", "modelgen.json"}

// File represents a modelgen configuration file.
type File struct {
	Input     string `toml:"input,omitempty" yaml:"input,omitempty"`
	Output    string `toml:"output,omitempty" yaml:"output,omitempty"`
	BaseClass string `toml:"base-class,omitempty" yaml:"base-class,omitempty"`
	Prefix    string `toml:"prefix,omitempty" yaml:"prefix,omitempty"`
	Author    string `toml:"author,omitempty" yaml:"author,omitempty"`
	Company   string `toml:"company,omitempty" yaml:"company,omitempty"`
	Construct string `toml:"construct,omitempty" yaml:"construct,omitempty"`
	Library   string `toml:"library,omitempty" yaml:"library,omitempty"`
	NSCoding  bool   `toml:"nscoding,omitempty" yaml:"nscoding,omitempty"`
	Final     bool   `toml:"final,omitempty" yaml:"final,omitempty"`

	// Header defaults to true when unset.
	Header *bool `toml:"header,omitempty" yaml:"header,omitempty"`

	Types       []string          `toml:"types,omitempty" yaml:"types,omitempty"`
	ResolveDeps bool              `toml:"resolve-deps,omitempty" yaml:"resolve-deps,omitempty"`
	TemplateDir string            `toml:"template-dir,omitempty" yaml:"template-dir,omitempty"`
	Options     map[string]string `toml:"options,omitempty" yaml:"options,omitempty"`

	// Path is the file the configuration was loaded from (set at load time).
	Path string `toml:"-" yaml:"-"`
}

// Load parses the configuration file at path. The format follows the
// extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	case ".yaml", ".yml", ".json":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("parse error in %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	f.Path = path
	return &f, nil
}

// FindAndLoad loads the first of [Names] present in dir. Returns nil if
// none is found.
func FindAndLoad(dir string) (*File, error) {
	for _, name := range Names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return nil, nil
}

// Save writes f to path in the format selected by the extension.
func (f *File) Save(path string) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// HeaderEnabled reports whether the file header is emitted.
func (f *File) HeaderEnabled() bool {
	return f.Header == nil || *f.Header
}

// LibraryName returns the synthesizer name, applying the default.
func (f *File) LibraryName() string {
	if f.Library == "" {
		return DefaultLibrary
	}
	return strings.ToLower(f.Library)
}

// Generator converts the file into a generation configuration.
func (f *File) Generator() (generator.Config, error) {
	construct := f.Construct
	if construct == "" {
		construct = DefaultConstruct
	}
	kind, err := generator.ParseConstructKind(construct)
	if err != nil {
		return generator.Config{}, err
	}

	base := f.BaseClass
	if base == "" {
		base = DefaultBaseClass
	}

	return generator.Config{
		Construct:     kind,
		BaseClassName: base,
		Prefix:        f.Prefix,
		Author:        f.Author,
		Company:       f.Company,
		NSCoding:      f.NSCoding,
		Final:         f.Final,
		IncludeHeader: f.HeaderEnabled(),
		Types:         f.Types,
		ResolveDeps:   f.ResolveDeps,
		Options:       f.Options,
	}, nil
}
