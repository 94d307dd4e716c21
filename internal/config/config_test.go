// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/modelgen/generator"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "modelgen.toml",
			content: `
input = "sample.json"
base-class = "Person"
prefix = "GH"
construct = "struct"
nscoding = true
header = false
types = ["Person", "Address"]
resolve-deps = true

[options]
access = "internal"
`,
		},
		{
			name: "yaml",
			file: "modelgen.yaml",
			content: `
input: sample.json
base-class: Person
prefix: GH
construct: struct
nscoding: true
header: false
types: [Person, Address]
resolve-deps: true
options:
  access: internal
`,
		},
		{
			name: "json",
			file: "modelgen.json",
			content: `{"input": "sample.json", "base-class": "Person", "prefix": "GH", "construct": "struct",
"nscoding": true, "header": false, "types": ["Person", "Address"], "resolve-deps": true,
"options": {"access": "internal"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			f, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, f.Path)
			assert.Equal(t, "sample.json", f.Input)
			assert.False(t, f.HeaderEnabled())

			cfg, err := f.Generator()
			require.NoError(t, err)
			assert.Equal(t, generator.Config{
				Construct:     generator.Struct,
				BaseClassName: "Person",
				Prefix:        "GH",
				NSCoding:      true,
				IncludeHeader: false,
				Types:         []string{"Person", "Address"},
				ResolveDeps:   true,
				Options:       map[string]string{"access": "internal"},
			}, cfg)
		})
	}
}

func TestGenerator_Defaults(t *testing.T) {
	f := &File{}
	cfg, err := f.Generator()
	require.NoError(t, err)

	assert.Equal(t, generator.Class, cfg.Construct)
	assert.Equal(t, DefaultBaseClass, cfg.BaseClassName)
	assert.True(t, cfg.IncludeHeader)
	assert.Equal(t, DefaultLibrary, f.LibraryName())
}

func TestGenerator_BadConstruct(t *testing.T) {
	f := &File{Construct: "enum"}
	_, err := f.Generator()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enum")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.toml"))
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "modelgen.ini", "x=1"))
		require.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "bad.toml", "input = "))
		require.Error(t, err)
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "bad.yaml", "inptu: sample.json\n"))
		require.Error(t, err)
	})
}

func TestLoad_EmptyYAML(t *testing.T) {
	f, err := Load(writeFile(t, t.TempDir(), "modelgen.yml", ""))
	require.NoError(t, err)
	assert.True(t, f.HeaderEnabled())
}

func TestFindAndLoad(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		f, err := FindAndLoad(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("toml wins over yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "modelgen.yaml", "prefix: Y\n")
		writeFile(t, dir, "modelgen.toml", `prefix = "T"`)

		f, err := FindAndLoad(dir)
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, "T", f.Prefix)
	})
}

func TestSave_RoundTrip(t *testing.T) {
	off := false
	want := &File{
		Input:     "sample.json",
		BaseClass: "Person",
		Construct: "struct",
		Library:   "objectmapper",
		Final:     true,
		Header:    &off,
		Types:     []string{"Person"},
	}

	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, want.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			got.Path = ""
			assert.Equal(t, want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		require.Error(t, want.Save(filepath.Join(t.TempDir(), "out.ini")))
	})
}
