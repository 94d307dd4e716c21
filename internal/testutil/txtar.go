// SPDX-License-Identifier: MIT

// Package testutil provides golden-file testing utilities for modelgen.
//
// A golden case is a txtar archive holding a sample document and the files
// modelgen is expected to produce from it:
//
//	Optional description.
//	Flags: name=Person, construct=class, nscoding
//	-- input.json --
//	{"id": 1}
//	-- want/Person.swift --
//	...
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

const (
	inputFile  = "input.json"
	wantPrefix = "want/"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Flags contains the entries of the "Flags: ..." description line.
	Flags []string

	// Input is the sample document.
	Input []byte

	// Want maps output file names (e.g., "Person.swift") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Flags:       parseFlags(string(ar.Comment)),
		Want:        make(map[string][]byte),
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == inputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, wantPrefix):
			c.Want[strings.TrimPrefix(f.Name, wantPrefix)] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected %s or %s*)", f.Name, inputFile, wantPrefix)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", inputFile)
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing %s* files in archive", wantPrefix)
	}
	return c, nil
}

// parseFlags extracts the comma separated entries of the first "Flags:" line.
func parseFlags(description string) []string {
	for _, line := range strings.Split(description, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Flags:")
		if !ok {
			continue
		}
		var flags []string
		for _, f := range strings.Split(rest, ",") {
			if f = strings.TrimSpace(f); f != "" {
				flags = append(flags, f)
			}
		}
		return flags
	}
	return nil
}

// Has reports whether the bare flag name is set.
func (c *Case) Has(name string) bool {
	return slices.Contains(c.Flags, name)
}

// Value returns the value of a "key=value" flag.
func (c *Case) Value(key string) (string, bool) {
	for _, f := range c.Flags {
		if v, ok := strings.CutPrefix(f, key+"="); ok {
			return v, true
		}
	}
	return "", false
}

// GenerateFunc generates output files from a case.
type GenerateFunc func(c *Case) (map[string][]byte, error)

// Compare reports differences between got and the expected files.
func (c *Case) Compare(t *testing.T, got map[string][]byte) {
	t.Helper()

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue
		}
		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent trims trailing whitespace from every line and trailing
// newlines from the content.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive replaces the want/* files of ar with got.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if f.Name == inputFile {
			result.Files = append(result.Files, f)
			break
		}
	}

	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: wantPrefix + name, Data: content})
	}
	return result
}

// RunGolden runs every *.txtar case in dir. With update set, the want/*
// files are rewritten from the generated output instead of compared.
func RunGolden(t *testing.T, dir string, update bool, generate GenerateFunc) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %q: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}
	slices.Sort(files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}
			c, err := ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			got, err := generate(c)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			if update {
				if err := os.WriteFile(file, txtar.Format(UpdateArchive(ar, got)), 0o644); err != nil {
					t.Fatalf("write updated file: %v", err)
				}
				t.Logf("updated %s", file)
				return
			}
			c.Compare(t, got)
		})
	}
}

// StripHeader removes the leading comment header from a generated file.
func StripHeader(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		if len(line) > 0 && !bytes.HasPrefix(line, []byte("//")) {
			return bytes.Join(lines[i:], []byte("\n"))
		}
	}
	return nil
}
