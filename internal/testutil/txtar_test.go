// SPDX-License-Identifier: MIT

package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

func TestParseCase(t *testing.T) {
	ar := txtar.Parse([]byte(`Nested objects.
Flags: name=Person, nscoding, types=A;B
-- input.json --
{"id": 1}
-- want/Person.swift --
struct Person {}
`))

	c, err := ParseCase("nested", ar)
	if err != nil {
		t.Fatalf("ParseCase() error = %v", err)
	}
	if diff := cmp.Diff([]string{"name=Person", "nscoding", "types=A;B"}, c.Flags); diff != "" {
		t.Errorf("Flags mismatch (-want +got):\n%s", diff)
	}
	if string(c.Input) != "{\"id\": 1}\n" {
		t.Errorf("Input = %q", c.Input)
	}
	if string(c.Want["Person.swift"]) != "struct Person {}\n" {
		t.Errorf("Want[Person.swift] = %q", c.Want["Person.swift"])
	}
	if !c.Has("nscoding") || c.Has("final") {
		t.Errorf("Has() mismatch for %v", c.Flags)
	}
	if v, ok := c.Value("name"); !ok || v != "Person" {
		t.Errorf("Value(name) = %q, %v", v, ok)
	}
	if _, ok := c.Value("prefix"); ok {
		t.Error("Value(prefix) should be unset")
	}
}

func TestParseCase_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing input", src: "-- want/A.swift --\nx\n"},
		{name: "missing want", src: "-- input.json --\n{}\n"},
		{name: "unexpected file", src: "-- input.json --\n{}\n-- other.txt --\nx\n-- want/A.swift --\nx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCase(tt.name, txtar.Parse([]byte(tt.src))); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestUpdateArchive(t *testing.T) {
	ar := txtar.Parse([]byte("comment\n-- input.json --\n{}\n-- want/Old.swift --\nold\n"))
	got := UpdateArchive(ar, map[string][]byte{
		"B.swift": []byte("b"),
		"A.swift": []byte("a\n"),
	})

	var names []string
	for _, f := range got.Files {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"input.json", "want/A.swift", "want/B.swift"}, names); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if string(got.Files[2].Data) != "b\n" {
		t.Errorf("missing trailing newline: %q", got.Files[2].Data)
	}
	if string(got.Comment) != "comment\n" {
		t.Errorf("Comment = %q", got.Comment)
	}
}

func TestStripHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "header", input: "//\n//  A.swift\n//\n\nimport Foundation\n", want: "import Foundation\n"},
		{name: "no header", input: "import Foundation\n", want: "import Foundation\n"},
		{name: "only header", input: "// a\n// b\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(StripHeader([]byte(tt.input))); got != tt.want {
				t.Errorf("StripHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}
