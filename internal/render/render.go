// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render fills a synthesizer's file skeleton with generated fragments.
//
// Skeletons are pongo2 templates named after [generator.Metadata.TemplateName]
// with a ".swift.tpl" suffix. The built-in skeletons are embedded; a base
// directory can shadow them.
package render

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/tliron/commonlog"

	"github.com/albertocavalcante/modelgen/generator"
)

// TemplateExt is appended to the template name to find the skeleton file.
const TemplateExt = ".swift.tpl"

// OptionModule overrides the module the skeleton imports.
const OptionModule = "module"

//go:embed templates/*.tpl
var embedded embed.FS

var log = commonlog.GetLogger("modelgen.render")

// Option configures an Engine.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
}

// WithBaseDir loads templates from dir before falling back to the embedded set.
func WithBaseDir(dir string) Option {
	return func(c *config) {
		c.baseDir = dir
	}
}

// WithFS replaces the embedded template set.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.templates = fsys
	}
}

// Data is everything a skeleton needs to render one model file.
type Data struct {
	// Name is the model (type) name.
	Name string

	Meta   generator.Metadata
	Config generator.Config
	Bundle *generator.Bundle
}

// FileName returns the output file name for d.
func (d Data) FileName() string {
	ext := ".swift"
	if len(d.Meta.FileExtensions) > 0 {
		ext = d.Meta.FileExtensions[0]
	}
	return d.Name + ext
}

// Engine renders model files from pongo2 templates.
type Engine struct {
	// mu serializes parse and execute; pongo2 rewrites template tokens when
	// trimming blocks.
	mu  sync.Mutex
	set *pongo2.TemplateSet
}

// New constructs an Engine.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.templates == nil {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("render: embedded templates: %w", err)
		}
		cfg.templates = sub
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("render: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))

	set := pongo2.NewSet("modelgen", loaders...)
	set.Options.TrimBlocks = true

	return &Engine{set: set}, nil
}

// Render fills the skeleton of d.Meta.TemplateName. The result ends with
// exactly one newline and never holds more than one consecutive blank line.
func (e *Engine) Render(d Data) ([]byte, error) {
	if e == nil || e.set == nil {
		return nil, errors.New("render: engine is nil")
	}
	if d.Meta.TemplateName == "" {
		return nil, fmt.Errorf("render: %s has no template", d.Meta.Name)
	}
	if d.Bundle == nil {
		d.Bundle = generator.NewBundle()
	}

	path := d.Meta.TemplateName + TemplateExt
	log.Debugf("rendering %s with %s", d.Name, path)

	e.mu.Lock()
	defer e.mu.Unlock()

	tpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", path, err)
	}
	out, err := tpl.Execute(templateContext(d))
	if err != nil {
		return nil, fmt.Errorf("render: execute template %q: %w", path, err)
	}
	return []byte(normalize(out)), nil
}

func templateContext(d Data) pongo2.Context {
	isClass := d.Config.Construct == generator.Class
	options := d.Config.Options
	if options == nil {
		options = map[string]string{}
	}
	return pongo2.Context{
		"name":          d.Name,
		"fileName":      d.FileName(),
		"construct":     d.Config.Construct.String(),
		"isClass":       isClass,
		"isFinal":       isClass && d.Config.Final,
		"nscoding":      isClass && d.Config.NSCoding,
		"includeHeader": d.Config.IncludeHeader,
		"author":        d.Config.Author,
		"company":       d.Config.Company,
		"generator":     d.Meta.Name,
		"version":       d.Meta.Version,
		"moduleName":    d.Config.Option(OptionModule, d.Meta.ModuleName),
		"baseElement":   d.Meta.BaseElementName,
		"options":       options,

		"properties":      d.Bundle.Properties(),
		"declarations":    d.Bundle.Declarations(),
		"descriptions":    d.Bundle.Descriptions(),
		"decoders":        d.Bundle.Decoders(),
		"encoders":        d.Bundle.Encoders(),
		"stringConstants": d.Bundle.StringConstants(),
		"initializers":    d.Bundle.Initializers(),
	}
}

// normalize trims trailing whitespace, drops leading blank lines and
// collapses runs of blank lines.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	blank := true // suppresses leading blank lines
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
			b.WriteByte('\n')
			continue
		}
		blank = false
		b.WriteString(line)
		b.WriteByte('\n')
	}

	out := strings.TrimRight(b.String(), "\n")
	return out + "\n"
}
