// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package assemble turns classified models into rendered model files.
//
// Each model is validated as a whole, synthesized into its own
// [generator.Bundle] and rendered. Models are independent, so files are
// assembled concurrently; a bundle never leaves the goroutine that built it.
package assemble

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/render"
	"github.com/albertocavalcante/modelgen/model"
)

var log = commonlog.GetLogger("modelgen.assemble")

// ErrInvalidModel is returned when a model or one of its descriptors fails
// validation. It wraps the descriptor's own error.
var ErrInvalidModel = errors.New("invalid model")

// ErrUnknownType is returned when the type filter names a model the sample
// does not describe.
var ErrUnknownType = errors.New("unknown model in type filter")

// Renderer renders one model file.
type Renderer interface {
	Render(d render.Data) ([]byte, error)
}

// ModelFile is a synthesized but not yet rendered model.
type ModelFile struct {
	Name   string
	Bundle *generator.Bundle

	// Skipped lists properties that produced no fragments.
	Skipped []string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithConcurrency bounds how many model files are assembled at once.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(a *Assembler) {
		a.concurrency = n
	}
}

// Assembler drives a synthesizer and a renderer over a set of models.
type Assembler struct {
	synth       generator.Synthesizer
	renderer    Renderer
	config      generator.Config
	concurrency int
}

// New creates an Assembler.
func New(synth generator.Synthesizer, renderer Renderer, cfg generator.Config, opts ...Option) *Assembler {
	a := &Assembler{
		synth:    synth,
		renderer: renderer,
		config:   cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.concurrency < 1 {
		a.concurrency = runtime.GOMAXPROCS(0)
	}
	return a
}

// Build validates every descriptor of m and then synthesizes them in order
// into a fresh bundle. Nothing is synthesized when any descriptor is invalid.
func (a *Assembler) Build(m model.Model) (*ModelFile, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidModel)
	}
	for i, d := range m.Properties {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: property %d (%q): %w", ErrInvalidModel, m.Name, i, d.Name, err)
		}
	}

	f := &ModelFile{Name: m.Name, Bundle: generator.NewBundle()}
	for _, d := range m.Properties {
		before := f.Bundle.Len()
		a.synth.Synthesize(d, f.Bundle)
		if f.Bundle.Len() == before {
			f.Skipped = append(f.Skipped, d.Name)
		}
	}
	if len(f.Skipped) > 0 {
		log.Warningf("%s: no fragments for %v (null in sample)", m.Name, f.Skipped)
	}
	return f, nil
}

// Generate builds and renders every model selected by the configured type
// filter. The output does not depend on scheduling order.
func (a *Assembler) Generate(ctx context.Context, models []model.Model) (*generator.Output, error) {
	if a.renderer == nil {
		return nil, errors.New("assemble: no renderer")
	}
	selected, err := a.selectModels(models)
	if err != nil {
		return nil, err
	}
	meta := a.synth.Metadata()

	names := make([]string, len(selected))
	files := make([][]byte, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, m := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := a.Build(m)
			if err != nil {
				return err
			}
			data := render.Data{Name: f.Name, Meta: meta, Config: a.config, Bundle: f.Bundle}
			content, err := a.renderer.Render(data)
			if err != nil {
				return fmt.Errorf("render %s: %w", f.Name, err)
			}
			names[i] = data.FileName()
			files[i] = content
			log.Debugf("assembled %s (%d properties)", names[i], f.Bundle.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := generator.NewOutput()
	for i, name := range names {
		if _, dup := out.Files[name]; dup {
			return nil, fmt.Errorf("assemble: duplicate output file %q", name)
		}
		out.Add(name, files[i])
	}
	log.Infof("generated %d files with %s", len(out.Files), meta.Name)
	return out, nil
}

// selectModels applies the type filter, pulling in referenced models when
// ResolveDeps is set. Every requested name must match a model.
func (a *Assembler) selectModels(models []model.Model) ([]model.Model, error) {
	if len(a.config.Types) == 0 {
		return models, nil
	}
	known := make(map[string]bool, len(models))
	for _, m := range models {
		known[m.Name] = true
	}
	filter := make(map[string]bool, len(a.config.Types))
	var unknown []string
	for _, t := range a.config.Types {
		if !known[t] {
			unknown = append(unknown, t)
		}
		filter[t] = true
	}
	if len(unknown) > 0 {
		available := slices.Sorted(maps.Keys(known))
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownType,
			strings.Join(unknown, ", "), strings.Join(available, ", "))
	}
	if a.config.ResolveDeps {
		filter = generator.ResolveDeps(models, filter)
	}
	return generator.Filter(models, filter), nil
}
