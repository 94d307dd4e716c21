// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command modelgen generates Swift model files from a sample JSON document.
//
// Usage:
//
//	modelgen -i sample.json [flags]
//
// Flags:
//
//	-i               Sample file, http(s) URL, or "-" for stdin
//	-o               Output directory (default: stdout)
//	-c               Config file (default: modelgen.toml/.yaml/.yml/.json in cwd)
//	-n               Root model name (default: BaseModel)
//	-t               Comma-separated models to generate (default: all)
//	--construct      struct or class (default: class)
//	--lib            Mapping library (default: objectmapper)
//	--interactive    Ask for the configuration
//	--dry-run        Print to stdout without writing files
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/assemble"
	"github.com/albertocavalcante/modelgen/internal/classify"
	"github.com/albertocavalcante/modelgen/internal/config"
	"github.com/albertocavalcante/modelgen/internal/render"
	"github.com/albertocavalcante/modelgen/internal/sample"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var log = commonlog.GetLogger("modelgen")

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	app := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, prompt: surveyPrompter{}}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

// cli holds the process streams so run can be exercised in tests.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	prompt prompter
}

type options struct {
	configPath  string
	saveConfig  string
	concurrency int
	interactive bool
	dryRun      bool
	verbose     bool
	list        bool
	showVersion bool
	showHelp    bool
}

func (c *cli) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("modelgen", flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	var (
		opts options
		f    config.File
	)
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help")
	fs.BoolVar(&opts.list, "list", false, "List mapping libraries")

	fs.StringVar(&f.Input, "i", "", "Sample file, http(s) URL, or - for stdin")
	fs.StringVar(&f.Output, "o", "", "Output directory (default: stdout)")
	fs.StringVar(&opts.configPath, "c", "", "Config file")
	fs.StringVar(&f.BaseClass, "n", "", "Root model name")
	fs.StringVar(&f.Prefix, "prefix", "", "Prefix for every model name")
	fs.StringVar(&f.Construct, "construct", "", "struct or class")
	fs.StringVar(&f.Library, "lib", "", "Mapping library")
	fs.StringVar(&f.Author, "author", "", "Author for the file header")
	fs.StringVar(&f.Company, "company", "", "Company for the file header")
	fs.StringVar(&f.TemplateDir, "template-dir", "", "Directory with template overrides")
	types := fs.String("t", "", "Comma-separated models to generate (default: all)")
	fs.BoolVar(&f.ResolveDeps, "resolve-deps", false, "Include models referenced by -t models")
	fs.BoolVar(&f.NSCoding, "nscoding", false, "Add NSCoding support (classes only)")
	fs.BoolVar(&f.Final, "final", false, "Mark classes final")
	noHeader := fs.Bool("no-header", false, "Omit the file header")
	templateOpts := make(keyValues)
	fs.Var(templateOpts, "option", "Template option key=value (repeatable)")
	fs.IntVar(&opts.concurrency, "j", 0, "Model files assembled in parallel (default: GOMAXPROCS)")
	fs.BoolVar(&opts.interactive, "interactive", false, "Ask for the configuration")
	fs.StringVar(&opts.saveConfig, "save-config", "", "Write the effective configuration to this file")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Print to stdout without writing files")
	fs.BoolVar(&opts.verbose, "verbose", false, "Verbose output")

	fs.Usage = func() { c.usage() }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if opts.showHelp {
		c.usage()
		return nil
	}
	if opts.showVersion {
		fmt.Fprintf(c.stdout, "modelgen %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}
	if opts.list {
		for _, s := range generator.All() {
			meta := s.Metadata()
			fmt.Fprintf(c.stdout, "%-14s %s  %s\n", meta.Name, meta.Version, meta.Description)
		}
		return nil
	}

	configureLogging(opts.verbose)

	// Flags override the config file.
	file, err := c.loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if *types != "" {
		f.Types = splitList(*types)
	}
	if *noHeader {
		off := false
		f.Header = &off
	}
	if len(templateOpts) > 0 {
		f.Options = templateOpts
	}
	merge(file, &f, set)

	if opts.interactive {
		if err := askConfig(c.prompt, file); err != nil {
			return err
		}
	}
	if opts.saveConfig != "" {
		if err := file.Save(opts.saveConfig); err != nil {
			return err
		}
		log.Infof("saved configuration to %s", opts.saveConfig)
	}

	out, err := c.generate(ctx, file, opts)
	if err != nil {
		return err
	}
	return c.write(out, file.Output, opts.dryRun)
}

// configureLogging writes unbuffered log lines to stderr: warnings by
// default, everything down to debug with --verbose.
func configureLogging(verbose bool) {
	backend := simple.NewBackend()
	backend.Buffered = false
	verbosity := -1
	if verbose {
		verbosity = 2
	}
	backend.Configure(verbosity, nil)
	commonlog.SetBackend(backend)
}

func (c *cli) loadConfig(path string) (*config.File, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	file, err := config.FindAndLoad(wd)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return &config.File{}, nil
	}
	log.Infof("using configuration %s", file.Path)
	return file, nil
}

// merge copies the explicitly set flags of f onto dst.
func merge(dst, f *config.File, set map[string]bool) {
	strs := map[string]struct {
		dst *string
		src string
	}{
		"i":            {&dst.Input, f.Input},
		"o":            {&dst.Output, f.Output},
		"n":            {&dst.BaseClass, f.BaseClass},
		"prefix":       {&dst.Prefix, f.Prefix},
		"construct":    {&dst.Construct, f.Construct},
		"lib":          {&dst.Library, f.Library},
		"author":       {&dst.Author, f.Author},
		"company":      {&dst.Company, f.Company},
		"template-dir": {&dst.TemplateDir, f.TemplateDir},
	}
	for name, s := range strs {
		if set[name] {
			*s.dst = s.src
		}
	}
	if set["nscoding"] {
		dst.NSCoding = f.NSCoding
	}
	if set["final"] {
		dst.Final = f.Final
	}
	if set["resolve-deps"] {
		dst.ResolveDeps = f.ResolveDeps
	}
	if set["t"] {
		dst.Types = f.Types
	}
	if f.Header != nil {
		dst.Header = f.Header
	}
	for k, v := range f.Options {
		if dst.Options == nil {
			dst.Options = make(map[string]string)
		}
		dst.Options[k] = v
	}
}

// keyValues collects repeated key=value flags.
type keyValues map[string]string

func (kv keyValues) String() string {
	pairs := make([]string, 0, len(kv))
	for k, v := range kv {
		pairs = append(pairs, k+"="+v)
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ",")
}

func (kv keyValues) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("want key=value, got %q", s)
	}
	kv[strings.TrimSpace(k)] = v
	return nil
}

func (c *cli) generate(ctx context.Context, file *config.File, opts options) (*generator.Output, error) {
	cfg, err := file.Generator()
	if err != nil {
		return nil, err
	}
	synth, ok := generator.Get(file.LibraryName())
	if !ok {
		return nil, fmt.Errorf("unknown mapping library %q (available: %s)", file.LibraryName(), strings.Join(generator.List(), ", "))
	}
	if file.Input == "" {
		return nil, errors.New("no sample given (use -i, a config file, or --interactive)")
	}

	res, err := sample.Load(ctx, sample.Options{Path: file.Input, Stdin: c.stdin})
	if err != nil {
		return nil, fmt.Errorf("load sample: %w", err)
	}
	log.Infof("loaded sample from %s", res.Source)

	models, err := classify.Classify(res.Document, classify.Options{
		RootName: cfg.BaseClassName,
		Prefix:   cfg.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("classify sample: %w", err)
	}
	log.Infof("found %d models", len(models))

	var renderOpts []render.Option
	if file.TemplateDir != "" {
		renderOpts = append(renderOpts, render.WithBaseDir(file.TemplateDir))
	}
	engine, err := render.New(renderOpts...)
	if err != nil {
		return nil, err
	}

	a := assemble.New(synth, engine, cfg, assemble.WithConcurrency(opts.concurrency))
	out, err := a.Generate(ctx, models)
	if err != nil {
		return nil, fmt.Errorf("generate models: %w", err)
	}
	return out, nil
}

func (c *cli) write(out *generator.Output, dir string, dryRun bool) error {
	if dryRun || dir == "" {
		for i, name := range out.Names() {
			if i > 0 {
				fmt.Fprintln(c.stdout)
			}
			fmt.Fprintf(c.stdout, "// ---- %s ----\n", name)
			if _, err := c.stdout.Write(out.Files[name]); err != nil {
				return err
			}
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, name := range out.Names() {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		log.Infof("wrote %s", path)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *cli) usage() {
	fmt.Fprintf(c.stderr, `modelgen - Swift Model Generator

Generate Swift model files from a sample JSON or YAML document.

Usage:
  modelgen -i <sample> [flags]

Flags:
  -i string            Sample file, http(s) URL, or - for stdin
  -o string            Output directory (default: stdout)
  -c string            Config file (default: %s in the working directory)
  -n string            Root model name (default: %s)
  -t string            Comma-separated models to generate (default: all)
  -j int               Model files assembled in parallel (default: GOMAXPROCS)
  --prefix string      Prefix for every model name
  --construct string   struct or class (default: %s)
  --lib string         Mapping library (default: %s)
  --author string      Author for the file header
  --company string     Company for the file header
  --template-dir dir   Directory with template overrides
  --option key=value   Template option, repeatable (module=Name replaces the import)
  --resolve-deps       Include models referenced by -t models
  --nscoding           Add NSCoding support (classes only)
  --final              Mark classes final
  --no-header          Omit the file header
  --interactive        Ask for the configuration
  --save-config file   Write the effective configuration (.toml or .yaml)
  --dry-run            Print to stdout without writing files
  --verbose            Verbose output
  --list               List mapping libraries
  --version            Show version information
  --help               Show this help

Examples:
  # Print the models for a sample
  modelgen -i person.json -n Person

  # Write structs with a prefix to a directory
  modelgen -i person.json -n Person --prefix GH --construct struct -o ./Models

  # Read the sample from a URL and keep only one model and its dependencies
  modelgen -i https://api.github.com/repos/golang/go -n Repo -t Repo --resolve-deps

`, strings.Join(config.Names, "/"), config.DefaultBaseClass, config.DefaultConstruct, config.DefaultLibrary)
}
