// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/albertocavalcante/modelgen/generator"
	"github.com/albertocavalcante/modelgen/internal/config"
)

// errAborted is returned when the user interrupts an interactive prompt.
var errAborted = errors.New("aborted by user")

// prompter asks the questions of the interactive mode.
type prompter interface {
	Input(message, def string, required bool) (string, error)
	Confirm(message string, def bool) (bool, error)
	Select(message string, options []string, def string) (string, error)
}

type surveyPrompter struct {
	opts []survey.AskOpt
}

func (p surveyPrompter) Input(message, def string, required bool) (string, error) {
	var out string
	opts := p.opts
	if required {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(survey.Required))
	}
	if err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

func (p surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out, p.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (p surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	for _, o := range options {
		if o == def {
			prompt.Default = def
		}
	}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// askConfig fills f from interactive answers, using the current values as
// defaults.
func askConfig(p prompter, f *config.File) error {
	var err error
	if f.Input, err = p.Input("Sample JSON file or URL:", f.Input, true); err != nil {
		return err
	}
	base := f.BaseClass
	if base == "" {
		base = config.DefaultBaseClass
	}
	if f.BaseClass, err = p.Input("Root model name:", base, true); err != nil {
		return err
	}
	if f.Prefix, err = p.Input("Class prefix:", f.Prefix, false); err != nil {
		return err
	}
	if f.Author, err = p.Input("Author:", f.Author, false); err != nil {
		return err
	}
	if f.Company, err = p.Input("Company:", f.Company, false); err != nil {
		return err
	}

	if libs := generator.List(); len(libs) > 1 {
		if f.Library, err = p.Select("Mapping library:", libs, f.LibraryName()); err != nil {
			return err
		}
	}

	construct := f.Construct
	if construct == "" {
		construct = config.DefaultConstruct
	}
	kinds := []string{generator.Class.String(), generator.Struct.String()}
	if f.Construct, err = p.Select("Generate a class or a struct?", kinds, construct); err != nil {
		return err
	}

	if f.Construct == generator.Class.String() {
		if f.NSCoding, err = p.Confirm("Add NSCoding support?", f.NSCoding); err != nil {
			return err
		}
		if f.Final, err = p.Confirm("Mark classes final?", f.Final); err != nil {
			return err
		}
	} else {
		f.NSCoding, f.Final = false, false
	}

	header, err := p.Confirm("Include file header?", f.HeaderEnabled())
	if err != nil {
		return err
	}
	f.Header = &header
	return nil
}
