// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package sample loads the JSON or YAML document models are inferred from.
package sample

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// DefaultTimeout bounds remote fetches when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// ErrEmptyDocument is returned when the sample holds no document.
var ErrEmptyDocument = errors.New("empty sample document")

// Options configures how to load a sample.
type Options struct {
	// Path is a file path, an http(s) URL, or "-" for stdin.
	Path string

	// Timeout for network operations.
	Timeout time.Duration

	// Stdin overrides os.Stdin when Path is "-".
	Stdin io.Reader

	// Client overrides http.DefaultClient for URLs.
	Client *http.Client
}

// Result contains the parsed sample and where it came from.
type Result struct {
	// Document is the parsed document node. Mapping keys keep their
	// document order.
	Document *yaml.Node

	// Source describes where the sample was loaded from.
	Source string
}

// Load reads and parses the sample named by opts.Path.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	var (
		data   []byte
		source string
		err    error
	)
	switch {
	case opts.Path == "":
		return nil, errors.New("no sample path given")
	case opts.Path == Stdin:
		data, err = loadStdin(opts.Stdin)
		source = "stdin"
	case isURL(opts.Path):
		data, err = loadURL(ctx, opts)
		source = opts.Path
	default:
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			err = fmt.Errorf("read file: %w", err)
		}
		source = fmt.Sprintf("file://%s", opts.Path)
	}
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	return &Result{Document: doc, Source: source}, nil
}

// Parse parses a JSON or YAML sample into a document node. Input that
// starts like a JSON object or array is read as JSON first, since YAML
// rejects some valid JSON such as the \/ escape or keys longer than 1024
// characters.
func Parse(data []byte) (*yaml.Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		doc, jsonErr := parseJSON(trimmed)
		if jsonErr == nil {
			return doc, nil
		}
		// Flow-style YAML also starts with a bracket.
		doc, err := parseYAML(data)
		if err != nil {
			return nil, jsonErr
		}
		return doc, nil
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// parseJSON builds the same node tree yaml.v3 produces for a JSON document,
// keeping object keys in document order.
func parseJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, fmt.Errorf("json: %w", err)
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

func decodeJSONValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("json: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("json: object key %v is not a string", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, jsonScalar("!!str", key), value)
			}
			return n, closeJSON(dec)
		case '[':
			n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, item)
			}
			return n, closeJSON(dec)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %q", v)
	case string:
		return jsonScalar("!!str", v), nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return jsonScalar("!!float", v.String()), nil
		}
		return jsonScalar("!!int", v.String()), nil
	case bool:
		return jsonScalar("!!bool", strconv.FormatBool(v)), nil
	case nil:
		return jsonScalar("!!null", "null"), nil
	}
	return nil, fmt.Errorf("json: unexpected token %v", tok)
}

// closeJSON consumes the delimiter that ends an object or array.
func closeJSON(dec *json.Decoder) error {
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}

func jsonScalar(tag, value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	if tag == "!!str" {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func loadStdin(r io.Reader) ([]byte, error) {
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// loadURL fetches the sample over HTTP.
func loadURL(ctx context.Context, opts Options) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.Path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sample: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sample: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
