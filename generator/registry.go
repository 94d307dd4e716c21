// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Synthesizer)
)

// Register adds a synthesizer to the registry.
func Register(s Synthesizer) {
	mu.Lock()
	defer mu.Unlock()
	meta := s.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("synthesizer %q already registered", meta.Name))
	}
	registry[meta.Name] = s
}

// Get returns a synthesizer by name.
func Get(name string) (Synthesizer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[name]
	return s, ok
}

// List returns all registered synthesizer names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered synthesizers, ordered by name.
func All() []Synthesizer {
	mu.RLock()
	defer mu.RUnlock()
	all := make([]Synthesizer, 0, len(registry))
	for _, name := range slices.Sorted(maps.Keys(registry)) {
		all = append(all, registry[name])
	}
	return all
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Synthesizer)
}
