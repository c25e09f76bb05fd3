// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"fmt"

	"dario.cat/mergo"
)

// Store represents a general key value structure which sources
// serialize themselves into.
type Store interface {
	Set(name string, value any) error
}

// Source defines valid defaults sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// Map is an ordinary map[string]any but implements both the Source
// and Store interfaces. Keys are setting names, values are whole
// setting values; nested maps are values, not key paths.
type Map map[string]any

// Apply implements the Source interface.
func (m Map) Apply(store Store) error {
	for k, v := range m {
		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// MergeValueError occurs when two sources supply map values for the
// same setting name and those maps fail to merge.
type MergeValueError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e MergeValueError) Error() string {
	return fmt.Sprintf("failed to merge values for setting %s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e MergeValueError) Unwrap() error {
	return e.Cause
}

// Set implements the Store interface. A later value replaces an earlier
// one wholesale, except when both are maps, in which case they are deep
// merged with the later value winning on key collision. This keeps
// layered file sources from clobbering each other's nested sections.
func (m Map) Set(name string, value any) error {
	old, ok := m[name].(map[string]any)
	if !ok {
		m[name] = value
		return nil
	}
	next, ok := value.(map[string]any)
	if !ok {
		m[name] = value
		return nil
	}

	merged := make(map[string]any, len(old))
	err := mergo.Merge(&merged, old)
	if err != nil {
		return MergeValueError{Name: name, Cause: err}
	}
	err = mergo.Merge(&merged, next, mergo.WithOverride)
	if err != nil {
		return MergeValueError{Name: name, Cause: err}
	}
	m[name] = merged
	return nil
}

// Load applies the given sources, in order, to a fresh table.
// Subsequent sources override previous sources.
func Load(srcs ...Source) (Map, error) {
	table := make(Map)
	for _, src := range srcs {
		err := src.Apply(table)
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}
