// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"os"
	"strings"
)

// Env represents a Source where its underlying values are extracted
// from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which applies every environment variable
// of the current process whose name starts with prefix followed by an
// underscore, with that lead stripped. For example, with prefix "APP"
// the variable APP_DEBUG=true applies the setting DEBUG. An empty
// prefix applies the whole environment unfiltered.
//
// Values are applied as strings; coercion happens at read time via the
// Snapshot accessors or Unmarshal.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	lead := src.prefix
	if lead != "" {
		lead += "_"
	}

	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(k, lead)
		if !ok || name == "" {
			continue
		}
		err := store.Set(name, v)
		if err != nil {
			return err
		}
	}
	return nil
}
