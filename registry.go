// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// sources holds process scoped named sources. Names are conventionally
// dotted paths, e.g. "myapp.settings.prod".
var sources sync.Map

// RegisterSource makes src resolvable by name, for use as a lazy
// source designation. Registering the same name twice replaces the
// earlier source; this is harmless before the first read and can never
// take effect after it.
func RegisterSource(name string, src Source) {
	sources.Store(name, src)
}

// UnknownSourceError occurs when a designated source name is neither
// registered nor a settings file with a recognized extension.
type UnknownSourceError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownSourceError) Error() string {
	return fmt.Sprintf("source %q is not registered and does not name a settings file", e.Name)
}

func lookupSource(name string) (Source, error) {
	v, ok := sources.Load(name)
	if ok {
		return v.(Source), nil
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json", ".toml":
		dir, file := filepath.Split(name)
		if dir == "" {
			dir = "."
		}
		return FromFile(os.DirFS(filepath.Clean(dir)), file), nil
	}
	return nil, UnknownSourceError{Name: name}
}
