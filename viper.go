// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings

import (
	"strings"

	"github.com/spf13/viper"
)

// Viper represents a Source backed by a spf13/viper instance. It lets
// applications that already wire files, env vars and flags through
// viper hand the merged result over as a defaults source.
type Viper struct {
	v *viper.Viper
}

// FromViper returns a Source which applies every setting known to v.
// Viper lowercases its keys, so top level keys are folded back to the
// uppercase setting name convention.
func FromViper(v *viper.Viper) Viper {
	return Viper{v: v}
}

// Apply implements the Source interface.
func (src Viper) Apply(store Store) error {
	if src.v == nil {
		return nil
	}

	for k, v := range src.v.AllSettings() {
		err := store.Set(strings.ToUpper(k), v)
		if err != nil {
			return err
		}
	}
	return nil
}
