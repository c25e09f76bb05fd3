// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"slices"

	"github.com/z5labs/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCommand(log *zap.Logger) *cobra.Command {
	var baseFiles []string
	var envPrefix string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate setting names in a configuration",
		Long: `Check loads the given settings files, validates every name
against the uppercase identifier convention and reports names
the built-in defaults table does not recognize. Unrecognized
names are warnings only; a host system may define its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(baseFiles, envPrefix, false)
			if err != nil {
				return err
			}

			builtin := settings.Builtin()
			for _, name := range sortedKeys(table) {
				if _, ok := builtin[name]; !ok {
					log.Warn("setting is not in the built-in defaults table", zap.String("name", name))
				}
			}

			err = settings.ValidateNames(table)
			if err != nil {
				return err
			}
			log.Info("settings check passed", zap.Int("count", len(table)))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&baseFiles, "base", nil, "settings file(s) to check, layered in order")
	cmd.Flags().StringVar(&envPrefix, "env-prefix", "", "also check environment variables with this prefix")
	return cmd
}

func sortedKeys(m settings.Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic output keeps the command scriptable.
	slices.Sort(keys)
	return keys
}
