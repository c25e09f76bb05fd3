// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func newResolveCommand(log *zap.Logger) *cobra.Command {
	var baseFiles []string
	var envPrefix string
	var sets []string
	var format string
	var noDefaults bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the effective configuration",
		Long: `Resolve composes the built-in defaults table, any base settings
files (layered in order, later files overriding earlier ones), an
optional environment variable layer and explicit --set overrides,
then prints the frozen result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(baseFiles, envPrefix, !noDefaults)
			if err != nil {
				return err
			}
			overrides, err := parseOverrides(sets)
			if err != nil {
				return err
			}

			r := settings.New()
			err = r.Configure(table, overrides)
			if err != nil {
				return err
			}
			snap, err := r.Snapshot()
			if err != nil {
				return err
			}
			log.Debug("resolved settings", zap.Int("count", len(snap.Keys())))

			return render(cmd, snap.All(), format)
		},
	}

	cmd.Flags().StringSliceVar(&baseFiles, "base", nil, "base settings file(s), layered in order")
	cmd.Flags().StringVar(&envPrefix, "env-prefix", "", "apply environment variables with this prefix as a final layer")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a setting, NAME=value (value parsed as a YAML scalar)")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format, yaml or json")
	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "do not layer the built-in defaults table underneath")
	return cmd
}

func loadTable(files []string, envPrefix string, withDefaults bool) (settings.Map, error) {
	var srcs []settings.Source
	if withDefaults {
		srcs = append(srcs, settings.Builtin())
	}
	for _, path := range files {
		srcs = append(srcs, fileSource(path))
	}
	if envPrefix != "" {
		srcs = append(srcs, settings.FromEnv(envPrefix))
	}
	return settings.Load(srcs...)
}

func fileSource(path string) settings.Source {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return settings.FromFile(os.DirFS(filepath.Clean(dir)), file)
}

func parseOverrides(sets []string) (settings.Map, error) {
	overrides := make(settings.Map, len(sets))
	for _, kv := range sets {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --set %q: expected NAME=value", kv)
		}

		var value any
		err := yaml.Unmarshal([]byte(raw), &value)
		if err != nil {
			value = raw
		}
		overrides[name] = value
	}
	return overrides, nil
}

func render(cmd *cobra.Command, table settings.Map, format string) error {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(map[string]any(table))
		if err != nil {
			return err
		}
		cmd.Print(string(b))
	case "json":
		b, err := json.MarshalIndent(map[string]any(table), "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(b))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
