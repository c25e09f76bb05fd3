// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "settingsctl",
		Short:         "Resolve and inspect effective configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newResolveCommand(log),
		newCheckCommand(log),
	)
	return cmd
}
