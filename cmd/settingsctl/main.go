// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// settingsctl resolves and inspects effective configuration without
// running the host application.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	err = newRootCommand(log).Execute()
	if err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
