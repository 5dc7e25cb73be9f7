// SPDX-License-Identifier: MIT

// Command hill encrypts and decrypts text with the Hill cipher.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/hillcipher/internal/commands"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	root := commands.NewRootCommand(logger, cfg.Level, version)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
