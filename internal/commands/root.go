// SPDX-License-Identifier: MIT

// Package commands implements the hill command tree.
package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hillcipher/internal/config"
)

// app carries state shared by the subcommands of one root command.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewRootCommand creates the root command. level is raised to debug when
// --verbose is set; logger must be built on top of it.
func NewRootCommand(logger *zap.Logger, level zap.AtomicLevel, version string) *cobra.Command {
	a := &app{v: viper.New(), logger: logger, level: level}
	a.v.SetEnvPrefix("HILL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:     "hill [flags] command [flags]",
		Short:   "Hill cipher utility",
		Version: version,
		Long: `Encrypts and decrypts text with the Hill cipher over A-Z.

Keys are square matrices whose determinant is coprime to 26, given inline
("3 3; 2 5"), through HILL_KEY, or as a YAML file with a top-level "key" list.
Messages come from arguments or, one per line, from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringP("key", "k", "", "Key matrix, rows separated by ';' (e.g. \"3 3; 2 5\")")
	root.PersistentFlags().StringP("key-file", "f", "", "Path to a YAML key file")
	root.PersistentFlags().String("pad", "A", "Letter used to pad the last block")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of messages processed in parallel")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newEncodeCommand(a), newDecodeCommand(a), newCheckCommand(a))

	return root
}

// load binds flags and env into a.cfg, validates it and adjusts the log level.
func (a *app) load(cmd *cobra.Command, args []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	var cfg config.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	cfg.Messages = args

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		a.level.SetLevel(zapcore.DebugLevel)
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		zap.Bool("key_file", cfg.KeyFile != ""),
		zap.String("pad", cfg.Pad),
		zap.Int("parallel", cfg.Parallel),
		zap.Int("messages", len(args)),
	)

	return nil
}
