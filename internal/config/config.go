// SPDX-License-Identifier: MIT

// Package config holds the command-line configuration for the hill CLI.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is populated from flags and HILL_* environment variables.
type Config struct {
	// Key material, exactly one of the two.
	Key     string `mapstructure:"key" validate:"required_without=KeyFile,excluded_with=KeyFile"`
	KeyFile string `mapstructure:"key-file" validate:"required_without=Key"`

	// Pad is the single letter used to fill the last block.
	Pad string `mapstructure:"pad" validate:"len=1,alpha"`

	Parallel int  `mapstructure:"parallel" validate:"min=1"`
	Verbose  bool `mapstructure:"verbose"`

	// Positional arguments; empty means read stdin.
	Messages []string `mapstructure:"-"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// PadLetter returns Pad as a rune. Call after Validate.
func (c Config) PadLetter() rune {
	return rune(c.Pad[0])
}

// LoadKey resolves the key from the inline flag or the key file.
func (c Config) LoadKey() ([][]float64, error) {
	if c.KeyFile != "" {
		return LoadKeyFile(c.KeyFile)
	}

	return ParseKey(c.Key)
}
