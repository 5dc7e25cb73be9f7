// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcipher/hill"
)

func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "encode [flags] [messages...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt messages",
		PreRunE: a.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opEncode, func(c *hill.Codec, msg string, k *hill.Key) (string, error) {
				return c.EncodeKey(msg, k)
			})
		},
	}
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode [flags] [messages...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt messages",
		PreRunE: a.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opDecode, func(c *hill.Codec, msg string, k *hill.Key) (string, error) {
				return c.DecodeKey(msg, k)
			})
		},
	}
}
