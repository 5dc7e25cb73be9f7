// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/matrix"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check [flags]",
		Short:   "Validate a key and print its inverse mod 26",
		Args:    cobra.NoArgs,
		PreRunE: a.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := a.key()
			if err != nil {
				return err
			}
			inv, err := hill.InvertKey(k)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "order: %d\n", k.Order())
			fmt.Fprintf(w, "det mod %d: %d\n", hill.Modulus, k.Det())
			fmt.Fprintf(w, "det (real): %g\n", k.RealDet())
			if err := printMatrix(w, "key mod 26", k.Matrix()); err != nil {
				return err
			}
			if err := printMatrix(w, "inverse mod 26", inv); err != nil {
				return err
			}
			a.logger.Debug("key checked", zap.Int("order", k.Order()), zap.Int("det", k.Det()))

			return nil
		},
	}
}

func printMatrix(w io.Writer, title string, m *matrix.Dense) error {
	if _, err := fmt.Fprintf(w, "%s:\n%s", title, m); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
