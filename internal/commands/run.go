// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillcipher/hill"
)

const (
	opEncode = "encode"
	opDecode = "decode"
)

// maxLineSize bounds a single stdin message.
const maxLineSize = 16 << 20

type transformFunc func(c *hill.Codec, msg string, k *hill.Key) (string, error)

// run builds the key once, transforms every message with up to cfg.Parallel
// workers and prints results in input order.
func (a *app) run(cmd *cobra.Command, op string, fn transformFunc) error {
	key, err := a.key()
	if err != nil {
		return err
	}
	codec := hill.New(hill.WithPadLetter(a.cfg.PadLetter()))

	messages := a.cfg.Messages
	if len(messages) == 0 {
		if messages, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	results := make([]string, len(messages))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Parallel)
	for i, msg := range messages {
		i, msg := i, msg // per-iteration copies (Go 1.22 loop semantics under go 1.21)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := fn(codec, msg, key)
			if err != nil {
				return fmt.Errorf("%s message %d: %w", op, i+1, err)
			}
			results[i] = out
			a.logger.Debug("message processed",
				zap.String("op", op),
				zap.Int("index", i),
				zap.Int("output_len", len(out)),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	a.logger.Info("done", zap.String("op", op), zap.Int("messages", len(messages)), zap.Int("order", key.Order()))

	return nil
}

// key loads and validates the configured key.
func (a *app) key() (*hill.Key, error) {
	rows, err := a.cfg.LoadKey()
	if err != nil {
		return nil, err
	}
	k, err := hill.NewKey(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}

	return k, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return lines, nil
}
