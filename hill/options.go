// SPDX-License-Identifier: MIT

// Package hill: functional configuration for Codec.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package hill

import (
	"fmt"
	"unicode"
)

// DefaultPadLetter fills the final short block. Changing it changes both the
// ciphertext and the decoded tail of non-aligned messages.
const DefaultPadLetter = 'A'

// Option mutates Options during New.
type Option func(*Options)

// Options holds the resolved Codec configuration.
type Options struct {
	pad int // pad symbol in [0, 26)
}

// WithPadLetter sets the letter used to pad the last block.
// Lowercase ASCII is folded to uppercase. Panics for anything outside A–Z:
// a non-letter pad could never round-trip through the alphabet.
func WithPadLetter(r rune) Option {
	if r <= unicode.MaxASCII {
		r = unicode.ToUpper(r)
	}
	if r < 'A' || r > 'Z' {
		panic(fmt.Sprintf("hill: WithPadLetter(%q): pad must be an ASCII letter", r))
	}

	return func(o *Options) {
		o.pad = int(r - 'A')
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{pad: int(DefaultPadLetter - 'A')}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
