// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"
	"strings"
)

// Modulus is the alphabet size: the 26 unaccented uppercase Latin letters.
const Modulus = 26

// TextToSymbols maps text to symbols A→0 … Z→25.
// Lowercase ASCII letters are folded to uppercase; every other rune (digits,
// punctuation, whitespace, non-ASCII letters) is dropped silently. Empty or
// letter-free input yields an empty, non-nil slice.
func TextToSymbols(text string) []int {
	symbols := make([]int, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			symbols = append(symbols, int(r-'A'))
		case r >= 'a' && r <= 'z':
			symbols = append(symbols, int(r-'a'))
		}
	}

	return symbols
}

// SymbolsToText maps symbols back to uppercase letters.
// It is the left inverse of TextToSymbols on uppercase-only input.
//
// Errors:
//   - ErrSymbolOutOfRange for any symbol outside [0, 26).
func SymbolsToText(symbols []int) (string, error) {
	var b strings.Builder
	b.Grow(len(symbols))
	for i, s := range symbols {
		if s < 0 || s >= Modulus {
			return "", hillErrorf(opSymbolsToText, fmt.Errorf("index %d value %d: %w", i, s, ErrSymbolOutOfRange))
		}
		b.WriteByte(byte('A' + s))
	}

	return b.String(), nil
}
