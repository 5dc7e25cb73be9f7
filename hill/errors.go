// SPDX-License-Identifier: MIT
// Package hill: sentinel error set.
// Every exported operation returns these sentinels wrapped with the operation
// name ("Encode: hill: key is empty"). Callers match with errors.Is. Key
// validation always happens before any text is touched, so an error means no
// work was done.

package hill

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when the key matrix has zero rows.
	ErrEmptyKey = errors.New("hill: key is empty")

	// ErrNonSquareKey is returned when some row length differs from the row count.
	ErrNonSquareKey = errors.New("hill: key matrix should be a square matrix")

	// ErrSingularKey is returned when det(key) ≡ 0 (mod 26). This covers
	// every key whose real determinant is zero.
	ErrSingularKey = errors.New("hill: key matrix is singular")

	// ErrKeyNotInvertible is returned when det(key) mod 26 shares a factor
	// with 26 (is even or a multiple of 13), so no inverse exists over Z/26Z,
	// or when a computed inverse fails the K·K⁻¹ ≡ I check.
	ErrKeyNotInvertible = errors.New("hill: key matrix is not invertible mod 26")

	// ErrInvalidEntry is returned when a key entry is NaN or ±Inf.
	ErrInvalidEntry = errors.New("hill: key entry is not a finite number")

	// ErrKeyTooLarge is returned when the key order exceeds MaxOrder.
	ErrKeyTooLarge = errors.New("hill: key order exceeds limit")

	// ErrSymbolOutOfRange is returned when a symbol lies outside [0, 26).
	ErrSymbolOutOfRange = errors.New("hill: symbol out of range")
)

// Operation tags for error wrapping.
const (
	opEncode        = "Encode"
	opDecode        = "Decode"
	opNewKey        = "NewKey"
	opInvertKey     = "InvertKey"
	opProcess       = "Process"
	opSymbolsToText = "SymbolsToText"
)

// hillErrorf wraps err with an operation tag, preserving the sentinel via %w.
func hillErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
