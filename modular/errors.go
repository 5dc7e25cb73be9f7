// SPDX-License-Identifier: MIT

package modular

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "modular: ...". Operations wrap these with
// their name via modErrorf; callers match with errors.Is.
var (
	// ErrInvalidModulus is returned when m < 2.
	ErrInvalidModulus = errors.New("modular: modulus must be >= 2")

	// ErrNotInvertible signals gcd(value, m) != 1, so no inverse exists in Z/mZ.
	ErrNotInvertible = errors.New("modular: value not invertible")

	// ErrEmptyMatrix indicates a matrix with zero rows.
	ErrEmptyMatrix = errors.New("modular: empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("modular: matrix is not square")
)

// Operation tags for error wrapping.
const (
	opInverse       = "Inverse"
	opReduceMatrix  = "ReduceMatrix"
	opDet           = "Det"
	opAdjugate      = "Adjugate"
	opInverseMatrix = "InverseMatrix"
	opMul           = "Mul"
)

func modErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
