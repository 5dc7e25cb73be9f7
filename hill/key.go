// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/katalvlaran/hillcipher/modular"
)

// MaxOrder bounds the key order. It is a cost limit: inversion computes n²
// minor determinants, so work grows as O(n^5).
const MaxOrder = 32

// realDetTolerance is the magnitude below which the real determinant of the
// caller's entries counts as zero.
const realDetTolerance = 1e-9

// Key is a validated Hill key: square, order 1..MaxOrder, det(key) a unit mod 26.
// A Key is immutable after NewKey and safe for concurrent use.
type Key struct {
	raw     *matrix.Dense // caller's entries, copied
	reduced *matrix.Dense // entries reduced into [0, 26)
	ints    [][]int       // same as reduced, as integers
	det     int           // det(reduced) mod 26
	realDet float64       // det(raw)
}

// Validate checks rows without building a Key.
// Check order: empty → square → size → finite entries → real determinant →
// modular determinant.
//
// Errors:
//   - ErrEmptyKey, ErrNonSquareKey, ErrKeyTooLarge, ErrInvalidEntry.
//   - ErrSingularKey when the real determinant is 0 or det ≡ 0 (mod 26).
//   - ErrKeyNotInvertible when gcd(det mod 26, 26) != 1.
func Validate(rows [][]float64) error {
	_, err := NewKey(rows)

	return err
}

// NewKey validates rows and returns the reduced key.
// MAIN DESCRIPTION:
//   - The same check serves encoding and decoding: the determinant of the
//     reduced entries must be a unit of Z/26Z, so an inverse always exists.
//   - The real determinant of the caller's entries must be non-zero as well.
//     Fractional entries are truncated during reduction, which can turn a
//     singular real matrix into a valid-looking modular one.
//
// Implementation:
//   - Stage 1: shape (empty, square, MaxOrder).
//   - Stage 2: copy into matrix.Dense (rejects NaN/Inf).
//   - Stage 3: real determinant via matrix.Det; |det| below tolerance is singular.
//   - Stage 4: reduce mod 26; compute det mod 26; classify.
//
// Complexity:
//   - Time O(n^3 log 26), Space O(n^2).
func NewKey(rows [][]float64) (*Key, error) {
	n := len(rows)
	if n == 0 {
		return nil, hillErrorf(opNewKey, ErrEmptyKey)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, hillErrorf(opNewKey, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquareKey))
		}
	}
	if n > MaxOrder {
		return nil, hillErrorf(opNewKey, fmt.Errorf("order %d > %d: %w", n, MaxOrder, ErrKeyTooLarge))
	}

	raw, err := matrix.NewDenseFrom(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, hillErrorf(opNewKey, fmt.Errorf("%w: %w", ErrInvalidEntry, err))
		}

		return nil, hillErrorf(opNewKey, err)
	}

	realDet, err := matrix.Det(raw)
	if err != nil {
		return nil, hillErrorf(opNewKey, err)
	}
	if math.Abs(realDet) < realDetTolerance {
		return nil, hillErrorf(opNewKey, fmt.Errorf("real det %g: %w", realDet, ErrSingularKey))
	}

	ints, err := modular.ReduceMatrix(raw, Modulus)
	if err != nil {
		return nil, hillErrorf(opNewKey, err)
	}
	det, err := modular.Det(ints, Modulus)
	if err != nil {
		return nil, hillErrorf(opNewKey, err)
	}
	switch {
	case det == 0:
		return nil, hillErrorf(opNewKey, ErrSingularKey)
	case modular.GCD(det, Modulus) != 1:
		return nil, hillErrorf(opNewKey, fmt.Errorf("det ≡ %d (mod %d): %w", det, Modulus, ErrKeyNotInvertible))
	}

	reduced, err := modular.ToDense(ints)
	if err != nil {
		return nil, hillErrorf(opNewKey, err)
	}

	return &Key{raw: raw, reduced: reduced, ints: ints, det: det, realDet: realDet}, nil
}

// Order returns n for an n×n key.
func (k *Key) Order() int { return k.raw.Rows() }

// Det returns det(key) mod 26, always a unit of Z/26Z.
func (k *Key) Det() int { return k.det }

// RealDet returns the determinant of the caller's unreduced entries.
// It is never zero for a Key built by NewKey.
func (k *Key) RealDet() float64 { return k.realDet }

// Reduced returns a copy of the key entries reduced into [0, 26).
func (k *Key) Reduced() [][]int {
	out := make([][]int, len(k.ints))
	for i, row := range k.ints {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// Matrix returns a copy of the reduced key as a Dense matrix.
func (k *Key) Matrix() *matrix.Dense {
	return k.reduced.Clone().(*matrix.Dense)
}

// InvertKey returns K⁻¹ over Z/26Z as a Dense matrix with entries in [0, 26).
// MAIN DESCRIPTION:
//   - Exact construction: det⁻¹ · adj(K) mod 26 (modular.InverseMatrix).
//   - The result is checked: K·K⁻¹ must reduce to I, else ErrKeyNotInvertible.
//
// Errors:
//   - ErrKeyNotInvertible when no inverse exists or the check fails.
//     Unreachable for keys built by NewKey; kept so a failed inversion can
//     never yield garbage plaintext.
func InvertKey(k *Key) (*matrix.Dense, error) {
	inv, err := modular.InverseMatrix(k.ints, Modulus)
	if err != nil {
		if errors.Is(err, modular.ErrNotInvertible) {
			return nil, hillErrorf(opInvertKey, fmt.Errorf("%w: %w", ErrKeyNotInvertible, err))
		}

		return nil, hillErrorf(opInvertKey, err)
	}
	invDense, err := modular.ToDense(inv)
	if err != nil {
		return nil, hillErrorf(opInvertKey, err)
	}

	prod, err := modular.Mul(k.reduced, invDense, Modulus)
	if err != nil {
		return nil, hillErrorf(opInvertKey, err)
	}
	if !modular.IsIdentity(prod) {
		return nil, hillErrorf(opInvertKey, ErrKeyNotInvertible)
	}

	return invDense, nil
}
