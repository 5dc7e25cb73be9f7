// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector products and determinants. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.
//   - Each kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with the same loop order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a vanished pivot during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul    = "Mul"
	opMatVec = "MatVec"
	opDet    = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order, so integral inputs whose partial sums
// stay below 2^53 produce exact integral outputs.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Det computes the real determinant of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquare(m); copy into a scratch row-major buffer.
//   - Stage 2: Gaussian elimination with partial pivoting (largest |a[k,col]|,
//     first index wins on ties); each row swap flips the sign.
//   - Stage 3: det = sign * Π diag(U).
//
// Behavior highlights:
//   - A column with no non-zero pivot short-circuits to 0 (no error): a
//     singular matrix has a well-defined determinant.
//   - Input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Floating point: for integer matrices the result is only approximately
//     integral; callers needing exact answers over Z/mZ should use the
//     modular package instead.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := m.Rows()

	var a []float64
	if d, ok := m.(*Dense); ok {
		a = make([]float64, len(d.data))
		copy(a, d.data)
	} else {
		a = make([]float64, n*n)
		var v float64
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return 0, matrixErrorf(opDet, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				a[i*n+j] = v
			}
		}
	}

	det := 1.0
	var col, k, j, pivotRow int
	var best, f float64
	for col = 0; col < n; col++ {
		// Pivot search: largest magnitude in column col at or below the diagonal.
		pivotRow, best = col, math.Abs(a[col*n+col])
		for k = col + 1; k < n; k++ {
			if v := math.Abs(a[k*n+col]); v > best {
				pivotRow, best = k, v
			}
		}
		if best == ZeroPivot {
			return 0, nil
		}
		if pivotRow != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[pivotRow*n+j] = a[pivotRow*n+j], a[col*n+j]
			}
			det = -det
		}
		det *= a[col*n+col]
		// Eliminate below the pivot.
		for k = col + 1; k < n; k++ {
			f = a[k*n+col] / a[col*n+col]
			if f == 0 {
				continue
			}
			for j = col; j < n; j++ {
				a[k*n+j] -= f * a[col*n+j]
			}
		}
	}

	return det, nil
}
