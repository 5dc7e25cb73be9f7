// SPDX-License-Identifier: MIT

package modular

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/matrix"
)

// ReduceMatrix returns a fresh [][]int with every entry of src reduced into
// [0, mod) via ReduceFloat. src is read-only.
//
// Errors:
//   - ErrInvalidModulus when mod < 2.
//   - matrix.ErrNilMatrix for a nil src.
//   - Propagated At errors (never expected for a well-formed Matrix).
//
// Complexity: Time O(r*c), Space O(r*c).
func ReduceMatrix(src matrix.Matrix, mod int) ([][]int, error) {
	if mod < 2 {
		return nil, modErrorf(opReduceMatrix, ErrInvalidModulus)
	}
	if err := matrix.ValidateNotNil(src); err != nil {
		return nil, modErrorf(opReduceMatrix, err)
	}

	rows, cols := src.Rows(), src.Cols()
	out := make([][]int, rows)
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, modErrorf(opReduceMatrix, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i][j] = ReduceFloat(v, mod)
		}
	}

	return out, nil
}

// ToDense converts an integer matrix into a *matrix.Dense.
func ToDense(a [][]int) (*matrix.Dense, error) {
	rows := make([][]float64, len(a))
	for i, row := range a {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			rows[i][j] = float64(v)
		}
	}

	return matrix.NewDenseFrom(rows)
}

// Mul returns (a × b) mod `mod`. Multiplication runs in float64 through
// matrix.Mul; operands already reduced into [0, mod) keep every partial sum
// exact for any realistic order.
func Mul(a, b matrix.Matrix, mod int) ([][]int, error) {
	p, err := matrix.Mul(a, b)
	if err != nil {
		return nil, modErrorf(opMul, err)
	}

	return ReduceMatrix(p, mod)
}

// IsIdentity reports whether a is square with ones on the diagonal and zeros elsewhere.
func IsIdentity(a [][]int) bool {
	for i, row := range a {
		if len(row) != len(a) {
			return false
		}
		for j, v := range row {
			if (i == j && v != 1) || (i != j && v != 0) {
				return false
			}
		}
	}

	return true
}
