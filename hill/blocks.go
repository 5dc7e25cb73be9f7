// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/katalvlaran/hillcipher/modular"
)

// PadSymbol is the default filler for a short final block: 0, i.e. 'A'.
// Padding is never stripped, so output length is always a multiple of the
// key order and may exceed the input length.
const PadSymbol = 0

// Process applies transform to symbols block by block, padding with PadSymbol.
// transform may hold any finite entries: it is reduced into [0, 26) first, so
// large or negative values give the same symbols as their residues.
// See process for the rest of the contract.
func Process(symbols []int, transform matrix.Matrix) ([]int, error) {
	if err := checkTransform(transform); err != nil {
		return nil, err
	}
	ints, err := modular.ReduceMatrix(transform, Modulus)
	if err != nil {
		return nil, hillErrorf(opProcess, err)
	}
	reduced, err := modular.ToDense(ints)
	if err != nil {
		return nil, hillErrorf(opProcess, err)
	}

	return process(symbols, reduced, PadSymbol)
}

// checkTransform requires a non-nil square transform.
func checkTransform(transform matrix.Matrix) error {
	if err := matrix.ValidateNotNil(transform); err != nil {
		return hillErrorf(opProcess, err)
	}
	if err := matrix.ValidateSquare(transform); err != nil {
		return hillErrorf(opProcess, fmt.Errorf("%w: %w", ErrNonSquareKey, err))
	}

	return nil
}

// process partitions symbols into blocks of n = transform order, pads the last
// block with pad, multiplies each block (as an n×1 column) by transform and
// reduces the result mod 26.
// transform must already be reduced into [0, 26); the codec passes reduced
// keys and inverses, Process reduces caller matrices.
//
// Implementation:
//   - Stage 1: transform must be non-nil and square; symbols in [0, 26).
//   - Stage 2: per block, fill a reused float64 column; matrix.MatVec; ReduceFloat.
//
// Behavior highlights:
//   - Empty input yields empty output (no block is emitted).
//   - Float arithmetic is exact: entries < 26, symbols < 26, order ≤ MaxOrder.
//
// Errors:
//   - ErrNonSquareKey, ErrSymbolOutOfRange; propagated matrix errors.
//
// Complexity:
//   - Time O(len·n), Space O(len + n).
func process(symbols []int, transform matrix.Matrix, pad int) ([]int, error) {
	if err := checkTransform(transform); err != nil {
		return nil, err
	}
	for i, s := range symbols {
		if s < 0 || s >= Modulus {
			return nil, hillErrorf(opProcess, fmt.Errorf("index %d value %d: %w", i, s, ErrSymbolOutOfRange))
		}
	}

	n := transform.Rows()
	blocks := (len(symbols) + n - 1) / n
	out := make([]int, 0, blocks*n)
	col := make([]float64, n)
	for b := 0; b < blocks; b++ {
		for j := 0; j < n; j++ {
			if idx := b*n + j; idx < len(symbols) {
				col[j] = float64(symbols[idx])
			} else {
				col[j] = float64(pad)
			}
		}
		y, err := matrix.MatVec(transform, col)
		if err != nil {
			return nil, hillErrorf(opProcess, fmt.Errorf("block %d: %w", b, err))
		}
		for _, v := range y {
			out = append(out, modular.ReduceFloat(v, Modulus))
		}
	}

	return out, nil
}
