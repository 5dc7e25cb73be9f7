// SPDX-License-Identifier: MIT

package modular

import "fmt"

// validateSquare checks a is non-empty, square and m >= 2.
func validateSquare(a [][]int, m int) error {
	if m < 2 {
		return ErrInvalidModulus
	}
	if len(a) == 0 {
		return ErrEmptyMatrix
	}
	for i, row := range a {
		if len(row) != len(a) {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), len(a), ErrNonSquare)
		}
	}

	return nil
}

// reducedCopy returns a deep copy of a with entries reduced into [0, m).
func reducedCopy(a [][]int, m int) [][]int {
	out := make([][]int, len(a))
	for i, row := range a {
		out[i] = make([]int, len(row))
		for j, v := range row {
			out[i][j] = Mod(v, m)
		}
	}

	return out
}

// Det computes det(a) mod m.
// Implementation:
//   - Stage 1: validate shape and modulus; work on a reduced copy.
//   - Stage 2: for each column c, clear every entry below the diagonal by
//     running Euclid's algorithm between row c and row r: subtract
//     ⌊a[c][c]/a[r][c]⌋ times row r from row c, then swap. Each swap flips
//     the sign; subtraction leaves the determinant unchanged.
//   - Stage 3: det = sign * Π a[c][c] (mod m).
//
// Behavior highlights:
//   - Uses only unimodular row operations, so it is exact for composite m
//     where not every non-zero pivot has an inverse.
//   - Every stored value stays in [0, m); no overflow for any m below √MaxInt.
//
// Complexity:
//   - Time O(n^3 log m), Space O(n^2).
func Det(a [][]int, m int) (int, error) {
	if err := validateSquare(a, m); err != nil {
		return 0, modErrorf(opDet, err)
	}

	return det(reducedCopy(a, m), m), nil
}

// det is the unchecked kernel behind Det. It consumes w.
func det(w [][]int, m int) int {
	n := len(w)
	sign := 1
	for c := 0; c < n; c++ {
		for r := c + 1; r < n; r++ {
			for w[r][c] != 0 {
				q := w[c][c] / w[r][c]
				for j := c; j < n; j++ {
					w[c][j] = Mod(w[c][j]-q*w[r][j], m)
				}
				w[c], w[r] = w[r], w[c]
				sign = -sign
			}
		}
		if w[c][c] == 0 {
			return 0
		}
	}

	d := Mod(sign, m)
	for c := 0; c < n; c++ {
		d = (d * w[c][c]) % m
	}

	return d
}

// Minor returns a copy of a with row i and column j removed.
// a must be square with n >= 2 and 0 <= i, j < n.
func Minor(a [][]int, i, j int) [][]int {
	n := len(a)
	out := make([][]int, 0, n-1)
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		row := make([]int, 0, n-1)
		for c := 0; c < n; c++ {
			if c != j {
				row = append(row, a[r][c])
			}
		}
		out = append(out, row)
	}

	return out
}

// Adjugate returns adj(a) mod m, the transpose of the cofactor matrix:
// adj[j][i] = (-1)^(i+j) * det(Minor(a, i, j)) mod m.
// A 1×1 matrix has adjugate [[1]].
//
// Complexity: Time O(n^5 log m) via n² minor determinants, fine for cipher keys.
func Adjugate(a [][]int, m int) ([][]int, error) {
	if err := validateSquare(a, m); err != nil {
		return nil, modErrorf(opAdjugate, err)
	}
	n := len(a)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	if n == 1 {
		adj[0][0] = 1

		return adj, nil
	}

	w := reducedCopy(a, m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cof := det(Minor(w, i, j), m)
			if (i+j)%2 == 1 {
				cof = Mod(-cof, m)
			}
			adj[j][i] = cof
		}
	}

	return adj, nil
}

// InverseMatrix returns a⁻¹ over Z/mZ as d⁻¹ · adj(a) mod m, where d = det(a) mod m.
//
// Errors:
//   - ErrInvalidModulus, ErrEmptyMatrix, ErrNonSquare on malformed input.
//   - ErrNotInvertible when gcd(d, m) != 1.
func InverseMatrix(a [][]int, m int) ([][]int, error) {
	d, err := Det(a, m)
	if err != nil {
		return nil, modErrorf(opInverseMatrix, err)
	}
	dInv, err := Inverse(d, m)
	if err != nil {
		return nil, modErrorf(opInverseMatrix, fmt.Errorf("det %d: %w", d, err))
	}
	adj, err := Adjugate(a, m)
	if err != nil {
		return nil, modErrorf(opInverseMatrix, err)
	}
	for i := range adj {
		for j := range adj[i] {
			adj[i][j] = (adj[i][j] * dInv) % m
		}
	}

	return adj, nil
}
