// SPDX-License-Identifier: MIT

package modular

import (
	"fmt"
	"math"
)

// Mod returns the canonical representative of x in [0, m).
// Unlike Go's %, the result is never negative: Mod(-90, 26) == 14.
// m must be positive.
func Mod(x, m int) int {
	return ((x % m) + m) % m
}

// ReduceFloat maps a real value into [0, m) as ((x mod m) + m) mod m and
// truncates the result toward zero. For integral x this is exactly Mod;
// fractional inputs land on the integer just below their reduced value.
func ReduceFloat(x float64, m int) int {
	fm := float64(m)
	r := math.Mod(math.Mod(x, fm)+fm, fm)

	return int(math.Trunc(r)) % m
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a*x + b*y == g.
func ExtendedGCD(a, b int) (g, x, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

// Inverse returns the multiplicative inverse of a modulo m.
//
// Errors:
//   - ErrInvalidModulus when m < 2.
//   - ErrNotInvertible when gcd(a, m) != 1.
func Inverse(a, m int) (int, error) {
	if m < 2 {
		return 0, modErrorf(opInverse, ErrInvalidModulus)
	}
	g, x, _ := ExtendedGCD(Mod(a, m), m)
	if g != 1 {
		return 0, modErrorf(opInverse, fmt.Errorf("gcd(%d, %d) = %d: %w", Mod(a, m), m, g, ErrNotInvertible))
	}

	return Mod(x, m), nil
}
