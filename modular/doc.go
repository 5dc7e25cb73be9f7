// Package modular implements exact integer arithmetic over Z/mZ for scalars
// and square matrices.
//
// The package provides:
//
//   - Mod and ReduceFloat: canonical representatives in [0, m), correct for
//     negative operands (true modulo, not truncating remainder).
//   - GCD, ExtendedGCD and Inverse: modular multiplicative inverses via the
//     extended Euclidean algorithm.
//   - ReduceMatrix: reduce every entry of a matrix.Matrix into [0, m).
//   - Det, Minor, Adjugate and InverseMatrix: determinant and inverse over
//     Z/mZ. The determinant uses Euclidean row reduction, so it works for
//     composite moduli such as 26 where ordinary Gauss-Jordan fails, and no
//     intermediate value ever leaves [0, m).
//   - Mul and IsIdentity for checking A·A⁻¹ ≡ I (mod m).
//
// Matrices are plain [][]int in row-major order. Inputs are never mutated.
package modular
