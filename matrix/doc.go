// Package matrix offers a small, deterministic dense-matrix toolkit used by
// the Hill cipher to carry key material and to apply keys to blocks.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose At/Set never panic and
//     reject NaN/Inf under the default numeric policy.
//   - NewDenseFrom for building a matrix from a [][]float64 literal with
//     strict shape checks (non-empty, rectangular).
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateMulCompatible) shared by every kernel.
//   - Kernels: Mul, MatVec and Det (Gaussian elimination with partial
//     pivoting).
//
// All kernels return sentinel errors from errors.go, wrapped with the
// operation name, so callers match them with errors.Is.
package matrix
