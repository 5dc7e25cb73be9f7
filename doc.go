// Package hillcipher is a small toolkit for the Hill cipher over the
// 26-letter Latin alphabet.
//
// The cipher treats a message as a sequence of column vectors of length n
// and multiplies each by an n×n key modulo 26. A key is usable only when its
// determinant is coprime to 26; decryption uses the exact inverse
// det⁻¹·adj(K) mod 26.
//
// Packages:
//
//	matrix/           - dense float64 matrices: construction, Mul, MatVec, Det
//	modular/          - integer arithmetic mod m: GCD, inverses, det/adjugate/inverse of matrices
//	hill/             - keys, block processing and the Encode/Decode codec
//	internal/config/  - CLI configuration and key file parsing
//	internal/commands - the cobra command tree behind cmd/hill
//	cmd/hill/         - the hill binary (encode, decode, check)
//
// Quick start:
//
//	out, err := hill.Encode("help", [][]float64{{3, 3}, {2, 5}}) // "HIAT"
//	in, err := hill.Decode(out, [][]float64{{3, 3}, {2, 5}})     // "HELP"
package hillcipher
