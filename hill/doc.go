// Package hill implements the classical Hill cipher over the 26 uppercase
// Latin letters.
//
// A message is mapped to symbols (A=0 … Z=25), split into blocks of the key
// order n, and each block is multiplied as a column vector by the key matrix
// modulo 26. Decoding multiplies by the key's inverse over Z/26Z.
//
// Keys are square matrices supplied as [][]float64; entries may be negative
// or large and are reduced into [0, 26). A key is accepted only when its
// determinant mod 26 is coprime to 26, for encoding and decoding alike, so
// every key that encodes can also decode:
//
//	ct, err := hill.Encode("Help!", [][]float64{{3, 3}, {2, 5}}) // "HIAT"
//	pt, err := hill.Decode(ct, [][]float64{{3, 3}, {2, 5}})      // "HELP"
//
// Key order is capped at MaxOrder (32). The cap bounds the O(n^5) cost of
// building the inverse; arithmetic stays exact well beyond it. Larger keys
// fail with ErrKeyTooLarge.
//
// Non-letters are dropped and lowercase is folded, so Decode(Encode(x))
// returns the normalized letters of x followed by any padding ('A' by
// default, see WithPadLetter). All functions are pure and safe for
// concurrent use.
package hill
