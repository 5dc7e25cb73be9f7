// SPDX-License-Identifier: MIT

package hill

// Codec encodes and decodes text with Hill keys.
// A Codec holds configuration only; it is immutable and safe for concurrent use.
type Codec struct {
	opts Options
}

var defaultCodec = New()

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	return &Codec{opts: gatherOptions(opts...)}
}

// PadLetter reports the letter used to pad the final block.
func (c *Codec) PadLetter() rune { return rune('A' + c.opts.pad) }

// Encode validates key and encrypts text.
// Pipeline: validate → reduce mod 26 → text to symbols → block-process → symbols to text.
func (c *Codec) Encode(text string, key [][]float64) (string, error) {
	k, err := NewKey(key)
	if err != nil {
		return "", hillErrorf(opEncode, err)
	}

	return c.EncodeKey(text, k)
}

// Decode validates key and decrypts text.
// Pipeline: validate → reduce → modular inverse → text to symbols → block-process → text.
func (c *Codec) Decode(text string, key [][]float64) (string, error) {
	k, err := NewKey(key)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}

	return c.DecodeKey(text, k)
}

// EncodeKey encrypts text with an already validated key. A nil key is
// reported as ErrEmptyKey.
func (c *Codec) EncodeKey(text string, k *Key) (string, error) {
	if k == nil {
		return "", hillErrorf(opEncode, ErrEmptyKey)
	}
	out, err := process(TextToSymbols(text), k.reduced, c.opts.pad)
	if err != nil {
		return "", hillErrorf(opEncode, err)
	}
	s, err := SymbolsToText(out)
	if err != nil {
		return "", hillErrorf(opEncode, err)
	}

	return s, nil
}

// DecodeKey decrypts text with an already validated key.
// Ciphertext whose length is not a multiple of the key order is padded like
// plaintext; well-formed ciphertext never needs it.
func (c *Codec) DecodeKey(text string, k *Key) (string, error) {
	if k == nil {
		return "", hillErrorf(opDecode, ErrEmptyKey)
	}
	inv, err := InvertKey(k)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}
	out, err := process(TextToSymbols(text), inv, c.opts.pad)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}
	s, err := SymbolsToText(out)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}

	return s, nil
}

// Encode encrypts text with key using the default Codec (pad 'A').
func Encode(text string, key [][]float64) (string, error) {
	return defaultCodec.Encode(text, key)
}

// Decode decrypts text with key using the default Codec (pad 'A').
func Decode(text string, key [][]float64) (string, error) {
	return defaultCodec.Decode(text, key)
}
