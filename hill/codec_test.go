package hill_test

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/modular"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	key2 = [][]float64{{3, 3}, {2, 5}}
	key3 = [][]float64{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
)

// TestEncodeKnownVectors checks published Hill examples.
func TestEncodeKnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, plain, cipher string
		key                 [][]float64
	}{
		{"HELP", "HELP", "HIAT", key2},
		{"ACT", "ACT", "POH", key3},
		{"CAT", "cat", "FIN", key3},
		{"sentence", "Attack at dawn!", "FRFMKCFRJGBF", key2},
		{"negative key", "help", "HIAT", [][]float64{{-23, 29}, {-24, 57}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := hill.Encode(tc.plain, tc.key)
			require.NoError(t, err)
			require.Equal(t, tc.cipher, got)

			back, err := hill.Decode(got, tc.key)
			require.NoError(t, err)
			require.Equal(t, strings.ToUpper(string(onlyLetters(tc.plain))), back)
		})
	}
}

// TestEncodePadding: non-aligned input is padded up to the key order.
func TestEncodePadding(t *testing.T) {
	t.Parallel()

	got, err := hill.Encode("ABC", key2)
	require.NoError(t, err)
	require.Equal(t, "DFGE", got)

	back, err := hill.Decode(got, key2)
	require.NoError(t, err)
	require.Equal(t, "ABCA", back) // padding is kept

	c := hill.New(hill.WithPadLetter('x'))
	require.Equal(t, 'X', c.PadLetter())
	got, err = c.Encode("ABC", key2)
	require.NoError(t, err)
	require.Equal(t, "DFXP", got)
	back, err = c.Decode(got, key2)
	require.NoError(t, err)
	require.Equal(t, "ABCX", back)

	for n := 0; n <= 7; n++ {
		out, err := hill.Encode(strings.Repeat("Q", n), key3)
		require.NoError(t, err)
		require.Equal(t, (n+2)/3*3, len(out), "n=%d", n)
	}
}

// TestEncodeDecodeErrors covers the error surface; validation precedes any work.
func TestEncodeDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  [][]float64
		want error
	}{
		{"empty", nil, hill.ErrEmptyKey},
		{"non-square", [][]float64{{1, 2}}, hill.ErrNonSquareKey},
		{"singular", [][]float64{{1, 2}, {2, 4}}, hill.ErrSingularKey},
		{"not invertible mod 26", [][]float64{{6, 24}, {1, 13}}, hill.ErrKeyNotInvertible},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := hill.Encode("HELP", tc.key)
			require.ErrorIs(t, err, tc.want)
			require.Empty(t, out)

			out, err = hill.Decode("HELP", tc.key)
			require.ErrorIs(t, err, tc.want)
			require.Empty(t, out)
		})
	}

	_, err := hill.New().EncodeKey("HELP", nil)
	require.ErrorIs(t, err, hill.ErrEmptyKey)
	_, err = hill.New().DecodeKey("HELP", nil)
	require.ErrorIs(t, err, hill.ErrEmptyKey)
}

// TestRoundTripRandomKeys: every key accepted by Encode also decodes.
func TestRoundTripRandomKeys(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2026))
	accepted := 0
	for trial := 0; trial < 400; trial++ {
		n := 1 + rng.Intn(5)
		key := make([][]float64, n)
		for i := range key {
			key[i] = make([]float64, n)
			for j := range key[i] {
				key[i][j] = float64(rng.Intn(401) - 200)
			}
		}
		msg := randomLetters(rng, n*(1+rng.Intn(8)))

		ct, err := hill.Encode(msg, key)
		if err != nil {
			require.True(t, errors.Is(err, hill.ErrSingularKey) || errors.Is(err, hill.ErrKeyNotInvertible), "err=%v", err)
			require.Error(t, hill.Validate(key))
			continue
		}
		accepted++
		require.Len(t, ct, len(msg))

		pt, err := hill.Decode(ct, key)
		require.NoError(t, err)
		require.Equal(t, msg, pt, "key=%v", key)
	}
	require.Greater(t, accepted, 50)
}

// TestEncodeKeyMatchesEncode: a prebuilt Key gives the same result.
func TestEncodeKeyMatchesEncode(t *testing.T) {
	k, err := hill.NewKey(key3)
	require.NoError(t, err)

	c := hill.New()
	a, err := c.EncodeKey("retreat now", k)
	require.NoError(t, err)
	b, err := hill.Encode("retreat now", key3)
	require.NoError(t, err)
	require.Equal(t, b, a)

	pt, err := c.DecodeKey(a, k)
	require.NoError(t, err)
	require.Equal(t, "RETREATNOWAA", pt)
}

// TestConcurrentUse hammers a shared Codec and Key from many goroutines.
func TestConcurrentUse(t *testing.T) {
	k, err := hill.NewKey(key3)
	require.NoError(t, err)
	c := hill.New()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 64; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			msg := fmt.Sprintf("MESSAGE%03dXX", g)
			ct, err := c.EncodeKey(msg, k)
			if err != nil {
				errs <- err
				return
			}
			pt, err := c.DecodeKey(ct, k)
			if err != nil {
				errs <- err
				return
			}
			if pt != strings.ToUpper(string(onlyLetters(msg))) {
				errs <- fmt.Errorf("goroutine %d: got %q", g, pt)
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

// TestWithPadLetterPanics: non-letters are programmer errors.
func TestWithPadLetterPanics(t *testing.T) {
	require.Panics(t, func() { hill.WithPadLetter('1') })
	require.Panics(t, func() { hill.WithPadLetter('É') })
	require.NotPanics(t, func() { hill.WithPadLetter('z') })
}

// TestInverseIsExact documents keys where a float inverse would not be integral.
func TestInverseIsExact(t *testing.T) {
	k, err := hill.NewKey(key2) // real inverse has entries like 5/9
	require.NoError(t, err)
	inv, err := hill.InvertKey(k)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{15, 17}, {20, 9}}, inv.ToRows())

	prod, err := modular.Mul(k.Matrix(), inv, hill.Modulus)
	require.NoError(t, err)
	require.True(t, modular.IsIdentity(prod))
}

func onlyLetters(s string) []rune {
	var out []rune
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			out = append(out, r)
		}
	}

	return out
}

func randomLetters(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + rng.Intn(26))
	}

	return string(b)
}
