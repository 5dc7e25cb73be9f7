package hill_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/modular"
	"github.com/stretchr/testify/require"
)

// TestValidate covers every rejection class in check order.
func TestValidate(t *testing.T) {
	t.Parallel()

	big := make([][]float64, hill.MaxOrder+1)
	for i := range big {
		big[i] = make([]float64, hill.MaxOrder+1)
		big[i][i] = 1
	}

	tests := []struct {
		name string
		key  [][]float64
		want error
	}{
		{"nil", nil, hill.ErrEmptyKey},
		{"zero rows", [][]float64{}, hill.ErrEmptyKey},
		{"empty row", [][]float64{{}}, hill.ErrNonSquareKey},
		{"wide", [][]float64{{1, 2, 3}, {4, 5, 6}}, hill.ErrNonSquareKey},
		{"ragged", [][]float64{{1, 2}, {3}}, hill.ErrNonSquareKey},
		{"too large", big, hill.ErrKeyTooLarge},
		{"nan", [][]float64{{1, math.NaN()}, {0, 1}}, hill.ErrInvalidEntry},
		{"real det zero", [][]float64{{2, 4}, {1, 2}}, hill.ErrSingularKey},
		{"fractional real det zero", [][]float64{{0.5, 1}, {1, 2}}, hill.ErrSingularKey},
		{"fractional real det zero scaled", [][]float64{{1.5, 3}, {1, 2}}, hill.ErrSingularKey},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, hill.ErrSingularKey},
		{"det multiple of 26", [][]float64{{26, 0}, {0, 1}}, hill.ErrSingularKey},
		{"det even", [][]float64{{6, 24}, {1, 13}}, hill.ErrKeyNotInvertible},
		{"det 13", [][]float64{{13, 0}, {0, 1}}, hill.ErrKeyNotInvertible},
		{"1x1 unit", [][]float64{{7}}, nil},
		{"classic 2x2", [][]float64{{3, 3}, {2, 5}}, nil},
		{"negative entries", [][]float64{{-23, 29}, {-24, 57}}, nil},
		{"classic 3x3", [][]float64{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := hill.Validate(tc.key)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewKeyAccessors checks the reduced view and determinants.
func TestNewKeyAccessors(t *testing.T) {
	t.Parallel()

	k, err := hill.NewKey([][]float64{{-23, 29}, {-24, 57}})
	require.NoError(t, err)

	require.Equal(t, 2, k.Order())
	require.Equal(t, 9, k.Det())
	require.InDelta(t, -23*57.0+29*24.0, k.RealDet(), 1e-9)
	require.Empty(t, cmp.Diff([][]int{{3, 3}, {2, 5}}, k.Reduced()))
	require.Equal(t, [][]float64{{3, 3}, {2, 5}}, k.Matrix().ToRows())

	// Reduced returns a copy.
	r := k.Reduced()
	r[0][0] = 99
	require.Equal(t, 3, k.Reduced()[0][0])
}

// TestNewKeyReducesNegativeEntries checks that classification uses the reduced entries.
func TestNewKeyReducesNegativeEntries(t *testing.T) {
	// [[-90,-57],[12,33]] → [[14,21],[12,7]], det = 14*7-21*12 = -154 ≡ 2: rejected.
	err := hill.Validate([][]float64{{-90, -57}, {12, 33}})
	require.ErrorIs(t, err, hill.ErrKeyNotInvertible)
}

// TestEncodeRejectsFractionalSingularKey checks that a key whose real
// determinant is 0 never reaches the block processor, even when its truncated
// entries would form a unit mod 26.
func TestEncodeRejectsFractionalSingularKey(t *testing.T) {
	t.Parallel()

	// Truncated to [[0,1],[1,2]]: det ≡ 25 (mod 26).
	for _, key := range [][][]float64{
		{{0.5, 1}, {1, 2}},
		{{1.5, 3}, {1, 2}},
	} {
		out, err := hill.Encode("HELP", key)
		require.ErrorIs(t, err, hill.ErrSingularKey, "key %v", key)
		require.Empty(t, out)

		_, err = hill.Decode("HELP", key)
		require.ErrorIs(t, err, hill.ErrSingularKey, "key %v", key)
	}

	// Fractional entries with a non-zero real determinant still reduce.
	k, err := hill.NewKey([][]float64{{3.5, 3}, {2, 5.9}})
	require.NoError(t, err)
	require.Equal(t, [][]int{{3, 3}, {2, 5}}, k.Reduced())
	require.InDelta(t, 3.5*5.9-6, k.RealDet(), 1e-9)
}

// TestInvertKey checks K·K⁻¹ ≡ I and a known inverse.
func TestInvertKey(t *testing.T) {
	t.Parallel()

	k, err := hill.NewKey([][]float64{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}})
	require.NoError(t, err)

	inv, err := hill.InvertKey(k)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}, inv.ToRows())

	prod, err := modular.Mul(k.Matrix(), inv, hill.Modulus)
	require.NoError(t, err)
	require.True(t, modular.IsIdentity(prod))
}
