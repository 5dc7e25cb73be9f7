// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hillcipher/matrix"
	"github.com/stretchr/testify/require"
)

// rowsMatrix is a Matrix that is not *Dense, so kernels take their At-based path.
type rowsMatrix [][]float64

func (m rowsMatrix) Rows() int { return len(m) }
func (m rowsMatrix) Cols() int { return len(m[0]) }

func (m rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return 0, matrix.ErrOutOfRange
	}

	return m[i][j], nil
}

func (m rowsMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v

	return nil
}

func (m rowsMatrix) Clone() matrix.Matrix {
	out := make(rowsMatrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// failingMatrix reports its shape but fails every read.
type failingMatrix struct{ rowsMatrix }

var errRead = errors.New("read failed")

func (failingMatrix) At(int, int) (float64, error) { return 0, errRead }

// TestKernelsWithoutDense runs Mul, MatVec and Det on a non-Dense Matrix and
// expects the same results as the Dense fast paths.
func TestKernelsWithoutDense(t *testing.T) {
	t.Parallel()

	key := [][]float64{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
	generic := rowsMatrix(key)
	dense := mustDense(t, key)

	y, err := matrix.MatVec(generic, []float64{0, 2, 19})
	require.NoError(t, err)
	require.Equal(t, []float64{67, 222, 319}, y)

	d, err := matrix.Det(generic)
	require.NoError(t, err)
	require.InDelta(t, 441, d, 1e-9)

	want, err := matrix.Mul(dense, dense)
	require.NoError(t, err)
	for _, pair := range [][2]matrix.Matrix{
		{generic, generic},
		{generic, dense},
		{dense, generic},
	} {
		got, err := matrix.Mul(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, want.(*matrix.Dense).ToRows(), got.(*matrix.Dense).ToRows())
	}

	// Zero entries in a are skipped without changing the product.
	sparse := rowsMatrix{{0, 2}, {3, 0}}
	got, err := matrix.Mul(sparse, rowsMatrix{{1, 1}, {1, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 8}, {3, 3}}, got.(*matrix.Dense).ToRows())

	_, err = matrix.Det(rowsMatrix{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestKernelsPropagateReadErrors checks that At failures surface through every kernel.
func TestKernelsPropagateReadErrors(t *testing.T) {
	t.Parallel()

	bad := failingMatrix{rowsMatrix{{1, 2}, {3, 4}}}
	good := mustDense(t, [][]float64{{1, 0}, {0, 1}})

	_, err := matrix.MatVec(bad, []float64{1, 1})
	require.ErrorIs(t, err, errRead)

	_, err = matrix.Det(bad)
	require.ErrorIs(t, err, errRead)

	_, err = matrix.Mul(bad, good)
	require.ErrorIs(t, err, errRead)

	_, err = matrix.Mul(good, bad)
	require.ErrorIs(t, err, errRead)
}
