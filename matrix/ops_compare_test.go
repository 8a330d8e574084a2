// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmul/matrix"
)

func TestMaxAbsDiff(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2.5}, {2, 4}})

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	// The fallback path must agree with the flat fast path.
	d, err = matrix.MaxAbsDiff(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(a, a)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = matrix.MaxAbsDiff(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MaxAbsDiff(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{100, 1}})
	b := MustFromRows(t, [][]float64{{100.001, 1}})

	ok, err := matrix.AllClose(a, b, 1e-4, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-6, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, hide{b}, 0, 1e-2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEqualApprox(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1}})
	b := MustFromRows(t, [][]float64{{1 + 1e-12}})
	c := MustFromRows(t, [][]float64{{1 + 1e-6}})

	ok, err := matrix.EqualApprox(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.EqualApprox(a, c)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.EqualApprox(a, c, matrix.WithEpsilon(1e-5))
	require.NoError(t, err)
	assert.True(t, ok)
}
