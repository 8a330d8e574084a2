package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmul/matrix"
)

// TestNewUniformRange checks every entry lies in [0,1).
func TestNewUniformRange(t *testing.T) {
	m, err := matrix.NewUniform(32, 32, matrix.NewRNG(7))
	require.NoError(t, err)

	m.Do(func(i, j int, v float64) bool {
		require.GreaterOrEqualf(t, v, 0.0, "cell (%d,%d)", i, j)
		require.Lessf(t, v, 1.0, "cell (%d,%d)", i, j)
		return true
	})
}

// TestNewUniformDeterministic checks the seed policy: equal seeds, equal
// matrices; seed 0 is the same stream as DefaultSeed; nil rng uses it too.
func TestNewUniformDeterministic(t *testing.T) {
	a, err := matrix.NewUniform(4, 4, matrix.NewRNG(42))
	require.NoError(t, err)
	b, err := matrix.NewUniform(4, 4, matrix.NewRNG(42))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	z, err := matrix.NewUniform(4, 4, matrix.NewRNG(0))
	require.NoError(t, err)
	d, err := matrix.NewUniform(4, 4, matrix.NewRNG(matrix.DefaultSeed))
	require.NoError(t, err)
	n, err := matrix.NewUniform(4, 4, nil)
	require.NoError(t, err)
	require.Equal(t, d.String(), z.String())
	require.Equal(t, d.String(), n.String())

	c, err := matrix.NewUniform(4, 4, matrix.NewRNG(43))
	require.NoError(t, err)
	require.NotEqual(t, a.String(), c.String())
}

func TestNewUniformInvalid(t *testing.T) {
	_, err := matrix.NewUniform(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
