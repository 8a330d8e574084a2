package matmul_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
)

// hide masks the concrete *Dense type to force At-based paths.
type hide struct{ matrix.Matrix }

// tileKernels lists every per-tile multiply so tests can range over them.
var tileKernels = []matmul.TileKernel{matmul.TileScalar, matmul.TileBLAS}

func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustUniform(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewUniform(n, n, matrix.NewRNG(seed))
	require.NoError(t, err)

	return m
}

func mustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

func mustZeros(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZeros(n, n)
	require.NoError(t, err)

	return m
}

// reference computes a·b with gonum, independently of this module's kernels.
func reference(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	ra, rb := a.RawMatrix(), b.RawMatrix()
	ga := mat.NewDense(ra.Rows, ra.Cols, append([]float64(nil), ra.Data...))
	gb := mat.NewDense(rb.Rows, rb.Cols, append([]float64(nil), rb.Data...))

	var gc mat.Dense
	gc.Mul(ga, gb)

	r, c := gc.Dims()
	out, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, out.Set(i, j, gc.At(i, j)))
		}
	}

	return out
}

// requireClose asserts |got-want| <= atol + rtol*|want| everywhere.
func requireClose(t testing.TB, want, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	if !ok {
		d, _ := matrix.MaxAbsDiff(got, want)
		require.Failf(t, "matrices differ", "max |got-want| = %g (rtol=%g atol=%g)", d, rtol, atol)
	}
}

// requireExact asserts got equals the literal want cell by cell.
func requireExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}
