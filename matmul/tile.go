package matmul

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// tileFunc accumulates the product of tile a (h×kk) and tile b (kk×w) into
// tile c (h×w): c += a·b. All three are strided windows into larger buffers.
type tileFunc func(a, b, c blas64.General)

// tileFor maps a TileKernel to its implementation.
func tileFor(k TileKernel) tileFunc {
	if k == TileBLAS {
		return tileBLAS
	}

	return tileScalar
}

// tileScalar sums each output cell's tile-local products into s first, then
// adds s into c. This is the grouping of "C_tile += A_tile·B_tile" with the
// tile product formed before the addition.
func tileScalar(a, b, c blas64.General) {
	var (
		i, j, k    int
		rowA, rowC int
		s          float64
	)
	for i = 0; i < c.Rows; i++ {
		rowA = i * a.Stride
		rowC = i * c.Stride
		for j = 0; j < c.Cols; j++ {
			s = 0
			for k = 0; k < a.Cols; k++ {
				s += a.Data[rowA+k] * b.Data[k*b.Stride+j]
			}
			c.Data[rowC+j] += s
		}
	}
}

// tileBLAS delegates to gonum: c = 1·a·b + 1·c.
func tileBLAS(a, b, c blas64.General) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 1, c)
}
