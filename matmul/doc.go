// Package matmul multiplies dense square matrices with two strategies that
// compute the same product through different memory-access patterns.
//
// 🚀 What is in here?
//
//	Naive   the textbook i→j→k triple loop. C[i][j] starts at zero and
//	        receives A[i][k]·B[k][j] for k = 0..n-1, in that order.
//	Block   cache blocking. The n×n index space is cut into tiles of
//	        blockSize×blockSize, and for every tile triple (bi, bj, bk)
//	        the product A[bi,bk]·B[bk,bj] is added into C[bi,bj].
//	        The operation count is unchanged (n³ multiply-adds); only the
//	        working set of the inner product shrinks to three tiles.
//
// ✨ Key features:
//   - tiles are matrix.MatrixView windows (offset + stride), never copies
//   - two per-tile kernels: TileScalar (plain loops) and TileBLAS
//     (gonum blas64.Gemm on the strided tiles)
//   - ragged sizes (n % blockSize != 0) use clipped edge tiles, or fail
//     with ErrRaggedTiling under WithStrictTiling()
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/blockmul/matmul"
//
//	c1, err := matmul.Naive(a, b)
//	c2, err := matmul.Block(a, b, 64, matmul.WithTileKernel(matmul.TileBLAS))
//
// Numerics:
//
//	Block groups partial sums per tile, so its result may differ from
//	Naive in the last bits (floating-point addition is not associative).
//	That difference is expected; compare with matrix.AllClose.
//
// Performance:
//
//   - Time:   O(n³) for both kernels
//   - Memory: O(n²) for the result; no temporaries proportional to n
package matmul
