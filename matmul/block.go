package matmul

import (
	"fmt"

	"github.com/katalvlaran/blockmul/matrix"
)

// Block computes C = A × B for square A, B of equal order n using
// cache blocking with tiles of blockSize×blockSize.
//
// Implementation:
//   - Stage 1: validate operands (matrix.ValidateSquarePair) and blockSize.
//   - Stage 2: bring operands to *Dense (no copy if they already are).
//   - Stage 3: for bi, bj, bk stepping by blockSize, take the views
//     A[bi,bk], B[bk,bj], C[bi,bj] and run the tile kernel: C_tile += A_tile·B_tile.
//
// Behavior highlights:
//   - Tiles are MatrixView windows into the operands and the result; nothing
//     is copied per tile.
//   - Edge tiles are clipped when blockSize does not divide n, so the result
//     is still the full product. WithStrictTiling() turns that case into
//     ErrRaggedTiling instead. blockSize >= n degenerates to a single tile.
//   - Summation is grouped per tile; expect last-bit differences from Naive.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     ErrBadBlockSize, ErrRaggedTiling; all wrapped as "matmul.Block: ...".
//
// Complexity:
//   - Time O(n³), Space O(n²) for C plus O(1) per tile (views only).
func Block(a, b matrix.Matrix, blockSize int, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opBlock, err)
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("%s: blockSize=%d: %w", opBlock, blockSize, ErrBadBlockSize)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	if o.StrictTiling && n%blockSize != 0 {
		return nil, fmt.Errorf("%s: n=%d blockSize=%d: %w", opBlock, n, blockSize, ErrRaggedTiling)
	}

	da, err := matrix.DenseOf(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBlock, err)
	}
	db, err := matrix.DenseOf(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBlock, err)
	}
	res, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBlock, err)
	}

	if err = blockInto(da, db, res, blockSize, tileFor(o.TileKernel)); err != nil {
		return nil, fmt.Errorf("%s: %w", opBlock, err)
	}

	return res, nil
}

// blockInto runs the tile loops over n×n operands, accumulating into c.
func blockInto(a, b, c *matrix.Dense, bs int, mul tileFunc) error {
	n := c.Rows()
	var (
		bi, bj, bk int
		h, w, kk   int
		at, bt, ct *matrix.MatrixView
		err        error
	)
	for bi = 0; bi < n; bi += bs {
		h = min(bs, n-bi)
		for bj = 0; bj < n; bj += bs {
			w = min(bs, n-bj)
			if ct, err = c.View(bi, bj, h, w); err != nil {
				return err
			}
			for bk = 0; bk < n; bk += bs {
				kk = min(bs, n-bk)
				if at, err = a.View(bi, bk, h, kk); err != nil {
					return err
				}
				if bt, err = b.View(bk, bj, kk, w); err != nil {
					return err
				}
				mul(at.RawMatrix(), bt.RawMatrix(), ct.RawMatrix())
			}
		}
	}

	return nil
}
