package matmul

import (
	"fmt"

	"github.com/katalvlaran/blockmul/matrix"
)

// Naive computes C = A × B for square A, B of equal order n with the
// textbook triple loop.
//
// Implementation:
//   - Stage 1: matrix.ValidateSquarePair(a, b).
//   - Stage 2: allocate C (zeros).
//   - Stage 3: loops i → j → k; C[i][j] += A[i][k]·B[k][j].
//     *Dense operands walk the flat buffers; other Matrix values go through At.
//
// Behavior highlights:
//   - Rounding follows the fixed i→j→k accumulation order; no zero-skipping,
//     so every cell sees exactly n multiply-adds.
//   - Inputs are never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     wrapped as "matmul.Naive: ...".
//
// Complexity:
//   - Time O(n³), Space O(n²) for C.
func Naive(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquarePair(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opNaive, err)
	}
	n := a.Rows()
	res, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNaive, err)
	}
	c := res.RawMatrix().Data

	da, okA := a.(*matrix.Dense)
	db, okB := b.(*matrix.Dense)
	if okA && okB {
		naiveFlat(da.RawMatrix().Data, db.RawMatrix().Data, c, n)

		return res, nil
	}

	// Fallback: interface path with the same i→j→k order.
	var (
		i, j, k int
		av, bv  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, fmt.Errorf("%s: %w", opNaive, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, fmt.Errorf("%s: %w", opNaive, err)
				}
				c[i*n+j] += av * bv
			}
		}
	}

	return res, nil
}

// naiveFlat is the row-major i→j→k kernel over n×n flat buffers.
// c must be zeroed by the caller.
func naiveFlat(a, b, c []float64, n int) {
	var i, j, k, rowA, cell int
	for i = 0; i < n; i++ {
		rowA = i * n
		for j = 0; j < n; j++ {
			cell = rowA + j
			for k = 0; k < n; k++ {
				c[cell] += a[rowA+k] * b[k*n+j]
			}
		}
	}
}
