// SPDX-License-Identifier: MIT

// Package matrix - MatrixView, a non-owning strided window into a Dense.
//
// A view is the tile primitive of the blocked kernels: it names a sub-range of
// rows and columns by (offset, stride) into the base buffer, so no data moves
// when a tile is addressed. Ownership is explicit: a view never owns memory,
// and Materialize is the only way to get an independent copy.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

// MatrixView is a non-owning window into a Dense (shared storage).
// Not implementing Matrix interface to avoid accidental copies in ops.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
// Complexity: O(1).
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
// Complexity: O(1).
func (v *MatrixView) Cols() int { return v.c }

// Offset returns the flat index of the view's (0,0) cell in the base buffer.
// Complexity: O(1).
func (v *MatrixView) Offset() int { return v.r0*v.base.c + v.c0 }

// Stride returns the distance between vertically adjacent cells, which is
// the column count of the base matrix.
// Complexity: O(1).
func (v *MatrixView) Stride() int { return v.base.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Translates to base coordinates: base.data[(r0+i)*stride + (c0+j)].
// Complexity: O(1).
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
// Complexity: O(1).
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && (math.IsNaN(val) || math.IsInf(val, 0)) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val // write through

	return nil
}

// RawMatrix exposes the window as a strided blas64.General aliasing the base.
// Data starts at the view's first cell and runs to the end of the base
// buffer, which satisfies BLAS length checks ((Rows-1)*Stride + Cols).
// Zero-area views return an empty General.
// Complexity: O(1).
func (v *MatrixView) RawMatrix() blas64.General {
	if v.r == 0 || v.c == 0 {
		return blas64.General{Rows: v.r, Cols: v.c, Stride: v.base.c}
	}

	return blas64.General{
		Rows:   v.r,
		Cols:   v.c,
		Stride: v.base.c,
		Data:   v.base.data[v.Offset():],
	}
}

// Materialize copies the window into a new, independent Dense.
// MAIN DESCRIPTION:
//   - The owned counterpart of a view; the copy keeps the base numeric policy.
//
// Errors:
//   - ErrInvalidDimensions for zero-area views (Dense forbids empty shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (v *MatrixView) Materialize() (*Dense, error) {
	out, err := NewDense(v.r, v.c)
	if err != nil {
		return nil, fmt.Errorf("MatrixView.Materialize: %w", err)
	}
	out.validateNaNInf = v.base.validateNaNInf

	src := v.Offset()
	stride := v.base.c
	for i := 0; i < v.r; i++ {
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[src+i*stride:src+i*stride+v.c])
	}

	return out, nil
}
