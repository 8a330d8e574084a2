// SPDX-License-Identifier: MIT

// Package matrix - numeric comparison of two matrices.
//
// Purpose:
//   - Quantify how far two results of the same product drift apart when the
//     summation order differs (naive vs. tiled accumulation).
//   - Keep traversal deterministic (row-major) and allocation-free.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMaxAbsDiff  = "MaxAbsDiff"
	opAllClose    = "AllClose"
	opEqualApprox = "EqualApprox"
)

// MaxAbsDiff returns max_{i,j} |a[i,j] - b[i,j]|.
// Implementation:
//   - Stage 1: validate non-nil operands of identical shape.
//   - Stage 2: flat walk on *Dense pairs; At-based i→j walk otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MaxAbsDiff").
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := validateBinary(a, b); err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsDiff, err)
	}
	var worst float64
	err := zipWith(a, b, func(x, y float64) bool {
		if d := math.Abs(x - y); d > worst || math.IsNaN(d) {
			worst = d
		}

		return true
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsDiff, err)
	}

	return worst, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds for every cell
// (numpy.allclose semantics).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; panics never.
//
// Complexity:
//   - Time O(r*c), Space O(1). Stops at the first failing cell.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := validateBinary(a, b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	ok := true
	err := zipWith(a, b, func(x, y float64) bool {
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			ok = false
		}

		return ok
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}

	return ok, nil
}

// EqualApprox is AllClose with rtol=0 and atol taken from the resolved
// options (DefaultEpsilon unless WithEpsilon is given).
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opEqualApprox, err)
	}

	return ok, nil
}

// validateBinary runs the NotNil → SameShape sequence for two operands.
func validateBinary(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// zipWith feeds aligned cells of a and b to f in row-major order until f
// returns false. Fast path on two *Dense.
func zipWith(a, b Matrix, f func(x, y float64) bool) error {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !f(da.data[idx], db.data[idx]) {
					return nil
				}
			}

			return nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return err
			}
			if bv, err = b.At(i, j); err != nil {
				return err
			}
			if !f(av, bv) {
				return nil
			}
		}
	}

	return nil
}
