// SPDX-License-Identifier: MIT
// Package matrix: constructors and conversion facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for building matrices.
//   - Each facade delegates to NewDense so shape validation lives in one place.

package matrix

import (
	"fmt"
	"math"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(rows*cols).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// NewFromRows builds a Dense from a row-major literal.
// Implementation:
//   - Stage 1: require at least one non-empty row; all rows the same length.
//   - Stage 2: copy values, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty first row).
//   - ErrBadShape (ragged rows).
//   - ErrNaNInf (non-finite value while the policy is on).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDenseWithOptions(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf("NewFromRows", i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// DenseOf returns m itself when it is already a *Dense, otherwise a Dense
// copy read through the Matrix interface in fixed i→j order.
// Callers that must not alias m should Clone the result.
//
// Errors:
//   - ErrNilMatrix, plus any error surfaced by m.At.
//
// Complexity:
//   - O(1) for *Dense; O(r*c) otherwise.
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("DenseOf: %w", err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
