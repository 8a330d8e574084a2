// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → SameShape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface counts as nil too.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquarePair checks the operand contract of the square kernels:
// both non-nil, both square, and of the same order n.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (in that priority).
// Complexity: O(1).
func ValidateSquarePair(a, b Matrix) error {
	const tag = "ValidateSquarePair"
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}
