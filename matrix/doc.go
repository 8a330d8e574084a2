// Package matrix provides the dense float64 storage used by the
// multiplication kernels in blockmul.
//
// The matrix package provides:
//
//   - Dense: a row-major n×m container in one flat buffer (offset i*cols + j).
//   - MatrixView: a non-owning window (offset + stride) into a Dense, used
//     to address tiles without copying. Materialize turns a view into an
//     owned Dense when an independent lifetime is needed.
//   - RawMatrix: the strided storage as a gonum blas64.General, so kernels
//     and BLAS routines can walk tiles directly.
//   - Constructors (NewDense, NewIdentity, NewFromRows, NewUniform),
//     validators, and comparison helpers (MaxAbsDiff, AllClose).
//
// Public accessors never panic on bad indices; they return sentinel errors
// from errors.go that callers match with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
