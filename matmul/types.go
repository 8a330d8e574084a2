// Package matmul defines options, tile kernels and sentinel errors.
package matmul

import (
	"errors"
	"fmt"
)

// Sentinel errors. Matrix shape errors are the matrix package sentinels
// (matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch).
var (
	// ErrBadBlockSize is returned when blockSize <= 0.
	ErrBadBlockSize = errors.New("matmul: block size must be > 0")

	// ErrRaggedTiling is returned under WithStrictTiling when blockSize does
	// not divide n.
	ErrRaggedTiling = errors.New("matmul: block size does not divide matrix order")
)

// Operation tags for error wrapping.
const (
	opNaive = "matmul.Naive"
	opBlock = "matmul.Block"
)

// TileKernel selects how Block multiplies one pair of tiles.
//
//   - TileScalar: plain loops over the tile. Each output cell sums its
//     tile-local products first, then adds that partial into C.
//   - TileBLAS: gonum's pure-Go blas64.Gemm with beta=1 on the strided
//     tile views (C_tile = 1·A_tile·B_tile + 1·C_tile).
type TileKernel int

const (
	// TileScalar multiplies tiles with plain Go loops.
	TileScalar TileKernel = iota

	// TileBLAS multiplies tiles with gonum blas64.Gemm.
	TileBLAS
)

// String returns the kernel name used in logs and reports.
func (k TileKernel) String() string {
	switch k {
	case TileScalar:
		return "scalar"
	case TileBLAS:
		return "blas"
	default:
		return fmt.Sprintf("TileKernel(%d)", int(k))
	}
}

// Defaults for Block.
const (
	// DefaultTileKernel is the per-tile multiply used when no option is given.
	DefaultTileKernel = TileScalar

	// DefaultStrictTiling keeps ragged edge tiles legal (clipped).
	DefaultStrictTiling = false
)

const panicUnknownTileKernel = "matmul: WithTileKernel: unknown kernel"

// Option configures Block.
type Option func(*Options)

// Options holds the resolved Block configuration.
type Options struct {
	TileKernel   TileKernel
	StrictTiling bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		TileKernel:   DefaultTileKernel,
		StrictTiling: DefaultStrictTiling,
	}
}

// WithTileKernel selects the per-tile multiply. Panics on unknown kernels
// (programmer error).
func WithTileKernel(k TileKernel) Option {
	if k != TileScalar && k != TileBLAS {
		panic(panicUnknownTileKernel)
	}

	return func(o *Options) { o.TileKernel = k }
}

// WithStrictTiling makes Block reject block sizes that do not divide n.
func WithStrictTiling() Option {
	return func(o *Options) { o.StrictTiling = true }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
