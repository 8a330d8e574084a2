package bench

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/blockmul/matmul"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the matrix order n of the reference run.
	DefaultSize = 128

	// DefaultBlockSize is the tile edge of the reference run.
	DefaultBlockSize = 64

	// DefaultSeed defers to matrix.NewRNG's seed==0 policy (fixed seed).
	DefaultSeed int64 = 0

	// DefaultCornerSize is the edge of the printed top-left fragment.
	DefaultCornerSize = 5

	// DefaultPrecision is the number of decimals printed per fragment cell.
	DefaultPrecision = 8

	// DefaultVerify leaves the naive/block comparison off.
	DefaultVerify = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSizeInvalid       = "bench: WithSize: n must be > 0"
	panicBlockSizeInvalid  = "bench: WithBlockSize: block size must be > 0"
	panicCornerSizeInvalid = "bench: WithCornerSize: corner size must be > 0"
	panicPrecisionInvalid  = "bench: WithPrecision: precision must be >= 0"
	panicTileKernelInvalid = "bench: WithTileKernel: unknown kernel"
	panicOutputNil         = "bench: WithOutput: writer must not be nil"
)

// Config holds every parameter of one benchmark run.
type Config struct {
	Size       int               // matrix order n
	BlockSize  int               // tile edge passed to matmul.Block
	Seed       int64             // input RNG seed (0 ⇒ matrix.DefaultSeed)
	CornerSize int               // edge of the printed fragment
	Precision  int               // decimals per printed cell
	TileKernel matmul.TileKernel // per-tile multiply used by Block
	Verify     bool              // compare naive and block products
	Out        io.Writer         // report destination for Execute
	Logger     zerolog.Logger    // diagnostics
}

// Option mutates a Config. Constructors panic only on nonsensical values.
type Option func(*Config)

// DefaultConfig returns the reference run: n=128, block=64, 5×5 fragments,
// scalar tiles, no verification, report on stdout, silent logger.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		BlockSize:  DefaultBlockSize,
		Seed:       DefaultSeed,
		CornerSize: DefaultCornerSize,
		Precision:  DefaultPrecision,
		TileKernel: matmul.DefaultTileKernel,
		Verify:     DefaultVerify,
		Out:        os.Stdout,
		Logger:     zerolog.Nop(),
	}
}

// NewConfig applies opts over DefaultConfig (last-writer-wins).
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, set := range opts {
		set(&cfg)
	}

	return cfg
}

// WithSize sets the matrix order n.
func WithSize(n int) Option {
	if n <= 0 {
		panic(panicSizeInvalid)
	}

	return func(c *Config) { c.Size = n }
}

// WithBlockSize sets the tile edge used by the blocked kernel.
func WithBlockSize(bs int) Option {
	if bs <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(c *Config) { c.BlockSize = bs }
}

// WithSeed sets the input RNG seed. Pass a clock-derived value for fresh
// inputs on every run.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithCornerSize sets the edge of the printed top-left fragment.
func WithCornerSize(k int) Option {
	if k <= 0 {
		panic(panicCornerSizeInvalid)
	}

	return func(c *Config) { c.CornerSize = k }
}

// WithPrecision sets the decimals printed per fragment cell.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(c *Config) { c.Precision = p }
}

// WithTileKernel selects the per-tile multiply of the blocked kernel.
func WithTileKernel(k matmul.TileKernel) Option {
	if k != matmul.TileScalar && k != matmul.TileBLAS {
		panic(panicTileKernelInvalid)
	}

	return func(c *Config) { c.TileKernel = k }
}

// WithVerify makes Run compute the max absolute difference between products.
func WithVerify() Option {
	return func(c *Config) { c.Verify = true }
}

// WithOutput sets the report destination used by Execute.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicOutputNil)
	}

	return func(c *Config) { c.Out = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
