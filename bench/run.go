package bench

import (
	"fmt"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/timing"
)

// Kernel labels, in report order.
const (
	LabelNaive = "naive"
	LabelBlock = "block"
)

// Result is one timed kernel invocation.
type Result struct {
	Label   string        // LabelNaive or LabelBlock
	Elapsed float64       // wall-clock seconds, >= 0
	Product *matrix.Dense // full n×n product
	Corner  *matrix.Dense // owned copy of the top-left fragment
}

// Report is the outcome of one run.
type Report struct {
	Size       int
	BlockSize  int
	Seed       int64
	TileKernel matmul.TileKernel
	Host       HostInfo

	Naive Result
	Block Result

	Verified   bool    // true when WithVerify was set
	MaxAbsDiff float64 // max |naive - block|; valid only when Verified

	precision int
}

// Run executes one benchmark with the given options and returns its report.
// Nothing is written to Config.Out; see Execute.
func Run(opts ...Option) (*Report, error) {
	return run(NewConfig(opts...))
}

// Execute runs the benchmark and writes the report to Config.Out.
func Execute(opts ...Option) error {
	cfg := NewConfig(opts...)
	report, err := run(cfg)
	if err != nil {
		return err
	}
	if _, err = report.WriteTo(cfg.Out); err != nil {
		return fmt.Errorf("bench: write report: %w", err)
	}

	return nil
}

func run(cfg Config) (*Report, error) {
	log := cfg.Logger.With().
		Int("n", cfg.Size).
		Int("block", cfg.BlockSize).
		Stringer("tile", cfg.TileKernel).
		Logger()

	host := Host()
	log.Debug().Object("host", host).Msg("starting benchmark")

	rng := matrix.NewRNG(cfg.Seed)
	a, err := matrix.NewUniform(cfg.Size, cfg.Size, rng)
	if err != nil {
		return nil, fmt.Errorf("bench: generate A: %w", err)
	}
	b, err := matrix.NewUniform(cfg.Size, cfg.Size, rng)
	if err != nil {
		return nil, fmt.Errorf("bench: generate B: %w", err)
	}
	log.Debug().Int64("seed", cfg.Seed).Msg("inputs generated")

	naive, err := timeKernel(cfg, LabelNaive, func() (*matrix.Dense, error) {
		return matmul.Naive(a, b)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("kernel", naive.Label).Float64("seconds", naive.Elapsed).Msg("kernel finished")

	block, err := timeKernel(cfg, LabelBlock, func() (*matrix.Dense, error) {
		return matmul.Block(a, b, cfg.BlockSize, matmul.WithTileKernel(cfg.TileKernel))
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("kernel", block.Label).Float64("seconds", block.Elapsed).Msg("kernel finished")

	report := &Report{
		Size:       cfg.Size,
		BlockSize:  cfg.BlockSize,
		Seed:       cfg.Seed,
		TileKernel: cfg.TileKernel,
		Host:       host,
		Naive:      naive,
		Block:      block,
		precision:  cfg.Precision,
	}

	if cfg.Verify {
		diff, err := matrix.MaxAbsDiff(naive.Product, block.Product)
		if err != nil {
			return nil, fmt.Errorf("bench: verify: %w", err)
		}
		report.Verified = true
		report.MaxAbsDiff = diff
		log.Info().Float64("max_abs_diff", diff).Msg("products compared")
	}

	return report, nil
}

// timeKernel runs one kernel through the timer and cuts its fragment.
func timeKernel(cfg Config, label string, fn func() (*matrix.Dense, error)) (Result, error) {
	product, secs, err := timing.MeasureErr(fn)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %s: %w", label, err)
	}
	corner, err := product.Corner(cfg.CornerSize, cfg.CornerSize)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %s corner: %w", label, err)
	}

	return Result{Label: label, Elapsed: secs, Product: product, Corner: corner}, nil
}
