// Command matbench times naive and cache-blocked multiplication of two
// random 128×128 matrices (tile edge 64) and prints both timings together
// with the top-left 5×5 fragment of each product.
//
// The run takes no arguments. Diagnostics are written to stderr, results
// to stdout. A failed run exits with status 1.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/blockmul/bench"
)

const (
	size      = 128
	blockSize = 64
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	err := bench.Execute(
		bench.WithSize(size),
		bench.WithBlockSize(blockSize),
		bench.WithSeed(time.Now().UnixNano()),
		bench.WithOutput(os.Stdout),
		bench.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("benchmark failed")
	}
}
