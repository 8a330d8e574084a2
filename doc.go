// Package blockmul compares two ways of multiplying dense square matrices:
// the textbook triple loop and cache blocking over square tiles.
//
// 🚀 What is in blockmul?
//
//	Both kernels compute the same n×n product with the same n³ multiply-adds.
//	The blocked one walks the index space tile by tile, so the three tiles
//	it touches at a time stay resident in cache. The benchmark driver times
//	both on identical random inputs and prints the timings together with a
//	corner of each product.
//
// Under the hood, everything is organized under these packages:
//
//	matrix/        row-major Dense, strided MatrixView tiles, validators,
//	               comparisons and the seeded uniform generator
//	matmul/        Naive and Block kernels (scalar or gonum BLAS tiles)
//	timing/        wall-clock measurement of a single call
//	bench/         run configuration, host probe, report rendering
//	cmd/matbench/  the reference run: n=128, tile edge 64
//
// Quick example:
//
//	a, _ := matrix.NewUniform(128, 128, matrix.NewRNG(1))
//	b, _ := matrix.NewUniform(128, 128, matrix.NewRNG(2))
//	c, _ := matmul.Block(a, b, 64)
//
//	go run github.com/katalvlaran/blockmul/cmd/matbench
package blockmul
