// Package matmul_test benchmarks the naive and blocked kernels on the same
// deterministic inputs.
package matmul_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{128, 256}

// benchBlocks are the tile sizes swept for Block.
var benchBlocks = []int{16, 32, 64}

// sink to defeat dead-code elimination
var sinkD *matrix.Dense

func BenchmarkNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustUniform(b, n, 1)
			y := mustUniform(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := matmul.Naive(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = c
			}
		})
	}
}

func BenchmarkBlock(b *testing.B) {
	b.ReportAllocs()
	for _, k := range tileKernels {
		for _, n := range benchSizes {
			for _, bs := range benchBlocks {
				b.Run(fmt.Sprintf("%s/n=%d/bs=%d", k, n, bs), func(b *testing.B) {
					x := mustUniform(b, n, 1)
					y := mustUniform(b, n, 2)
					opt := matmul.WithTileKernel(k)
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						c, err := matmul.Block(x, y, bs, opt)
						if err != nil {
							b.Fatal(err)
						}
						sinkD = c
					}
				})
			}
		}
	}
}
