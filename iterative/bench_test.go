package iterative_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numcalc/iterative"
	"github.com/katalvlaran/numcalc/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkV     matrix.Vector
	sinkOrder iterative.Order
)

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 7, 16} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rows, _ := strictlyDominant(rand.New(rand.NewSource(42)), n)
			a := mustAugmented(b, rows)
			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, _, err := iterative.Solve(ctx, a)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

// BenchmarkFindDominantOrder compares both searches on the same reversed
// systems.
func BenchmarkFindDominantOrder(b *testing.B) {
	for _, n := range []int{4, 7} {
		rows, _ := strictlyDominant(rand.New(rand.NewSource(42)), n)
		a := mustAugmented(b, rows)
		for _, tc := range []struct {
			name string
			opt  iterative.Option
		}{
			{"brute-force", iterative.WithBruteForceLimit(n)},
			{"matching", iterative.WithBruteForceLimit(0)},
		} {
			b.Run(fmt.Sprintf("%s/n=%d", tc.name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					o, err := iterative.FindDominantOrder(context.Background(), a, tc.opt)
					if err != nil {
						b.Fatal(err)
					}
					sinkOrder = o
				}
			})
		}
	}
}
