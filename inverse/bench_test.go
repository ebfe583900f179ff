// Package inverse_test provides benchmarks for the closed-form inverses,
// using deterministic random multivectors.
package inverse_test

import (
	"testing"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/inverse"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/sample"
)

// sink defeats dead-code elimination.
var sink *multivector.Real

func benchInput(b *testing.B, n int) *multivector.Real {
	b.Helper()
	ctx, err := algebra.Euclidean(n)
	if err != nil {
		b.Fatal(err)
	}
	a, err := sample.Normal(ctx, sample.NewSource(1337))
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkInvert4(b *testing.B) {
	a := benchInput(b, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := inverse.Invert4(a)
		if err != nil {
			b.Fatal(err)
		}
		sink = inv
	}
}

func BenchmarkInvert5(b *testing.B) {
	a := benchInput(b, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := inverse.Invert5(a)
		if err != nil {
			b.Fatal(err)
		}
		sink = inv
	}
}

func BenchmarkInvert6(b *testing.B) {
	a := benchInput(b, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := inverse.Invert6(a)
		if err != nil {
			b.Fatal(err)
		}
		sink = inv
	}
}

func BenchmarkInvert6Euclidean(b *testing.B) {
	a := benchInput(b, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := inverse.Invert6Euclidean(a)
		if err != nil {
			b.Fatal(err)
		}
		sink = inv
	}
}
