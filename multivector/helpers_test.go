// Package multivector_test contains test helpers shared by the Real, Complex
// and Blade tests.
//
// Purpose:
//   - Deterministic random fixtures (fixed seeds, normal coefficients).
//   - Approximate coefficient comparison through go-cmp.

package multivector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/sample"
)

// tolerance used by property tests (matches multivector.DefaultEpsilon).
const tol = 1e-8

// mustContext builds a context or fails the test.
func mustContext(t *testing.T, n int, sig uint64) *algebra.Context {
	t.Helper()
	ctx, err := algebra.New(n, sig)
	if err != nil {
		t.Fatalf("algebra.New(%d,%#x): %v", n, sig, err)
	}

	return ctx
}

// mustReal wraps coefficients or fails the test.
func mustReal(t *testing.T, ctx *algebra.Context, coeffs ...float64) *multivector.Real {
	t.Helper()
	mv, err := multivector.FromCoefficients(ctx, coeffs)
	if err != nil {
		t.Fatalf("FromCoefficients: %v", err)
	}

	return mv
}

// randomReal draws a seeded multivector of ctx.
func randomReal(t *testing.T, ctx *algebra.Context, seed uint64) *multivector.Real {
	t.Helper()
	mv, err := sample.Normal(ctx, sample.NewSource(seed))
	if err != nil {
		t.Fatalf("sample.Normal: %v", err)
	}

	return mv
}

// mustMul returns a·b or fails the test.
func mustMul(t *testing.T, a, b *multivector.Real) *multivector.Real {
	t.Helper()
	out, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return out
}

// requireCoeffs compares coefficient slices within an absolute tolerance.
func requireCoeffs(t *testing.T, want, got []float64, eps float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, eps)); diff != "" {
		t.Fatalf("coefficients differ (-want +got):\n%s", diff)
	}
}

// testContexts is the set of algebras the property tests sweep.
var testContexts = []struct {
	n   int
	sig uint64
}{
	{1, 0},
	{2, 0},
	{3, 0},
	{3, 0b100},
	{4, 0b0011},
	{5, 0b11111},
	{6, 0b100000},
}
