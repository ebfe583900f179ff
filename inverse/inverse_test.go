package inverse_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/inverse"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// inverseTol is the tolerance on A·A⁻¹ == 1.
const inverseTol = 1e-6

// signatures swept per dimension count.
var signatures = []uint64{0, 0b1, 0b101, 0b110011, ^uint64(0)}

func mustContext(t *testing.T, n int, sig uint64) *algebra.Context {
	t.Helper()
	ctx, err := algebra.New(n, sig)
	require.NoError(t, err)

	return ctx
}

func randomReal(t *testing.T, ctx *algebra.Context, seed uint64) *multivector.Real {
	t.Helper()
	mv, err := sample.Normal(ctx, sample.NewSource(seed))
	require.NoError(t, err)

	return mv
}

// requireIdentity asserts that a·inv is the unit scalar.
func requireIdentity(t *testing.T, a, inv *multivector.Real) {
	t.Helper()
	one, err := multivector.Scalar(a.Context(), 1)
	require.NoError(t, err)
	prod, err := a.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.EqualWithin(one, inverseTol), "A·A⁻¹ =\n%s", prod)
}

// reference inverts a through its left-multiplication matrix:
// (A·X)[k] = Σ_i A[k^i]·sign(k^i, i)·X[i], then A⁻¹ solves (A·X) = 1.
func reference(t *testing.T, a *multivector.Real) []float64 {
	t.Helper()
	ctx := a.Context()
	n := ctx.BasisCount()
	coeffs := a.Coefficients()
	m := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			j := k ^ i
			m.Set(k, i, coeffs[j]*ctx.Sign(uint(j), uint(i)))
		}
	}
	e0 := mat.NewVecDense(n, nil)
	e0.SetVec(0, 1)
	var x mat.VecDense
	require.NoError(t, x.SolveVec(m, e0))

	return x.RawVector().Data
}

func requireClose(t *testing.T, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, inverseTol)); diff != "" {
		t.Fatalf("inverse differs from reference (-want +got):\n%s", diff)
	}
}

// TestInvertClosedForms checks A·A⁻¹ == 1 and agreement with the matrix
// reference for every dimension and a sweep of signatures.
func TestInvertClosedForms(t *testing.T) {
	routines := map[int]func(*multivector.Real, ...inverse.Option) (*multivector.Real, error){
		4: inverse.Invert4,
		5: inverse.Invert5,
		6: inverse.Invert6,
	}
	for n, invert := range routines {
		for k, sig := range signatures {
			t.Run(fmt.Sprintf("n=%d,sig=%#x", n, sig), func(t *testing.T) {
				ctx := mustContext(t, n, sig)
				a := randomReal(t, ctx, uint64(n*100+k))

				inv, err := invert(a)
				require.NoError(t, err)
				requireIdentity(t, a, inv)
				requireClose(t, reference(t, a), inv.Coefficients())

				viaDispatch, err := inverse.Invert(a)
				require.NoError(t, err)
				assert.True(t, viaDispatch.Equal(inv))
			})
		}
	}
}

// TestInvertIsTwoSided checks A⁻¹·A == 1 as well.
func TestInvertIsTwoSided(t *testing.T) {
	ctx := mustContext(t, 5, 0b01100)
	a := randomReal(t, ctx, 12)
	inv, err := inverse.Invert5(a)
	require.NoError(t, err)
	requireIdentity(t, inv, a)
}

// TestInvert6EuclideanAgrees compares the table-driven path with Invert6.
func TestInvert6EuclideanAgrees(t *testing.T) {
	ctx := mustContext(t, 6, 0)
	for seed := uint64(1); seed <= 5; seed++ {
		a := randomReal(t, ctx, seed)

		fast, err := inverse.Invert6Euclidean(a)
		require.NoError(t, err)
		slow, err := inverse.Invert6(a)
		require.NoError(t, err)

		requireClose(t, slow.Coefficients(), fast.Coefficients())
		requireIdentity(t, a, fast)

		routed, err := inverse.Invert(a, inverse.WithEuclideanFastPath())
		require.NoError(t, err)
		assert.True(t, routed.Equal(fast))
	}
}

// TestInvert6EuclideanPrecondition rejects every algebra but Cl(6,0).
func TestInvert6EuclideanPrecondition(t *testing.T) {
	for _, ctx := range []*algebra.Context{mustContext(t, 6, 0b1), mustContext(t, 5, 0)} {
		a := randomReal(t, ctx, 1)
		_, err := inverse.Invert6Euclidean(a)
		require.ErrorIs(t, err, inverse.ErrPrecondition)
	}

	// The fast path option never reroutes non-Euclidean inputs.
	a := randomReal(t, mustContext(t, 6, 0b10), 2)
	inv, err := inverse.Invert(a, inverse.WithEuclideanFastPath())
	require.NoError(t, err)
	requireIdentity(t, a, inv)
}

// TestCustomNumerator wires an external numerator and checks its contract.
func TestCustomNumerator(t *testing.T) {
	ctx := mustContext(t, 6, 0)
	a := randomReal(t, ctx, 3)

	calls := 0
	table := inverse.TableNumerator{}
	counting := inverse.NumeratorFunc(func(coeffs []float64) ([]float64, error) {
		calls++
		return table.Numerator(coeffs)
	})
	inv, err := inverse.Invert6Euclidean(a, inverse.WithNumerator(counting))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	requireIdentity(t, a, inv)

	short := inverse.NumeratorFunc(func([]float64) ([]float64, error) { return make([]float64, 10), nil })
	_, err = inverse.Invert6Euclidean(a, inverse.WithNumerator(short))
	require.ErrorIs(t, err, inverse.ErrBadNumerator)

	_, err = table.Numerator(make([]float64, 32))
	require.ErrorIs(t, err, inverse.ErrBadNumerator)
}

// TestDegenerate checks that non-invertible inputs fail explicitly.
// 1 + e1 is a zero divisor: (1 + e1)(1 − e1) = 0 in any algebra with e1² = +1.
func TestDegenerate(t *testing.T) {
	for _, n := range []int{4, 5, 6} {
		ctx := mustContext(t, n, 0)
		nullish, err := multivector.FromBlades(ctx,
			multivector.Blade{Index: 0, Value: 1},
			multivector.Blade{Index: 1, Value: 1},
		)
		require.NoError(t, err)
		zero, err := multivector.New(ctx)
		require.NoError(t, err)

		for _, a := range []*multivector.Real{nullish, zero} {
			_, err = inverse.Invert(a)
			require.ErrorIs(t, err, inverse.ErrDegenerate, "n=%d", n)
		}
	}

	ctx := mustContext(t, 6, 0)
	zero, _ := multivector.New(ctx)
	_, err := inverse.Invert6Euclidean(zero)
	require.ErrorIs(t, err, inverse.ErrDegenerate)
}

// TestTolerance treats tiny divisors as zero when asked to.
func TestTolerance(t *testing.T) {
	ctx := mustContext(t, 4, 0)
	a, err := multivector.Scalar(ctx, 1e-3) // divisor is 1e-12
	require.NoError(t, err)

	_, err = inverse.Invert4(a)
	require.NoError(t, err)
	_, err = inverse.Invert4(a, inverse.WithTolerance(1e-9))
	require.ErrorIs(t, err, inverse.ErrDegenerate)
}

// TestUnsupportedDimension covers wrong dimension counts.
func TestUnsupportedDimension(t *testing.T) {
	a := randomReal(t, mustContext(t, 3, 0), 1)
	_, err := inverse.Invert(a)
	require.ErrorIs(t, err, inverse.ErrUnsupportedDimension)
	_, err = inverse.Invert4(a)
	require.ErrorIs(t, err, inverse.ErrUnsupportedDimension)
	_, err = inverse.Invert5(a)
	require.ErrorIs(t, err, inverse.ErrUnsupportedDimension)
	_, err = inverse.Invert6(a)
	require.ErrorIs(t, err, inverse.ErrUnsupportedDimension)

	_, err = inverse.Invert(nil)
	require.Error(t, err)
}

// TestOptionPanics documents the programmer-error contract of the options.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { inverse.WithTolerance(-1) })
	assert.Panics(t, func() { inverse.WithNumerator(nil) })
	assert.Panics(t, func() { inverse.WithWorkers(-1) })
}
