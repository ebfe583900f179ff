// SPDX-License-Identifier: MIT

package inverse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/clifford/multivector"
)

// Invert returns a⁻¹ using the closed form for a's dimension count.
// Cl(6,0) inputs take the table-driven path when WithEuclideanFastPath is set.
//
// Errors: ErrUnsupportedDimension for n ∉ {4,5,6}, ErrDegenerate.
func Invert(a *multivector.Real, opts ...Option) (*multivector.Real, error) {
	if a == nil {
		return nil, fmt.Errorf("Invert: %w", multivector.ErrNilContext)
	}
	o := gatherOptions(opts)
	ctx := a.Context()
	switch ctx.Dimensions() {
	case 4:
		return invert4(a, o)
	case 5:
		return invert5(a, o)
	case 6:
		if o.fastPath && ctx.IsEuclidean() {
			return invert6Euclidean(a, o)
		}
		return invert6(a, o)
	default:
		return nil, fmt.Errorf("Invert: %s: %w", ctx, ErrUnsupportedDimension)
	}
}

// Invert4 returns the inverse of a 4-dimensional multivector of any signature.
//
// Blueprint:
//
//	B = A·~A          grades 0, 1, 4
//	G = B with B₀ negated
//	C = B·G           pure scalar
//	A⁻¹ = ~A · G / C₀
func Invert4(a *multivector.Real, opts ...Option) (*multivector.Real, error) {
	if err := requireDimension("Invert4", a, 4); err != nil {
		return nil, err
	}

	return invert4(a, gatherOptions(opts))
}

func invert4(a *multivector.Real, o Options) (*multivector.Real, error) {
	rev := a.Reverse()
	b, err := a.Mul(rev)
	if err != nil {
		return nil, fmt.Errorf("Invert4: %w", err)
	}
	g := b.Involve(0)
	c, err := b.Mul(g)
	if err != nil {
		return nil, fmt.Errorf("Invert4: %w", err)
	}

	return finish("Invert4", rev, g, c.ScalarPart(), o)
}

// Invert5 returns the inverse of a 5-dimensional multivector of any signature.
//
// Blueprint:
//
//	B  = A·~A          grades 0, 1, 4, 5
//	Bi = B with grades 0 and 5 negated
//	C  = B·Bi          grades 0, 5
//	Ci = C with grade 0 negated
//	D  = C·Ci          pure scalar
//	A⁻¹ = ~A · Bi·Ci / D₀
func Invert5(a *multivector.Real, opts ...Option) (*multivector.Real, error) {
	if err := requireDimension("Invert5", a, 5); err != nil {
		return nil, err
	}

	return invert5(a, gatherOptions(opts))
}

func invert5(a *multivector.Real, o Options) (*multivector.Real, error) {
	rev := a.Reverse()
	b, err := a.Mul(rev)
	if err != nil {
		return nil, fmt.Errorf("Invert5: %w", err)
	}
	bi := b.Involve(0, 5)
	c, err := b.Mul(bi)
	if err != nil {
		return nil, fmt.Errorf("Invert5: %w", err)
	}
	ci := c.Involve(0)
	d, err := c.Mul(ci)
	if err != nil {
		return nil, fmt.Errorf("Invert5: %w", err)
	}
	num, err := bi.Mul(ci)
	if err != nil {
		return nil, fmt.Errorf("Invert5: %w", err)
	}

	return finish("Invert5", rev, num, d.ScalarPart(), o)
}

// Invert6 returns the inverse of a 6-dimensional multivector of any signature.
//
// Blueprint (B = A·~A, grades 0, 1, 4, 5):
//
//	G = B;   G₀ ·= −3;   G = G·B
//	         G₀ ·= −1;   G = G·B
//	         G₀ ·= −1/3; I = G; G = G·B   (pure scalar)
//	A⁻¹ = ~A · I / G₀
func Invert6(a *multivector.Real, opts ...Option) (*multivector.Real, error) {
	if err := requireDimension("Invert6", a, 6); err != nil {
		return nil, err
	}

	return invert6(a, gatherOptions(opts))
}

// invert6Steps holds the scalar factors of the three-step recurrence.
var invert6Steps = [...]float64{-3, -1, -1.0 / 3}

func invert6(a *multivector.Real, o Options) (*multivector.Real, error) {
	rev := a.Reverse()
	b, err := a.Mul(rev)
	if err != nil {
		return nil, fmt.Errorf("Invert6: %w", err)
	}
	g := b.Clone()
	for k, f := range invert6Steps {
		if err = g.Set(0, f*g.ScalarPart()); err != nil {
			return nil, fmt.Errorf("Invert6: %w", err)
		}
		if k == len(invert6Steps)-1 {
			break
		}
		if g, err = g.Mul(b); err != nil {
			return nil, fmt.Errorf("Invert6: %w", err)
		}
	}
	last, err := g.Mul(b)
	if err != nil {
		return nil, fmt.Errorf("Invert6: %w", err)
	}

	return finish("Invert6", rev, g, last.ScalarPart(), o)
}

// requireDimension guards the fixed-dimension entry points.
func requireDimension(op string, a *multivector.Real, n int) error {
	if a == nil {
		return fmt.Errorf("%s: %w", op, multivector.ErrNilContext)
	}
	if got := a.Context().Dimensions(); got != n {
		return fmt.Errorf("%s: need %d dimensions, got %d: %w", op, n, got, ErrUnsupportedDimension)
	}

	return nil
}

// finish returns rev · num / divisor after checking the divisor.
func finish(op string, rev, num *multivector.Real, divisor float64, o Options) (*multivector.Real, error) {
	if err := checkDivisor(divisor, o.tol); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := rev.Mul(num.Scale(1 / divisor))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// checkDivisor rejects zero (within tol) and non-finite scalar divisors.
func checkDivisor(d, tol float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || math.Abs(d) <= tol {
		return fmt.Errorf("divisor %g: %w", d, ErrDegenerate)
	}

	return nil
}
