// SPDX-License-Identifier: MIT

// Package inverse - Cl(6,0) inverse with a reduced multiplication load.
//
// Purpose:
//   - Accept the numerator G (with A⁻¹ = ~A·G) from an external source.
//   - Ship a default source backed by a precomputed Cl(6,0) product table.
//
// The default numerator exploits that B = A·~A is self-reverse: it and every
// polynomial in it live on grades 0, 1, 4 and 5, i.e. 28 of 64 blades. The
// recurrence of Invert6 therefore runs on 28×28 products and the final
// divisor needs the scalar part only.

package inverse

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
)

// euclid6Size is the number of coefficients of a Cl(6,0) multivector.
const euclid6Size = 64

// Numerator maps the 64 coefficients of a Cl(6,0) multivector A to the 64
// coefficients of G such that ~A·G is the inverse of A.
type Numerator interface {
	Numerator(coeffs []float64) ([]float64, error)
}

// NumeratorFunc adapts a plain function to the Numerator interface.
type NumeratorFunc func(coeffs []float64) ([]float64, error)

// Numerator calls f(coeffs).
func (f NumeratorFunc) Numerator(coeffs []float64) ([]float64, error) { return f(coeffs) }

// Invert6Euclidean returns the inverse of a Cl(6,0) multivector as ~A·G,
// with G supplied by the configured Numerator (TableNumerator by default).
//
// Errors:
//   - ErrPrecondition for any algebra other than Cl(6,0).
//   - ErrBadNumerator when the numerator returns ≠ 64 coefficients.
//   - ErrDegenerate when the numerator reports a zero divisor.
func Invert6Euclidean(a *multivector.Real, opts ...Option) (*multivector.Real, error) {
	if a == nil {
		return nil, fmt.Errorf("Invert6Euclidean: %w", multivector.ErrNilContext)
	}

	return invert6Euclidean(a, gatherOptions(opts))
}

func invert6Euclidean(a *multivector.Real, o Options) (*multivector.Real, error) {
	ctx := a.Context()
	if ctx.Dimensions() != 6 || !ctx.IsEuclidean() {
		return nil, fmt.Errorf("Invert6Euclidean: %s is not Cl(6,0): %w", ctx, ErrPrecondition)
	}
	g, err := o.numerator.Numerator(a.Coefficients())
	if err != nil {
		return nil, fmt.Errorf("Invert6Euclidean: %w", err)
	}
	if len(g) != euclid6Size {
		return nil, fmt.Errorf("Invert6Euclidean: got %d coefficients: %w", len(g), ErrBadNumerator)
	}
	num, err := multivector.FromCoefficients(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("Invert6Euclidean: %w", err)
	}
	out, err := a.Reverse().Mul(num)
	if err != nil {
		return nil, fmt.Errorf("Invert6Euclidean: %w", err)
	}

	return out, nil
}

// cl60 is the precomputed Cl(6,0) product table, built on first use.
//   - sign[l][r] is the sign of blade l times blade r (index l XOR r).
//   - rev[i] is the reversion sign of blade i.
//   - support lists the blades of grade 0, 1, 4 and 5.
var cl60 struct {
	once    sync.Once
	sign    [euclid6Size][euclid6Size]float64
	rev     [euclid6Size]float64
	support []int
}

func loadCl60() {
	cl60.once.Do(func() {
		ctx, err := algebra.Euclidean(6)
		if err != nil {
			panic(fmt.Sprintf("inverse: building Cl(6,0) table: %v", err)) // unreachable: 6 ≤ MaxDimensions
		}
		table := ctx.SignTable()
		for l := range table {
			for r, s := range table[l] {
				cl60.sign[l][r] = float64(s)
			}
			switch ctx.Grade(uint(l)) {
			case 0, 1, 4, 5:
				cl60.support = append(cl60.support, l)
			}
			cl60.rev[l] = 1
			if ctx.Grade(uint(l))&3 > 1 {
				cl60.rev[l] = -1
			}
		}
	})
}

// TableNumerator computes G = (A·~A)⁻¹ for Cl(6,0) from the precomputed
// product table, touching only the grades A·~A can occupy.
type TableNumerator struct {
	// Tolerance is the largest |divisor| still treated as zero.
	Tolerance float64
}

var _ Numerator = TableNumerator{}

// Numerator implements Numerator.
func (t TableNumerator) Numerator(coeffs []float64) ([]float64, error) {
	if len(coeffs) != euclid6Size {
		return nil, fmt.Errorf("TableNumerator: got %d coefficients: %w", len(coeffs), ErrBadNumerator)
	}
	loadCl60()

	// B = A·~A, evaluated on the support only.
	var b [euclid6Size]float64
	for _, k := range cl60.support {
		var sum float64
		for i, ai := range coeffs {
			if ai == 0 {
				continue
			}
			j := i ^ k
			sum += ai * coeffs[j] * cl60.rev[j] * cl60.sign[i][j]
		}
		b[k] = sum
	}

	// Invert6 recurrence restricted to the support.
	g := b
	for k, f := range invert6Steps {
		g[0] *= f
		if k < len(invert6Steps)-1 {
			g = mulSupport(&g, &b)
		}
	}

	// Scalar part of G·B: only equal indices meet at blade 0.
	var d float64
	for _, p := range cl60.support {
		d += g[p] * b[p] * cl60.sign[p][p]
	}
	if err := checkDivisor(d, t.Tolerance); err != nil {
		return nil, fmt.Errorf("TableNumerator: %w", err)
	}

	out := make([]float64, euclid6Size)
	for _, p := range cl60.support {
		out[p] = g[p] / d
	}

	return out, nil
}

// mulSupport returns x·y for x, y supported on grades 0, 1, 4, 5, keeping
// only the same grades of the result.
func mulSupport(x, y *[euclid6Size]float64) [euclid6Size]float64 {
	var acc [euclid6Size]float64
	for _, q := range cl60.support {
		yq := y[q]
		if yq == 0 {
			continue
		}
		for _, p := range cl60.support {
			acc[p^q] += x[p] * yq * cl60.sign[p][q]
		}
	}
	var out [euclid6Size]float64
	for _, p := range cl60.support {
		out[p] = acc[p]
	}

	return out
}
