// SPDX-License-Identifier: MIT

package multivector

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/clifford/algebra"
	"gonum.org/v1/gonum/floats"
)

// Complex is a multivector with complex coefficients, stored as parallel real
// and imaginary arrays. It bridges two real algebras of adjacent dimension:
// see Real.Isomorph and Complex.Isomorph.
type Complex struct {
	ctx *algebra.Context
	re  []float64
	im  []float64
}

// NewComplex returns the zero complex multivector of ctx.
func NewComplex(ctx *algebra.Context) (*Complex, error) {
	if ctx == nil {
		return nil, fmt.Errorf("NewComplex: %w", ErrNilContext)
	}

	return newComplex(ctx), nil
}

func newComplex(ctx *algebra.Context) *Complex {
	n := ctx.BasisCount()

	return &Complex{ctx: ctx, re: make([]float64, n), im: make([]float64, n)}
}

// ComplexFromParts copies re and im into a new complex multivector of ctx.
//
// Errors: ErrNilContext, ErrBadLength.
func ComplexFromParts(ctx *algebra.Context, re, im []float64) (*Complex, error) {
	if ctx == nil {
		return nil, fmt.Errorf("ComplexFromParts: %w", ErrNilContext)
	}
	if len(re) != ctx.BasisCount() || len(im) != ctx.BasisCount() {
		return nil, fmt.Errorf("ComplexFromParts: got %d/%d, want %d: %w", len(re), len(im), ctx.BasisCount(), ErrBadLength)
	}
	out := newComplex(ctx)
	copy(out.re, re)
	copy(out.im, im)

	return out, nil
}

// Context returns the algebra c was built under.
func (c *Complex) Context() *algebra.Context { return c.ctx }

// Len returns the number of complex coefficients.
func (c *Complex) Len() int { return len(c.re) }

// Real returns a copy of the real parts.
func (c *Complex) Real() []float64 {
	out := make([]float64, len(c.re))
	copy(out, c.re)

	return out
}

// Imag returns a copy of the imaginary parts.
func (c *Complex) Imag() []float64 {
	out := make([]float64, len(c.im))
	copy(out, c.im)

	return out
}

// At returns the coefficient of the blade with the given index.
func (c *Complex) At(index uint) (complex128, error) {
	if err := c.ctx.ValidateIndex(index); err != nil {
		return 0, fmt.Errorf("Complex.At: %w", err)
	}

	return complex(c.re[index], c.im[index]), nil
}

// Set assigns the coefficient of the blade with the given index.
func (c *Complex) Set(index uint, v complex128) error {
	if err := c.ctx.ValidateIndex(index); err != nil {
		return fmt.Errorf("Complex.Set: %w", err)
	}
	c.re[index], c.im[index] = real(v), imag(v)

	return nil
}

// Clone returns a deep copy of c.
func (c *Complex) Clone() *Complex {
	out := newComplex(c.ctx)
	copy(out.re, c.re)
	copy(out.im, c.im)

	return out
}

func validateComplexes(c, d *Complex) error {
	if c == nil || d == nil {
		return ErrNilContext
	}

	return algebra.ValidateCompatible(c.ctx, d.ctx)
}

// Add returns c + d.
func (c *Complex) Add(d *Complex) (*Complex, error) {
	if err := validateComplexes(c, d); err != nil {
		return nil, fmt.Errorf("Complex.Add: %w", err)
	}
	out := newComplex(c.ctx)
	floats.AddTo(out.re, c.re, d.re)
	floats.AddTo(out.im, c.im, d.im)

	return out, nil
}

// Sub returns c − d.
func (c *Complex) Sub(d *Complex) (*Complex, error) {
	if err := validateComplexes(c, d); err != nil {
		return nil, fmt.Errorf("Complex.Sub: %w", err)
	}
	out := newComplex(c.ctx)
	floats.SubTo(out.re, c.re, d.re)
	floats.SubTo(out.im, c.im, d.im)

	return out, nil
}

// Scale returns k·c for a real k.
func (c *Complex) Scale(k float64) *Complex {
	out := newComplex(c.ctx)
	floats.ScaleTo(out.re, k, c.re)
	floats.ScaleTo(out.im, k, c.im)

	return out
}

// ScaleComplex returns (re + i·im)·c.
func (c *Complex) ScaleComplex(re, im float64) *Complex {
	out := newComplex(c.ctx)
	for i := range c.re {
		out.re[i] = re*c.re[i] - im*c.im[i]
		out.im[i] = re*c.im[i] + im*c.re[i]
	}

	return out
}

// Mul returns the complex geometric product c·d. Blade signs come from the
// same SwapCount(j, i) rule as Real.Mul, left operand first.
//
// Errors: ErrNilContext, ErrContextMismatch.
func (c *Complex) Mul(d *Complex) (*Complex, error) {
	if err := validateComplexes(c, d); err != nil {
		return nil, fmt.Errorf("Complex.Mul: %w", err)
	}
	out := newComplex(c.ctx)
	for i := range d.re {
		dr, di := d.re[i], d.im[i]
		if dr == 0 && di == 0 {
			continue
		}
		for j := range c.re {
			vr := dr*c.re[j] - di*c.im[j]
			vi := dr*c.im[j] + di*c.re[j]
			if c.ctx.SwapCount(uint(j), uint(i))&1 != 0 {
				vr, vi = -vr, -vi
			}
			out.re[i^j] += vr
			out.im[i^j] += vi
		}
	}

	return out, nil
}

// Reverse applies reversion to both halves.
func (c *Complex) Reverse() *Complex { return c.involve(reversion) }

// Conjugate applies Clifford conjugation to both halves.
func (c *Complex) Conjugate() *Complex { return c.involve(conjugation) }

// Automorph applies the grade involution to both halves.
func (c *Complex) Automorph() *Complex { return c.involve(gradeInvol) }

func (c *Complex) involve(inv involution) *Complex {
	out := newComplex(c.ctx)
	applyInvolution(c.ctx, inv, out.re, c.re)
	applyInvolution(c.ctx, inv, out.im, c.im)

	return out
}

// Magnitude returns the Euclidean norm over both halves.
func (c *Complex) Magnitude() float64 {
	return math.Hypot(floats.Norm(c.re, 2), floats.Norm(c.im, 2))
}

// Equal reports whether c and d share a context and every real and imaginary
// pair differs by at most DefaultEpsilon.
func (c *Complex) Equal(d *Complex) bool {
	if c == nil || d == nil || !c.ctx.Compatible(d.ctx) {
		return false
	}

	return floats.EqualApprox(c.re, d.re, DefaultEpsilon) && floats.EqualApprox(c.im, d.im, DefaultEpsilon)
}

// Isomorph converts c back to a real multivector in the enlarged algebra: one
// more dimension, whose new top basis vector squares to −1. Negative basis
// vectors of c's algebra stay negative, so the new signature is the old one
// with bit n set: Cl(2) sig 0b01 enlarges to Cl(3) sig 0b101. The enlarged
// context is returned explicitly; nothing else changes. The real half lands
// on [0, N) and the imaginary half on [N, 2N), N = c.Len().
//
// Errors: ErrBadDimensions when the enlarged algebra exceeds MaxDimensions.
func (c *Complex) Isomorph() (*algebra.Context, *Real, error) {
	n := c.ctx.BasisCount()
	bigger, err := algebra.New(c.ctx.Dimensions()+1, c.ctx.Signature()|uint64(n))
	if err != nil {
		return nil, nil, fmt.Errorf("Complex.Isomorph: %w", err)
	}
	out := newReal(bigger)
	copy(out.reg[:n], c.re)
	copy(out.reg[n:], c.im)

	return bigger, out, nil
}

// String lists every blade: binary index, real part, imaginary part.
func (c *Complex) String() string {
	var sb strings.Builder
	width := max(c.ctx.Dimensions(), 8)
	for i := range c.re {
		fmt.Fprintf(&sb, "%0*b %16.8f %16.8f\n", width, i, c.re[i], c.im[i])
	}

	return sb.String()
}
