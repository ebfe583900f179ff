// SPDX-License-Identifier: MIT

// Package multivector - Real: dense multivector with real coefficients.
//
// Purpose:
//   - Hold one coefficient per basis blade, indexed by the blade bitmap.
//   - Provide the geometric product, the three involutions, magnitude and
//     normalization, all bound to the Context the value was built under.
//
// Behavior highlights:
//   - Every binary operation checks context compatibility first and returns
//     ErrContextMismatch instead of producing a garbage-length result.
//   - Arithmetic returns fresh values; only Normalize, AddBlade, Set and Clear
//     mutate the receiver.
//
// Complexity quicksheet (N = 2^n):
//   - Add/Sub/Scale/involutions: O(N); Mul: O(N·nnz(other)·n).

package multivector

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/clifford/algebra"
	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the absolute per-coefficient tolerance used by Equal.
const DefaultEpsilon = 1e-8

// Real is a multivector with real coefficients.
//   - ctx is the algebra the coefficients are expressed in.
//   - reg holds BasisCount() coefficients; reg[i] scales the blade with index i.
type Real struct {
	ctx *algebra.Context
	reg []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Real)(nil)

// New returns the zero multivector of ctx.
//
// Errors: ErrNilContext.
func New(ctx *algebra.Context) (*Real, error) {
	if ctx == nil {
		return nil, fmt.Errorf("New: %w", ErrNilContext)
	}

	return &Real{ctx: ctx, reg: make([]float64, ctx.BasisCount())}, nil
}

// newReal skips validation for internal callers that already hold a valid ctx.
func newReal(ctx *algebra.Context) *Real {
	return &Real{ctx: ctx, reg: make([]float64, ctx.BasisCount())}
}

// FromCoefficients copies coeffs into a new multivector of ctx.
//
// Errors: ErrNilContext, ErrBadLength when len(coeffs) != BasisCount().
func FromCoefficients(ctx *algebra.Context, coeffs []float64) (*Real, error) {
	if ctx == nil {
		return nil, fmt.Errorf("FromCoefficients: %w", ErrNilContext)
	}
	if len(coeffs) != ctx.BasisCount() {
		return nil, fmt.Errorf("FromCoefficients: got %d, want %d: %w", len(coeffs), ctx.BasisCount(), ErrBadLength)
	}
	r := newReal(ctx)
	copy(r.reg, coeffs)

	return r, nil
}

// FromBlades accumulates blades into a new multivector of ctx.
//
// Errors: ErrNilContext, ErrOutOfRange.
func FromBlades(ctx *algebra.Context, blades ...Blade) (*Real, error) {
	r, err := New(ctx)
	if err != nil {
		return nil, fmt.Errorf("FromBlades: %w", err)
	}
	for _, b := range blades {
		if err = r.AddBlade(b); err != nil {
			return nil, fmt.Errorf("FromBlades: %w", err)
		}
	}

	return r, nil
}

// Scalar returns the multivector v·1 of ctx.
func Scalar(ctx *algebra.Context, v float64) (*Real, error) {
	r, err := New(ctx)
	if err != nil {
		return nil, fmt.Errorf("Scalar: %w", err)
	}
	r.reg[0] = v

	return r, nil
}

// Context returns the algebra a was built under.
func (a *Real) Context() *algebra.Context { return a.ctx }

// Len returns the number of coefficients (BasisCount()).
func (a *Real) Len() int { return len(a.reg) }

// ScalarPart returns the grade-0 coefficient.
func (a *Real) ScalarPart() float64 { return a.reg[0] }

// Coefficients returns a copy of the coefficient array.
func (a *Real) Coefficients() []float64 {
	out := make([]float64, len(a.reg))
	copy(out, a.reg)

	return out
}

// At returns the coefficient of the blade with the given index.
func (a *Real) At(index uint) (float64, error) {
	if err := a.ctx.ValidateIndex(index); err != nil {
		return 0, fmt.Errorf("Real.At: %w", err)
	}

	return a.reg[index], nil
}

// Set assigns the coefficient of the blade with the given index.
func (a *Real) Set(index uint, v float64) error {
	if err := a.ctx.ValidateIndex(index); err != nil {
		return fmt.Errorf("Real.Set: %w", err)
	}
	a.reg[index] = v

	return nil
}

// AddBlade accumulates b.Value into the coefficient of b.Index in place.
func (a *Real) AddBlade(b Blade) error {
	if err := a.ctx.ValidateIndex(b.Index); err != nil {
		return fmt.Errorf("Real.AddBlade: %w", err)
	}
	a.reg[b.Index] += b.Value

	return nil
}

// Blades returns the blades with a nonzero coefficient, in index order.
func (a *Real) Blades() []Blade {
	var out []Blade
	for i, v := range a.reg {
		if v != 0 {
			out = append(out, Blade{Index: uint(i), Value: v})
		}
	}

	return out
}

// Clear zeroes every coefficient in place.
func (a *Real) Clear() {
	for i := range a.reg {
		a.reg[i] = 0
	}
}

// Clone returns a deep copy of a.
func (a *Real) Clone() *Real {
	out := newReal(a.ctx)
	copy(out.reg, a.reg)

	return out
}

// validateReals reports ErrNilContext for a nil operand, which carries no
// algebra, and otherwise defers to algebra.ValidateCompatible.
func validateReals(a, b *Real) error {
	if a == nil || b == nil {
		return ErrNilContext
	}

	return algebra.ValidateCompatible(a.ctx, b.ctx)
}

// Add returns a + b.
func (a *Real) Add(b *Real) (*Real, error) {
	if err := validateReals(a, b); err != nil {
		return nil, fmt.Errorf("Real.Add: %w", err)
	}
	out := newReal(a.ctx)
	floats.AddTo(out.reg, a.reg, b.reg)

	return out, nil
}

// Sub returns a − b.
func (a *Real) Sub(b *Real) (*Real, error) {
	if err := validateReals(a, b); err != nil {
		return nil, fmt.Errorf("Real.Sub: %w", err)
	}
	out := newReal(a.ctx)
	floats.SubTo(out.reg, a.reg, b.reg)

	return out, nil
}

// Negate returns −a.
func (a *Real) Negate() *Real {
	return a.Scale(-1)
}

// Scale returns k·a.
func (a *Real) Scale(k float64) *Real {
	out := newReal(a.ctx)
	floats.ScaleTo(out.reg, k, a.reg)

	return out
}

// Mul returns the geometric product a·b (not b·a).
//
// Implementation:
//   - Outer loop over b, skipping zero coefficients: b is the streamed operand.
//   - Inner loop over a, the resident operand; each term lands on index i XOR j
//     with the sign of SwapCount(j, i), left operand first.
//
// Errors: ErrNilContext, ErrContextMismatch.
// Complexity: O(N·nnz(b)·n).
func (a *Real) Mul(b *Real) (*Real, error) {
	if err := validateReals(a, b); err != nil {
		return nil, fmt.Errorf("Real.Mul: %w", err)
	}
	out := newReal(a.ctx)
	var (
		i, j   int
		bv, v  float64
		li, lj uint
	)
	for i, bv = range b.reg {
		if bv == 0 {
			continue
		}
		li = uint(i)
		for j = range a.reg {
			lj = uint(j)
			v = bv * a.reg[j]
			if a.ctx.SwapCount(lj, li)&1 != 0 {
				v = -v
			}
			out.reg[li^lj] += v
		}
	}

	return out, nil
}

// Equal reports whether a and b share a context and every coefficient pair
// differs by at most DefaultEpsilon.
func (a *Real) Equal(b *Real) bool {
	return a.EqualWithin(b, DefaultEpsilon)
}

// EqualWithin is Equal with a caller-supplied absolute tolerance.
func (a *Real) EqualWithin(b *Real, tol float64) bool {
	if a == nil || b == nil || !a.ctx.Compatible(b.ctx) {
		return false
	}
	for i := range a.reg {
		if math.Abs(a.reg[i]-b.reg[i]) > tol {
			return false
		}
	}

	return true
}

// Reverse returns the reversion ~a: grades 2 and 3 (mod 4) change sign.
func (a *Real) Reverse() *Real {
	out := newReal(a.ctx)
	applyInvolution(a.ctx, reversion, out.reg, a.reg)

	return out
}

// Conjugate returns the Clifford conjugate: grades 1 and 2 (mod 4) change sign.
func (a *Real) Conjugate() *Real {
	out := newReal(a.ctx)
	applyInvolution(a.ctx, conjugation, out.reg, a.reg)

	return out
}

// Automorph returns the grade involution: odd grades change sign.
func (a *Real) Automorph() *Real {
	out := newReal(a.ctx)
	applyInvolution(a.ctx, gradeInvol, out.reg, a.reg)

	return out
}

// GradeSelect returns a copy of a keeping only the listed grades.
func (a *Real) GradeSelect(grades ...int) *Real {
	out := newReal(a.ctx)
	applyGradeFilter(a.ctx, grades, true, out.reg, a.reg)

	return out
}

// Involve returns a copy of a with the listed grades negated.
func (a *Real) Involve(grades ...int) *Real {
	out := newReal(a.ctx)
	applyGradeFilter(a.ctx, grades, false, out.reg, a.reg)

	return out
}

// PresentGrades reports, for every grade 0..n, whether some coefficient of
// that grade exceeds tol in absolute value.
func (a *Real) PresentGrades(tol float64) []bool {
	present := make([]bool, a.ctx.Dimensions()+1)
	for i, v := range a.reg {
		if math.Abs(v) > tol {
			present[a.ctx.Grade(uint(i))] = true
		}
	}

	return present
}

// Scalar3D returns (a·~a)·conj(a·~a). Up to three dimensions, in any
// signature, a·~a holds only grades 0 and 1, so the result is the pure scalar
// s² − v² whose reciprocal drives the classical inverse. In larger algebras
// higher grades survive and the value is only an intermediate.
//
// Errors: ErrNilContext for a nil receiver.
func (a *Real) Scalar3D() (*Real, error) {
	if a == nil {
		return nil, fmt.Errorf("Real.Scalar3D: %w", ErrNilContext)
	}
	b, err := a.Mul(a.Reverse())
	if err != nil {
		return nil, err
	}

	return b.Mul(b.Conjugate())
}

// Magnitude returns the Euclidean norm of the coefficient array, independent
// of the signature.
func (a *Real) Magnitude() float64 {
	return floats.Norm(a.reg, 2)
}

// Normalize divides a by its magnitude in place and returns that magnitude.
//
// Errors: ErrDegenerate when the magnitude is zero, NaN or infinite
// (a is left untouched).
func (a *Real) Normalize() (float64, error) {
	r := a.Magnitude()
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("Real.Normalize: %w", ErrDegenerate)
	}
	floats.Scale(1/r, a.reg)

	return r, nil
}

// Isomorph re-expresses a as a complex multivector of one dimension less.
// a must live in an algebra whose only negative basis vector is the top one
// (signature == 1<<(n-1)); that vector plays the imaginary unit.
// The complex half uses the Euclidean context of n-1 dimensions:
// re[i] = a[i], im[i] = a[i + signature].
//
// Errors: ErrPrecondition when n == 0 or the signature is anything else.
func (a *Real) Isomorph() (*Complex, error) {
	n := a.ctx.Dimensions()
	if n == 0 || a.ctx.Signature() != uint64(1)<<uint(n-1) {
		return nil, fmt.Errorf("Real.Isomorph: %s: signature must be the top basis bit: %w", a.ctx, ErrPrecondition)
	}
	half, err := algebra.New(n-1, 0)
	if err != nil {
		return nil, fmt.Errorf("Real.Isomorph: %w", err)
	}
	out := newComplex(half)
	shift := int(a.ctx.Signature())
	for i := range out.re {
		out.re[i] = a.reg[i]
		out.im[i] = a.reg[i+shift]
	}

	return out, nil
}

// Promote returns an equivalent multivector in the Euclidean algebra with one
// extra dimension. Blades with an odd number of negative basis vectors move
// to index i + BasisCount(); the others keep their index.
//
// Errors: ErrBadDimensions when n+1 exceeds algebra.MaxDimensions.
func (a *Real) Promote() (*Real, error) {
	bigger, err := algebra.New(a.ctx.Dimensions()+1, 0)
	if err != nil {
		return nil, fmt.Errorf("Real.Promote: %w", err)
	}
	out := newReal(bigger)
	sig := uint(a.ctx.Signature())
	shift := len(a.reg)
	for i, v := range a.reg {
		if a.ctx.Grade(uint(i)&sig)&1 != 0 {
			out.reg[i+shift] = v
		} else {
			out.reg[i] = v
		}
	}

	return out, nil
}

// String lists the nonzero blades, one per line: binary index then value.
func (a *Real) String() string {
	var sb strings.Builder
	width := max(a.ctx.Dimensions(), 8)
	for i, v := range a.reg {
		if math.Abs(v) < DefaultEpsilon {
			continue
		}
		fmt.Fprintf(&sb, "%0*b %16.8f\n", width, i, v)
	}

	return sb.String()
}
