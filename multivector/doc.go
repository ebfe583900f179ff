// Package multivector implements dense multivectors over an algebra.Context.
//
// The package provides:
//
//   - Blade: a single (index, coefficient) pair with its geometric product.
//   - Real: 2^n real coefficients with Add/Sub/Scale, the geometric product
//     Mul, the involutions Reverse (~A), Conjugate and Automorph, grade
//     selection, Magnitude, in-place Normalize and the 3D scalar reduction
//     Scalar3D.
//   - Complex: parallel real/imaginary coefficient arrays with the same
//     operator surface and complex scalar arithmetic.
//
// Real.Isomorph and Complex.Isomorph move a value between Cl(n,1)-style real
// algebras (top basis vector negative) and complex algebras of n dimensions.
// The context change is explicit: Complex.Isomorph returns the enlarged
// context next to the converted multivector.
//
// Values from different contexts never mix: binary operations return
// ErrContextMismatch. Reads are safe from many goroutines; writes are not.
package multivector
