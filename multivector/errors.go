// SPDX-License-Identifier: MIT
// Package multivector: sentinel error set.
// Context-related failures reuse the algebra sentinels (ErrNilContext,
// ErrContextMismatch, ErrOutOfRange, ErrBadDimensions) so callers match a
// single name regardless of which package detected the problem.

package multivector

import (
	"errors"

	"github.com/katalvlaran/clifford/algebra"
)

var (
	// ErrBadLength is returned when a coefficient slice does not hold exactly
	// BasisCount() entries.
	ErrBadLength = errors.New("multivector: coefficient slice has wrong length")

	// ErrDegenerate signals a zero divisor: normalizing the zero multivector
	// or inverting a multivector whose reduction collapses to a zero scalar.
	ErrDegenerate = errors.New("multivector: degenerate (zero) divisor")

	// ErrPrecondition signals an operation invoked outside the algebra it is
	// defined for, e.g. Isomorph on a context whose signature is not the
	// single top-dimension bit.
	ErrPrecondition = errors.New("multivector: precondition violated")
)

// Re-exported algebra sentinels, so callers of this package need one import.
var (
	ErrNilContext      = algebra.ErrNilContext
	ErrContextMismatch = algebra.ErrContextMismatch
	ErrOutOfRange      = algebra.ErrOutOfRange
)
