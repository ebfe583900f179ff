// SPDX-License-Identifier: MIT
// Package inverse: sentinel error set.
// ErrDegenerate and ErrPrecondition alias the multivector sentinels, so a
// single errors.Is check covers both packages.

package inverse

import (
	"errors"

	"github.com/katalvlaran/clifford/multivector"
)

var (
	// ErrUnsupportedDimension is returned when no closed form exists for the
	// multivector's dimension count (only 4, 5 and 6 are covered).
	ErrUnsupportedDimension = errors.New("inverse: unsupported dimension")

	// ErrBadNumerator is returned when an external Numerator yields an array
	// of the wrong length.
	ErrBadNumerator = errors.New("inverse: numerator returned wrong length")

	// ErrDegenerate signals that the final scalar divisor is zero (within the
	// configured tolerance) or not finite: the input is not invertible.
	ErrDegenerate = multivector.ErrDegenerate

	// ErrPrecondition signals the Euclidean-only fast path was asked to
	// invert a multivector of another algebra.
	ErrPrecondition = multivector.ErrPrecondition
)
