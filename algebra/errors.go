// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// Every algorithm in this module returns these sentinels (possibly wrapped with
// an operation tag) and tests match them via errors.Is. No function panics on
// user-triggered conditions.

package algebra

import "errors"

// NOTE ON NAMING
// --------------
// Every message is prefixed with "algebra: ..." for grep-ability. Callers add
// context with fmt.Errorf("Op: %w", ErrX); errors.Is keeps matching.

var (
	// ErrBadDimensions is returned when the requested dimension count is
	// negative or exceeds MaxDimensions.
	ErrBadDimensions = errors.New("algebra: invalid dimension count")

	// ErrOutOfRange indicates a basis index outside [0, BasisCount()).
	ErrOutOfRange = errors.New("algebra: basis index out of range")

	// ErrNilContext indicates that a nil *Context was supplied.
	ErrNilContext = errors.New("algebra: nil context")

	// ErrContextMismatch indicates two operands built under different
	// dimension/signature configurations.
	ErrContextMismatch = errors.New("algebra: context mismatch")
)
