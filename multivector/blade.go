// SPDX-License-Identifier: MIT

package multivector

import (
	"fmt"

	"github.com/katalvlaran/clifford/algebra"
)

// Blade is a single basis blade scaled by a real coefficient.
// Index is a bitmap of the participating basis vectors.
type Blade struct {
	Index uint
	Value float64
}

// Grade returns the number of basis vectors in b.
func (b Blade) Grade(ctx *algebra.Context) int {
	return ctx.Grade(b.Index)
}

// Mul returns the geometric product b·other: the indices combine by XOR and the
// value is negated when the swap count is odd.
//
// Errors: ErrNilContext, ErrOutOfRange when either index does not fit ctx.
func (b Blade) Mul(ctx *algebra.Context, other Blade) (Blade, error) {
	if ctx == nil {
		return Blade{}, fmt.Errorf("Blade.Mul: %w", ErrNilContext)
	}
	if err := ctx.ValidateIndex(b.Index); err != nil {
		return Blade{}, fmt.Errorf("Blade.Mul: %w", err)
	}
	if err := ctx.ValidateIndex(other.Index); err != nil {
		return Blade{}, fmt.Errorf("Blade.Mul: %w", err)
	}

	value := b.Value * other.Value
	if ctx.SwapCount(b.Index, other.Index)&1 != 0 {
		value = -value
	}

	return Blade{Index: b.Index ^ other.Index, Value: value}, nil
}

// String renders the blade as (index,value), index in hex.
func (b Blade) String() string {
	return fmt.Sprintf("(%02x,%8.3f)", b.Index, b.Value)
}
