// SPDX-License-Identifier: MIT

// Package algebra - Context: dimension count, signature and grade table.
//
// Purpose:
//   - Replace ambient "current algebra" state with an explicit, immutable value.
//   - Keep the grade table next to the signature it was built for, so the two
//     can never drift apart.
//
// Complexity quicksheet:
//   - New: O(2^n) for the grade table; every accessor is O(1).

package algebra

import (
	"fmt"
	"math/bits"
)

// MaxDimensions bounds n so the dense layouts (2^n coefficients, 2^(n+1) grade
// entries) stay addressable and small enough to be useful.
const MaxDimensions = 16

// Context is an immutable description of the algebra Cl(p,q).
//   - dims is the number of basis vectors n.
//   - signature marks the negative-square basis vectors (bit k ⇔ e_k² = −1),
//     masked to the low n bits.
//   - grades maps every index in [0, 2·2^n) to its popcount.
type Context struct {
	dims      int    // number of basis vectors
	signature uint64 // negative-signature mask, already masked to n bits
	grades    []int  // grade lookup table, len == 2·BasisCount()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Context)(nil)

// New builds the context for n basis vectors under the given signature.
// Bits of signature at or above n are ignored, so ^uint64(0) selects the
// anti-Euclidean algebra of any size.
//
// Errors:
//   - ErrBadDimensions when n < 0 or n > MaxDimensions.
//
// Complexity: O(2^n) time and memory.
func New(dimensions int, signature uint64) (*Context, error) {
	if dimensions < 0 || dimensions > MaxDimensions {
		return nil, fmt.Errorf("New(%d): %w", dimensions, ErrBadDimensions)
	}
	c := &Context{
		dims:      dimensions,
		signature: signature & (uint64(1)<<uint(dimensions) - 1),
	}
	c.grades = buildGrades(c.BasisCount() << 1)

	return c, nil
}

// Euclidean returns Cl(n,0).
func Euclidean(dimensions int) (*Context, error) {
	return New(dimensions, 0)
}

// AntiEuclidean returns Cl(0,n): every basis vector squares to −1.
func AntiEuclidean(dimensions int) (*Context, error) {
	return New(dimensions, ^uint64(0))
}

// buildGrades doubles [0] by appending a copy of itself with every entry
// incremented by one until the table holds size entries.
// The result satisfies table[i] == popcount(i).
func buildGrades(size int) []int {
	table := make([]int, 1, size)
	for len(table) < size {
		n := len(table)
		for i := 0; i < n; i++ {
			table = append(table, table[i]+1)
		}
	}

	return table
}

// Dimensions returns the number of basis vectors n.
func (c *Context) Dimensions() int { return c.dims }

// Signature returns the negative-signature bitmask (masked to n bits).
func (c *Context) Signature() uint64 { return c.signature }

// BasisCount returns 2^n, the number of coefficients in a dense multivector.
func (c *Context) BasisCount() int { return 1 << uint(c.dims) }

// Mask returns BasisCount()-1: the bits that matter in a basis index.
func (c *Context) Mask() uint { return uint(c.BasisCount() - 1) }

// Negatives returns q, the number of negative-square basis vectors.
func (c *Context) Negatives() int { return bits.OnesCount64(c.signature) }

// IsEuclidean reports whether every basis vector squares to +1.
func (c *Context) IsEuclidean() bool { return c.signature == 0 }

// Grade returns the number of basis vectors in the blade with the given index.
// Indices beyond the table fall back to a popcount.
func (c *Context) Grade(index uint) int {
	if index < uint(len(c.grades)) {
		return c.grades[index]
	}

	return bits.OnesCount(index)
}

// Grades returns a copy of the grade lookup table.
func (c *Context) Grades() []int {
	out := make([]int, len(c.grades))
	copy(out, c.grades)

	return out
}

// ValidateIndex checks 0 ≤ index < BasisCount().
func (c *Context) ValidateIndex(index uint) error {
	if index > c.Mask() {
		return fmt.Errorf("ValidateIndex(%d) in %s: %w", index, c, ErrOutOfRange)
	}

	return nil
}

// Compatible reports whether multivectors from c and other may be combined.
func (c *Context) Compatible(other *Context) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}

	return c.dims == other.dims && c.signature == other.signature
}

// String renders the context as Cl(p,q) followed by the signature mask.
func (c *Context) String() string {
	if c == nil {
		return "Cl(<nil>)"
	}
	q := c.Negatives()

	return fmt.Sprintf("Cl(%d,%d)[sig=%#x]", c.dims-q, q, c.signature)
}

// ValidateCompatible is the composite guard used by binary operations:
// NotNil(a) → NotNil(b) → same dimensions and signature.
//
// Errors: ErrNilContext, ErrContextMismatch.
func ValidateCompatible(a, b *Context) error {
	if a == nil || b == nil {
		return fmt.Errorf("ValidateCompatible: %w", ErrNilContext)
	}
	if !a.Compatible(b) {
		return fmt.Errorf("ValidateCompatible: %s vs %s: %w", a, b, ErrContextMismatch)
	}

	return nil
}
