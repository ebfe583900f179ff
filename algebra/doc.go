// Package algebra describes the Clifford algebra a multivector lives in.
//
// 🚀 What is a Context?
//
//	A Context fixes the number of basis vectors n and the metric signature: a
//	bitmask marking the basis vectors that square to −1. Basis blades are named
//	by bit patterns, so blade e1e3 in Cl(3,0) has index 0b101.
//
// ✨ Key features:
//   - immutable Context values, safe to share between goroutines
//   - grade lookup table built by doubling (grade(i) == popcount(i))
//   - SwapCount: the canonical reordering count that fixes the sign of a
//     blade product, including the extra flip for repeated negative vectors
//   - sign and basis multiplication tables returned as plain data
//
// ⚙️ Usage:
//
//	ctx, err := algebra.New(3, 0) // Cl(3,0)
//	if err != nil {
//	  // handle ErrBadDimensions
//	}
//	ctx.Sign(0b001, 0b010) // +1: e1·e2 = +e12
//	ctx.Sign(0b010, 0b001) // −1: e2·e1 = −e12
//
// Multivectors built under one Context must not be combined with multivectors
// built under another; the multivector package reports ErrContextMismatch.
package algebra
