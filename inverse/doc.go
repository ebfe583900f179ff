// Package inverse computes closed-form inverses of multivectors with 4, 5 or 6
// basis vectors.
//
// 🚀 How it works
//
//	Each routine multiplies A by its reverse, B = A·~A, and keeps multiplying
//	by grade-involved copies of the running product until only a scalar is
//	left. The inverse is then ~A times the accumulated numerator divided by
//	that scalar; a zero scalar means A is not invertible (ErrDegenerate).
//
// ✨ Entry points:
//   - Invert4, Invert5, Invert6: any signature, fixed dimension count
//   - Invert6Euclidean: Cl(6,0) only, numerator supplied by a Numerator
//     (TableNumerator by default)
//   - Invert: dispatch on the dimension count
//   - InvertBatch: the same over a slice, in parallel
//
// ⚙️ Usage:
//
//	inv, err := inverse.Invert(a)
//	if errors.Is(err, inverse.ErrDegenerate) {
//	  // a has no inverse
//	}
//
// Near-singular inputs are not detected: they degrade numerically.
package inverse
