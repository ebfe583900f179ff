// Package clifford is a small engine for Clifford (geometric) algebras
// Cl(p,q) with up to 16 basis vectors.
//
// 🚀 What is inside?
//
//	Multivectors are dense coefficient arrays indexed by blade bitmaps: bit k
//	of an index set means basis vector k takes part in the blade, and the
//	grade of a blade is the popcount of its index. Everything else follows:
//		• algebra:      Context (dimensions, signature, grade table), swap
//		                count, sign and basis multiplication tables
//		• multivector:  Blade, Real and Complex multivectors with the geometric
//		                product, the three involutions, magnitude and the
//		                isomorphs between adjacent algebras
//		• inverse:      closed-form inverses for 4, 5 and 6 dimensions, a
//		                table-driven Cl(6,0) path, parallel batches
//		• codec:        checksummed binary frames, optionally compressed
//		• sample:       random multivectors with normal coefficients
//		• cmd/clifford: diagnostic CLI (sign tables, involutions, inverses)
//
// ✨ Quick start:
//
//	ctx, _ := algebra.New(4, 0b0011)       // Cl(2,2): e1, e2 square to −1
//	a, _ := multivector.FromBlades(ctx,
//		multivector.Blade{Index: 0, Value: 2},
//		multivector.Blade{Index: 0b1111, Value: 1},
//	)
//	inv, err := inverse.Invert(a)
//	if errors.Is(err, inverse.ErrDegenerate) {
//		// a is a zero divisor
//	}
//
// Contexts are immutable and safe to share between goroutines; multivector
// values are not synchronized.
package clifford
