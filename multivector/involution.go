// SPDX-License-Identifier: MIT

package multivector

import (
	"github.com/katalvlaran/clifford/algebra"
	"github.com/samber/lo"
)

// involution selects which residues of grade mod 4 are negated.
// Bit r set ⇔ blades with grade%4 == r change sign.
type involution uint8

const (
	reversion   involution = 1<<2 | 1<<3 // ~A: grades 2,3 (mod 4)
	conjugation involution = 1<<1 | 1<<2 // Clifford conjugate: grades 1,2 (mod 4)
	gradeInvol  involution = 1<<1 | 1<<3 // grade involution: odd grades
)

// negates reports whether a blade of the given grade changes sign under inv.
func (inv involution) negates(grade int) bool {
	return inv>>(uint(grade)&3)&1 != 0
}

// applyInvolution writes src into dst, negating the coefficients selected by inv.
func applyInvolution(ctx *algebra.Context, inv involution, dst, src []float64) {
	for i, v := range src {
		if inv.negates(ctx.Grade(uint(i))) {
			v = -v
		}
		dst[i] = v
	}
}

// applyGradeFilter writes src into dst. Coefficients whose grade is listed in
// grades are kept (keep=true) or negated (keep=false); the others are zeroed
// (keep=true) or copied unchanged (keep=false).
func applyGradeFilter(ctx *algebra.Context, grades []int, keep bool, dst, src []float64) {
	for i, v := range src {
		listed := lo.Contains(grades, ctx.Grade(uint(i)))
		switch {
		case keep && !listed:
			v = 0
		case !keep && listed:
			v = -v
		}
		dst[i] = v
	}
}
