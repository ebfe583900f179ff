// SPDX-License-Identifier: MIT

package algebra

// SwapCount returns the number of transpositions needed to bring the basis
// vectors of left followed by those of right into canonical order, where
// blades are written with their highest basis vector first, plus one
// for every basis vector common to both operands that squares to −1.
//
// Algorithm:
//  1. nSwap = grade(signature & left & right).
//  2. nJump = grade(right): vectors of right not yet placed.
//  3. Scan bits from the lowest while nJump > 0: a bit of right is placed
//     (nJump--); a bit of left jumps over the nJump higher vectors of right.
//
// Only the parity matters for the product sign; the count itself is returned.
// Bits at or above Dimensions() are ignored.
// Complexity: O(n).
func (c *Context) SwapCount(left, right uint) int {
	left &= c.Mask()
	right &= c.Mask()
	nSwap := c.grades[uint(c.signature)&left&right]
	nJump := c.grades[right]
	for bit := uint(1); nJump != 0; bit <<= 1 {
		if bit&right != 0 {
			nJump--
		}
		if bit&left != 0 {
			nSwap += nJump
		}
	}

	return nSwap
}

// Sign returns the sign (+1 or −1) of the blade product left·right.
func (c *Context) Sign(left, right uint) float64 {
	if c.SwapCount(left, right)&1 != 0 {
		return -1
	}

	return 1
}

// SignTable returns the sign part of the multiplication table:
// table[left][right] is +1 or −1 for the blade product left·right.
// Complexity: O(4^n · n).
func (c *Context) SignTable() [][]int8 {
	n := c.BasisCount()
	table := make([][]int8, n)
	var left, right int
	for left = 0; left < n; left++ {
		row := make([]int8, n)
		for right = 0; right < n; right++ {
			row[right] = 1
			if c.SwapCount(uint(left), uint(right))&1 != 0 {
				row[right] = -1
			}
		}
		table[left] = row
	}

	return table
}

// BasisProduct is one cell of the basis multiplication table.
type BasisProduct struct {
	Index    uint // left XOR right
	Negative bool // product carries a minus sign
}

// BasisTable returns the full basis multiplication table:
// table[left][right] names the blade (and sign) of left·right.
func (c *Context) BasisTable() [][]BasisProduct {
	n := c.BasisCount()
	table := make([][]BasisProduct, n)
	for left := 0; left < n; left++ {
		row := make([]BasisProduct, n)
		for right := 0; right < n; right++ {
			row[right] = BasisProduct{
				Index:    uint(left ^ right),
				Negative: c.SwapCount(uint(left), uint(right))&1 != 0,
			}
		}
		table[left] = row
	}

	return table
}
