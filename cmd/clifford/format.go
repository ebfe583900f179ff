// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
)

// maxTableDimensions bounds the printed tables; 2^8 columns is already wide.
const maxTableDimensions = 8

var (
	errTooLarge     = errors.New("clifford: too many dimensions for a printed table")
	errUnknownStyle = errors.New("clifford: unknown sign table style")
)

// Sign table cell renderings, indexed by parity.
var signStyles = map[string][2]string{
	"blank":   {"  ", " -"},
	"bool":    {"0", "1"},
	"ones":    {" 1", " -"},
	"numeric": {" 1,", "-1,"},
}

// writeSignTable prints one row of signs per left blade.
func writeSignTable(w io.Writer, ctx *algebra.Context, style string) error {
	cells, ok := signStyles[style]
	if !ok {
		return fmt.Errorf("%q: %w", style, errUnknownStyle)
	}
	if ctx.Dimensions() > maxTableDimensions {
		return fmt.Errorf("signs: %s: %w", ctx, errTooLarge)
	}
	var sb strings.Builder
	for _, row := range ctx.SignTable() {
		sb.Reset()
		for _, s := range row {
			if s < 0 {
				sb.WriteString(cells[1])
			} else {
				sb.WriteString(cells[0])
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
			return err
		}
	}

	return nil
}

// writeBasisTable prints the basis multiplication table: each cell is the
// product's sign followed by its index in hex.
func writeBasisTable(w io.Writer, ctx *algebra.Context) error {
	if ctx.Dimensions() > maxTableDimensions {
		return fmt.Errorf("table: %s: %w", ctx, errTooLarge)
	}
	var sb strings.Builder
	for _, row := range ctx.BasisTable() {
		sb.Reset()
		for _, p := range row {
			sign := ' '
			if p.Negative {
				sign = '-'
			}
			fmt.Fprintf(&sb, "%c%02x ", sign, p.Index)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
			return err
		}
	}

	return nil
}

// writeColumns prints named multivectors side by side, one basis index per
// row, followed by a magnitude row.
func writeColumns(w io.Writer, names []string, mvs []*multivector.Real) error {
	width := max(mvs[0].Context().Dimensions(), 8)
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for _, name := range names {
		fmt.Fprintf(&sb, " %8s", name)
	}
	sb.WriteByte('\n')

	coeffs := make([][]float64, len(mvs))
	for k, mv := range mvs {
		coeffs[k] = mv.Coefficients()
	}
	for i := 0; i < mvs[0].Len(); i++ {
		fmt.Fprintf(&sb, "%0*b", width, i)
		for k := range mvs {
			fmt.Fprintf(&sb, " %8.3f", coeffs[k][i])
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "%-*s", width, "magnitude")
	for _, mv := range mvs {
		fmt.Fprintf(&sb, " %8.3f", mv.Magnitude())
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())

	return err
}

// involutes computes A, its three involutions, the normalized product
// I = !A·~!A·~A and the products of A with each of them.
func involutes(a *multivector.Real) ([]string, []*multivector.Real, error) {
	var err error
	mul := func(x, y *multivector.Real) *multivector.Real {
		if err != nil {
			return x
		}
		var p *multivector.Real
		p, err = x.Mul(y)
		return p
	}

	rev, conj, auto := a.Reverse(), a.Conjugate(), a.Automorph()
	i := mul(mul(conj, auto), rev)
	ai := mul(a, i)
	if err != nil {
		return nil, nil, err
	}
	if m := ai.Magnitude(); m != 0 {
		i = i.Scale(1 / m)
	}

	names := []string{"A", "~A", "!A", "~!A", "I", "A*A", "A*~A", "A*!A", "A*~!A", "A*I", "I*A"}
	mvs := []*multivector.Real{
		a, rev, conj, auto, i,
		mul(a, a), mul(a, rev), mul(a, conj), mul(a, auto), mul(a, i), mul(i, a),
	}
	if err != nil {
		return nil, nil, err
	}

	return names, mvs, nil
}
