// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/spf13/cobra"
)

// Flag defaults.
const (
	defaultDims      = 4
	defaultSignature = "0"
	defaultSeed      = 1
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	dims      int
	signature string
	seed      uint64
	verbose   bool

	ctx *algebra.Context
	log *slog.Logger
}

// newRootCmd builds the command tree writing to out and logging to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "clifford",
		Short: "Inspect Clifford algebras: sign tables, involutions, inverses",
		Long: `clifford prints diagnostic views of a Clifford algebra Cl(p,q).

The algebra is selected with --dims (number of basis vectors) and --signature
(bitmask of basis vectors squaring to -1; 0x, 0b and 0o prefixes are accepted,
-1 selects every vector).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.IntVarP(&a.dims, "dims", "n", defaultDims, "number of basis vectors")
	pf.StringVarP(&a.signature, "signature", "s", defaultSignature, "bitmask of negative-square basis vectors")
	pf.Uint64Var(&a.seed, "seed", defaultSeed, "seed for random multivectors")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newSignsCmd(a),
		newTableCmd(a),
		newInvolutesCmd(a),
		newInvertCmd(a),
		newInspectCmd(a),
	)

	return root
}

func (a *app) setup(errOut io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	sig, err := parseSignature(a.signature)
	if err != nil {
		return err
	}
	ctx, err := algebra.New(a.dims, sig)
	if err != nil {
		return err
	}
	a.ctx = ctx
	a.log.Debug("algebra ready",
		slog.String("algebra", ctx.String()),
		slog.Int("basis", ctx.BasisCount()),
		slog.Uint64("seed", a.seed),
	)

	return nil
}

// parseSignature accepts any strconv base prefix, and -1 for all-negative.
func parseSignature(s string) (uint64, error) {
	if s == "-1" {
		return ^uint64(0), nil
	}
	sig, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("--signature %q: %w", s, err)
	}

	return sig, nil
}
