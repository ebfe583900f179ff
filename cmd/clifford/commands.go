// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/clifford/codec"
	"github.com/katalvlaran/clifford/inverse"
	"github.com/katalvlaran/clifford/multivector"
	"github.com/katalvlaran/clifford/sample"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSignsCmd(a *app) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "signs",
		Short: "Print the sign part of the basis multiplication table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeSignTable(cmd.OutOrStdout(), a.ctx, style)
		},
	}
	cmd.Flags().StringVar(&style, "style", "bool", "cell style: blank, bool, ones or numeric")

	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the basis multiplication table (signed hex indices)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeBasisTable(cmd.OutOrStdout(), a.ctx)
		},
	}
}

func newInvolutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "involutes",
		Short: "Print a random multivector next to its involutions and their products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mv, err := sample.Normal(a.ctx, sample.NewSource(a.seed))
			if err != nil {
				return err
			}
			names, mvs, err := involutes(mv)
			if err != nil {
				return err
			}

			return writeColumns(cmd.OutOrStdout(), names, mvs)
		},
	}
}

// invertFlags holds the options of the invert subcommand.
type invertFlags struct {
	count       int
	workers     int
	tolerance   float64
	fast        bool
	save        string
	compression string
}

func (f *invertFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.count, "count", 1, "number of random multivectors")
	fs.IntVar(&f.workers, "workers", inverse.DefaultWorkers, "parallel workers (0 = GOMAXPROCS)")
	fs.Float64Var(&f.tolerance, "tolerance", inverse.DefaultTolerance, "largest divisor treated as zero")
	fs.BoolVar(&f.fast, "fast", inverse.DefaultEuclideanFastPath, "use the table-driven Cl(6,0) path when it applies")
	fs.StringVar(&f.save, "save", "", "write the last inverse to this file")
	fs.StringVar(&f.compression, "compression", codec.DefaultCompression.String(), "compression for --save: none, zstd, s2 or lz4")
}

// options validates the flags and turns them into inverse options.
func (f *invertFlags) options() ([]inverse.Option, error) {
	if f.count < 1 {
		return nil, fmt.Errorf("--count must be positive, got %d", f.count)
	}
	if f.workers < 0 || f.tolerance < 0 {
		return nil, fmt.Errorf("--workers and --tolerance must be non-negative")
	}
	if math.IsNaN(f.tolerance) || math.IsInf(f.tolerance, 0) {
		return nil, fmt.Errorf("--tolerance must be finite, got %v", f.tolerance)
	}
	opts := []inverse.Option{inverse.WithWorkers(f.workers), inverse.WithTolerance(f.tolerance)}
	if f.fast {
		opts = append(opts, inverse.WithEuclideanFastPath())
	}

	return opts, nil
}

func newInvertCmd(a *app) *cobra.Command {
	flags := &invertFlags{}
	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert random multivectors and report the residual |A·A⁻¹ − 1|",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comp, err := codec.ParseCompression(flags.compression)
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}

			in, err := sample.Batch(a.ctx, sample.NewSource(a.seed), flags.count)
			if err != nil {
				return err
			}
			out, err := inverse.InvertBatch(cmd.Context(), in, opts...)
			if err != nil {
				return err
			}
			a.log.Debug("inverted", slog.Int("count", flags.count), slog.String("algebra", a.ctx.String()))

			w := cmd.OutOrStdout()
			if flags.count == 1 {
				if err := writeColumns(w, []string{"A", "A⁻¹"}, []*multivector.Real{in[0], out[0]}); err != nil {
					return err
				}
			}
			for i := range in {
				r, err := residual(in[i], out[i])
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%4d residual %.3e\n", i, r)
			}

			if flags.save == "" {
				return nil
			}
			data, err := codec.Marshal(out[len(out)-1], codec.WithCompression(comp))
			if err != nil {
				return err
			}
			a.log.Debug("saving inverse",
				slog.String("path", flags.save),
				slog.Int("bytes", len(data)),
				slog.String("compression", comp.String()),
			)

			return os.WriteFile(flags.save, data, 0o644)
		},
	}
	flags.register(cmd.Flags())

	return cmd
}

// residual returns |A·inv − 1|.
func residual(a, inv *multivector.Real) (float64, error) {
	prod, err := a.Mul(inv)
	if err != nil {
		return 0, err
	}
	one, err := multivector.Scalar(a.Context(), 1)
	if err != nil {
		return 0, err
	}
	diff, err := prod.Sub(one)
	if err != nil {
		return 0, err
	}

	return diff.Magnitude(), nil
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Decode a saved multivector frame and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, err := codec.Inspect(data)
			if err != nil {
				return err
			}
			a.log.Debug("frame", slog.Int("stored", int(h.StoredLen)), slog.Int("raw", int(h.RawLen)))

			w := cmd.OutOrStdout()
			var body fmt.Stringer
			if h.Kind == codec.KindComplex {
				body, err = codec.UnmarshalComplex(data)
			} else {
				body, err = codec.Unmarshal(data)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s frame, %s compression, Cl dims=%d sig=%#x, %d/%d bytes\n",
				h.Kind, h.Compression, h.Dimensions, h.Signature, h.StoredLen, h.RawLen)
			fmt.Fprint(w, body)

			return nil
		},
	}
}
