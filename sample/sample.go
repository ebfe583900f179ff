// SPDX-License-Identifier: MIT

// Package sample draws random multivectors for tests, benchmarks and the CLI.
//
// Every coefficient is an independent normal variate, so a sampled multivector
// is invertible with probability one. Sampling is deterministic for a given
// rand.Source.
package sample

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/multivector"
	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults for the coefficient distribution.
const (
	DefaultMean  = 0.0
	DefaultSigma = 1.0
)

const panicSigmaInvalid = "sample: WithSigma: sigma must be finite and > 0"

// Option configures the coefficient distribution.
type Option func(*options)

type options struct {
	mean  float64
	sigma float64
}

// WithMean sets the mean of every coefficient.
func WithMean(mean float64) Option {
	return func(o *options) { o.mean = mean }
}

// WithSigma sets the standard deviation of every coefficient.
// Panics when sigma is not finite and positive.
func WithSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		panic(panicSigmaInvalid)
	}

	return func(o *options) { o.sigma = sigma }
}

func gatherOptions(opts []Option) options {
	o := options{mean: DefaultMean, sigma: DefaultSigma}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Normal returns a multivector of ctx whose coefficients are drawn from
// N(mean, sigma²) using src.
func Normal(ctx *algebra.Context, src rand.Source, opts ...Option) (*multivector.Real, error) {
	o := gatherOptions(opts)
	dist := distuv.Normal{Mu: o.mean, Sigma: o.sigma, Src: src}
	coeffs := make([]float64, 0, basisCount(ctx))
	for range basisCount(ctx) {
		coeffs = append(coeffs, dist.Rand())
	}
	mv, err := multivector.FromCoefficients(ctx, coeffs)
	if err != nil {
		return nil, fmt.Errorf("sample.Normal: %w", err)
	}

	return mv, nil
}

// Batch draws count independent multivectors of ctx.
func Batch(ctx *algebra.Context, src rand.Source, count int, opts ...Option) ([]*multivector.Real, error) {
	out := make([]*multivector.Real, 0, count)
	for range count {
		mv, err := Normal(ctx, src, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}

	return out, nil
}

// NewSource returns a deterministic PCG source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func basisCount(ctx *algebra.Context) int {
	if ctx == nil {
		return 0
	}

	return ctx.BasisCount()
}
