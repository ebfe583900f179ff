// SPDX-License-Identifier: MIT

// Package inverse: functional configuration for the inversion routines.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Panic only on nonsensical option values (programmer error).

package inverse

import (
	"math"
	"runtime"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the largest |divisor| still treated as zero.
	// Zero means only an exact zero scalar is degenerate.
	DefaultTolerance = 0.0

	// DefaultEuclideanFastPath routes Cl(6,0) inputs of Invert through
	// Invert6Euclidean when true.
	DefaultEuclideanFastPath = false

	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0) for InvertBatch.
	DefaultWorkers = 0
)

const (
	panicToleranceInvalid = "inverse: WithTolerance: eps must be finite, non-negative"
	panicNumeratorNil     = "inverse: WithNumerator: numerator must not be nil"
	panicWorkersInvalid   = "inverse: WithWorkers: n must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol       float64
	numerator Numerator
	fastPath  bool
	workers   int
}

// WithTolerance treats every final divisor with |d| ≤ eps as zero.
// Panics when eps is negative or not finite.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithNumerator replaces the Cl(6,0) numerator used by Invert6Euclidean.
// Panics when n is nil.
func WithNumerator(n Numerator) Option {
	if n == nil {
		panic(panicNumeratorNil)
	}

	return func(o *Options) { o.numerator = n }
}

// WithEuclideanFastPath lets Invert use Invert6Euclidean for Cl(6,0) inputs.
func WithEuclideanFastPath() Option {
	return func(o *Options) { o.fastPath = true }
}

// WithWorkers bounds InvertBatch concurrency; 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		tol:      DefaultTolerance,
		fastPath: DefaultEuclideanFastPath,
		workers:  DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.numerator == nil {
		o.numerator = TableNumerator{Tolerance: o.tol}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
