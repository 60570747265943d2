// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Options are consumed by NewDense and every builder that shares its
//     dimension validation (NewZeros, NewOnes, NewIdentity, NewDiagonal).
//   - Operation results (Add, Mul, Power, ...) inherit their shape from
//     validated operands and are not re-checked against the limit.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDim is the largest row/column count accepted by constructors.
	DefaultMaxDim = 100

	// DefaultTolerance is the absolute tolerance used by Equal.
	DefaultTolerance = 1e-10
)

const panicMaxDimInvalid = "matrix: WithMaxDim: limit must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxDim int // 0 ⇒ unbounded; DefaultMaxDim
}

// WithMaxDim sets the largest accepted row/column count. n == 0 removes the limit.
// Panics if n < 0.
func WithMaxDim(n int) Option {
	if n < 0 {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) { o.maxDim = n }
}

// WithUnbounded removes the dimension limit (numeric-backend edition).
func WithUnbounded() Option { return WithMaxDim(0) }

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{maxDim: DefaultMaxDim}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// MaxDim reports the effective dimension limit (0 ⇒ unbounded).
func (o Options) MaxDim() int { return o.maxDim }
