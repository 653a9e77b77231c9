// SPDX-License-Identifier: MIT
// Package: lvfrac/fbm
//
// options.go: functional options shared by all samplers.
//
// Contract:
//   • WithX constructors panic on nonsensical values (programmer error).
//   • Options irrelevant to a strategy are ignored by it.

package fbm

import (
	"math"

	"github.com/katalvlaran/lvfrac/grid"
)

// Option customizes sampler construction.
type Option func(*samplerConfig)

type samplerConfig struct {
	jitter      float64 // base diagonal jitter, relative to mean variance (Cholesky)
	maxAttempts int     // jitter escalations before ErrNumericalInstability (Cholesky)
	uniformTol  float64 // IsUniform tolerance (Hosking, Davies–Harte)
	eigenTol    float64 // negative-eigenvalue tolerance, relative to max (Davies–Harte)
}

// Documented defaults.
const (
	// DefaultJitter is the first diagonal regularization, scaled by trace/N.
	DefaultJitter = 1e-15

	// DefaultMaxAttempts bounds jitter escalation (×10 per attempt), so the
	// largest jitter tried is DefaultJitter·10^(DefaultMaxAttempts−1) = 1e-8.
	DefaultMaxAttempts = 8

	// DefaultEigenTol tolerates round-off negatives in circulant eigenvalues.
	DefaultEigenTol = 1e-10

	jitterGrowth = 10.0
)

func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		jitter:      DefaultJitter,
		maxAttempts: DefaultMaxAttempts,
		uniformTol:  grid.DefaultUniformTol,
		eigenTol:    DefaultEigenTol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithJitter sets the base relative jitter (≥ 0, finite). Zero means the
// first attempt factors the raw covariance; later attempts still escalate
// from DefaultJitter.
func WithJitter(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 0) {
		panic("fbm: WithJitter(eps<0 or non-finite)")
	}
	return func(c *samplerConfig) {
		c.jitter = eps
	}
}

// WithMaxAttempts bounds the number of factorization attempts (≥ 1).
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("fbm: WithMaxAttempts(n<1)")
	}
	return func(c *samplerConfig) {
		c.maxAttempts = n
	}
}

// WithUniformTol sets the equispacing tolerance checked by Hosking and
// Davies–Harte (relative to T, > 0).
func WithUniformTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("fbm: WithUniformTol(tol<=0 or non-finite)")
	}
	return func(c *samplerConfig) {
		c.uniformTol = tol
	}
}

// WithEigenTol sets how far below zero (relative to the largest eigenvalue)
// a circulant eigenvalue may fall before Davies–Harte gives up (≥ 0).
func WithEigenTol(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("fbm: WithEigenTol(tol<0 or non-finite)")
	}
	return func(c *samplerConfig) {
		c.eigenTol = tol
	}
}
