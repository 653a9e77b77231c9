// SPDX-License-Identifier: MIT
// Package: lvfrac/grid
//
// options.go: functional options for Build.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics; it reports ErrInvalidGrid.
//   • Options apply in order; later options override earlier ones.

package grid

import "math"

// Option customizes Build by mutating a buildConfig.
type Option func(*buildConfig)

// buildConfig aggregates the knobs used by Build. Passed by value.
type buildConfig struct {
	warp float64 // power-warp exponent p > 0; 1 means uniform
}

// Deterministic defaults.
const defaultWarp = 1.0

// WithWarp sets the density-control exponent p of t_i = T·((i+1)/N)^(1/p).
// p < 1 concentrates points near 0, p > 1 near T, p = 1 is uniform.
// Panics if p is not a finite positive number.
func WithWarp(p float64) Option {
	if !(p > 0) || math.IsInf(p, 0) {
		panic("grid: WithWarp(p<=0 or non-finite)")
	}
	return func(c *buildConfig) {
		c.warp = p
	}
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{warp: defaultWarp}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
