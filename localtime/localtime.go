// SPDX-License-Identifier: MIT
// Package: lvfrac/localtime
//
// localtime.go: Gaussian-kernel density estimator.

package localtime

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfrac"
)

const opNew = "localtime.New"

// Option customizes an Estimator.
type Option func(*Estimator)

// WithLevel sets the target level ℓ (default 0). Panics on NaN or ±Inf.
func WithLevel(x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("localtime: WithLevel(non-finite)")
	}
	return func(e *Estimator) {
		e.level = x
	}
}

// Estimator maps a path to its kernel density curve. It is immutable and
// safe for concurrent use.
type Estimator struct {
	bandwidth float64
	level     float64
	norm      float64 // 1 / (ε·√(2π))
	inv2var   float64 // 1 / (2ε²)
}

// New returns an estimator with bandwidth ε.
// ErrParameterDomain unless ε is finite and > 0, or if 2ε² underflows.
func New(bandwidth float64, opts ...Option) (*Estimator, error) {
	if !(bandwidth > 0) || math.IsInf(bandwidth, 0) {
		return nil, fmt.Errorf("%s: bandwidth=%g: %w", opNew, bandwidth, lvfrac.ErrParameterDomain)
	}
	e := &Estimator{
		bandwidth: bandwidth,
		norm:      1 / (bandwidth * math.Sqrt(2*math.Pi)),
		inv2var:   1 / (2 * bandwidth * bandwidth),
	}
	if math.IsInf(e.inv2var, 0) || math.IsInf(e.norm, 0) {
		return nil, fmt.Errorf("%s: bandwidth=%g underflows the kernel: %w", opNew, bandwidth, lvfrac.ErrParameterDomain)
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Bandwidth returns ε.
func (e *Estimator) Bandwidth() float64 { return e.bandwidth }

// Level returns ℓ.
func (e *Estimator) Level() float64 { return e.level }

// Kernel returns φ_ε(u).
func (e *Estimator) Kernel(u float64) float64 {
	return e.norm * math.Exp(-u*u*e.inv2var)
}

// Density writes φ_ε(path[i] − ℓ) into dst and returns it. dst is reallocated
// unless len(dst) == len(path); it may alias path.
// Non-finite inputs propagate as NaN; the caller decides how to treat them.
//
// Complexity: O(N).
func (e *Estimator) Density(path, dst []float64) []float64 {
	dst = ensureLen(dst, len(path))
	for i, x := range path {
		dst[i] = e.Kernel(x - e.level)
	}

	return dst
}

// Antithetic writes ½(φ_ε(x_i − ℓ) + φ_ε(−x_i − ℓ)) into dst and returns it.
// Same aliasing rules as Density.
//
// Complexity: O(N).
func (e *Estimator) Antithetic(path, dst []float64) []float64 {
	dst = ensureLen(dst, len(path))
	for i, x := range path {
		dst[i] = 0.5 * (e.Kernel(x-e.level) + e.Kernel(-x-e.level))
	}

	return dst
}

func ensureLen(dst []float64, n int) []float64 {
	if len(dst) == n {
		return dst
	}

	return make([]float64, n)
}
