// SPDX-License-Identifier: MIT
// Package: lvfrac/quadrature
//
// rule.go: precomputed Riemann-sum rule.

package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

// Rule holds w_i = f(t_i)·Δt_i for a fixed grid and weight.
// It is immutable and safe for concurrent use.
type Rule struct {
	w []float64
}

// NewRule precomputes the weights of f on g.
//
// Errors:
//   - ErrInvalidGrid for a nil grid.
//   - ErrParameterDomain if f is nil or non-finite at a grid point.
//
// Complexity: O(N).
func NewRule(g *grid.Grid, f Weight) (*Rule, error) {
	if g == nil {
		return nil, fmt.Errorf("quadrature.NewRule: nil grid: %w", lvfrac.ErrInvalidGrid)
	}
	if f == nil {
		return nil, fmt.Errorf("quadrature.NewRule: nil weight: %w", lvfrac.ErrParameterDomain)
	}
	w := g.Spacings()
	for i := range w {
		fi := f.At(g.At(i))
		if math.IsNaN(fi) || math.IsInf(fi, 0) {
			return nil, fmt.Errorf("quadrature.NewRule: f(%g)=%g: %w", g.At(i), fi, lvfrac.ErrParameterDomain)
		}
		w[i] *= fi
	}

	return &Rule{w: w}, nil
}

// Len returns N.
func (r *Rule) Len() int { return len(r.w) }

// Weights returns a copy of w.
func (r *Rule) Weights() []float64 {
	out := make([]float64, len(r.w))
	copy(out, r.w)

	return out
}

// Integrate returns Σ w_i·ρ_i.
func (r *Rule) Integrate(density []float64) (float64, error) {
	if len(density) != len(r.w) {
		return 0, fmt.Errorf("quadrature.Integrate: %d != %d: %w", len(density), len(r.w), ErrLengthMismatch)
	}

	return floats.Dot(r.w, density), nil
}

// Cumulative writes the running integral Σ_{k≤i} w_k·ρ_k into dst (reallocated
// unless len(dst) == N) and returns it. dst may alias density.
func (r *Rule) Cumulative(density, dst []float64) ([]float64, error) {
	if len(density) != len(r.w) {
		return nil, fmt.Errorf("quadrature.Cumulative: %d != %d: %w", len(density), len(r.w), ErrLengthMismatch)
	}
	if len(dst) != len(r.w) {
		dst = make([]float64, len(r.w))
	}
	floats.MulTo(dst, r.w, density)

	return floats.CumSum(dst, dst), nil
}

// Total is the one-shot form of NewRule(g, f).Integrate(density).
func Total(g *grid.Grid, f Weight, density []float64) (float64, error) {
	r, err := NewRule(g, f)
	if err != nil {
		return 0, err
	}

	return r.Integrate(density)
}
