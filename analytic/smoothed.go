// SPDX-License-Identifier: MIT
// Package: lvfrac/analytic
//
// smoothed.go: exact mean of the discrete kernel estimator.

package analytic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
	"github.com/katalvlaran/lvfrac/quadrature"
)

// ExpectedDensity returns E φ_ε(B^H_{t_i} − ℓ) at every grid point.
// B^H_t ~ N(0, t^{2H}) and the Gaussian kernel convolve to
// N(ℓ; 0, t^{2H} + ε²).
//
// Errors: ErrInvalidGrid for a nil grid; ErrParameterDomain for H ∉ (0,1),
// ε ≤ 0 or a non-finite level.
func ExpectedDensity(g *grid.Grid, hurst, bandwidth, level float64) ([]float64, error) {
	const op = "analytic.ExpectedDensity"
	if g == nil {
		return nil, fmt.Errorf("%s: nil grid: %w", op, lvfrac.ErrInvalidGrid)
	}
	if !(hurst > 0 && hurst < 1) {
		return nil, fmt.Errorf("%s: H=%g: %w", op, hurst, lvfrac.ErrParameterDomain)
	}
	if !(bandwidth > 0) || math.IsInf(bandwidth, 0) {
		return nil, fmt.Errorf("%s: bandwidth=%g: %w", op, bandwidth, lvfrac.ErrParameterDomain)
	}
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, fmt.Errorf("%s: level=%g: %w", op, level, lvfrac.ErrParameterDomain)
	}

	eps2 := bandwidth * bandwidth
	out := make([]float64, g.Len())
	for i := range out {
		sd := math.Sqrt(math.Pow(g.At(i), 2*hurst) + eps2)
		out[i] = distuv.Normal{Mu: 0, Sigma: sd}.Prob(level)
	}

	return out, nil
}

// SmoothedExpectation integrates ExpectedDensity against f with the same
// Riemann rule the estimator uses.
func SmoothedExpectation(g *grid.Grid, f quadrature.Weight, hurst, bandwidth, level float64) (float64, error) {
	rho, err := ExpectedDensity(g, hurst, bandwidth, level)
	if err != nil {
		return 0, err
	}
	rule, err := quadrature.NewRule(g, f)
	if err != nil {
		return 0, fmt.Errorf("analytic.SmoothedExpectation: %w", err)
	}

	return rule.Integrate(rho)
}
