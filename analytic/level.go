// SPDX-License-Identifier: MIT
// Package: lvfrac/analytic
//
// level.go: expected local time away from the origin.

package analytic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/quadrature"
)

// LevelNodes is the Gauss–Legendre order used off the origin. The integrand
// vanishes to all orders at t = 0 when ℓ ≠ 0, so a fixed rule converges fast.
const LevelNodes = 256

// ExpectedLocalTimeAt returns E ∫_0^T f(t)·δ(B^H_t − ℓ) dt
// = ∫_0^T f(t)·exp(−ℓ²/(2t^{2H})) / √(2π t^{2H}) dt.
// ℓ = 0 uses the closed form ExpectedLocalTime; other levels use fixed
// Gauss–Legendre quadrature.
func ExpectedLocalTimeAt(f quadrature.Affine, hurst, horizon, level float64) (float64, error) {
	const op = "analytic.ExpectedLocalTimeAt"
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0, fmt.Errorf("%s: level=%g: %w", op, level, lvfrac.ErrParameterDomain)
	}
	if level == 0 {
		return ExpectedLocalTime(f, hurst, horizon)
	}
	if !(hurst > 0 && hurst < 1) {
		return 0, fmt.Errorf("%s: H=%g: %w", op, hurst, lvfrac.ErrParameterDomain)
	}
	if err := checkTime(op, horizon); err != nil {
		return 0, err
	}

	l2 := level * level
	integrand := func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		v := math.Pow(t, 2*hurst)
		return f.At(t) * math.Exp(-l2/(2*v)) / math.Sqrt(2*math.Pi*v)
	}

	return quad.Fixed(integrand, 0, horizon, LevelNodes, nil, 0), nil
}
