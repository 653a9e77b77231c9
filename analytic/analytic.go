// SPDX-License-Identifier: MIT
// Package: lvfrac/analytic
//
// analytic.go: Gamma-function closed forms.

package analytic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
	"github.com/katalvlaran/lvfrac/quadrature"
)

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

func checkOrder(op string, alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("%s: order %g outside (0,1): %w", op, alpha, lvfrac.ErrParameterDomain)
	}

	return nil
}

func checkTime(op string, t float64) error {
	if !(t >= 0) || math.IsInf(t, 0) {
		return fmt.Errorf("%s: t=%g: %w", op, t, lvfrac.ErrParameterDomain)
	}

	return nil
}

// RiemannLiouville returns I^α f(t) = a·t^α/Γ(α+1) + b·t^{α+1}/Γ(α+2).
// I(0) = 0; for a, b ≥ 0 it is non-decreasing in t.
//
// Errors: ErrParameterDomain for α ∉ (0,1) or t < 0.
func RiemannLiouville(f quadrature.Affine, alpha, t float64) (float64, error) {
	const op = "analytic.RiemannLiouville"
	if err := checkOrder(op, alpha); err != nil {
		return 0, err
	}
	if err := checkTime(op, t); err != nil {
		return 0, err
	}

	return rl(f, alpha, t), nil
}

func rl(f quadrature.Affine, alpha, t float64) float64 {
	return f.A*math.Pow(t, alpha)/math.Gamma(alpha+1) + f.B*math.Pow(t, alpha+1)/math.Gamma(alpha+2)
}

// RiemannLiouvilleCurve evaluates I^α f at every grid point.
func RiemannLiouvilleCurve(f quadrature.Affine, alpha float64, g *grid.Grid) ([]float64, error) {
	const op = "analytic.RiemannLiouvilleCurve"
	if err := checkOrder(op, alpha); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%s: nil grid: %w", op, lvfrac.ErrInvalidGrid)
	}
	out := make([]float64, g.Len())
	for i := range out {
		out[i] = rl(f, alpha, g.At(i))
	}

	return out, nil
}

// ReflectedRiemannLiouville returns I^α g(T) for g(s) = f(T−s).
func ReflectedRiemannLiouville(f quadrature.Affine, alpha, horizon float64) (float64, error) {
	const op = "analytic.ReflectedRiemannLiouville"
	if err := checkOrder(op, alpha); err != nil {
		return 0, err
	}
	if err := checkTime(op, horizon); err != nil {
		return 0, err
	}
	val := f.A*math.Pow(horizon, alpha)/alpha + f.B*math.Pow(horizon, alpha+1)/(alpha+1)

	return val / math.Gamma(alpha), nil
}

// ExpectedLocalTime returns E ∫_0^T f(t)·δ(B^H_t) dt at level 0.
//
// Errors: ErrParameterDomain for H ∉ (0,1) or T < 0.
func ExpectedLocalTime(f quadrature.Affine, hurst, horizon float64) (float64, error) {
	const op = "analytic.ExpectedLocalTime"
	if !(hurst > 0 && hurst < 1) {
		return 0, fmt.Errorf("%s: H=%g: %w", op, hurst, lvfrac.ErrParameterDomain)
	}
	if err := checkTime(op, horizon); err != nil {
		return 0, err
	}

	return expectedLocalTime(f, hurst, horizon), nil
}

func expectedLocalTime(f quadrature.Affine, hurst, t float64) float64 {
	return invSqrt2Pi * (f.A*math.Pow(t, 1-hurst)/(1-hurst) + f.B*math.Pow(t, 2-hurst)/(2-hurst))
}

// ExpectedLocalTimeCurve evaluates ExpectedLocalTime with T = t_i at every
// grid point: the running mean the cumulative estimator tracks.
func ExpectedLocalTimeCurve(f quadrature.Affine, hurst float64, g *grid.Grid) ([]float64, error) {
	const op = "analytic.ExpectedLocalTimeCurve"
	if !(hurst > 0 && hurst < 1) {
		return nil, fmt.Errorf("%s: H=%g: %w", op, hurst, lvfrac.ErrParameterDomain)
	}
	if g == nil {
		return nil, fmt.Errorf("%s: nil grid: %w", op, lvfrac.ErrInvalidGrid)
	}
	out := make([]float64, g.Len())
	for i := range out {
		out[i] = expectedLocalTime(f, hurst, g.At(i))
	}

	return out, nil
}
