// SPDX-License-Identifier: MIT
// Package: lvfrac/quadrature
//
// rescale.go: endpoint calibration.

package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvfrac"
)

// Calibration is a curve rescaled so its last value equals a target.
// It corrects global normalization drift and is not a statistical estimate.
type Calibration struct {
	Factor float64   // target / curve[N−1]
	Curve  []float64 // Factor·curve, a fresh slice
}

// Rescale multiplies a copy of curve by target/curve[N−1].
//
// Errors:
//   - ErrLengthMismatch for an empty curve.
//   - ErrParameterDomain for a non-finite target.
//   - ErrNumericalInstability when the endpoint is zero or non-finite.
func Rescale(curve []float64, target float64) (Calibration, error) {
	n := len(curve)
	if n == 0 {
		return Calibration{}, fmt.Errorf("quadrature.Rescale: empty curve: %w", ErrLengthMismatch)
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return Calibration{}, fmt.Errorf("quadrature.Rescale: target=%g: %w", target, lvfrac.ErrParameterDomain)
	}
	end := curve[n-1]
	if end == 0 || math.IsNaN(end) || math.IsInf(end, 0) {
		return Calibration{}, fmt.Errorf("quadrature.Rescale: endpoint=%g: %w", end, lvfrac.ErrNumericalInstability)
	}

	factor := target / end
	out := make([]float64, n)
	floats.ScaleTo(out, factor, curve)

	return Calibration{Factor: factor, Curve: out}, nil
}
