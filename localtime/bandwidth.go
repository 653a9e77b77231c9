// SPDX-License-Identifier: MIT
// Package: lvfrac/localtime
//
// bandwidth.go: bandwidth selection rules.

package localtime

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

// Rule resolves a bandwidth for a grid and Hurst exponent.
type Rule interface {
	Bandwidth(g *grid.Grid, hurst float64) (float64, error)
	String() string
}

// DefaultKappa is the IncrementBandwidth multiplier used when none is given.
const DefaultKappa = 1.0

type fixedRule float64

// FixedBandwidth always returns eps. Validation happens on resolve.
func FixedBandwidth(eps float64) Rule { return fixedRule(eps) }

func (r fixedRule) Bandwidth(*grid.Grid, float64) (float64, error) {
	eps := float64(r)
	if !(eps > 0) || math.IsInf(eps, 0) {
		return 0, fmt.Errorf("localtime: fixed bandwidth %g: %w", eps, lvfrac.ErrParameterDomain)
	}

	return eps, nil
}

func (r fixedRule) String() string { return fmt.Sprintf("fixed(%g)", float64(r)) }

type incrementRule float64

// IncrementBandwidth returns κ·max(Δt)^H, κ times the standard deviation of
// the largest fBm increment on the grid.
func IncrementBandwidth(kappa float64) Rule { return incrementRule(kappa) }

func (r incrementRule) Bandwidth(g *grid.Grid, hurst float64) (float64, error) {
	kappa := float64(r)
	if !(kappa > 0) || math.IsInf(kappa, 0) {
		return 0, fmt.Errorf("localtime: increment bandwidth κ=%g: %w", kappa, lvfrac.ErrParameterDomain)
	}
	if g == nil {
		return 0, fmt.Errorf("localtime: increment bandwidth: nil grid: %w", lvfrac.ErrInvalidGrid)
	}
	if !(hurst > 0 && hurst < 1) {
		return 0, fmt.Errorf("localtime: increment bandwidth: H=%g: %w", hurst, lvfrac.ErrParameterDomain)
	}
	eps := kappa * math.Pow(g.MaxSpacing(), hurst)
	if !(eps > 0) {
		return 0, fmt.Errorf("localtime: increment bandwidth underflows (ε=%g): %w", eps, lvfrac.ErrParameterDomain)
	}

	return eps, nil
}

func (r incrementRule) String() string { return fmt.Sprintf("increment(κ=%g)", float64(r)) }
