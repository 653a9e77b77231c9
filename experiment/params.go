// SPDX-License-Identifier: MIT
// Package: lvfrac/experiment
//
// params.go: run parameters, defaults and validation.

package experiment

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/fbm"
	"github.com/katalvlaran/lvfrac/localtime"
	"github.com/katalvlaran/lvfrac/montecarlo"
	"github.com/katalvlaran/lvfrac/quadrature"
)

// Params fully describes one run.
type Params struct {
	Alpha float64 // fractional order α ∈ (0,1); H = 1 − α
	Hurst float64 // optional; 0 derives H from Alpha, otherwise must agree with it

	Steps   int     // grid points N
	Horizon float64 // T
	Warp    float64 // power-warp exponent p; 0 and 1 mean uniform

	Paths      int  // realizations M
	Antithetic bool // pair each draw with its negation (M even)
	Workers    int
	Seed       int64
	Retain     int // sample paths returned for presentation

	Bandwidth      float64 // fixed ε; 0 selects IncrementBandwidth(BandwidthScale)
	BandwidthScale float64 // κ for the increment rule; 0 means localtime.DefaultKappa
	Level          float64 // local-time level ℓ

	A, B float64 // weight f(t) = A + B·t

	Method      fbm.Method
	MaxDuration time.Duration
	NonFinite   montecarlo.NonFinitePolicy
}

// DefaultParams is the reference configuration: α = 0.4, T = 1, f = 1 + 2t,
// ε = 0.05, M = 1000, N = 256, seed 42, Hosking sampler.
func DefaultParams() Params {
	return Params{
		Alpha:     0.4,
		Steps:     256,
		Horizon:   1,
		Warp:      1,
		Paths:     1000,
		Workers:   1,
		Seed:      42,
		Retain:    montecarlo.DefaultRetain,
		Bandwidth: 0.05,
		A:         1,
		B:         2,
		Method:    fbm.MethodHosking,
	}
}

// Weight returns f(t) = A + B·t.
func (p Params) Weight() quadrature.Affine { return quadrature.Affine{A: p.A, B: p.B} }

// HurstExponent resolves H from Alpha and Hurst.
func (p Params) HurstExponent() (float64, error) {
	switch {
	case p.Hurst == 0:
		return fbm.HurstFromAlpha(p.Alpha)
	case p.Alpha == 0:
		if err := fbm.ValidateHurst(p.Hurst); err != nil {
			return 0, err
		}
		return p.Hurst, nil
	default:
		h, err := fbm.HurstFromAlpha(p.Alpha)
		if err != nil {
			return 0, err
		}
		if math.Abs(h-p.Hurst) > 1e-12 {
			return 0, fmt.Errorf("experiment: H=%g disagrees with 1−alpha=%g: %w", p.Hurst, h, lvfrac.ErrParameterDomain)
		}
		return h, nil
	}
}

// Order returns α = 1 − H.
func (p Params) Order() (float64, error) {
	h, err := p.HurstExponent()
	if err != nil {
		return 0, err
	}

	return 1 - h, nil
}

// WarpExponent maps the zero value to 1.
func (p Params) WarpExponent() float64 {
	if p.Warp == 0 {
		return 1
	}

	return p.Warp
}

// BandwidthRule returns the fixed rule when Bandwidth > 0, else the
// increment rule.
func (p Params) BandwidthRule() localtime.Rule {
	if p.Bandwidth != 0 {
		return localtime.FixedBandwidth(p.Bandwidth)
	}
	kappa := p.BandwidthScale
	if kappa == 0 {
		kappa = localtime.DefaultKappa
	}

	return localtime.IncrementBandwidth(kappa)
}

// MonteCarlo projects the run-loop fields.
func (p Params) MonteCarlo() montecarlo.Config {
	return montecarlo.Config{
		Paths:       p.Paths,
		Antithetic:  p.Antithetic,
		Workers:     p.Workers,
		Seed:        p.Seed,
		Retain:      p.Retain,
		MaxDuration: p.MaxDuration,
		NonFinite:   p.NonFinite,
	}
}

// Validate checks everything that can be checked without building a grid.
//
// Errors: ErrInvalidGrid for N, T or p; ErrParameterDomain otherwise.
func (p Params) Validate() error {
	if _, err := p.HurstExponent(); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}
	if p.Steps < 2 {
		return fmt.Errorf("experiment: Steps=%d: %w", p.Steps, lvfrac.ErrInvalidGrid)
	}
	if !(p.Horizon > 0) || math.IsInf(p.Horizon, 0) {
		return fmt.Errorf("experiment: Horizon=%g: %w", p.Horizon, lvfrac.ErrInvalidGrid)
	}
	if !(p.Warp >= 0) || math.IsInf(p.Warp, 0) {
		return fmt.Errorf("experiment: Warp=%g: %w", p.Warp, lvfrac.ErrInvalidGrid)
	}
	if p.Bandwidth < 0 || math.IsNaN(p.Bandwidth) || math.IsInf(p.Bandwidth, 0) {
		return fmt.Errorf("experiment: Bandwidth=%g: %w", p.Bandwidth, lvfrac.ErrParameterDomain)
	}
	if p.BandwidthScale < 0 || math.IsNaN(p.BandwidthScale) || math.IsInf(p.BandwidthScale, 0) {
		return fmt.Errorf("experiment: BandwidthScale=%g: %w", p.BandwidthScale, lvfrac.ErrParameterDomain)
	}
	if math.IsNaN(p.Level) || math.IsInf(p.Level, 0) {
		return fmt.Errorf("experiment: Level=%g: %w", p.Level, lvfrac.ErrParameterDomain)
	}
	if !p.Weight().IsFinite() {
		return fmt.Errorf("experiment: weight %+v: %w", p.Weight(), lvfrac.ErrParameterDomain)
	}
	if _, err := p.Method.MarshalText(); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}
	if err := p.MonteCarlo().Validate(); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}

	return nil
}
