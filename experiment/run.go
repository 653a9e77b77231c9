// SPDX-License-Identifier: MIT
// Package: lvfrac/experiment
//
// run.go: end-to-end run.

package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvfrac/analytic"
	"github.com/katalvlaran/lvfrac/compare"
	"github.com/katalvlaran/lvfrac/fbm"
	"github.com/katalvlaran/lvfrac/grid"
	"github.com/katalvlaran/lvfrac/localtime"
	"github.com/katalvlaran/lvfrac/montecarlo"
	"github.com/katalvlaran/lvfrac/quadrature"
)

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	progress montecarlo.ProgressFunc
	sampler  []fbm.Option
}

// WithProgress forwards Monte Carlo progress to fn.
func WithProgress(fn montecarlo.ProgressFunc) Option {
	return func(c *runConfig) {
		c.progress = fn
	}
}

// WithSamplerOptions passes options to the fBm sampler constructor.
func WithSamplerOptions(opts ...fbm.Option) Option {
	return func(c *runConfig) {
		c.sampler = append(c.sampler, opts...)
	}
}

// Calibration is the endpoint-rescaled cumulative curve. It is the zero
// value with Valid == false when the cumulative curve ends at zero (a
// sign-changing weight can do that); the raw estimate is unaffected.
type Calibration struct {
	Valid        bool
	Factor       float64   // I^α f(T) / Cumulative[N−1]
	Curve        []float64 // Factor · Cumulative
	MaxDeviation float64   // max relative deviation from the RL curve, percent
}

// Result is the outcome of Run. Raw and calibrated values never mix.
type Result struct {
	Params    Params
	Hurst     float64
	Bandwidth float64

	NumericalAverage float64 // unscaled Monte Carlo weighted integral
	StdErr           float64
	Analytical       float64 // expected local time at Level
	RelativeError    float64 // percent, NumericalAverage vs Analytical

	Smoothed              float64 // exact estimator mean at this grid and ε
	SmoothedRelativeError float64 // percent, NumericalAverage vs Smoothed

	RiemannLiouville float64 // I^α f(T)
	Calibrated       Calibration

	Count     int
	Discarded int
	Truncated bool
	Elapsed   time.Duration

	Grid                  []float64
	Density               []float64
	Cumulative            []float64
	RiemannLiouvilleCurve []float64
	Paths                 [][]float64
}

// Run executes one experiment.
//
// Implementation:
//   - Stage 1: validate p, build the grid, the sampler (one-time setup such as
//     the Cholesky factor happens here), the estimator and the rule.
//   - Stage 2: Monte Carlo.
//   - Stage 3: analytical references, relative errors, calibration.
//
// Errors: anything from the stages above, including ErrDegenerateReference
// when f ≡ 0 makes the relative error undefined. A truncated run is not an
// error; see Result.Truncated. Neither is a failed calibration; see
// Calibration.Valid.
func Run(ctx context.Context, p Params, opts ...Option) (*Result, error) {
	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	hurst, _ := p.HurstExponent()
	alpha := 1 - hurst
	f := p.Weight()

	g, err := grid.Warped(p.Steps, p.Horizon, p.WarpExponent())
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	sampler, err := fbm.New(p.Method, g, hurst, rc.sampler...)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	eps, err := p.BandwidthRule().Bandwidth(g, hurst)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	est, err := localtime.New(eps, localtime.WithLevel(p.Level))
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	rule, err := quadrature.NewRule(g, f)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}

	cfg := p.MonteCarlo()
	cfg.Progress = rc.progress
	agg, err := montecarlo.New(sampler, est, rule, cfg)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	mc, err := agg.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}

	res := &Result{
		Params:           p,
		Hurst:            hurst,
		Bandwidth:        eps,
		NumericalAverage: mc.Integral,
		StdErr:           mc.StdErr,
		Count:            mc.Count,
		Discarded:        mc.Discarded,
		Truncated:        mc.Truncated,
		Grid:             g.Points(),
		Density:          mc.Density,
		Paths:            mc.Paths,
	}
	if err := res.fillReferences(g, f, alpha, rule); err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}
	res.Elapsed = mc.Elapsed

	return res, nil
}

// fillReferences computes everything that does not depend on randomness
// beyond the averaged curve.
func (r *Result) fillReferences(g *grid.Grid, f quadrature.Affine, alpha float64, rule *quadrature.Rule) error {
	var err error
	p := r.Params

	if r.Analytical, err = analytic.ExpectedLocalTimeAt(f, r.Hurst, p.Horizon, p.Level); err != nil {
		return err
	}
	if r.RelativeError, err = compare.RelativeError(r.NumericalAverage, r.Analytical); err != nil {
		return err
	}
	if r.Smoothed, err = analytic.SmoothedExpectation(g, f, r.Hurst, r.Bandwidth, p.Level); err != nil {
		return err
	}
	if r.SmoothedRelativeError, err = compare.RelativeError(r.NumericalAverage, r.Smoothed); err != nil {
		return err
	}

	if r.RiemannLiouville, err = analytic.RiemannLiouville(f, alpha, p.Horizon); err != nil {
		return err
	}
	if r.RiemannLiouvilleCurve, err = analytic.RiemannLiouvilleCurve(f, alpha, g); err != nil {
		return err
	}
	if r.Cumulative, err = rule.Cumulative(r.Density, nil); err != nil {
		return err
	}
	r.Calibrated = calibrate(r.Cumulative, r.RiemannLiouvilleCurve, r.RiemannLiouville)

	return nil
}

// calibrate rescales cumulative onto target at T. Failures only mark the
// calibration invalid.
func calibrate(cumulative, reference []float64, target float64) Calibration {
	cal, err := quadrature.Rescale(cumulative, target)
	if err != nil {
		return Calibration{}
	}
	dev, err := compare.MaxRelativeDeviation(cal.Curve, reference)
	if err != nil {
		return Calibration{}
	}

	return Calibration{Valid: true, Factor: cal.Factor, Curve: cal.Curve, MaxDeviation: dev}
}
