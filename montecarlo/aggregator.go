// SPDX-License-Identifier: MIT
// Package: lvfrac/montecarlo
//
// aggregator.go: parallel accumulation and final reduction.

package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/fbm"
	"github.com/katalvlaran/lvfrac/localtime"
	"github.com/katalvlaran/lvfrac/quadrature"
)

// Aggregator runs the sample → density → integral loop. The sampler,
// estimator and rule are shared read-only between workers.
type Aggregator struct {
	sampler fbm.Sampler
	est     *localtime.Estimator
	rule    *quadrature.Rule
	cfg     Config
}

// New validates the collaborators and cfg.
//
// Errors:
//   - ErrParameterDomain for nil collaborators or an invalid Config.
//   - quadrature.ErrLengthMismatch when sampler and rule disagree on N.
func New(s fbm.Sampler, e *localtime.Estimator, r *quadrature.Rule, cfg Config) (*Aggregator, error) {
	if s == nil || e == nil || r == nil {
		return nil, fmt.Errorf("montecarlo.New: nil sampler, estimator or rule: %w", lvfrac.ErrParameterDomain)
	}
	if s.Len() != r.Len() {
		return nil, fmt.Errorf("montecarlo.New: sampler has %d points, rule %d: %w", s.Len(), r.Len(), quadrature.ErrLengthMismatch)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Aggregator{sampler: s, est: e, rule: r, cfg: cfg}, nil
}

// Config returns the run configuration.
func (a *Aggregator) Config() Config { return a.cfg }

// partial is one worker's private accumulator.
type partial struct {
	sum       []float64 // Σ curves over finite units
	integrals []float64 // per-unit integrals, in unit order
	discarded int       // non-finite units
}

// Run executes the configured realizations and finalizes the average.
//
// Implementation:
//   - Stage 1: split units (paths, or pairs under Antithetic) into contiguous
//     blocks, one per worker.
//   - Stage 2: each worker accumulates into its own partial; the only shared
//     writes are retained-path slots (disjoint indices) and the progress
//     counter.
//   - Stage 3: reduce partials in worker order and divide by the number of
//     finite units.
//
// Errors:
//   - ErrNumericalInstability under AbortOnNonFinite, or when every
//     realization was non-finite.
//   - Sampler errors, wrapped.
//   - ErrNoRealizations (joined with the context error) when stopped before
//     the first unit completed.
func (a *Aggregator) Run(ctx context.Context) (*Estimate, error) {
	start := time.Now()
	if a.cfg.MaxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.MaxDuration)
		defer cancel()
	}

	units, perUnit := a.units()
	workers := a.workerCount(units)
	paths := make([][]float64, min(a.cfg.Retain, units))
	parts := make([]partial, workers)
	rep := newReporter(a.cfg.Progress, units, perUnit)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*units/workers, (w+1)*units/workers
		g.Go(func() error {
			return a.work(gctx, w, lo, hi, &parts[w], paths, rep)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := a.sampler.Len()
	total := make([]float64, n)
	integrals := make([]float64, 0, units)
	discarded := 0
	for _, p := range parts {
		floats.Add(total, p.sum)
		integrals = append(integrals, p.integrals...)
		discarded += p.discarded
	}
	completed := len(integrals)
	truncated := completed+discarded < units

	if completed == 0 {
		if truncated {
			return nil, errors.Join(ErrNoRealizations, ctx.Err())
		}
		return nil, fmt.Errorf("montecarlo: all %d realizations non-finite: %w", units*perUnit, lvfrac.ErrNumericalInstability)
	}

	floats.Scale(1/float64(completed), total)
	mean, variance := stat.MeanVariance(integrals, nil)
	if completed == 1 {
		variance = 0
	}

	return &Estimate{
		Density:   total,
		Integral:  mean,
		Variance:  variance,
		StdErr:    math.Sqrt(variance / float64(completed)),
		Count:     completed * perUnit,
		Discarded: discarded * perUnit,
		Truncated: truncated,
		Paths:     compactPaths(paths),
		Elapsed:   time.Since(start),
	}, nil
}

// units returns the number of work units and realizations per unit.
func (a *Aggregator) units() (int, int) {
	if a.cfg.Antithetic {
		return a.cfg.Paths / 2, 2
	}

	return a.cfg.Paths, 1
}

func (a *Aggregator) workerCount(units int) int {
	w := a.cfg.Workers
	if w < 1 {
		w = 1
	}

	return min(w, units)
}

// work processes units [lo, hi) with the stream of worker w.
func (a *Aggregator) work(ctx context.Context, w, lo, hi int, p *partial, paths [][]float64, rep *reporter) error {
	rng := workerRNG(a.cfg.Seed, w)
	n := a.sampler.Len()
	p.sum = make([]float64, n)
	p.integrals = make([]float64, 0, hi-lo)
	buf := make([]float64, n)
	curve := make([]float64, n)

	for u := lo; u < hi; u++ {
		if ctx.Err() != nil {
			return nil
		}
		path, err := a.sampler.Sample(rng, buf)
		if err != nil {
			return fmt.Errorf("montecarlo: unit %d: %w", u, err)
		}
		if u < len(paths) {
			paths[u] = append([]float64(nil), path...)
		}

		// The kernel maps ±Inf to a finite 0, so the path itself is checked.
		finite := allFinite(path)
		var val float64
		if finite {
			if a.cfg.Antithetic {
				a.est.Antithetic(path, curve)
			} else {
				a.est.Density(path, curve)
			}
			if val, err = a.rule.Integrate(curve); err != nil {
				return fmt.Errorf("montecarlo: unit %d: %w", u, err)
			}
			finite = isFinite(val) && allFinite(curve)
		}

		if !finite {
			if a.cfg.NonFinite == AbortOnNonFinite {
				return fmt.Errorf("montecarlo: unit %d produced a non-finite realization: %w", u, lvfrac.ErrNumericalInstability)
			}
			p.discarded++
		} else {
			floats.Add(p.sum, curve)
			p.integrals = append(p.integrals, val)
		}
		rep.tick()
	}

	return nil
}

// compactPaths drops slots left empty by an early stop.
func compactPaths(paths [][]float64) [][]float64 {
	out := paths[:0]
	for _, p := range paths {
		if p != nil {
			out = append(out, p)
		}
	}

	return out
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func allFinite(x []float64) bool {
	for _, v := range x {
		if !isFinite(v) {
			return false
		}
	}

	return true
}
