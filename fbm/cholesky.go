// SPDX-License-Identifier: MIT
// Package: lvfrac/fbm
//
// cholesky.go: covariance-factorization sampler.
//
// Purpose:
//   - Precompute L with L·Lᵀ ≈ C + δI once per run; every path is L·z.
//   - Regularize with a bounded, escalating diagonal jitter δ so aggressively
//     warped grids (near-duplicate points close to 0) still factor.
//
// Contract:
//   - Works on any valid grid.
//   - Construction: O(N³) time, O(N²) memory. Sample: O(N²) time.
//   - ErrNumericalInstability after maxAttempts failed factorizations.

package fbm

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

const opCholesky = "Cholesky"

// Cholesky samples fBm as L·z with a fixed lower-triangular factor L.
type Cholesky struct {
	hurst    float64
	n        int
	lower    *mat.TriDense
	jitter   float64 // absolute δ that made the factorization succeed
	attempts int     // factorizations tried, ≥ 1
}

// NewCholesky builds the covariance on g and factors it.
//
// Implementation:
//   - Stage 1: validate grid and H.
//   - Stage 2: build C on the grid (Covariance).
//   - Stage 3: factor C + δ_k·I for δ_k = jitter·(trace/N)·10^k, k = 0..max−1,
//     stopping at the first success.
//
// Errors:
//   - ErrInvalidGrid, ErrParameterDomain from validation.
//   - ErrNumericalInstability when no attempt is positive-definite.
func NewCholesky(g *grid.Grid, hurst float64, opts ...Option) (*Cholesky, error) {
	if err := validateInputs(opCholesky, g, hurst); err != nil {
		return nil, err
	}
	cfg := newSamplerConfig(opts...)

	cov := Covariance(g, hurst)
	lower, jitter, attempts, err := factorize(cov, cfg.jitter, cfg.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCholesky, err)
	}

	return &Cholesky{hurst: hurst, n: g.Len(), lower: lower, jitter: jitter, attempts: attempts}, nil
}

// factorize attempts Cholesky on cov + δ_k·I with escalating δ_k.
// cov is never mutated.
func factorize(cov *mat.SymDense, base float64, maxAttempts int) (*mat.TriDense, float64, int, error) {
	n := cov.SymmetricDim()
	scale := mat.Trace(cov) / float64(n)
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, 0, 0, fmt.Errorf("trace/N=%g: %w", scale, lvfrac.ErrNumericalInstability)
	}

	work := mat.NewSymDense(n, nil)
	var chol mat.Cholesky
	for k := 0; k < maxAttempts; k++ {
		jitter := jitterAt(base, k) * scale
		work.CopySym(cov)
		for i := 0; i < n; i++ {
			work.SetSym(i, i, cov.At(i, i)+jitter)
		}
		if chol.Factorize(work) {
			lower := mat.NewTriDense(n, mat.Lower, nil)
			chol.LTo(lower)
			return lower, jitter, k + 1, nil
		}
	}

	return nil, 0, maxAttempts, fmt.Errorf("not positive-definite after %d jitter attempts: %w",
		maxAttempts, lvfrac.ErrNumericalInstability)
}

// jitterAt is the relative jitter of attempt k. A zero base tries the raw
// matrix first, then escalates from DefaultJitter.
func jitterAt(base float64, k int) float64 {
	if base > 0 {
		return base * math.Pow(jitterGrowth, float64(k))
	}
	if k == 0 {
		return 0
	}

	return DefaultJitter * math.Pow(jitterGrowth, float64(k-1))
}

// Sample draws z ~ N(0, I_N) from rng and returns L·z in dst.
func (c *Cholesky) Sample(rng *rand.Rand, dst []float64) ([]float64, error) {
	z := make([]float64, c.n)
	for i := range z {
		z[i] = rng.NormFloat64()
	}
	dst = ensureLen(dst, c.n)
	out := mat.NewVecDense(c.n, dst)
	out.MulVec(c.lower, mat.NewVecDense(c.n, z))

	return dst, nil
}

// Len returns N.
func (c *Cholesky) Len() int { return c.n }

// Hurst returns H.
func (c *Cholesky) Hurst() float64 { return c.hurst }

// Jitter returns the absolute diagonal regularization that was applied.
func (c *Cholesky) Jitter() float64 { return c.jitter }

// Attempts returns how many factorizations were tried.
func (c *Cholesky) Attempts() int { return c.attempts }

// Factor returns a copy of the lower-triangular factor L.
func (c *Cholesky) Factor() *mat.TriDense {
	out := mat.NewTriDense(c.n, mat.Lower, nil)
	for i := 0; i < c.n; i++ {
		for j := 0; j <= i; j++ {
			out.SetTri(i, j, c.lower.At(i, j))
		}
	}

	return out
}
