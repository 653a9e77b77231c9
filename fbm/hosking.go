// SPDX-License-Identifier: MIT
// Package: lvfrac/fbm
//
// hosking.go: exact sequential sampler (Hosking / Durbin–Levinson).
//
// Purpose:
//   - Simulate unit-spacing fractional Gaussian noise X_0..X_{N-1} by exact
//     conditioning: X_i | X_{i-1..0} ~ N(Σ_j φ_{i,j}·X_{i−j}, v_i).
//   - Cumulate and scale by step^H to obtain fBm on t_i = (i+1)·step.
//
// Recursion (Durbin–Levinson), with γ the fGn autocovariance:
//
//	v_0 = γ(0)
//	κ_i = (γ(i) − Σ_{j=1}^{i−1} φ_{i−1,j}·γ(i−j)) / v_{i−1}
//	φ_{i,i} = κ_i,  φ_{i,j} = φ_{i−1,j} − κ_i·φ_{i−1,i−j}
//	v_i = v_{i−1}·(1 − κ_i²)
//
// The reflection coefficients κ_i and conditional deviations √v_i depend only
// on (N, H) and are computed once; each path replays the φ update, which keeps
// memory at O(N) and work at O(N²) per path.

package fbm

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

const opHosking = "Hosking"

// Hosking samples fBm on a uniform grid by sequential conditioning.
type Hosking struct {
	hurst   float64
	n       int
	step    float64
	reflect []float64 // κ_i, i = 1..N−1 (index 0 unused)
	sd      []float64 // √v_i, i = 0..N−1
}

// NewHosking precomputes the Durbin–Levinson coefficients for g.
//
// Errors:
//   - ErrInvalidGrid when g is not equispaced from the origin.
//   - ErrParameterDomain for H outside (0,1).
//   - ErrNumericalInstability if a conditional variance turns non-positive.
//
// Complexity: O(N²) time, O(N) memory.
func NewHosking(g *grid.Grid, hurst float64, opts ...Option) (*Hosking, error) {
	if err := validateInputs(opHosking, g, hurst); err != nil {
		return nil, err
	}
	cfg := newSamplerConfig(opts...)
	if err := requireUniform(opHosking, g, cfg.uniformTol); err != nil {
		return nil, err
	}

	n := g.Len()
	gam := NoiseAutocovariance(n, hurst)
	reflect := make([]float64, n)
	sd := make([]float64, n)
	phi := make([]float64, n)
	prev := make([]float64, n)

	v := gam[0]
	sd[0] = math.Sqrt(v)
	for i := 1; i < n; i++ {
		acc := gam[i]
		for j := 1; j < i; j++ {
			acc -= phi[j-1] * gam[i-j]
		}
		k := acc / v
		copy(prev[:i-1], phi[:i-1])
		for j := 1; j < i; j++ {
			phi[j-1] = prev[j-1] - k*prev[i-j-1]
		}
		phi[i-1] = k
		v *= 1 - k*k
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: conditional variance v_%d=%g: %w", opHosking, i, v, lvfrac.ErrNumericalInstability)
		}
		reflect[i] = k
		sd[i] = math.Sqrt(v)
	}

	return &Hosking{hurst: hurst, n: n, step: g.Step(), reflect: reflect, sd: sd}, nil
}

// Sample draws one path. O(N²) time, O(N) scratch.
func (h *Hosking) Sample(rng *rand.Rand, dst []float64) ([]float64, error) {
	x := ensureLen(dst, h.n)
	phi := make([]float64, h.n)
	prev := make([]float64, h.n)

	x[0] = h.sd[0] * rng.NormFloat64()
	for i := 1; i < h.n; i++ {
		k := h.reflect[i]
		copy(prev[:i-1], phi[:i-1])
		for j := 1; j < i; j++ {
			phi[j-1] = prev[j-1] - k*prev[i-j-1]
		}
		phi[i-1] = k

		mean := 0.0
		for j := 1; j <= i; j++ {
			mean += phi[j-1] * x[i-j]
		}
		x[i] = mean + h.sd[i]*rng.NormFloat64()
	}
	scaleCumulative(x, h.step, h.hurst)

	return x, nil
}

// Len returns N.
func (h *Hosking) Len() int { return h.n }

// Hurst returns H.
func (h *Hosking) Hurst() float64 { return h.hurst }
