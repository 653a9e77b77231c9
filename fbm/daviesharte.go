// SPDX-License-Identifier: MIT
// Package: lvfrac/fbm
//
// daviesharte.go: circulant-embedding sampler (Davies–Harte).
//
// Purpose:
//   - Embed the N×N Toeplitz fGn covariance into a 2N×2N circulant whose
//     first row is c = (γ0, γ1, …, γ_{N−1}, γ_N, γ_{N−1}, …, γ1).
//   - Its eigenvalues λ = FFT(c) are real; for fGn they are non-negative for
//     every H ∈ (0,1), so the embedding is exact.
//   - Per path: build Hermitian-symmetric complex weights scaled by √λ, one
//     forward FFT, keep the real part of the first N outputs.
//
// Complexity: construction O(N log N); Sample O(N log N) time, O(N) memory.

package fbm

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

const opDaviesHarte = "DaviesHarte"

// DaviesHarte samples fBm on a uniform grid via circulant embedding.
type DaviesHarte struct {
	hurst float64
	n     int
	step  float64
	amp   []float64 // per-frequency amplitudes, len 2N
	ffts  sync.Pool // *fourier.CmplxFFT; transforms keep internal work buffers
}

// NewDaviesHarte computes the embedding eigenvalues for g.
//
// Errors:
//   - ErrInvalidGrid when g is not equispaced from the origin.
//   - ErrParameterDomain for H outside (0,1).
//   - ErrNumericalInstability if an eigenvalue is below −eigenTol·max(λ).
func NewDaviesHarte(g *grid.Grid, hurst float64, opts ...Option) (*DaviesHarte, error) {
	if err := validateInputs(opDaviesHarte, g, hurst); err != nil {
		return nil, err
	}
	cfg := newSamplerConfig(opts...)
	if err := requireUniform(opDaviesHarte, g, cfg.uniformTol); err != nil {
		return nil, err
	}

	n := g.Len()
	m := 2 * n
	gam := NoiseAutocovariance(n, hurst)
	row := make([]complex128, m)
	for k := 0; k <= n; k++ {
		row[k] = complex(gam[k], 0)
	}
	for k := 1; k < n; k++ {
		row[m-k] = complex(gam[k], 0)
	}
	lambda := fourier.NewCmplxFFT(m).Coefficients(nil, row)

	maxLambda := 0.0
	for _, l := range lambda {
		maxLambda = math.Max(maxLambda, real(l))
	}
	amp := make([]float64, m)
	fm := float64(m)
	for k, l := range lambda {
		lk := real(l)
		if lk < 0 {
			if lk < -cfg.eigenTol*maxLambda {
				return nil, fmt.Errorf("%s: eigenvalue λ_%d=%g: %w", opDaviesHarte, k, lk, lvfrac.ErrNumericalInstability)
			}
			lk = 0
		}
		switch {
		case k == 0 || k == n:
			amp[k] = math.Sqrt(lk / fm)
		default:
			amp[k] = math.Sqrt(lk / (2 * fm))
		}
	}

	dh := &DaviesHarte{hurst: hurst, n: n, step: g.Step(), amp: amp}
	dh.ffts.New = func() any { return fourier.NewCmplxFFT(m) }

	return dh, nil
}

// Sample draws one path. Safe for concurrent use with distinct rng values.
func (d *DaviesHarte) Sample(rng *rand.Rand, dst []float64) ([]float64, error) {
	n, m := d.n, 2*d.n
	w := make([]complex128, m)
	w[0] = complex(d.amp[0]*rng.NormFloat64(), 0)
	for k := 1; k < n; k++ {
		re := rng.NormFloat64()
		im := rng.NormFloat64()
		w[k] = complex(d.amp[k]*re, d.amp[k]*im)
		w[m-k] = cmplx.Conj(w[k])
	}
	w[n] = complex(d.amp[n]*rng.NormFloat64(), 0)

	fft := d.ffts.Get().(*fourier.CmplxFFT)
	z := fft.Coefficients(w, w)
	d.ffts.Put(fft)

	x := ensureLen(dst, n)
	for i := 0; i < n; i++ {
		x[i] = real(z[i])
	}
	scaleCumulative(x, d.step, d.hurst)

	return x, nil
}

// Len returns N.
func (d *DaviesHarte) Len() int { return d.n }

// Hurst returns H.
func (d *DaviesHarte) Hurst() float64 { return d.hurst }
