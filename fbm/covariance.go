// SPDX-License-Identifier: MIT
// Package: lvfrac/fbm
//
// covariance.go: closed-form fBm and fGn covariance kernels.

package fbm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvfrac/grid"
)

// Kernel returns the fBm covariance C(s,t) = ½(|s|^{2H} + |t|^{2H} − |s−t|^{2H}).
func Kernel(s, t, hurst float64) float64 {
	h2 := 2 * hurst

	return 0.5 * (math.Pow(math.Abs(s), h2) + math.Pow(math.Abs(t), h2) - math.Pow(math.Abs(s-t), h2))
}

// Covariance materializes the N×N fBm covariance on g.
// Diagonal powers are computed once and reused for every row.
// Complexity: O(N²) time and memory.
func Covariance(g *grid.Grid, hurst float64) *mat.SymDense {
	n := g.Len()
	h2 := 2 * hurst
	pw := make([]float64, n)
	for i := 0; i < n; i++ {
		pw[i] = math.Pow(g.At(i), h2)
	}

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		ti := g.At(i)
		cov.SetSym(i, i, pw[i])
		for j := i + 1; j < n; j++ {
			cov.SetSym(i, j, 0.5*(pw[i]+pw[j]-math.Pow(g.At(j)-ti, h2)))
		}
	}

	return cov
}

// NoiseAutocovariance returns γ(k), k = 0..n, of unit-spacing fractional
// Gaussian noise: γ(k) = ½(|k+1|^{2H} − 2|k|^{2H} + |k−1|^{2H}).
func NoiseAutocovariance(n int, hurst float64) []float64 {
	h2 := 2 * hurst
	gam := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		fk := float64(k)
		gam[k] = 0.5 * (math.Pow(fk+1, h2) - 2*math.Pow(fk, h2) + math.Pow(math.Abs(fk-1), h2))
	}

	return gam
}
