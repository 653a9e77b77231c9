// SPDX-License-Identifier: MIT

package localtime_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
	"github.com/katalvlaran/lvfrac/localtime"
)

// TestDensity_MatchesNormalPDF cross-checks the kernel against gonum's normal
// density centered at the level.
func TestDensity_MatchesNormalPDF(t *testing.T) {
	path := []float64{-1.3, -0.2, 0, 0.04, 0.5, 2.7}
	for _, level := range []float64{0, 0.3, -1} {
		for _, eps := range []float64{0.05, 0.5, 3} {
			e, err := localtime.New(eps, localtime.WithLevel(level))
			require.NoError(t, err)
			assert.Equal(t, eps, e.Bandwidth())
			assert.Equal(t, level, e.Level())

			ref := distuv.Normal{Mu: level, Sigma: eps}
			got := e.Density(path, nil)
			require.Len(t, got, len(path))
			for i, x := range path {
				assert.InDelta(t, ref.Prob(x), got[i], 1e-12*(1+ref.Prob(x)), "eps=%g level=%g x=%g", eps, level, x)
				assert.GreaterOrEqual(t, got[i], 0.0)
			}
		}
	}
}

// TestAntithetic_LevelZeroEqualsPlain: the kernel is even, so both halves agree.
func TestAntithetic_LevelZeroEqualsPlain(t *testing.T) {
	e, err := localtime.New(0.1)
	require.NoError(t, err)
	path := []float64{-0.5, -0.01, 0.02, 0.3, 1.1}
	assert.InDeltaSlice(t, e.Density(path, nil), e.Antithetic(path, nil), 1e-15)
}

// TestAntithetic_SymmetricInPath: swapping a path for its negation leaves the
// paired curve unchanged at any level.
func TestAntithetic_SymmetricInPath(t *testing.T) {
	e, err := localtime.New(0.2, localtime.WithLevel(0.4))
	require.NoError(t, err)
	path := []float64{-0.5, -0.01, 0.02, 0.3, 1.1}
	neg := make([]float64, len(path))
	for i, v := range path {
		neg[i] = -v
	}
	assert.InDeltaSlice(t, e.Antithetic(path, nil), e.Antithetic(neg, nil), 1e-15)
	assert.NotEqual(t, e.Density(path, nil), e.Density(neg, nil))
}

// TestAntithetic_ReducesVariance on standard-normal draws at an off-center
// level, where pairing actually matters.
func TestAntithetic_ReducesVariance(t *testing.T) {
	const m = 20000
	e, err := localtime.New(0.3, localtime.WithLevel(0.6))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))
	x := make([]float64, m)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	plain := e.Density(x, nil)
	paired := e.Antithetic(x, nil)

	mp, vp := stat.MeanVariance(plain, nil)
	ma, va := stat.MeanVariance(paired, nil)
	assert.Less(t, va, vp)
	// Both estimate E φ_ε(X − ℓ) = N(ℓ; 0, 1 + ε²).
	want := distuv.Normal{Mu: 0, Sigma: math.Sqrt(1 + 0.09)}.Prob(0.6)
	assert.InDelta(t, want, mp, 0.01)
	assert.InDelta(t, want, ma, 0.01)
}

func TestDensity_ReusesDestination(t *testing.T) {
	e, err := localtime.New(1)
	require.NoError(t, err)
	path := []float64{0, 1, 2}
	out := e.Density(path, path)
	assert.Same(t, &path[0], &out[0])
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), out[0], 1e-15)
}

func TestDensity_PropagatesNaN(t *testing.T) {
	e, err := localtime.New(0.1)
	require.NoError(t, err)
	out := e.Density([]float64{0, math.NaN()}, nil)
	assert.True(t, math.IsNaN(out[1]))
	assert.False(t, math.IsNaN(out[0]))
}

func TestNew_RejectsBadBandwidth(t *testing.T) {
	for _, eps := range []float64{0, -0.1, math.NaN(), math.Inf(1), 1e-200} {
		_, err := localtime.New(eps)
		assert.ErrorIs(t, err, lvfrac.ErrParameterDomain, "eps=%g", eps)
	}
	assert.Panics(t, func() { localtime.WithLevel(math.NaN()) })
	assert.Panics(t, func() { localtime.WithLevel(math.Inf(-1)) })
}

func TestBandwidthRules(t *testing.T) {
	g, err := grid.Uniform(100, 1)
	require.NoError(t, err)

	eps, err := localtime.FixedBandwidth(0.05).Bandwidth(g, 0.6)
	require.NoError(t, err)
	assert.Equal(t, 0.05, eps)

	eps, err = localtime.IncrementBandwidth(2).Bandwidth(g, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, eps, 1e-12)

	// Warped grids use the widest spacing (the last one for p < 1).
	w, err := grid.Warped(100, 1, 0.5)
	require.NoError(t, err)
	eps, err = localtime.IncrementBandwidth(1).Bandwidth(w, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(w.MaxSpacing()), eps, 1e-12)
	assert.Greater(t, eps, 0.1)

	cases := []struct {
		name string
		rule localtime.Rule
		g    *grid.Grid
		h    float64
		want error
	}{
		{"fixed_zero", localtime.FixedBandwidth(0), g, 0.5, lvfrac.ErrParameterDomain},
		{"fixed_nan", localtime.FixedBandwidth(math.NaN()), g, 0.5, lvfrac.ErrParameterDomain},
		{"kappa_negative", localtime.IncrementBandwidth(-1), g, 0.5, lvfrac.ErrParameterDomain},
		{"nil_grid", localtime.IncrementBandwidth(1), nil, 0.5, lvfrac.ErrInvalidGrid},
		{"bad_hurst", localtime.IncrementBandwidth(1), g, 1, lvfrac.ErrParameterDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.rule.Bandwidth(tc.g, tc.h)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, "fixed(0.05)", localtime.FixedBandwidth(0.05).String())
	assert.Equal(t, "increment(κ=1.5)", localtime.IncrementBandwidth(1.5).String())
}
