// SPDX-License-Identifier: MIT

package fbm_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/fbm"
	"github.com/katalvlaran/lvfrac/grid"
)

var allMethods = []fbm.Method{fbm.MethodCholesky, fbm.MethodHosking, fbm.MethodDaviesHarte}

// drawColumns samples m paths and returns them column-wise: cols[i][k] is
// the value at grid index i on path k.
func drawColumns(t testing.TB, s fbm.Sampler, m int, seed int64) [][]float64 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	cols := make([][]float64, s.Len())
	for i := range cols {
		cols[i] = make([]float64, m)
	}
	buf := make([]float64, s.Len())
	for k := 0; k < m; k++ {
		path, err := s.Sample(rng, buf)
		require.NoError(t, err)
		for i, v := range path {
			cols[i][k] = v
		}
	}

	return cols
}

// TestSampler_EmpiricalCovarianceConverges compares sample covariances at a
// few grid pairs against the closed-form kernel for every method.
func TestSampler_EmpiricalCovarianceConverges(t *testing.T) {
	const (
		n   = 16
		m   = 20000
		tol = 0.05 // relative
	)
	g, err := grid.Uniform(n, 1)
	require.NoError(t, err)
	pairs := [][2]int{{n - 1, n - 1}, {n - 2, n - 1}, {n/2 - 1, n/2 - 1}, {0, n - 1}}

	for _, hurst := range []float64{0.3, 0.7} {
		for _, method := range allMethods {
			t.Run(fmt.Sprintf("%s/H=%g", method, hurst), func(t *testing.T) {
				s, err := fbm.New(method, g, hurst)
				require.NoError(t, err)
				cols := drawColumns(t, s, m, 7)
				for _, p := range pairs {
					want := fbm.Kernel(g.At(p[0]), g.At(p[1]), hurst)
					got := stat.Covariance(cols[p[0]], cols[p[1]], nil)
					assert.InEpsilon(t, want, got, tol, "H=%g pair %v", hurst, p)
				}
				mean := stat.Mean(cols[n-1], nil)
				assert.InDelta(t, 0, mean, 0.05, "H=%g terminal mean", hurst)
			})
		}
	}
}

// TestCholesky_WarpedGridVariance checks the marginal variance t^{2H} on a
// grid that only the Cholesky strategy accepts.
func TestCholesky_WarpedGridVariance(t *testing.T) {
	const hurst = 0.6
	g, err := grid.Warped(24, 2, 0.5)
	require.NoError(t, err)
	s, err := fbm.NewCholesky(g, hurst)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Attempts(), 1)
	assert.GreaterOrEqual(t, s.Jitter(), 0.0)

	cols := drawColumns(t, s, 10000, 11)
	for _, i := range []int{5, 12, 23} {
		want := math.Pow(g.At(i), 2*hurst)
		got := stat.Variance(cols[i], nil)
		assert.InDelta(t, 1, got/want, 0.08, "relative variance at t=%g", g.At(i))
	}
}

// TestCholesky_AggressiveWarpFactors exercises the jitter escalation on a grid
// with many near-duplicate points close to the origin.
func TestCholesky_AggressiveWarpFactors(t *testing.T) {
	g, err := grid.Warped(256, 1, 0.2)
	require.NoError(t, err)
	s, err := fbm.NewCholesky(g, 0.6)
	require.NoError(t, err)

	path, err := s.Sample(rand.New(rand.NewSource(3)), nil)
	require.NoError(t, err)
	for i, v := range path {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite at %d", i)
	}
	f := s.Factor()
	r, c := f.Dims()
	assert.Equal(t, 256, r)
	assert.Equal(t, 256, c)
}

// TestSampler_Deterministic locks identical paths for identical rng state.
func TestSampler_Deterministic(t *testing.T) {
	g, err := grid.Uniform(64, 1)
	require.NoError(t, err)
	for _, method := range allMethods {
		t.Run(method.String(), func(t *testing.T) {
			s, err := fbm.New(method, g, 0.45)
			require.NoError(t, err)
			a, err := s.Sample(rand.New(rand.NewSource(99)), nil)
			require.NoError(t, err)
			b, err := s.Sample(rand.New(rand.NewSource(99)), make([]float64, 64))
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.Equal(t, 64, s.Len())
			assert.Equal(t, 0.45, s.Hurst())
		})
	}
}

// TestSampler_ReusesDestination verifies a correctly sized dst is filled in place.
func TestSampler_ReusesDestination(t *testing.T) {
	g, err := grid.Uniform(8, 1)
	require.NoError(t, err)
	s, err := fbm.NewHosking(g, 0.5)
	require.NoError(t, err)
	dst := make([]float64, 8)
	out, err := s.Sample(rand.New(rand.NewSource(1)), dst)
	require.NoError(t, err)
	assert.Same(t, &dst[0], &out[0])
}

// TestStationarySamplers_RejectWarpedGrid ensures Hosking and Davies–Harte
// refuse grids without stationary increments.
func TestStationarySamplers_RejectWarpedGrid(t *testing.T) {
	g, err := grid.Warped(32, 1, 0.5)
	require.NoError(t, err)
	for _, method := range []fbm.Method{fbm.MethodHosking, fbm.MethodDaviesHarte} {
		_, err := fbm.New(method, g, 0.6)
		assert.ErrorIs(t, err, lvfrac.ErrInvalidGrid, method.String())
	}
	_, err = fbm.New(fbm.MethodCholesky, g, 0.6)
	assert.NoError(t, err)
}

// TestNew_InvalidInputs covers the H domain, nil grids and unknown methods.
func TestNew_InvalidInputs(t *testing.T) {
	g, err := grid.Uniform(8, 1)
	require.NoError(t, err)
	for _, h := range []float64{0, 1, -0.2, 1.5, math.NaN()} {
		for _, method := range allMethods {
			_, err := fbm.New(method, g, h)
			if !errors.Is(err, lvfrac.ErrParameterDomain) {
				t.Fatalf("%v H=%g: want ErrParameterDomain, got %v", method, h, err)
			}
		}
	}
	for _, method := range allMethods {
		_, err := fbm.New(method, nil, 0.5)
		assert.ErrorIs(t, err, lvfrac.ErrInvalidGrid)
	}
	_, err = fbm.New(fbm.Method(42), g, 0.5)
	assert.ErrorIs(t, err, lvfrac.ErrParameterDomain)
	assert.Equal(t, "Method(42)", fbm.Method(42).String())
}

func TestHurstFromAlpha(t *testing.T) {
	h, err := fbm.HurstFromAlpha(0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, h, 1e-15)
	for _, a := range []float64{0, 1, -1, math.NaN()} {
		_, err := fbm.HurstFromAlpha(a)
		assert.ErrorIs(t, err, lvfrac.ErrParameterDomain)
	}
}

func TestParseMethod(t *testing.T) {
	cases := map[string]fbm.Method{
		"cholesky":     fbm.MethodCholesky,
		"Hosking":      fbm.MethodHosking,
		"daviesharte":  fbm.MethodDaviesHarte,
		"Davies-Harte": fbm.MethodDaviesHarte,
		" HOSKING ":    fbm.MethodHosking,
	}
	for in, want := range cases {
		got, err := fbm.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want, mustParse(t, want.String()))
	}
	_, err := fbm.ParseMethod("wavelet")
	assert.ErrorIs(t, err, lvfrac.ErrParameterDomain)
}

func mustParse(t *testing.T, s string) fbm.Method {
	t.Helper()
	m, err := fbm.ParseMethod(s)
	require.NoError(t, err)

	return m
}

// TestKernel_Identities pins C(t,t) = t^{2H}, symmetry, and the Brownian case.
func TestKernel_Identities(t *testing.T) {
	assert.InDelta(t, math.Pow(2, 1.2), fbm.Kernel(2, 2, 0.6), 1e-12)
	assert.InDelta(t, fbm.Kernel(0.3, 0.9, 0.2), fbm.Kernel(0.9, 0.3, 0.2), 1e-15)
	assert.InDelta(t, 0.3, fbm.Kernel(0.3, 0.9, 0.5), 1e-12)

	gam := fbm.NoiseAutocovariance(4, 0.5)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 0, 0}, gam, 1e-12)
}

// TestCovariance_MatchesKernel checks the materialized matrix entrywise.
func TestCovariance_MatchesKernel(t *testing.T) {
	g, err := grid.Warped(10, 1.5, 0.7)
	require.NoError(t, err)
	cov := fbm.Covariance(g, 0.35)
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < g.Len(); j++ {
			require.InDelta(t, fbm.Kernel(g.At(i), g.At(j), 0.35), cov.At(i, j), 1e-12)
		}
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { fbm.WithJitter(-1) })
	assert.Panics(t, func() { fbm.WithJitter(math.Inf(1)) })
	assert.Panics(t, func() { fbm.WithMaxAttempts(0) })
	assert.Panics(t, func() { fbm.WithUniformTol(0) })
	assert.Panics(t, func() { fbm.WithEigenTol(math.NaN()) })
	assert.NotPanics(t, func() { fbm.WithJitter(0) })
}

// TestCholesky_ZeroJitterFactorsRawMatrix verifies the raw covariance of a
// small uniform grid factors without regularization.
func TestCholesky_ZeroJitterFactorsRawMatrix(t *testing.T) {
	g, err := grid.Uniform(8, 1)
	require.NoError(t, err)
	s, err := fbm.NewCholesky(g, 0.5, fbm.WithJitter(0))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Attempts())
	assert.Equal(t, 0.0, s.Jitter())
	// Brownian factor on a uniform lattice: L_ij = √step for j ≤ i.
	f := s.Factor()
	assert.InDelta(t, math.Sqrt(0.125), f.At(7, 0), 1e-12)
	assert.InDelta(t, math.Sqrt(0.125), f.At(7, 7), 1e-12)
}

func BenchmarkSample(b *testing.B) {
	g, err := grid.Uniform(512, 1)
	require.NoError(b, err)
	for _, method := range allMethods {
		s, err := fbm.New(method, g, 0.6)
		require.NoError(b, err)
		b.Run(method.String(), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			dst := make([]float64, g.Len())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.Sample(rng, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestMethod_TextRoundTrip(t *testing.T) {
	for _, m := range allMethods {
		text, err := m.MarshalText()
		require.NoError(t, err)
		var back fbm.Method
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}
	var m fbm.Method
	assert.ErrorIs(t, m.UnmarshalText([]byte("fft")), lvfrac.ErrParameterDomain)
	_, err := fbm.Method(-1).MarshalText()
	assert.ErrorIs(t, err, lvfrac.ErrParameterDomain)
}
