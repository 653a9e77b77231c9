// SPDX-License-Identifier: MIT

package fbm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

// TestFactorize_IndefiniteExhaustsAttempts feeds a matrix with eigenvalue −1;
// no small jitter can repair it.
func TestFactorize_IndefiniteExhaustsAttempts(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	_, _, attempts, err := factorize(cov, DefaultJitter, 3)
	require.ErrorIs(t, err, lvfrac.ErrNumericalInstability)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 1.0, cov.At(0, 0), "input must not be mutated")
}

func TestFactorize_ZeroTrace(t *testing.T) {
	_, _, _, err := factorize(mat.NewSymDense(3, nil), DefaultJitter, 2)
	assert.ErrorIs(t, err, lvfrac.ErrNumericalInstability)
}

func TestJitterAt_Schedule(t *testing.T) {
	assert.Equal(t, 0.0, jitterAt(0, 0))
	assert.Equal(t, DefaultJitter, jitterAt(0, 1))
	assert.InDelta(t, 1e-13, jitterAt(1e-15, 2), 1e-25)
}

// TestHosking_FirstReflection checks κ_1 = γ(1)/γ(0) = 2^{2H−1} − 1 and the
// matching conditional deviation √(1 − κ_1²).
func TestHosking_FirstReflection(t *testing.T) {
	g, err := grid.Uniform(6, 1)
	require.NoError(t, err)
	h, err := NewHosking(g, 0.7)
	require.NoError(t, err)
	k1 := math.Pow(2, 0.4) - 1
	assert.InDelta(t, 1, h.sd[0], 1e-15)
	assert.InDelta(t, k1, h.reflect[1], 1e-12)
	assert.InDelta(t, math.Sqrt(1-k1*k1), h.sd[1], 1e-12)
	for i := 2; i < len(h.sd); i++ {
		assert.LessOrEqual(t, h.sd[i], h.sd[i-1]+1e-15, "conditional variance must not grow")
	}
}

// TestDaviesHarte_AmplitudesNonNegative checks the embedding stays exact
// across the H range.
func TestDaviesHarte_AmplitudesNonNegative(t *testing.T) {
	g, err := grid.Uniform(100, 1)
	require.NoError(t, err)
	for _, hurst := range []float64{0.05, 0.3, 0.5, 0.8, 0.95} {
		d, err := NewDaviesHarte(g, hurst)
		require.NoError(t, err, "H=%g", hurst)
		require.Len(t, d.amp, 200)
		for k, a := range d.amp {
			require.False(t, math.IsNaN(a) || a < 0, "H=%g amp[%d]=%g", hurst, k, a)
		}
	}
}

func TestScaleCumulative(t *testing.T) {
	x := []float64{1, 1, 1, 1}
	scaleCumulative(x, 0.25, 0.5)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5, 2}, x, 1e-15)
}
