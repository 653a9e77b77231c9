// SPDX-License-Identifier: MIT

package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalibrate(t *testing.T) {
	ref := []float64{1, 2, 4}

	got := calibrate([]float64{0.5, 1, 2}, ref, 4)
	assert.True(t, got.Valid)
	assert.InDelta(t, 2, got.Factor, 1e-15)
	assert.InDeltaSlice(t, ref, got.Curve, 1e-15)
	assert.InDelta(t, 0, got.MaxDeviation, 1e-12)

	// A sign-changing weight can bring the running integral back to zero.
	zero := calibrate([]float64{0.5, 0.25, 0}, ref, 4)
	assert.False(t, zero.Valid)
	assert.Zero(t, zero.Factor)
	assert.Nil(t, zero.Curve)

	short := calibrate([]float64{0.5, 1, 2}, ref[:2], 4)
	assert.False(t, short.Valid, "reference length mismatch")
}
