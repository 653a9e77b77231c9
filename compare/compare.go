// SPDX-License-Identifier: MIT

// Package compare reports how far an estimate is from a reference.
package compare

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfrac"
)

// RelativeError returns |estimate − reference| / |reference| · 100.
// ErrDegenerateReference when reference is exactly zero; ErrParameterDomain
// when either value is non-finite.
func RelativeError(estimate, reference float64) (float64, error) {
	if !finite(estimate) || !finite(reference) {
		return 0, fmt.Errorf("compare.RelativeError: estimate=%g reference=%g: %w",
			estimate, reference, lvfrac.ErrParameterDomain)
	}
	if reference == 0 {
		return 0, fmt.Errorf("compare.RelativeError: %w", lvfrac.ErrDegenerateReference)
	}

	return math.Abs(estimate-reference) / math.Abs(reference) * 100, nil
}

// MaxRelativeDeviation returns max_i RelativeError(curve[i], reference[i]),
// skipping indices where the reference is zero. ErrDegenerateReference if
// every reference entry is zero.
func MaxRelativeDeviation(curve, reference []float64) (float64, error) {
	if len(curve) != len(reference) || len(curve) == 0 {
		return 0, fmt.Errorf("compare.MaxRelativeDeviation: lengths %d and %d: %w",
			len(curve), len(reference), lvfrac.ErrParameterDomain)
	}
	worst, seen := 0.0, false
	for i := range curve {
		if reference[i] == 0 {
			continue
		}
		e, err := RelativeError(curve[i], reference[i])
		if err != nil {
			return 0, fmt.Errorf("compare.MaxRelativeDeviation: index %d: %w", i, err)
		}
		worst = math.Max(worst, e)
		seen = true
	}
	if !seen {
		return 0, fmt.Errorf("compare.MaxRelativeDeviation: %w", lvfrac.ErrDegenerateReference)
	}

	return worst, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
