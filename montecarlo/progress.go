// SPDX-License-Identifier: MIT
// Package: lvfrac/montecarlo
//
// progress.go: threshold-gated progress reporting.

package montecarlo

import (
	"sync"
	"sync/atomic"
)

// reporter counts finished units and forwards every step-th one to fn.
// A nil *reporter is valid and does nothing.
type reporter struct {
	fn      ProgressFunc
	units   int
	perUnit int
	step    int

	done atomic.Int64
	mu   sync.Mutex
	last int // guarded by mu
}

func newReporter(fn ProgressFunc, units, perUnit int) *reporter {
	if fn == nil {
		return nil
	}

	return &reporter{fn: fn, units: units, perUnit: perUnit, step: max(1, units/progressSteps)}
}

func (r *reporter) tick() {
	if r == nil {
		return
	}
	d := int(r.done.Add(1))
	if d%r.step != 0 && d != r.units {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if d <= r.last {
		return
	}
	r.last = d
	r.fn(d*r.perUnit, r.units*r.perUnit)
}
