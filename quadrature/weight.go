// SPDX-License-Identifier: MIT
// Package: lvfrac/quadrature
//
// weight.go: deterministic weight functions.

package quadrature

import "math"

// Weight is a deterministic function of time.
type Weight interface {
	At(t float64) float64
}

// Affine is f(t) = A + B·t.
type Affine struct {
	A, B float64
}

// At evaluates A + B·t.
func (f Affine) At(t float64) float64 { return f.A + f.B*t }

// IsZero reports whether f vanishes identically.
func (f Affine) IsZero() bool { return f.A == 0 && f.B == 0 }

// IsFinite reports whether both coefficients are finite.
func (f Affine) IsFinite() bool {
	return !math.IsNaN(f.A) && !math.IsInf(f.A, 0) && !math.IsNaN(f.B) && !math.IsInf(f.B, 0)
}

// WeightFunc adapts a plain function to Weight.
type WeightFunc func(t float64) float64

// At calls fn(t).
func (fn WeightFunc) At(t float64) float64 { return fn(t) }
