// SPDX-License-Identifier: MIT
// Package: lvfrac/fbm
//
// types.go: Sampler interface, Method enum and the strategy factory.

package fbm

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvfrac"
	"github.com/katalvlaran/lvfrac/grid"
)

// Sampler produces one fBm realization on a fixed grid per call.
//
// Sample writes N values into dst (allocating when len(dst) != N) and returns
// the slice holding the path. Draws come only from rng, so a fixed rng state
// yields a fixed path.
type Sampler interface {
	Sample(rng *rand.Rand, dst []float64) ([]float64, error)
	Len() int
	Hurst() float64
}

// Method selects a sampling strategy.
type Method int

const (
	// MethodCholesky factors the grid covariance (any grid).
	MethodCholesky Method = iota

	// MethodHosking runs the Durbin–Levinson recursion on fGn (uniform grids).
	MethodHosking

	// MethodDaviesHarte uses circulant embedding with FFT (uniform grids).
	MethodDaviesHarte
)

var methodNames = [...]string{
	MethodCholesky:    "cholesky",
	MethodHosking:     "hosking",
	MethodDaviesHarte: "daviesharte",
}

// String returns the lowercase method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a case-insensitive name ("cholesky", "hosking",
// "daviesharte" or "davies-harte") to a Method.
func ParseMethod(s string) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	for i, name := range methodNames {
		if key == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("fbm: unknown method %q: %w", s, lvfrac.ErrParameterDomain)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, fmt.Errorf("fbm: %v: %w", m, lvfrac.ErrParameterDomain)
	}

	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMethod.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// New builds the sampler for method on g with Hurst exponent hurst.
func New(method Method, g *grid.Grid, hurst float64, opts ...Option) (Sampler, error) {
	switch method {
	case MethodCholesky:
		return NewCholesky(g, hurst, opts...)
	case MethodHosking:
		return NewHosking(g, hurst, opts...)
	case MethodDaviesHarte:
		return NewDaviesHarte(g, hurst, opts...)
	default:
		return nil, fmt.Errorf("fbm: %v: %w", method, lvfrac.ErrParameterDomain)
	}
}

// ValidateHurst returns ErrParameterDomain unless 0 < H < 1.
func ValidateHurst(hurst float64) error {
	if !(hurst > 0 && hurst < 1) {
		return fmt.Errorf("fbm: H=%g outside (0,1): %w", hurst, lvfrac.ErrParameterDomain)
	}

	return nil
}

// HurstFromAlpha returns H = 1 − alpha after checking alpha ∈ (0,1).
func HurstFromAlpha(alpha float64) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, fmt.Errorf("fbm: alpha=%g outside (0,1): %w", alpha, lvfrac.ErrParameterDomain)
	}

	return 1 - alpha, nil
}

// validateInputs is the shared constructor guard.
func validateInputs(op string, g *grid.Grid, hurst float64) error {
	if g == nil {
		return fmt.Errorf("%s: nil grid: %w", op, lvfrac.ErrInvalidGrid)
	}
	if err := ValidateHurst(hurst); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// requireUniform guards the stationary-increment samplers.
func requireUniform(op string, g *grid.Grid, tol float64) error {
	if !g.IsUniform(tol) {
		return fmt.Errorf("%s: grid is not equispaced from the origin: %w", op, lvfrac.ErrInvalidGrid)
	}

	return nil
}

// ensureLen returns dst when it already has length n, else a fresh slice.
func ensureLen(dst []float64, n int) []float64 {
	if len(dst) == n {
		return dst
	}

	return make([]float64, n)
}

// scaleCumulative turns unit-spacing fGn x into fBm on the lattice
// t_i = (i+1)·step, in place: x_i ← step^H · Σ_{k≤i} x_k.
func scaleCumulative(x []float64, step, hurst float64) {
	scale := math.Pow(step, hurst)
	acc := 0.0
	for i, v := range x {
		acc += v
		x[i] = scale * acc
	}
}
