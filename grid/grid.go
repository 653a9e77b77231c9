// SPDX-License-Identifier: MIT
// Package: lvfrac/grid
//
// grid.go: Grid type and constructors.

package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfrac"
)

// MinPoints is the smallest meaningful grid: one interval needs two points.
const MinPoints = 2

// DefaultUniformTol is the relative tolerance used by samplers that require an
// equispaced grid (see IsUniform).
const DefaultUniformTol = 1e-9

// Operation tags for error wrapping.
const (
	opBuild      = "Build"
	opWarped     = "Warped"
	opFromPoints = "FromPoints"
)

// Grid is an immutable, strictly increasing time discretization over (0, T].
// It is safe to share across goroutines.
type Grid struct {
	t       []float64 // points, len N, strictly increasing, t[0] > 0
	dt      []float64 // forward differences, last one duplicated
	horizon float64   // T == t[N-1]
	warp    float64   // p used at construction; 0 for FromPoints grids
}

// Build returns the N-point grid t_i = T·((i+1)/N)^(1/p), i = 0..N-1.
// Without options p = 1 (uniform).
//
// Errors:
//   - ErrInvalidGrid if n < MinPoints, T is not finite and positive, or the
//     warp collapses neighboring points (extreme p underflows to equal values).
//
// Complexity: O(N).
func Build(n int, horizon float64, opts ...Option) (*Grid, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", opBuild, n, MinPoints, lvfrac.ErrInvalidGrid)
	}
	if !(horizon > 0) || math.IsInf(horizon, 0) {
		return nil, fmt.Errorf("%s: T=%g: %w", opBuild, horizon, lvfrac.ErrInvalidGrid)
	}
	cfg := newBuildConfig(opts...)

	t := make([]float64, n)
	inv := 1.0 / cfg.warp
	fn := float64(n)
	for i := 0; i < n; i++ {
		u := float64(i+1) / fn
		if cfg.warp == 1 {
			t[i] = horizon * u
		} else {
			t[i] = horizon * math.Pow(u, inv)
		}
	}
	// Pin the endpoint; Pow(1, x) is exact but T·u may round.
	t[n-1] = horizon

	g, err := newGrid(t, cfg.warp)
	if err != nil {
		return nil, fmt.Errorf("%s: p=%g: %w", opBuild, cfg.warp, err)
	}

	return g, nil
}

// Uniform is shorthand for Build(n, T).
func Uniform(n int, horizon float64) (*Grid, error) {
	return Build(n, horizon)
}

// Warped is Build(n, T, WithWarp(p)) with p validated as an error instead of a
// panic, for callers that take p from configuration.
func Warped(n int, horizon, p float64) (*Grid, error) {
	if !(p > 0) || math.IsInf(p, 0) {
		return nil, fmt.Errorf("%s: p=%g: %w", opWarped, p, lvfrac.ErrInvalidGrid)
	}

	return Build(n, horizon, WithWarp(p))
}

// FromPoints wraps caller-supplied points. The slice is copied.
// Points must be finite, strictly increasing, and start above zero.
func FromPoints(points []float64) (*Grid, error) {
	if len(points) < MinPoints {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", opFromPoints, len(points), MinPoints, lvfrac.ErrInvalidGrid)
	}
	t := make([]float64, len(points))
	copy(t, points)

	g, err := newGrid(t, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromPoints, err)
	}

	return g, nil
}

// newGrid validates t and precomputes spacings. Takes ownership of t.
func newGrid(t []float64, warp float64) (*Grid, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	n := len(t)
	dt := make([]float64, n)
	for i := 0; i < n-1; i++ {
		dt[i] = t[i+1] - t[i]
	}
	dt[n-1] = dt[n-2]

	return &Grid{t: t, dt: dt, horizon: t[n-1], warp: warp}, nil
}

// Validate reports ErrInvalidGrid unless t has at least MinPoints finite
// values, t[0] > 0, and t is strictly increasing.
// Complexity: O(N), no allocations.
func Validate(t []float64) error {
	if len(t) < MinPoints {
		return fmt.Errorf("len=%d: %w", len(t), lvfrac.ErrInvalidGrid)
	}
	if !(t[0] > 0) {
		return fmt.Errorf("t[0]=%g not positive: %w", t[0], lvfrac.ErrInvalidGrid)
	}
	for i, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("t[%d]=%g: %w", i, v, lvfrac.ErrInvalidGrid)
		}
		if i > 0 && !(v > t[i-1]) {
			return fmt.Errorf("t[%d]=%g ≤ t[%d]=%g: %w", i, v, i-1, t[i-1], lvfrac.ErrInvalidGrid)
		}
	}

	return nil
}

// Len returns N.
func (g *Grid) Len() int { return len(g.t) }

// At returns t_i. Panics on an out-of-range index, like a slice.
func (g *Grid) At(i int) float64 { return g.t[i] }

// Horizon returns T = t[N-1].
func (g *Grid) Horizon() float64 { return g.horizon }

// Warp returns the exponent p used at construction (1 for uniform grids,
// 0 for FromPoints grids).
func (g *Grid) Warp() float64 { return g.warp }

// Points returns a copy of the grid points.
func (g *Grid) Points() []float64 {
	out := make([]float64, len(g.t))
	copy(out, g.t)

	return out
}

// Spacings returns a copy of the forward differences Δt_i = t[i+1] − t[i],
// with the final interval duplicated for the last point.
func (g *Grid) Spacings() []float64 {
	out := make([]float64, len(g.dt))
	copy(out, g.dt)

	return out
}

// MaxSpacing returns max_i Δt_i.
func (g *Grid) MaxSpacing() float64 {
	m := g.dt[0]
	for _, d := range g.dt[1:] {
		if d > m {
			m = d
		}
	}

	return m
}

// IsUniform reports whether the grid is the equispaced lattice
// t_i = (i+1)·t_0 from the origin, within tol·T absolute error.
// Stationary-increment samplers (Hosking, Davies–Harte) require this.
func (g *Grid) IsUniform(tol float64) bool {
	step := g.t[0]
	lim := tol * g.horizon
	for i, v := range g.t {
		if math.Abs(v-float64(i+1)*step) > lim {
			return false
		}
	}

	return true
}

// Step returns t_0, the lattice step of a uniform grid.
func (g *Grid) Step() float64 { return g.t[0] }
