// Package grid builds the time discretizations every other lvfrac package
// consumes.
//
// A Grid is an immutable, strictly increasing sequence t[0..N-1] over (0, T]
// with t[N-1] = T and t[0] > 0, so downstream kernels may divide by t safely.
//
// Two families are provided:
//
//   - Uniform: t_i = T·(i+1)/N, equispaced from the origin.
//   - Warped:  t_i = T·((i+1)/N)^(1/p), a monotone power warp that concentrates
//     points near 0 when p < 1 (the density estimator needs resolution there,
//     because the fBm variance t^(2H) is smallest close to the origin).
//
// Uniform is exactly the p = 1 case of Warped. Both start from the first
// non-zero warped index, which is how the origin is kept off the grid.
//
// Usage:
//
//	g, err := grid.Build(512, 1.0, grid.WithWarp(0.4))
//	if err != nil {
//		// errors.Is(err, lvfrac.ErrInvalidGrid)
//	}
//	dt := g.Spacings() // forward differences, last one duplicated
//
// Complexity: O(N) time and memory for construction and Spacings.
package grid
