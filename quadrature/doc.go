// Package quadrature integrates a deterministic weight against a density
// curve sampled on a (possibly non-uniform) grid.
//
// The rule is the left Riemann sum with local spacings
//
//	∫ f(t)·ρ(t) dt ≈ Σ_i f(t_i)·ρ_i·Δt_i,   Δt_i = t_{i+1} − t_i,
//
// the last spacing duplicated for the final point. Because f and the grid are
// fixed for a run, a Rule precomputes w_i = f(t_i)·Δt_i once and every
// integral is a dot product.
//
// Output modes: Integrate returns the scalar total, Cumulative the running
// integral at every grid point (for display).
//
// Rescale is a calibration step kept apart from the estimator: it multiplies
// a cumulative curve so that its endpoint matches a known reference value.
package quadrature
