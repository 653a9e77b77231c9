// Package analytic holds the closed-form references the Monte Carlo
// estimate is checked against.
//
// For f(t) = a + b·t and α ∈ (0,1):
//
//   - RiemannLiouville: I^α f(t) = a·t^α/Γ(α+1) + b·t^{α+1}/Γ(α+2).
//   - ReflectedRiemannLiouville: I^α g(T) with g(s) = f(T−s), i.e.
//     (1/Γ(α))·(a·T^α/α + b·T^{α+1}/(α+1)).
//   - ExpectedLocalTime: E ∫_0^T f(t)·δ(B^H_t) dt
//     = (1/√(2π))·(a·T^{1−H}/(1−H) + b·T^{2−H}/(2−H)),
//     which equals Γ(α)/√(2π) · ReflectedRiemannLiouville with α = 1 − H.
//     This is the value the unscaled kernel estimator converges to.
//   - SmoothedExpectation: the exact mean of the kernel estimator on a
//     finite grid with bandwidth ε, Σ f(t_i)·N(ℓ; 0, t_i^{2H}+ε²)·Δt_i.
//     The gap between it and ExpectedLocalTime is discretization and
//     kernel bias; the gap between it and a Monte Carlo run is noise.
//
// All functions are pure.
package analytic
