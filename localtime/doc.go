// Package localtime approximates the local time of a sampled path at a level
// by replacing the Dirac delta with a Gaussian kernel.
//
// 🚀 What it computes
//
//	For a path x_0..x_{N−1} on a grid, level ℓ and bandwidth ε > 0:
//	  density[i] = φ_ε(x_i − ℓ),   φ_ε(u) = exp(−u²/(2ε²)) / (ε·√(2π)).
//	Weighted by Δt_i and summed, this is the occupation-density proxy
//	  ∫ f(t)·δ(B_t − ℓ) dt ≈ Σ f(t_i)·φ_ε(x_i − ℓ)·Δt_i.
//
// ⚖️ Bandwidth trade-off
//
//	Smaller ε sharpens the kernel toward the true local time (less bias) but
//	raises Monte Carlo variance; larger ε smooths and biases the estimate low
//	where the marginal density is peaked. ε is therefore an explicit knob:
//	  - FixedBandwidth(ε) uses ε as is.
//	  - IncrementBandwidth(κ) sets ε = κ·max(Δt)^H, κ times the standard
//	    deviation of the largest path increment, so ε shrinks with the grid.
//
// 🔁 Antithetic pairing
//
//	fBm and its negation share one law, so ½(φ_ε(x−ℓ) + φ_ε(−x−ℓ)) has the
//	same mean as φ_ε(x−ℓ) at lower variance. At ℓ = 0 the kernel is even and
//	both halves coincide.
package localtime
