// Package fbm samples fractional Brownian motion (fBm) on a grid.
//
// 🚀 What is fBm?
//
//	A centered Gaussian process B_H with B_H(0) = 0 and covariance
//	  C(s,t) = ½(|s|^{2H} + |t|^{2H} − |s−t|^{2H}),  H ∈ (0,1).
//	H = ½ is Brownian motion; H > ½ gives smoother, positively correlated
//	increments; H < ½ rougher, anti-correlated ones.
//
// ✨ Strategies (all behind the Sampler interface):
//   - Cholesky - factor the N×N covariance once (O(N³), O(N²) memory),
//     then path = L·z per call (O(N²)). Works on any grid, warped included.
//   - Hosking - exact sequential conditioning of fractional Gaussian noise
//     via the Durbin–Levinson recursion. O(N) memory, O(N²) per path.
//   - DaviesHarte - circulant embedding + FFT. O(N) memory, O(N log N) per path.
//
// Hosking and Davies–Harte simulate stationary increments, which exist only on
// an equispaced lattice from the origin; they return ErrInvalidGrid otherwise.
// The choice changes cost, never the output distribution.
//
// ⚙️ Usage:
//
//	g, _ := grid.Uniform(1024, 1)
//	s, err := fbm.New(fbm.MethodHosking, g, 0.6)
//	rng := rand.New(rand.NewSource(42))
//	path, err := s.Sample(rng, nil)
//
// Concurrency: constructed samplers are read-only and safe to share; each
// goroutine must bring its own *rand.Rand and destination slice.
package fbm
