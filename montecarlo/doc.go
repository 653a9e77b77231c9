// Package montecarlo averages kernel local-time curves over many fBm paths.
//
// 🚀 What it does
//
//	For each realization: sample a path, turn it into a density curve with a
//	localtime.Estimator, integrate it with a quadrature.Rule. Curves are
//	summed element-wise and integrals are kept for the sample variance; the
//	run finalizes by dividing by the number of completed units.
//
// ✨ Features
//   - Antithetic pairing: one draw yields the curve of x and of −x; a pair
//     is one unit and counts as two realizations.
//   - Workers: units are split statically across goroutines, each with its
//     own RNG stream derived from the seed and its own partial sums. Partials
//     are reduced in worker order, so a fixed (seed, Workers) is
//     bit-reproducible.
//   - Progress: a ProgressFunc is called about every 5% of units.
//   - Early stop: context cancellation or Config.MaxDuration finalizes with
//     what has been completed (Estimate.Truncated).
//   - Non-finite realizations are skipped and counted, or abort the run,
//     depending on Config.NonFinite.
//
// ⚙️ Usage:
//
//	agg, err := montecarlo.New(sampler, estimator, rule, montecarlo.Config{Paths: 1000, Seed: 42})
//	est, err := agg.Run(ctx)
//	fmt.Println(est.Integral, est.StdErr)
package montecarlo
