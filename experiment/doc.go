// Package experiment wires the grid, sampler, kernel estimator, quadrature,
// Monte Carlo aggregator and analytical references into one run.
//
// A run is described by Params (all run-scoped; nothing global) and returns a
// Result holding three kinds of numbers kept deliberately apart:
//
//   - the raw estimate: NumericalAverage, its StdErr and the averaged
//     Density / Cumulative curves, straight from Monte Carlo;
//   - references: Analytical (the expected local time the raw estimate
//     converges to), Smoothed (the exact mean at this grid and bandwidth) and
//     RiemannLiouville (the fractional integral I^α f);
//   - Calibrated: the cumulative curve rescaled so its endpoint equals
//     I^α f(T). This is a normalization, not an estimate, and is never
//     folded into the raw numbers.
package experiment
