// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvfrac/experiment"
)

// summary is the scalar part of a run, printed or encoded as JSON.
type summary struct {
	Method                string  `json:"method"`
	Hurst                 float64 `json:"hurst"`
	Bandwidth             float64 `json:"bandwidth"`
	NumericalAverage      float64 `json:"numerical_average"`
	StdErr                float64 `json:"std_err"`
	Analytical            float64 `json:"analytical"`
	RelativeError         float64 `json:"relative_error_pct"`
	Smoothed              float64 `json:"smoothed"`
	SmoothedRelativeError float64 `json:"smoothed_relative_error_pct"`
	RiemannLiouville      float64 `json:"riemann_liouville"`
	CalibrationValid      bool    `json:"calibration_valid"`
	CalibrationFactor     float64 `json:"calibration_factor"`
	CalibrationDeviation  float64 `json:"calibration_max_deviation_pct"`
	Count                 int     `json:"count"`
	Discarded             int     `json:"discarded"`
	Truncated             bool    `json:"truncated"`
	ElapsedSeconds        float64 `json:"elapsed_seconds"`
}

// curves is the document handed to an external plotter.
type curves struct {
	Summary               summary     `json:"summary"`
	Grid                  []float64   `json:"grid"`
	Density               []float64   `json:"density"`
	Cumulative            []float64   `json:"cumulative"`
	Calibrated            []float64   `json:"calibrated"`
	RiemannLiouvilleCurve []float64   `json:"riemann_liouville_curve"`
	Paths                 [][]float64 `json:"paths"`
}

func newSummary(r *experiment.Result) summary {
	return summary{
		Method:                r.Params.Method.String(),
		Hurst:                 r.Hurst,
		Bandwidth:             r.Bandwidth,
		NumericalAverage:      r.NumericalAverage,
		StdErr:                r.StdErr,
		Analytical:            r.Analytical,
		RelativeError:         r.RelativeError,
		Smoothed:              r.Smoothed,
		SmoothedRelativeError: r.SmoothedRelativeError,
		RiemannLiouville:      r.RiemannLiouville,
		CalibrationValid:      r.Calibrated.Valid,
		CalibrationFactor:     r.Calibrated.Factor,
		CalibrationDeviation:  r.Calibrated.MaxDeviation,
		Count:                 r.Count,
		Discarded:             r.Discarded,
		Truncated:             r.Truncated,
		ElapsedSeconds:        r.Elapsed.Seconds(),
	}
}

// printSummary writes the three headline scalars and the supporting ones.
func printSummary(w io.Writer, s summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	_, err := fmt.Fprintf(w,
		"Numerical average:  %.6f (± %.6f)\n"+
			"Analytical value:   %.6f\n"+
			"Relative error:     %.2f%%\n"+
			"Smoothed reference: %.6f (%.2f%%)\n"+
			"Riemann-Liouville:  %.6f (calibration ×%.4f, max dev %.2f%%)\n"+
			"Realizations:       %d (discarded %d, truncated %t)\n",
		s.NumericalAverage, s.StdErr,
		s.Analytical,
		s.RelativeError,
		s.Smoothed, s.SmoothedRelativeError,
		s.RiemannLiouville, s.CalibrationFactor, s.CalibrationDeviation,
		s.Count, s.Discarded, s.Truncated)

	return err
}

// writeCurves stores the presentation document at path.
func writeCurves(path string, r *experiment.Result) error {
	doc := curves{
		Summary:               newSummary(r),
		Grid:                  r.Grid,
		Density:               r.Density,
		Cumulative:            r.Cumulative,
		Calibrated:            r.Calibrated.Curve,
		RiemannLiouvilleCurve: r.RiemannLiouvilleCurve,
		Paths:                 r.Paths,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode curves: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write curves: %w", err)
	}

	return nil
}
