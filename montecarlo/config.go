// SPDX-License-Identifier: MIT
// Package: lvfrac/montecarlo
//
// config.go: run configuration, policies and results.

package montecarlo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvfrac"
)

// ErrNoRealizations is returned when a run stops before any unit completes.
var ErrNoRealizations = errors.New("montecarlo: no completed realizations")

// DefaultRetain is the number of paths kept for presentation by callers that
// do not choose one.
const DefaultRetain = 3

// progressSteps is the number of progress reports per run (every 5%).
const progressSteps = 20

// ProgressFunc receives the number of completed realizations and the total.
// Calls are serialized and done never decreases.
type ProgressFunc func(done, total int)

// NonFinitePolicy decides what happens to a realization whose curve or
// integral is NaN or ±Inf.
type NonFinitePolicy int

const (
	// SkipNonFinite excludes the realization and counts it in Estimate.Discarded.
	SkipNonFinite NonFinitePolicy = iota

	// AbortOnNonFinite stops the run with ErrNumericalInstability.
	AbortOnNonFinite
)

// String returns "skip" or "abort".
func (p NonFinitePolicy) String() string {
	switch p {
	case SkipNonFinite:
		return "skip"
	case AbortOnNonFinite:
		return "abort"
	default:
		return fmt.Sprintf("NonFinitePolicy(%d)", int(p))
	}
}

// ParseNonFinitePolicy maps "skip" or "abort" (case-insensitive).
func ParseNonFinitePolicy(s string) (NonFinitePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "":
		return SkipNonFinite, nil
	case "abort":
		return AbortOnNonFinite, nil
	default:
		return 0, fmt.Errorf("montecarlo: unknown non-finite policy %q: %w", s, lvfrac.ErrParameterDomain)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p NonFinitePolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseNonFinitePolicy.
func (p *NonFinitePolicy) UnmarshalText(text []byte) error {
	v, err := ParseNonFinitePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Config is the run-scoped state: nothing here is global.
type Config struct {
	Paths       int             // realization count M ≥ 1 (even with Antithetic)
	Antithetic  bool            // pair each draw with its negation
	Workers     int             // goroutines; ≤ 0 means 1, capped at the unit count
	Seed        int64           // 0 selects a fixed default
	Retain      int             // first sampled paths copied into Estimate.Paths
	MaxDuration time.Duration   // wall-clock budget; 0 disables
	NonFinite   NonFinitePolicy // default SkipNonFinite
	Progress    ProgressFunc    // optional
}

// Validate checks the configuration against its documented domain.
func (c Config) Validate() error {
	switch {
	case c.Paths <= 0:
		return fmt.Errorf("montecarlo: Paths=%d: %w", c.Paths, lvfrac.ErrParameterDomain)
	case c.Antithetic && c.Paths%2 != 0:
		return fmt.Errorf("montecarlo: antithetic pairing needs even Paths, got %d: %w", c.Paths, lvfrac.ErrParameterDomain)
	case c.Retain < 0:
		return fmt.Errorf("montecarlo: Retain=%d: %w", c.Retain, lvfrac.ErrParameterDomain)
	case c.MaxDuration < 0:
		return fmt.Errorf("montecarlo: MaxDuration=%v: %w", c.MaxDuration, lvfrac.ErrParameterDomain)
	case c.NonFinite != SkipNonFinite && c.NonFinite != AbortOnNonFinite:
		return fmt.Errorf("montecarlo: %v: %w", c.NonFinite, lvfrac.ErrParameterDomain)
	}

	return nil
}

// Estimate is the finalized, unscaled output of a run.
type Estimate struct {
	Density   []float64     // mean density curve on the grid
	Integral  float64       // mean weighted integral; equals the rule applied to Density
	Variance  float64       // sample variance of per-unit integrals (0 with one unit)
	StdErr    float64       // √(Variance / units)
	Count     int           // realizations that entered the average
	Discarded int           // non-finite realizations skipped
	Truncated bool          // stopped early by cancellation or MaxDuration
	Paths     [][]float64   // retained sample paths, in draw order
	Elapsed   time.Duration // wall-clock time of Run
}
