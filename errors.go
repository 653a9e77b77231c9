// SPDX-License-Identifier: MIT
// Package lvfrac: sentinel error taxonomy shared across all subpackages.
//
// Every message is prefixed with "lvfrac: ..." to keep logs greppable.
// Subpackages attach context with fmt.Errorf("<Op>: %w", ErrX); callers still
// branch with errors.Is. None of these conditions is retried automatically:
// the caller decides whether to adjust parameters and rerun.

package lvfrac

import "errors"

var (
	// ErrInvalidGrid is returned for a bad time discretization:
	// N < 2, T ≤ 0 or non-finite, warp exponent p ≤ 0, or a grid that is not
	// strictly increasing over (0, T]. Samplers that need an equispaced grid
	// also return it when handed a warped one.
	ErrInvalidGrid = errors.New("lvfrac: invalid grid")

	// ErrNumericalInstability signals that a numeric kernel could not produce a
	// finite, well-posed result: the covariance stayed non positive-definite
	// after the bounded jitter retries, a circulant embedding produced negative
	// eigenvalues, or realizations turned non-finite under the abort policy.
	ErrNumericalInstability = errors.New("lvfrac: numerical instability")

	// ErrDegenerateReference is returned when a relative error is requested
	// against a reference that is exactly zero (e.g. a = b = 0).
	ErrDegenerateReference = errors.New("lvfrac: degenerate reference")

	// ErrParameterDomain is returned for parameters outside their domain:
	// H or alpha outside (0,1), bandwidth ≤ 0, realization count ≤ 0, etc.
	ErrParameterDomain = errors.New("lvfrac: parameter out of domain")
)
