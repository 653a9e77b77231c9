// SPDX-License-Identifier: MIT
// Package: lvfrac/quadrature
//
// errors.go: package-local sentinel.

package quadrature

import "errors"

// ErrLengthMismatch is returned when a curve does not match the rule length.
var ErrLengthMismatch = errors.New("quadrature: length mismatch")
