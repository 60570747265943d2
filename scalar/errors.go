// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Callers match with errors.Is; parse errors are wrapped with the offending token.

package scalar

import "errors"

var (
	// ErrInvalidNumber is returned for empty, unparseable or non-finite input.
	ErrInvalidNumber = errors.New("scalar: invalid number")

	// ErrInvalidFraction is returned for a malformed "num/den" token or a zero denominator.
	ErrInvalidFraction = errors.New("scalar: invalid fraction")
)
