// SPDX-License-Identifier: MIT
// Package: sprout/pointfield
//
// errors.go — sentinel errors for the pointfield package.
//
// Callers branch with errors.Is; Build wraps the sentinels with method
// context through fieldErrorf.

package pointfield

import (
	"errors"
	"fmt"
)

// ErrBadResolution indicates fewer than one grid sample per axis.
var ErrBadResolution = errors.New("pointfield: resolution must be >= 1")

// ErrBadBounds indicates an empty, inverted or non-finite [min, max] range.
var ErrBadBounds = errors.New("pointfield: invalid bounds")

// ErrBadRadius indicates a non-positive acceptance radius.
var ErrBadRadius = errors.New("pointfield: radius must be > 0")

// ErrBadJitter indicates a negative jitter amplitude.
var ErrBadJitter = errors.New("pointfield: jitter must be >= 0")

// ErrNeedRandSource indicates jitter was requested without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("pointfield: rng is required")

// fieldErrorf returns "<method>: <message>: <sentinel>".
func fieldErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
