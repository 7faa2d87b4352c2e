// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with "%s: ...: %w" (method name first).

package builder

import "errors"

// ErrTooFewPeople indicates that a size parameter is below the constructor's minimum.
var ErrTooFewPeople = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core insert that failed.
var ErrConstructFailed = errors.New("builder: construction failed")
