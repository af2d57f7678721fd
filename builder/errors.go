// SPDX-License-Identifier: MIT
// Package: pathfill/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.
// Option constructors (WithX) panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a random constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
