package probability

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("probability: invalid option supplied")

// Options configures Search.
type Options struct {
	// ReturnPath records predecessors so Result.Path can be rebuilt.
	ReturnPath bool

	// MinProbability prunes relaxations whose candidate probability falls
	// below it. Zero (the default) prunes nothing.
	MinProbability float64

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no path recording and no pruning.
func DefaultOptions() Options {
	return Options{
		ReturnPath:     false,
		MinProbability: 0,
	}
}

// WithReturnPath enables reconstruction of the best path in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMinProbability skips any candidate path whose probability is below p.
// Targets reachable only below p report probability 0.
// p must lie in [0, 1]; otherwise Search fails with ErrOptionViolation.
func WithMinProbability(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			o.err = fmt.Errorf("%w: MinProbability %v not in [0,1]", ErrOptionViolation, p)
			return
		}
		o.MinProbability = p
	}
}

// Result is the outcome of Search.
type Result struct {
	// Probability is the maximum product of weights over any path from
	// start to end, 1 when start == end, 0 when end is unreachable.
	Probability float64

	// Path lists vertex indices from start to end along a best path.
	// Set only with WithReturnPath and only when end is reachable.
	Path []int

	// Expanded counts the vertices finalized before the search stopped.
	Expanded int
}
