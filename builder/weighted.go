// SPDX-License-Identifier: MIT
// Package: pathfill/builder
//
// weighted.go — probability-weighted graph constructors.
//
// Every constructor draws one weight per edge, in edge order, so a fixed
// seed reproduces the same weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfill/weighted"
)

const (
	methodPath            = "Path"
	methodCycle           = "Cycle"
	methodComplete        = "Complete"
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
)

// Path returns the chain 0–1–…–(n-1). Requires n ≥ 1.
func Path(n int, opts ...BuilderOption) (*weighted.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodPath, n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	edges := make([]weighted.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, cfg.edge(i, i+1))
	}

	return build(methodPath, n, edges)
}

// Cycle returns the ring 0–1–…–(n-1)–0. Requires n ≥ 3.
func Cycle(n int, opts ...BuilderOption) (*weighted.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	edges := make([]weighted.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, cfg.edge(i, (i+1)%n))
	}

	return build(methodCycle, n, edges)
}

// Complete returns K_n with one edge per unordered pair. Requires n ≥ 1.
func Complete(n int, opts ...BuilderOption) (*weighted.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	edges := make([]weighted.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, cfg.edge(i, j))
		}
	}

	return build(methodComplete, n, edges)
}

// RandomSparse includes each pair {i,j}, i<j, independently with probability p.
// Trials run in (i asc, j asc) order. Requires n ≥ 1, p ∈ [0,1] and an RNG.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*weighted.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewVertices)
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}
	var edges []weighted.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, cfg.edge(i, j))
			}
		}
	}

	return build(methodRandomSparse, n, edges)
}

// RandomConnected returns a Path over n vertices plus extra edges with
// uniformly drawn endpoints. Requires n ≥ 1, extra ≥ 0 and an RNG.
func RandomConnected(n, extra int, opts ...BuilderOption) (*weighted.Graph, error) {
	if n < 1 || extra < 0 {
		return nil, fmt.Errorf("%s: n=%d extra=%d: %w", methodRandomConnected, n, extra, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
	}
	edges := make([]weighted.Edge, 0, n-1+extra)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, cfg.edge(i, i+1))
	}
	for k := 0; k < extra; k++ {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		edges = append(edges, cfg.edge(u, v))
	}

	return build(methodRandomConnected, n, edges)
}

// edge draws the next weight for {u,v}.
func (c builderConfig) edge(u, v int) weighted.Edge {
	return weighted.Edge{From: u, To: v, Weight: c.weightFn(c.rng)}
}

// build hands the edges to weighted.New, tagging failures with the method.
func build(method string, n int, edges []weighted.Edge) (*weighted.Graph, error) {
	g, err := weighted.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return g, nil
}
