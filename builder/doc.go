// SPDX-License-Identifier: MIT
// Package: pathfill/builder
//
// Package builder produces deterministic graph fixtures for tests,
// benchmarks and demos: probability-weighted graphs for the search and
// color grids for the flood fill.
//
// What:
//
//   - Path, Cycle, Complete: fixed topologies over n vertices.
//   - RandomSparse: each unordered pair {i,j}, i<j, is an edge with probability p.
//   - RandomConnected: a 0-1-…-(n-1) spine plus extra uniformly drawn edges
//     (loops and parallel edges allowed, as the weighted model permits).
//   - RandomImage: a W×H grid with cells drawn from a palette.
//
// Determinism:
//
//	Same inputs, same options and same seed give identical fixtures.
//	Random constructors require WithSeed or WithRand (ErrNeedRandSource).
//
// Weights:
//
//	Edge weights come from the configured WeightFn (default 1). Every
//	WeightFn must stay in [0,1]; weighted.New rejects anything else.
package builder
