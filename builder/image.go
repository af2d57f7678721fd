// SPDX-License-Identifier: MIT
// Package: pathfill/builder
//
// image.go — color grid constructors for flood-fill fixtures.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/gridgraph"
)

const (
	methodUniformImage = "UniformImage"
	methodRandomImage  = "RandomImage"
)

// UniformImage returns a w×h grid where every cell has color c.
func UniformImage(w, h int, c colorgraph.Color, conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodUniformImage, w, h, ErrTooFewVertices)
	}
	rows := make([][]colorgraph.Color, h)
	for y := range rows {
		rows[y] = make([]colorgraph.Color, w)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}

	return gridgraph.FromColors(rows, conn)
}

// RandomImage returns a w×h grid whose cells are drawn uniformly from the
// palette, row by row. Requires w, h ≥ 1 and an RNG.
func RandomImage(w, h int, conn gridgraph.Connectivity, opts ...BuilderOption) (*gridgraph.GridGraph, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodRandomImage, w, h, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomImage, ErrNeedRandSource)
	}
	rows := make([][]colorgraph.Color, h)
	for y := range rows {
		rows[y] = make([]colorgraph.Color, w)
		for x := range rows[y] {
			rows[y][x] = cfg.palette[cfg.rng.Intn(len(cfg.palette))]
		}
	}

	return gridgraph.FromColors(rows, conn)
}
