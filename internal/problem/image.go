package problem

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/core"
	"github.com/katalvlaran/pathfill/gridgraph"
)

// VertexDoc is one positioned, colored vertex.
type VertexDoc struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color" validate:"required"`
}

// ImageDoc is a flood-fill request. Exactly one of Vertices or Grid is set;
// Edges only accompany Vertices. Seed and Color are defaults the command
// line may override.
type ImageDoc struct {
	ImageSize int         `yaml:"image_size" validate:"gte=0"`
	Vertices  []VertexDoc `yaml:"vertices" validate:"dive"`
	Edges     [][]int     `yaml:"edges" validate:"dive,len=2"`
	Grid      [][]string  `yaml:"grid" validate:"dive,min=1,dive,required"`
	Seed      int         `yaml:"seed" validate:"gte=0"`
	Color     string      `yaml:"color"`
}

// ReadImage decodes and validates an ImageDoc.
func ReadImage(r io.Reader) (*ImageDoc, error) {
	var doc ImageDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}
	switch {
	case len(doc.Vertices) > 0 && len(doc.Grid) > 0:
		return nil, errors.Wrap(ErrInvalidDocument, "vertices and grid are mutually exclusive")
	case len(doc.Vertices) == 0 && len(doc.Grid) == 0:
		return nil, errors.Wrap(ErrInvalidDocument, "one of vertices or grid is required")
	case len(doc.Grid) > 0 && len(doc.Edges) > 0:
		return nil, errors.Wrap(ErrInvalidDocument, "edges are derived from the grid")
	}

	return &doc, nil
}

// ReadImageFile is ReadImage on the named file.
func ReadImageFile(path string) (*ImageDoc, error) {
	return readFile(path, ReadImage)
}

// Graph builds the colored vertex graph. A grid is converted with the given
// connectivity; explicit vertices keep their document order as indices.
func (d *ImageDoc) Graph(conn gridgraph.Connectivity) (*colorgraph.Graph, error) {
	if len(d.Grid) > 0 {
		rows := lo.Map(d.Grid, func(row []string, _ int) []colorgraph.Color {
			return lo.Map(row, func(c string, _ int) colorgraph.Color { return colorgraph.Color(c) })
		})
		gg, err := gridgraph.FromColors(rows, conn)
		if err != nil {
			return nil, errors.Wrap(err, "grid")
		}

		return gg.ToColorGraph()
	}

	n := len(d.Vertices)
	var faults error
	for i, e := range d.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			faults = multierr.Append(faults, fmt.Errorf("%w: edge %d %v outside [0,%d)", core.ErrMalformedEdge, i, e, n))
		}
	}
	if faults != nil {
		return nil, faults
	}

	points := lo.Map(d.Vertices, func(v VertexDoc, _ int) colorgraph.Point {
		return colorgraph.Point{X: v.X, Y: v.Y, Color: colorgraph.Color(v.Color)}
	})
	edges := lo.Map(d.Edges, func(e []int, _ int) [2]int { return [2]int{e[0], e[1]} })

	return colorgraph.New(d.ImageSize, points, edges)
}
