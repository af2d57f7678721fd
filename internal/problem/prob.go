package problem

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/katalvlaran/pathfill/core"
	"github.com/katalvlaran/pathfill/weighted"
)

// ProbDoc is a max-probability query: n vertices, undirected edges with
// success probabilities in parallel slices, and the two endpoints.
type ProbDoc struct {
	N        int       `yaml:"n" validate:"gte=0"`
	Edges    [][]int   `yaml:"edges" validate:"dive,len=2"`
	SuccProb []float64 `yaml:"succ_prob"`
	Start    int       `yaml:"start" validate:"gte=0"`
	End      int       `yaml:"end" validate:"gte=0"`
}

// ReadProb decodes and validates a ProbDoc.
func ReadProb(r io.Reader) (*ProbDoc, error) {
	var doc ProbDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ReadProbFile is ReadProb on the named file.
func ReadProbFile(path string) (*ProbDoc, error) {
	return readFile(path, ReadProb)
}

// Graph builds the weighted graph. All edge faults are reported together,
// each wrapping core.ErrMalformedEdge.
func (d *ProbDoc) Graph() (*weighted.Graph, error) {
	if len(d.Edges) != len(d.SuccProb) {
		return nil, errors.Wrapf(core.ErrMalformedEdge, "%d edges but %d probabilities", len(d.Edges), len(d.SuccProb))
	}

	var faults error
	for i, e := range d.Edges {
		p := d.SuccProb[i]
		if e[0] < 0 || e[0] >= d.N || e[1] < 0 || e[1] >= d.N {
			faults = multierr.Append(faults, fmt.Errorf("%w: edge %d %v outside [0,%d)", core.ErrMalformedEdge, i, e, d.N))
		}
		if !(p >= 0 && p <= 1) {
			faults = multierr.Append(faults, fmt.Errorf("%w: edge %d probability %v outside [0,1]", core.ErrMalformedEdge, i, p))
		}
	}
	if faults != nil {
		return nil, faults
	}

	pairs := lo.Map(d.Edges, func(e []int, _ int) [2]int { return [2]int{e[0], e[1]} })

	return weighted.FromPairs(d.N, pairs, d.SuccProb)
}
