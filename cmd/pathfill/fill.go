package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfill/colorgraph"
	"github.com/katalvlaran/pathfill/floodfill"
	"github.com/katalvlaran/pathfill/gridgraph"
	"github.com/katalvlaran/pathfill/internal/problem"
)

type fillFlags struct {
	file  string
	mode  string
	seed  int
	color string
}

func newFillCmd(a *app) *cobra.Command {
	var f fillFlags
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Flood-fill the region around a seed vertex and print the resulting colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFill(f, cmd.Flags().Changed("seed"))
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "path to image YAML")
	cmd.Flags().StringVar(&f.mode, "mode", "", "traversal order, bfs or dfs (default from config)")
	cmd.Flags().IntVar(&f.seed, "seed", 0, "seed vertex index (default from document)")
	cmd.Flags().StringVar(&f.color, "color", "", "fill color (default from document)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runFill(f fillFlags, seedSet bool) error {
	doc, err := problem.ReadImageFile(f.file)
	if err != nil {
		return err
	}

	modeName := a.cfg.Fill.Mode
	if f.mode != "" {
		modeName = f.mode
	}
	mode, err := floodfill.ParseMode(modeName)
	if err != nil {
		return err
	}
	seed := doc.Seed
	if seedSet {
		seed = f.seed
	}
	color := colorgraph.Color(doc.Color)
	if f.color != "" {
		color = colorgraph.Color(f.color)
	}
	if color == "" {
		return errors.New("no fill color: set --color or color in the document")
	}
	conn := gridgraph.Conn4
	if a.cfg.Fill.Connectivity == 8 {
		conn = gridgraph.Conn8
	}

	g, err := doc.Graph(conn)
	if err != nil {
		return errors.Wrapf(err, "build graph from %s", f.file)
	}

	recolored := 0
	began := time.Now()
	err = floodfill.Fill(g, seed, color, mode, floodfill.WithOnRecolor(func(*colorgraph.Vertex, int) {
		recolored++
	}))
	if err != nil {
		return errors.Wrapf(err, "%s fill", mode)
	}
	a.log.Info("flood fill finished",
		zap.String("algorithm", "flood-fill"),
		zap.Stringer("mode", mode),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("seed", seed),
		zap.String("color", string(color)),
		zap.Int("recolored", recolored),
		zap.Duration("elapsed", time.Since(began)))

	for i, c := range g.Colors() {
		fmt.Fprintf(a.out, "%d: %s\n", i, c)
	}

	return nil
}
