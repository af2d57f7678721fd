package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfill/internal/problem"
	"github.com/katalvlaran/pathfill/probability"
)

func newProbCmd(a *app) *cobra.Command {
	var (
		file     string
		withPath bool
	)
	cmd := &cobra.Command{
		Use:   "prob",
		Short: "Print the maximum success probability between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runProb(file, withPath)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to problem YAML")
	cmd.Flags().BoolVar(&withPath, "with-path", false, "also print the best path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runProb(file string, withPath bool) error {
	doc, err := problem.ReadProbFile(file)
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return errors.Wrapf(err, "build graph from %s", file)
	}

	opts := []probability.Option{probability.WithMinProbability(a.cfg.Search.MinProbability)}
	if withPath {
		opts = append(opts, probability.WithReturnPath())
	}
	began := time.Now()
	res, err := probability.Search(g, doc.Start, doc.End, opts...)
	if err != nil {
		return errors.Wrap(err, "search")
	}
	a.log.Info("max probability search finished",
		zap.String("algorithm", "max-probability"),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Float64("probability", res.Probability),
		zap.Int("expanded", res.Expanded),
		zap.Duration("elapsed", time.Since(began)))

	fmt.Fprintf(a.out, "probability: %.5f\n", res.Probability)
	if withPath {
		fmt.Fprintf(a.out, "path: %s\n", formatPath(res.Path))
	}

	return nil
}

func formatPath(path []int) string {
	if len(path) == 0 {
		return "none"
	}

	return strings.Join(lo.Map(path, func(v int, _ int) string { return strconv.Itoa(v) }), " -> ")
}
