package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfill/internal/config"
	"github.com/katalvlaran/pathfill/internal/logging"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	configFile string
	cfg        *config.Config
	log        *zap.Logger
	out        io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "pathfill",
		Short:             "Max-probability paths and flood fill on small graphs",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to YAML config file (overrides $"+config.EnvPrefix+"CONFIG)")
	root.AddCommand(newProbCmd(a), newFillCmd(a))

	return root
}

// setup loads configuration and, unless one was injected, builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.WithConfigFile(a.configFile))
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	a.cfg = cfg
	if a.log == nil {
		if a.log, err = logging.New(cfg.Log); err != nil {
			return errors.Wrap(err, "init logger")
		}
	}
	a.log.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("fill.mode", cfg.Fill.Mode),
		zap.Int("fill.connectivity", cfg.Fill.Connectivity),
		zap.Float64("search.min_probability", cfg.Search.MinProbability))

	return nil
}
