package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/peaceable/internal/board"
	"svw.info/peaceable/internal/config"
	"svw.info/peaceable/internal/conflict"
	"svw.info/peaceable/internal/hint"
	"svw.info/peaceable/internal/inventory"
	"svw.info/peaceable/internal/search"
	"svw.info/peaceable/internal/solver"
	"svw.info/peaceable/internal/usecase"
)

var (
	cfgPath  string
	logLevel string

	cfg config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "peaceable",
	Short: "Daily non-attacking chess-piece puzzle engine",
	Long: `peaceable generates the deterministic daily board and piece inventory,
solves placements, and produces hints. The same seed always yields the
same puzzle.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		lvl, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: ./peaceable.{yaml,toml,json})")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
}

// newService wires the engine from the merged configuration.
func newService() (*usecase.Service, error) {
	gen, err := board.New(
		board.WithSize(cfg.Size),
		board.WithBlockRatio(cfg.BlockRatio),
		board.WithMinValidRatio(cfg.MinValidRatio),
	)
	if err != nil {
		return nil, err
	}
	ev := conflict.New()
	sv := solver.New(solver.WithNodeBudget(cfg.NodeBudget))
	sr := search.New(sv, log,
		board.WithSize(cfg.Size),
		board.WithBlockRatio(cfg.BlockRatio),
		board.WithMinValidRatio(cfg.MinValidRatio),
	)
	hn := hint.New(sv, ev)
	return usecase.NewService(gen, inventory.New(), ev, sv, sr, hn), nil
}
