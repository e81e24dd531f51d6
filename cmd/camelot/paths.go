package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/camelot/internal/config"
	"github.com/katalvlaran/camelot/internal/metrics"
	"github.com/katalvlaran/camelot/keygraph"
	"github.com/katalvlaran/camelot/multipath"
	"github.com/katalvlaran/camelot/render"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the cheapest routes between two keys",
	Long: `Searches the key wheel for the N cheapest arrival routes from --from to --to.
Routes may revisit keys; costs never decrease down the list.`,
	Example: `  camelot paths --from 12A --to 1B --count 10
  camelot paths --config camelot.yaml --metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyPathFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}

		var rec *metrics.Recorder
		if show, _ := cmd.Flags().GetBool("metrics"); show {
			rec = metrics.New()
		}
		if err := runPaths(cmd.OutOrStdout(), logger, rec, cfg); err != nil {
			return err
		}
		if rec != nil {
			return rec.WriteText(cmd.ErrOrStderr())
		}

		return nil
	},
}

func init() {
	pathsCmd.Flags().String("from", "", "Start key, e.g. 12A")
	pathsCmd.Flags().String("to", "", "End key, e.g. 1B")
	pathsCmd.Flags().Int("count", 0, "Number of routes to list")
	pathsCmd.Flags().Int("max-frontier", 0, "Abort once this many candidates are pending (0 = no limit)")
	pathsCmd.Flags().Int64("max-cost", 0, "Ignore routes costlier than this (0 = no limit)")
	pathsCmd.Flags().Bool("metrics", false, "Print search metrics to stderr")
	rootCmd.AddCommand(pathsCmd)
}

// applyPathFlags overrides cfg with the flags the user set explicitly.
func applyPathFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.From, _ = flags.GetString("from")
	}
	if flags.Changed("to") {
		cfg.To, _ = flags.GetString("to")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("max-frontier") {
		cfg.MaxFrontier, _ = flags.GetInt("max-frontier")
	}
	if flags.Changed("max-cost") {
		cfg.MaxCost, _ = flags.GetInt64("max-cost")
	}
}

// runPaths builds the wheel, searches it and writes the route table to out.
// rec may be nil.
func runPaths(out io.Writer, logger *slog.Logger, rec *metrics.Recorder, cfg config.Config) error {
	from, to, err := cfg.Endpoints()
	if err != nil {
		return err
	}

	logger = logger.With("search_id", uuid.NewString()[:8])

	kg, err := keygraph.Build(keygraphCatalog())
	if err != nil {
		return err
	}
	logger.Debug("graph built", "nodes", kg.NodeCount(), "edges", kg.EdgeCount())
	if steps, err := kg.Distance(from, to); err == nil {
		logger.Debug("shortest route", "from", from, "to", to, "steps", steps)
	}

	var opts []multipath.Option
	if cfg.MaxFrontier > 0 {
		opts = append(opts, multipath.WithMaxFrontier(cfg.MaxFrontier))
	}
	if cfg.MaxCost > 0 {
		opts = append(opts, multipath.WithMaxCost(cfg.MaxCost))
	}

	start := time.Now()
	routes, stats, err := kg.SearchWithStats(from, to, cfg.Count, opts...)
	elapsed := time.Since(start)
	if rec != nil {
		rec.Observe(stats, elapsed, err)
	}
	if err != nil {
		logger.Error("search failed", "from", from, "to", to, "error", err, "pops", stats.Pops)
		return fmt.Errorf("search %s → %s: %w", from, to, err)
	}
	logger.Info("search finished",
		"from", from,
		"to", to,
		"requested", cfg.Count,
		"found", len(routes),
		"pops", stats.Pops,
		"peak_frontier", stats.PeakFrontier,
		"elapsed", elapsed,
	)
	if len(routes) < cfg.Count {
		logger.Warn("fewer routes than requested", "requested", cfg.Count, "found", len(routes))
	}

	return render.Table(out, routes)
}
