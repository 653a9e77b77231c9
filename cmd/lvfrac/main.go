// SPDX-License-Identifier: MIT

// Command lvfrac runs the fBm local-time Monte Carlo estimator and compares it
// with the closed-form references.
//
//	lvfrac run --paths 5000 --method daviesharte -o curves.json
//	lvfrac reference --alpha 0.3
//	LVFRAC_WORKERS=8 lvfrac run --config scenario.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfrac/analytic"
	"github.com/katalvlaran/lvfrac/experiment"
	"github.com/katalvlaran/lvfrac/grid"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvfrac",
		Short: "Monte Carlo local time of fractional Brownian motion",
		Long: `lvfrac estimates the weighted local time at a level of fractional
Brownian motion by kernel smoothing over many simulated paths, and checks it
against the expected local time and the Riemann-Liouville integral of the
weight f(t) = a + b t.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("json", false, "print the summary as JSON")

	root.AddCommand(newRunCmd(), newReferenceCmd(), newVersionCmd())

	return root
}

// resolveConfig layers file, environment and flags.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	return cfg, nil
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Monte Carlo estimator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			return runExperiment(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), asJSON)
		},
	}
	bindFlags(cmd.Flags())

	return cmd
}

func runExperiment(ctx context.Context, cfg Config, stdout, stderr io.Writer, asJSON bool) error {
	logger := newLogger(cfg.LogLevel, stderr)
	p := cfg.Params()
	logger.Info("starting run",
		"method", p.Method, "steps", p.Steps, "paths", p.Paths, "workers", p.Workers,
		"alpha", p.Alpha, "seed", p.Seed, "antithetic", p.Antithetic)

	res, err := experiment.Run(ctx, p, experiment.WithProgress(func(done, total int) {
		logger.Debug("progress", "done", done, "total", total, "pct", 100*done/total)
	}))
	if err != nil {
		logger.Error("run failed", "err", err)
		return err
	}
	if res.Truncated {
		logger.Warn("run truncated", "completed", res.Count, "requested", p.Paths)
	}
	if res.Discarded > 0 {
		logger.Warn("non-finite realizations skipped", "discarded", res.Discarded)
	}
	if !res.Calibrated.Valid {
		logger.Warn("calibration skipped: cumulative integral ends at zero")
	}
	logger.Info("run finished", "elapsed", res.Elapsed, "bandwidth", res.Bandwidth)

	if cfg.Output != "" {
		if err := writeCurves(cfg.Output, res); err != nil {
			return err
		}
		logger.Info("curves written", "path", cfg.Output)
	}

	return printSummary(stdout, newSummary(res), asJSON)
}

func newReferenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Print the closed-form references without simulating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			return printReference(cmd.OutOrStdout(), cfg)
		},
	}
	bindFlags(cmd.Flags())

	return cmd
}

func printReference(w io.Writer, cfg Config) error {
	p := cfg.Params()
	if err := p.Validate(); err != nil {
		return err
	}
	hurst, _ := p.HurstExponent()
	f := p.Weight()

	el, err := analytic.ExpectedLocalTimeAt(f, hurst, p.Horizon, p.Level)
	if err != nil {
		return err
	}
	rl, err := analytic.RiemannLiouville(f, 1-hurst, p.Horizon)
	if err != nil {
		return err
	}
	g, err := grid.Warped(p.Steps, p.Horizon, p.WarpExponent())
	if err != nil {
		return err
	}
	eps, err := p.BandwidthRule().Bandwidth(g, hurst)
	if err != nil {
		return err
	}
	sm, err := analytic.SmoothedExpectation(g, f, hurst, eps, p.Level)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w,
		"Expected local time: %.6f\nSmoothed (N=%d, eps=%.4g): %.6f\nRiemann-Liouville:   %.6f\n",
		el, p.Steps, eps, sm, rl)

	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvfrac version %s\n", version)
		},
	}
}
