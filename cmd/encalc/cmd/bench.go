package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/encalc/internal/bench/engine"
	"github.com/DjordjeVuckovic/encalc/internal/bench/report"
	"github.com/DjordjeVuckovic/encalc/internal/bench/runner"
	"github.com/DjordjeVuckovic/encalc/internal/bench/spec"
)

var errBenchFailed = errors.New("benchmark has failing cases")

type benchOptions struct {
	specPath  string
	suitePath string
	apiURL    string
	timeout   time.Duration
	runs      int
	warmup    int
	tags      []string
	output    string
	json      bool
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a conformance suite against one or more engines",
		Long: `Run every case of a suite against the configured engines, check the
expected result or error kind and report latency per engine.

With --spec, jobs and engines come from a bench spec file. Otherwise
--suite runs a single job on the native engine, and on a running API
server as well when --api is set.`,
		Example: `  encalc bench --spec configs/bench/spec.yaml
  encalc bench --suite configs/bench/encalc_v1.yaml --api http://localhost:8080 --runs 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.specPath == "" && opts.suitePath == "" {
				return errors.New("one of --spec or --suite is required")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runBench(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.specPath, "spec", "", "bench spec file")
	f.StringVar(&opts.suitePath, "suite", "", "suite file for a quick run")
	f.StringVar(&opts.apiURL, "api", "", "base URL of an API server to include in a quick run")
	f.DurationVar(&opts.timeout, "timeout", engine.DefaultAPITimeout, "request timeout for the API engine")
	f.IntVar(&opts.runs, "runs", runner.DefaultRuns, "measured runs per case")
	f.IntVar(&opts.warmup, "warmup", runner.DefaultWarmupRuns, "unmeasured runs per case")
	f.StringSliceVar(&opts.tags, "tag", nil, "only run cases with one of these tags")
	f.StringVarP(&opts.output, "output", "o", "", "also write the report as JSON to this file")
	f.BoolVar(&opts.json, "json", false, "print the report as JSON instead of a table")
	cmd.MarkFlagsMutuallyExclusive("spec", "suite")
	cmd.MarkFlagsMutuallyExclusive("spec", "api")

	return cmd
}

func runBench(ctx context.Context, cmd *cobra.Command, opts benchOptions) error {
	runCfg := runner.Config{
		WarmupRuns: opts.warmup,
		Runs:       max(opts.runs, 1),
		Tags:       opts.tags,
	}

	var bs *spec.BenchSpec
	if opts.specPath != "" {
		var err error
		if bs, err = spec.LoadFromFile(opts.specPath); err != nil {
			return err
		}
		// Spec values apply unless the flag was set explicitly.
		if bs.Runs.Warmup > 0 && !cmd.Flags().Changed("warmup") {
			runCfg.WarmupRuns = bs.Runs.Warmup
		}
		if bs.Runs.Iterations > 0 && !cmd.Flags().Changed("runs") {
			runCfg.Runs = bs.Runs.Iterations
		}
	} else {
		bs = quickSpec(opts)
	}

	executors, cleanup, err := engine.CreateFromSpec(ctx, bs.Engines)
	if err != nil {
		return fmt.Errorf("create executors: %w", err)
	}
	defer cleanup()

	slog.Info("Running benchmark", "jobs", len(bs.Jobs), "engines", len(executors), "runs", runCfg.Runs)

	result, err := runner.New(runCfg).RunAll(ctx, bs, executors)
	if err != nil {
		return err
	}

	rpt := report.Generate(result, bs, Version)
	if opts.json {
		if err := report.EncodeJSON(rpt, cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		report.WriteTable(rpt, cmd.OutOrStdout())
	}

	if opts.output != "" {
		if err := report.WriteJSON(rpt, opts.output); err != nil {
			return err
		}
		slog.Info("Report written", "path", opts.output)
	}

	if !rpt.AllPassed() {
		return errBenchFailed
	}
	return nil
}

func quickSpec(opts benchOptions) *spec.BenchSpec {
	engines := map[string]spec.Engine{
		spec.EngineNative: {Type: spec.EngineNative},
	}
	names := []string{spec.EngineNative}

	if opts.apiURL != "" {
		engines[spec.EngineAPI] = spec.Engine{
			Type:       spec.EngineAPI,
			Connection: opts.apiURL,
			Timeout:    opts.timeout,
		}
		names = append(names, spec.EngineAPI)
	}

	return &spec.BenchSpec{
		Jobs: []spec.Job{
			{Name: "quick", Suite: opts.suitePath, Engines: names},
		},
		Engines: engines,
	}
}
