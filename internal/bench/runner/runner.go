package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/encalc/internal/bench/engine"
	"github.com/DjordjeVuckovic/encalc/internal/bench/spec"
	"github.com/DjordjeVuckovic/encalc/internal/bench/suite"
	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = 0
	}
	return &Runner{config: cfg}
}

// RunAll loads each job's suite and runs it. Cases run one at a time so the
// measured latencies are not skewed by each other; ctx is checked between
// cases.
func (r *Runner) RunAll(
	ctx context.Context,
	bs *spec.BenchSpec,
	executors map[string]engine.Executor,
) (*BenchmarkResult, error) {
	br := &BenchmarkResult{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Config:    r.config,
	}

	for _, job := range bs.Jobs {
		loaded, err := suite.LoadFromFile(bs.SuitePath(job))
		if err != nil {
			return nil, fmt.Errorf("load suite for job %q: %w", job.Name, err)
		}

		jr, err := r.RunJob(ctx, job, loaded, executors)
		if err != nil {
			return nil, fmt.Errorf("run job %q: %w", job.Name, err)
		}
		br.Jobs = append(br.Jobs, jr)
	}

	br.Duration = time.Since(br.StartedAt)
	return br, nil
}

func (r *Runner) RunJob(
	ctx context.Context,
	job spec.Job,
	loaded *suite.LoadedSuite,
	executors map[string]engine.Executor,
) (*JobResult, error) {
	jobExecutors := make([]engine.Executor, 0, len(job.Engines))
	for _, engName := range job.Engines {
		exec, ok := executors[engName]
		if !ok {
			return nil, fmt.Errorf("executor %q not found", engName)
		}
		jobExecutors = append(jobExecutors, exec)
	}

	jr := &JobResult{
		JobName:     job.Name,
		SuiteName:   loaded.Suite.Name,
		Results:     make(map[string]map[string]CaseResult),
		EngineNames: job.Engines,
	}

	cases := loaded.Suite.Filter(r.config.Tags...)
	for i := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.runCase(ctx, jr, &cases[i], loaded.Registry, jobExecutors)
	}

	slog.Info("job finished", "job", job.Name, "cases", len(jr.CaseOrder), "engines", len(jobExecutors))
	return jr, nil
}

func (r *Runner) runCase(
	ctx context.Context,
	jr *JobResult,
	c *suite.Case,
	registry *suite.TemplateRegistry,
	executors []engine.Executor,
) {
	jr.CaseOrder = append(jr.CaseOrder, c.ID)
	jr.Results[c.ID] = make(map[string]CaseResult, len(executors))

	expr, err := c.ResolveExpression(registry)

	for _, exec := range executors {
		cr := CaseResult{
			CaseID:     c.ID,
			JobName:    jr.JobName,
			EngineName: exec.Name(),
			Expression: expr,
			Expected:   c.Expect,
		}

		if err != nil {
			cr.Error = fmt.Errorf("resolve expression: %w", err)
			jr.Results[c.ID][exec.Name()] = cr
			slog.Warn("resolve expression failed", "case", c.ID, "error", err)
			continue
		}

		res := r.executeWithRetries(ctx, exec, expr, r.config.WarmupRuns, r.config.Runs)
		cr.Latency = res.latencyStats
		cr.Error = res.err

		switch {
		case res.err != nil:
			cr.Mismatch = res.err.Error()
			slog.Warn("case failed", "case", c.ID, "engine", exec.Name(), "error", res.err)
		case res.unstable:
			cr.Result, cr.ErrorKind = res.result, res.kind
			cr.Mismatch = "outcome changed between runs"
		default:
			cr.Result, cr.ErrorKind = res.result, res.kind
			if mismatch := c.Expect.Check(res.result, res.kind); mismatch != nil {
				cr.Mismatch = mismatch.Error()
			} else {
				cr.Passed = true
			}
		}

		jr.Results[c.ID][exec.Name()] = cr
	}
}

type execResult struct {
	result       int32
	kind         rpn.Kind
	unstable     bool
	latencyStats LatencyStats
	err          error
}

func (r *Runner) executeWithRetries(
	ctx context.Context,
	exec engine.Executor,
	expr string,
	warmup, runs int,
) execResult {
	for i := 0; i < warmup; i++ {
		_, _ = exec.Execute(ctx, expr)
	}

	var res execResult
	latencies := make([]time.Duration, 0, runs)

	for i := 0; i < runs; i++ {
		e, err := exec.Execute(ctx, expr)
		if err != nil {
			res.err = err
			break
		}
		latencies = append(latencies, e.Latency)

		if i == 0 {
			res.result, res.kind = e.Result, e.ErrorKind
		} else if e.Result != res.result || e.ErrorKind != res.kind {
			res.unstable = true
		}
	}

	res.latencyStats = ComputeLatencyStats(latencies)
	return res
}

func itoa(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}
