package report

import (
	"github.com/DjordjeVuckovic/encalc/internal/bench/runner"
	"github.com/DjordjeVuckovic/encalc/internal/bench/spec"
	"github.com/DjordjeVuckovic/encalc/pkg/utils"
)

// Generate builds the report for br. bs may be nil, in which case engine
// metadata is omitted.
func Generate(br *runner.BenchmarkResult, bs *spec.BenchSpec, version string) *Report {
	r := &Report{
		Meta: BenchMeta{
			RunID:       br.RunID,
			Version:     version,
			Timestamp:   br.StartedAt.UTC(),
			Duration:    br.Duration,
			Engines:     make(map[string]EngineInfo),
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			WarmupRuns: br.Config.WarmupRuns,
			Runs:       br.Config.Runs,
			Tags:       br.Config.Tags,
		},
	}

	if bs != nil {
		for _, name := range br.AllEngineNames() {
			if eng, ok := bs.Engines[name]; ok {
				r.Meta.Engines[name] = EngineInfo{Type: eng.Type, Connection: eng.Connection}
			}
		}
	}

	for _, jr := range br.Jobs {
		r.Jobs = append(r.Jobs, generateJob(jr))
	}
	return r
}

func generateJob(jr *runner.JobResult) JobReport {
	job := JobReport{
		JobName:       jr.JobName,
		SuiteName:     jr.SuiteName,
		Disagreements: jr.Disagreements(),
	}

	for _, caseID := range jr.CaseOrder {
		for _, engName := range jr.EngineNames {
			cr, ok := jr.Results[caseID][engName]
			if !ok {
				continue
			}
			entry := Entry{
				CaseID:     cr.CaseID,
				EngineName: cr.EngineName,
				Expression: cr.Expression,
				Expected:   cr.Expected.String(),
				Actual:     cr.Outcome(),
				Passed:     cr.Passed,
				Mismatch:   cr.Mismatch,
				Latency:    fromRunnerLatencyStats(cr.Latency),
			}
			if cr.Error != nil {
				entry.Error = cr.Error.Error()
			}
			job.PerCase = append(job.PerCase, entry)
		}
	}

	job.Aggregated = aggregate(jr)
	return job
}

func aggregate(jr *runner.JobResult) []AggregatedEntry {
	entries := make([]AggregatedEntry, 0, len(jr.EngineNames))

	for _, engName := range jr.EngineNames {
		agg := AggregatedEntry{EngineName: engName}
		var latencies []runner.LatencyStats

		for _, caseID := range jr.CaseOrder {
			cr, ok := jr.Results[caseID][engName]
			if !ok {
				continue
			}
			agg.CaseCount++

			switch {
			case cr.Error != nil:
				agg.ErrorCount++
				agg.Failed++
			case cr.Passed:
				agg.Passed++
			default:
				agg.Failed++
			}
			latencies = append(latencies, cr.Latency)
		}

		if agg.CaseCount > 0 {
			agg.PassRate = utils.RoundDecimal(float64(agg.Passed)/float64(agg.CaseCount)*100, 2)
		}
		merged := runner.MergeLatencyStats(latencies...)
		agg.Latency = fromRunnerLatencyStats(merged)
		agg.Throughput = utils.RoundDecimal(merged.Throughput(), 1)

		entries = append(entries, agg)
	}

	return entries
}

// AllPassed reports whether every case passed on every engine and all
// engines agreed.
func (r *Report) AllPassed() bool {
	for _, job := range r.Jobs {
		if len(job.Disagreements) > 0 {
			return false
		}
		for _, agg := range job.Aggregated {
			if agg.Failed > 0 {
				return false
			}
		}
	}
	return true
}
