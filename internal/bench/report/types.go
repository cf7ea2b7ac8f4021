package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/encalc/internal/bench/runner"
)

type Report struct {
	Meta   BenchMeta    `json:"meta"`
	Jobs   []JobReport  `json:"jobs"`
	Config ReportConfig `json:"config"`
}

type BenchMeta struct {
	RunID       uuid.UUID             `json:"run_id"`
	Version     string                `json:"version"`
	Timestamp   time.Time             `json:"timestamp"`
	Duration    time.Duration         `json:"duration"`
	Engines     map[string]EngineInfo `json:"engines"`
	Environment EnvironmentInfo       `json:"environment"`
}

type EngineInfo struct {
	Type       string `json:"type"`
	Connection string `json:"connection,omitempty"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	WarmupRuns int      `json:"warmup_runs"`
	Runs       int      `json:"runs"`
	Tags       []string `json:"tags,omitempty"`
}

type JobReport struct {
	JobName       string            `json:"job_name"`
	SuiteName     string            `json:"suite_name"`
	Aggregated    []AggregatedEntry `json:"aggregated"`
	PerCase       []Entry           `json:"per_case"`
	Disagreements []string          `json:"disagreements,omitempty"`
}

type Entry struct {
	CaseID     string       `json:"case_id"`
	EngineName string       `json:"engine_name"`
	Expression string       `json:"expression"`
	Expected   string       `json:"expected"`
	Actual     string       `json:"actual"`
	Passed     bool         `json:"passed"`
	Mismatch   string       `json:"mismatch,omitempty"`
	Latency    LatencyStats `json:"latency"`
	Error      string       `json:"error,omitempty"`
}

type AggregatedEntry struct {
	EngineName string       `json:"engine_name"`
	CaseCount  int          `json:"case_count"`
	Passed     int          `json:"passed"`
	Failed     int          `json:"failed"`
	ErrorCount int          `json:"error_count"`
	PassRate   float64      `json:"pass_rate"`
	Throughput float64      `json:"throughput"`
	Latency    LatencyStats `json:"latency"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P90() time.Duration { return s.Percentiles[90] }
func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }
