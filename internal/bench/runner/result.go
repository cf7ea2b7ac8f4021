package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/encalc/internal/bench/suite"
	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

// CaseResult is the outcome of one case on one engine. Error is set when the
// engine could not be reached; any other failure is a Mismatch.
type CaseResult struct {
	CaseID     string
	JobName    string
	EngineName string
	Expression string
	Expected   suite.Expectation
	Result     int32
	ErrorKind  rpn.Kind
	Passed     bool
	Mismatch   string
	Latency    LatencyStats
	Error      error
}

// Outcome renders what the engine produced: the result or the error kind.
func (cr CaseResult) Outcome() string {
	switch {
	case cr.Error != nil:
		return "unreachable"
	case cr.ErrorKind != rpn.KindUnknown:
		return cr.ErrorKind.String()
	default:
		return itoa(cr.Result)
	}
}

type JobResult struct {
	JobName     string
	SuiteName   string
	Results     map[string]map[string]CaseResult // [caseID][engineName]
	CaseOrder   []string
	EngineNames []string
}

// Disagreements lists the cases on which the engines of the job produced
// different outcomes, in case order.
func (jr *JobResult) Disagreements() []string {
	var ids []string
	for _, id := range jr.CaseOrder {
		outcomes := make(map[string]bool)
		for _, eng := range jr.EngineNames {
			if cr, ok := jr.Results[id][eng]; ok {
				outcomes[cr.Outcome()] = true
			}
		}
		if len(outcomes) > 1 {
			ids = append(ids, id)
		}
	}
	return ids
}

type BenchmarkResult struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Jobs      []*JobResult
	Config    Config
}

func (br *BenchmarkResult) AllEngineNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, jr := range br.Jobs {
		for _, name := range jr.EngineNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// Failed counts failed or unreachable case results across all jobs.
func (br *BenchmarkResult) Failed() int {
	n := 0
	for _, jr := range br.Jobs {
		for _, byEngine := range jr.Results {
			for _, cr := range byEngine {
				if !cr.Passed {
					n++
				}
			}
		}
	}
	return n
}
