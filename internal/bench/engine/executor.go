package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

// Executor evaluates expressions on one engine. An engine that rejects an
// expression reports it through Execution.ErrorKind; the error return is kept
// for failures to reach the engine at all.
type Executor interface {
	Execute(ctx context.Context, expression string) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Result    int32
	ErrorKind rpn.Kind
	Latency   time.Duration
}

func (e *Execution) Failed() bool {
	return e.ErrorKind != rpn.KindUnknown
}
