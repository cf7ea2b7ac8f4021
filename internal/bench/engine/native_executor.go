package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

// NativeExecutor evaluates in process.
type NativeExecutor struct {
	name string
}

func NewNativeExecutor(name string) *NativeExecutor {
	return &NativeExecutor{name: name}
}

func (e *NativeExecutor) Execute(ctx context.Context, expression string) (*Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := rpn.Parse(expression)
	latency := time.Since(start)

	exec := &Execution{Result: result, Latency: latency}
	if err != nil {
		exec.ErrorKind = rpn.KindOf(err)
		if exec.ErrorKind == rpn.KindUnknown {
			return nil, fmt.Errorf("native evaluate: %w", err)
		}
	}
	return exec, nil
}

func (e *NativeExecutor) Name() string { return e.name }
func (e *NativeExecutor) Close() error { return nil }
