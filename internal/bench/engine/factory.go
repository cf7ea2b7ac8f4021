package engine

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/encalc/internal/bench/spec"
)

// CreateFromSpec builds one executor per engine. API engines must answer
// their health check before the benchmark starts.
func CreateFromSpec(ctx context.Context, engines map[string]spec.Engine) (map[string]Executor, func(), error) {
	executors := make(map[string]Executor, len(engines))
	var cleanups []func()

	cleanup := func() {
		for _, c := range cleanups {
			c()
		}
	}

	for name, eng := range engines {
		switch eng.Type {
		case spec.EngineNative:
			executors[name] = NewNativeExecutor(name)

		case spec.EngineAPI:
			api := NewAPIExecutor(name, eng.Connection, eng.Timeout)
			if err := api.Ping(ctx); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("engine %q not reachable: %w", name, err)
			}
			cleanups = append(cleanups, func() { _ = api.Close() })
			executors[name] = api

		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported engine type %q for %q", eng.Type, name)
		}
	}

	return executors, cleanup, nil
}
