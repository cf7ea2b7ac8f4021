package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// ProbeFunc evaluates an expression and returns its result.
type ProbeFunc func(expr string) (int32, error)

// ProbeHealthChecker reports healthy when a known expression still evaluates
// to its expected value.
type ProbeHealthChecker struct {
	probe    ProbeFunc
	expr     string
	expected int32
}

func NewProbeHealthChecker(probe ProbeFunc, expr string, expected int32) *ProbeHealthChecker {
	return &ProbeHealthChecker{probe: probe, expr: expr, expected: expected}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	got, err := hc.probe(hc.expr)
	if err != nil {
		slog.Error("Health probe failed", "expr", hc.expr, "error", err)
		return false
	}
	if got != hc.expected {
		slog.Error("Health probe returned unexpected result", "expr", hc.expr, "expected", hc.expected, "got", got)
		return false
	}
	return true
}

// AllHealthChecker is healthy only if every checker is.
type AllHealthChecker []HealthChecker

func (all AllHealthChecker) Healthy(ctx context.Context) bool {
	for _, hc := range all {
		if !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
