// Package main encalc API
// @title encalc API
// @version 1.0
// @description Evaluates letter-encoded arithmetic expressions (a=+, b=-, c=*, d=/, e=(, f=)) strictly left to right
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DjordjeVuckovic/encalc/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/encalc/internal/api/server"
	"github.com/DjordjeVuckovic/encalc/internal/metrics"
	"github.com/DjordjeVuckovic/encalc/internal/rpn"
	pkgserver "github.com/DjordjeVuckovic/encalc/pkg/server"
)

func main() {
	cfg, err := apiserver.LoadConfig("cmd/encalc_api/.env")
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	healthChecker := pkgserver.AllHealthChecker{
		pkgserver.NewOkHealthChecker(),
		pkgserver.NewProbeHealthChecker(rpn.Parse, "3a2c4", 20),
	}

	s := apiserver.New(cfg, healthChecker).
		SetupMetrics("/metrics", prometheus.DefaultGatherer).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "encalc API is running")
	})

	evalRouter := router.NewEvalRouter(s.Echo,
		router.WithRecorder(metrics.MustNewRecorder()),
		router.WithMaxExpressionLength(cfg.MaxExpressionLength),
		router.WithMaxBatchSize(cfg.MaxBatchSize),
	)
	evalRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
