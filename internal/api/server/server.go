package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/DjordjeVuckovic/encalc/docs"
	"github.com/DjordjeVuckovic/encalc/internal/apperr"
	mw "github.com/DjordjeVuckovic/encalc/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/encalc/pkg/server"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
	HealthCheckTimeout      = 2 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg       *Config
	hc        pkgserver.HealthChecker
	ctx       context.Context
	stop      context.CancelFunc
	skipPaths []string
}

// New creates the server. Its context is cancelled on SIGINT or SIGTERM, or
// when Stop is called.
func New(cfg *Config, hc pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo: e,
		cfg:  cfg,
		hc:   hc,
		ctx:  ctx,
		stop: stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.SkipPaths(s.skipPaths...)))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	s.Echo.Use(middleware.BodyLimit("1M"))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), HealthCheckTimeout)
		defer cancel()

		if s.hc == nil || !s.hc.Healthy(ctx) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// SetupMetrics exposes g in the prometheus text format. Scrapes are not
// request-logged if this is called before SetupMiddlewares.
func (s *Server) SetupMetrics(path string, g prometheus.Gatherer) *Server {
	s.skipPaths = append(s.skipPaths, path)
	s.Echo.GET(path, echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
	return s
}

func (s *Server) Config() *Config {
	return s.cfg
}

// Context is cancelled when the server begins shutting down.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

func (s *Server) Stop() {
	s.stop()
}

// Start serves until the server context is cancelled, then shuts down
// gracefully. A listener failure is returned immediately.
func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}
