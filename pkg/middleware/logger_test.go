package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(buf *bytes.Buffer, opts ...LoggerOpts) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))

	e := echo.New()
	e.Use(Logger(append([]LoggerOpts{WithLogger(logger)}, opts...)...))
	e.GET("/v1/eval", func(c echo.Context) error { return c.String(http.StatusOK, "20") })
	e.GET("/metrics", func(c echo.Context) error { return c.String(http.StatusOK, "") })
	return e
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/eval?expr=3a2c4", nil))

	out := buf.String()
	assert.Contains(t, out, "msg=REQUEST")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "status=200")
}

func TestLogger_LogsErrors(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Contains(t, buf.String(), "msg=REQUEST_ERROR")
	assert.Contains(t, buf.String(), "status=404")
}

func TestLogger_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf, SkipPaths("/metrics"))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Empty(t, buf.String())
}
