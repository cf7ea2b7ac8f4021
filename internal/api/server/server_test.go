package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgserver "github.com/DjordjeVuckovic/encalc/pkg/server"
)

type staticChecker bool

func (c staticChecker) Healthy(context.Context) bool { return bool(c) }

func testConfig() *Config {
	return &Config{Port: "0", CorsOrigins: []string{"*"}, MaxExpressionLength: 16, MaxBatchSize: 2}
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_HealthChecks(t *testing.T) {
	healthy := New(testConfig(), pkgserver.NewOkHealthChecker()).SetupHealthChecks("/health")
	defer healthy.Stop()
	rec := get(healthy, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	sick := New(testConfig(), staticChecker(false)).SetupHealthChecks("/health")
	defer sick.Stop()
	assert.Equal(t, http.StatusServiceUnavailable, get(sick, "/health").Code)
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "encalc_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	s := New(testConfig(), nil).SetupMetrics("/metrics", reg).SetupMiddlewares()
	defer s.Stop()

	rec := get(s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "encalc_test_total 1")
}

func TestServer_ErrorHandler(t *testing.T) {
	s := New(testConfig(), nil).SetupErrorHandler()
	defer s.Stop()

	rec := get(s, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestServer_OpenApi(t *testing.T) {
	s := New(testConfig(), nil).SetupOpenApi("/swagger/*")
	defer s.Stop()

	rec := get(s, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/eval")
}

func TestServer_StartAndStop(t *testing.T) {
	s := New(testConfig(), nil)

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.Eventually(t, func() bool { return s.Echo.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

	s.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(GracefulShutdownTimeout):
		t.Fatal("server did not shut down")
	}
	assert.Error(t, s.Context().Err())
}
