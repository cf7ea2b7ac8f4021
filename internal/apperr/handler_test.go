package apperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/encalc/internal/apperr"
	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

func serveError(err error) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.GET("/", func(c echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestGlobalErrorHandler(t *testing.T) {
	_, engineErr := rpn.Parse("abcdefg")

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "engine error",
			err:    engineErr,
			status: http.StatusUnprocessableEntity,
			body:   `{"error":"invalid character 'g' at position 6","kind":"invalid_character","position":6}`,
		},
		{
			name:   "validation error",
			err:    apperr.NewValidation("expression is required"),
			status: http.StatusBadRequest,
			body:   `{"error":"expression is required","title":"validation error"}`,
		},
		{
			name:   "echo http error",
			err:    echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			status: http.StatusMethodNotAllowed,
			body:   `{"error":"nope"}`,
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveError(tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
