package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	l, err := logger.NewZapLogger(logger.Config{Level: "error"})
	require.NoError(t, err)
	return l
}

func TestValidateAPIKey(t *testing.T) {
	m := NewAPIKeyMiddleware(&models.APIKeyConfig{
		DispatchService: "dispatch-secret",
		RidesService:    "rides-secret",
	})

	e := echo.New()
	e.GET("/internal/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, m.ValidateAPIKey("dispatch-service"))

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"key of a service not allowed on this route", "rides-secret", http.StatusUnauthorized},
		{"valid key", "dispatch-secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal/test", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	t.Run("generates an ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("propagates an existing ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecoveryMiddleware(newTestLogger(t)))
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	e.GET("/fine", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The server keeps serving after a panic.
	req = httptest.NewRequest(http.MethodGet, "/fine", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
