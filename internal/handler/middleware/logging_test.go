//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"sportshub/internal/handler/middleware"
	"sportshub/internal/pkg/config"
	"sportshub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(l.LoggingMiddleware(), middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestLoggingMiddleware_EchoesIncomingRequestID(t *testing.T) {
	r := newLoggedRouter(t)

	rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/ok", nil,
		map[string]string{middleware.RequestIDHeader: "req-42"})

	require.Equal(t, http.StatusOK, rec.Code)
	httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", rec.Body.String())
}

func TestLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	r := newLoggedRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())
}

func TestCustomRecovery_ReportsRequestID(t *testing.T) {
	r := newLoggedRouter(t)

	rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/panic", nil,
		map[string]string{middleware.RequestIDHeader: "req-panic"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Equal(t, "req-panic", body.RequestID)
}
