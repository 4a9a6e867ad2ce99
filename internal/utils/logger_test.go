package utils

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestContextLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	router := gin.New()
	router.Use(ContextLogger(NewDevelopmentLogger()))
	router.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c.Request.Context())
		_, ok := c.Get(contextLoggerKey)
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, ToSlogLogger(NewLogger("production")))
	assert.NotNil(t, ToSlogLogger(NewLogger("development")))
}

func TestLoggerMiddleware_LogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	router := gin.New()
	router.Use(ContextLogger(logger), LoggerMiddleware(logger))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestGetLoggerFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fallback := NewDevelopmentLogger()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, fallback, GetLoggerFromContext(c, fallback))

	scoped := fallback.With("request_id", "abc")
	c.Set(contextLoggerKey, scoped)
	assert.Same(t, scoped, GetLoggerFromContext(c, fallback))
}
