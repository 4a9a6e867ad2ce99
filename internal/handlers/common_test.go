package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBaseHandler_LogsThroughRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	requestScoped := utils.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	h := NewBaseHandler(utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	router := gin.New()
	router.Use(utils.ContextLogger(requestScoped))
	router.GET("/api/quizzes/:id", func(c *gin.Context) {
		h.RespondWithError(c, http.StatusNotFound, "Quiz not found", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/missing", nil)
	req.Header.Set(utils.RequestIDHeader, "req-7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), `"msg":"Quiz not found"`)
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	assert.Contains(t, buf.String(), `"path":"/api/quizzes/missing"`)
}
