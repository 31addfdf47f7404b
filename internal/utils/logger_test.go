package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production")

	logger.Debug("hidden")
	logger.With("session_id", "s1").Info("answer recorded", "correct", true)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "answer recorded", entry["msg"])
	assert.Equal(t, "s1", entry["session_id"])
	assert.Equal(t, true, entry["correct"])
}

func TestNewLogger_DevelopmentIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "development").Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogRequest_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production")

	logger.LogRequest("GET", "/health", 200, "1ms")
	logger.LogRequest("POST", "/api/v1/answer", 404, "1ms")
	logger.LogRequest("GET", "/api/v1/question", 503, "1ms")
	logger.LogError(errors.New("boom"), "failed")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)

	levels := make([]string, 0, len(lines))
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		levels = append(levels, entry["level"].(string))
	}
	assert.Equal(t, []string{"INFO", "WARN", "ERROR", "ERROR"}, levels)
}

func TestRequestIDAndContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), ContextLogger(newLogger(&buf, "production")))

	fallback := NewNopLogger()
	router.GET("/", func(c *gin.Context) {
		LoggerFromContext(c, fallback).Info("handled")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "/", entry["path"])

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	fallback := NewNopLogger()
	assert.Same(t, fallback, LoggerFromContext(c, fallback))
}
