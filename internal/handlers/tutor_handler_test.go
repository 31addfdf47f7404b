package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/repositories"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/services"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/utils"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firstPick struct{}

func (firstPick) Float64() float64 { return 0.99 }
func (firstPick) IntN(int) int     { return 0 }

func newTestRouter(t *testing.T, bank []*models.Question) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := utils.NewNopLogger()
	start := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	service := services.NewTutorService(
		repositories.NewMemoryQuestionRepository(bank),
		firstPick{},
		utils.ToSlogLogger(logger),
		validator.New(),
		services.TutorOptions{Clock: func() time.Time { return start }},
	)

	return NewRouter(NewHandlerManager(service, logger), RouterConfig{
		Environment:    "test",
		AllowedOrigins: "http://localhost:3000",
		Logger:         logger,
	})
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	w := perform(newTestRouter(t, nil), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestGetNextQuestion(t *testing.T) {
	router := newTestRouter(t, repositories.SeedQuestions())

	for _, path := range []string{"/api/v1/question", "/api/question"} {
		w := perform(router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["question"], "options")
		assert.NotContains(t, body["question"], "correct")
		assert.NotContains(t, body["question"], "explanation")
		assert.Equal(t, "balanced", body["insights"]["learning_mode"])
	}
}

func TestGetNextQuestion_EmptyBank(t *testing.T) {
	w := perform(newTestRouter(t, nil), http.MethodGet, "/api/v1/question", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, CodeNoQuestions, decode[ErrorResponse](t, w).Code)
}

func TestSubmitAnswer(t *testing.T) {
	router := newTestRouter(t, repositories.SeedQuestions())

	// Seed question 10 is a difficulty 3 loops question; option 2 is right.
	w := perform(router, http.MethodPost, "/api/v1/answer", map[string]any{
		"question_id": 10,
		"answer":      2,
		"time_taken":  8,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.SubmitAnswerResponse](t, w)
	assert.True(t, resp.Correct)
	assert.Equal(t, "-2", resp.CorrectAnswer)
	assert.NotEmpty(t, resp.Feedback)
	assert.NotEmpty(t, resp.LearningTip)
	assert.Equal(t, 59, resp.Insights.Competence)
	assert.Equal(t, 1, resp.Insights.Streak)

	w = perform(router, http.MethodGet, "/api/insights", nil)
	require.Equal(t, http.StatusOK, w.Code)
	insights := decode[models.InsightsResponse](t, w)
	assert.Equal(t, 1, insights.QuestionsAnswered)
	assert.NotEmpty(t, insights.Recommendations)
}

func TestSubmitAnswer_Errors(t *testing.T) {
	router := newTestRouter(t, repositories.SeedQuestions())

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"malformed json", "{not json", http.StatusBadRequest, CodeInvalidRequest},
		{"missing answer", map[string]any{"question_id": 1}, http.StatusBadRequest, CodeValidationFailed},
		{"non-positive time", map[string]any{"question_id": 1, "answer": 0, "time_taken": 0}, http.StatusBadRequest, CodeValidationFailed},
		{"unknown question", map[string]any{"question_id": 999, "answer": 0}, http.StatusNotFound, CodeQuestionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodPost, "/api/v1/answer", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode[ErrorResponse](t, w).Code)
		})
	}

	t.Run("validation details name the field", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/api/v1/answer", map[string]any{"answer": 1})
		var body struct {
			Details []map[string]any `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotEmpty(t, body.Details)
		assert.Equal(t, "question_id", body.Details[0]["field"])
	})
}

func TestResetSession(t *testing.T) {
	router := newTestRouter(t, repositories.SeedQuestions())

	perform(router, http.MethodPost, "/api/v1/answer", map[string]any{"question_id": 1, "answer": 0})

	w := perform(router, http.MethodPost, "/api/v1/session/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string          `json:"message"`
		Data    models.Insights `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Session reset", body.Message)
	assert.Zero(t, body.Data.QuestionsAnswered)
	assert.Equal(t, 50, body.Data.Competence)
}

func TestQuestionsAndExports(t *testing.T) {
	seed := repositories.SeedQuestions()
	router := newTestRouter(t, seed)

	w := perform(router, http.MethodGet, "/api/v1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bank := decode[models.QuestionBankResponse](t, w)
	assert.Equal(t, len(seed), bank.Total)
	assert.NotContains(t, w.Body.String(), "\"correct\"")

	for _, path := range []string{"/api/v1/insights/export", "/api/v1/questions/export"} {
		w = perform(router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, spreadsheetContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
		assert.NotZero(t, w.Body.Len())
	}
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/insights", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))
}
