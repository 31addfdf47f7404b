package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/services"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type TutorHandler struct {
	BaseHandler
	tutorService services.TutorService
}

func NewTutorHandler(tutorService services.TutorService, logger utils.Logger) *TutorHandler {
	return &TutorHandler{
		BaseHandler:  NewBaseHandler(logger),
		tutorService: tutorService,
	}
}

// GetNextQuestion picks the next question for the learner
// @Summary Get next question
// @Description Selects a question adapted to the current learner state
// @Tags tutor
// @Produce json
// @Success 200 {object} models.NextQuestionResponse
// @Failure 503 {object} ErrorResponse
// @Router /question [get]
func (h *TutorHandler) GetNextQuestion(c *gin.Context) {
	h.LogRequest(c, "Selecting next question")

	resp, err := h.tutorService.NextQuestion(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer grades an answer and updates the learner state
// @Summary Submit answer
// @Description Grades the answer, updates the learner model and returns feedback
// @Tags tutor
// @Accept json
// @Produce json
// @Param answer body models.SubmitAnswerRequest true "Answer"
// @Success 200 {object} models.SubmitAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /answer [post]
func (h *TutorHandler) SubmitAnswer(c *gin.Context) {
	h.LogRequest(c, "Submitting answer")

	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request payload", err, err.Error())
		return
	}

	resp, err := h.tutorService.SubmitAnswer(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInsights returns the learner insights with recommendations
// @Summary Get insights
// @Tags tutor
// @Produce json
// @Success 200 {object} models.InsightsResponse
// @Router /insights [get]
func (h *TutorHandler) GetInsights(c *gin.Context) {
	resp, err := h.tutorService.Insights(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetSession starts the learner over
// @Summary Reset session
// @Tags tutor
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.Insights}
// @Router /session/reset [post]
func (h *TutorHandler) ResetSession(c *gin.Context) {
	h.LogRequest(c, "Resetting session")

	insights, err := h.tutorService.Reset(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Session reset", insights)
}

// ExportInsights downloads the insights report as a spreadsheet
// @Summary Export insights
// @Tags tutor
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /insights/export [get]
func (h *TutorHandler) ExportInsights(c *gin.Context) {
	h.LogRequest(c, "Exporting insights")

	data, err := h.tutorService.ExportInsights(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.sendSpreadsheet(c, "insights", data)
}

// ListQuestions lists the question bank without answers
// @Summary List questions
// @Tags questions
// @Produce json
// @Success 200 {object} models.QuestionBankResponse
// @Router /questions [get]
func (h *TutorHandler) ListQuestions(c *gin.Context) {
	resp, err := h.tutorService.Questions(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportQuestions downloads the question bank as a spreadsheet
// @Summary Export questions
// @Tags questions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /questions/export [get]
func (h *TutorHandler) ExportQuestions(c *gin.Context) {
	h.LogRequest(c, "Exporting question bank")

	data, err := h.tutorService.ExportQuestions(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.sendSpreadsheet(c, "questions", data)
}

func (h *TutorHandler) sendSpreadsheet(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, spreadsheetContentType, data)
}

func (h *TutorHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		h.RespondWithError(c, http.StatusBadRequest, CodeValidationFailed, "Validation failed", err, validationErrors)
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, CodeValidationFailed, "Validation failed", err, err.Error())
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, CodeQuestionNotFound, "Question not found", err)
	case services.IsUnavailable(err):
		h.RespondWithError(c, http.StatusServiceUnavailable, CodeNoQuestions, "No questions available", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, CodeInternalError, "Internal server error", err)
	}
}
