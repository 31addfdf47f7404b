package handlers

import (
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// Error codes let clients tell failures apart without parsing messages.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNoQuestions        = "NO_QUESTIONS_AVAILABLE"
	CodeQuestionNotFound   = "QUESTION_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
	spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// BaseHandler provides common logging functionality for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// log returns the request-scoped logger set up by utils.ContextLogger.
func (h *BaseHandler) log(c *gin.Context) utils.Logger {
	return utils.LoggerFromContext(c, h.logger)
}

// LogRequest logs an incoming request with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...any) {
	fields := append([]any{
		"remote_addr", c.ClientIP(),
		"user_agent", c.Request.UserAgent(),
	}, additionalFields...)
	h.log(c).Debug(message, fields...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...any) {
	h.log(c).LogError(err, message, additionalFields...)
}

func (h *BaseHandler) LogWarn(c *gin.Context, message string, additionalFields ...any) {
	h.log(c).Warn(message, additionalFields...)
}

func (h *BaseHandler) LogInfo(c *gin.Context, message string, additionalFields ...any) {
	h.log(c).Info(message, additionalFields...)
}

// RespondWithError sends a consistent error response and logs it. Server
// errors are logged at error level, client errors at warn.
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, code, message string, err error, details ...any) {
	resp := ErrorResponse{
		Message: message,
		Code:    code,
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}

	if err != nil && statusCode >= 500 {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.LogWarn(c, message, "status_code", statusCode, "error", err)
	}

	c.AbortWithStatusJSON(statusCode, resp)
}

// RespondWithSuccess wraps data in a SuccessResponse
func (h *BaseHandler) RespondWithSuccess(c *gin.Context, statusCode int, message string, data any) {
	h.LogInfo(c, message, "status_code", statusCode)
	c.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
	})
}
