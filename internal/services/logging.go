package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, service string) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", service),
	}
}

// operationStatus classifies err for logs. Expected outcomes such as an
// unknown question are not logged as errors.
func operationStatus(err error) (string, slog.Level) {
	switch {
	case err == nil:
		return "success", slog.LevelDebug
	case IsValidation(err):
		return "validation_error", slog.LevelWarn
	case IsNotFound(err):
		return "not_found", slog.LevelInfo
	case IsUnavailable(err):
		return "unavailable", slog.LevelWarn
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled", slog.LevelInfo
	default:
		return "error", slog.LevelError
	}
}

func (l *ServiceLogger) LogOperation(ctx context.Context, operation string, duration time.Duration, err error) {
	status, level := operationStatus(err)

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))

		var validationErrs ValidationErrors
		if errors.As(err, &validationErrs) {
			attrs = append(attrs, slog.Int("validation_errors_count", len(validationErrs)))
			for i, fe := range validationErrs {
				if i == 5 {
					break
				}
				attrs = append(attrs, slog.Group(fmt.Sprintf("error_%d", i+1),
					slog.String("field", fe.Field),
					slog.String("message", fe.Message),
				))
			}
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// ContextualLogger times one operation.
type ContextualLogger struct {
	logger    *ServiceLogger
	ctx       context.Context
	operation string
	start     time.Time
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation string) *ContextualLogger {
	return &ContextualLogger{
		logger:    l,
		ctx:       ctx,
		operation: operation,
		start:     time.Now(),
	}
}

// LogResult logs the outcome with the time elapsed since WithOperation.
func (cl *ContextualLogger) LogResult(err error) {
	cl.logger.LogOperation(cl.ctx, cl.operation, time.Since(cl.start), err)
}
