package validator

import (
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// QuestionValidator checks question records entering the bank.
type QuestionValidator struct {
	structValidator *validator.Validate
}

func NewQuestionValidator(structValidator *validator.Validate) *QuestionValidator {
	return &QuestionValidator{structValidator: structValidator}
}

// ValidateQuestion applies struct tags and the bank rules to one question.
func (v *QuestionValidator) ValidateQuestion(q *models.Question) ValidationErrors {
	if q == nil {
		return ValidationErrors{{Field: "question", Message: "is required", Rule: "required"}}
	}

	if err := v.structValidator.Struct(q); err != nil {
		return ToValidationErrors(err)
	}

	var errs ValidationErrors
	if q.Correct != nil && *q.Correct >= len(q.Options) {
		errs = append(errs, *NewValidationErrorWithRule("correct", "must reference one of the options", "correct_option", *q.Correct))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			errs = append(errs, *NewValidationErrorWithRule("options", "must not repeat an option", "unique_options", opt))
			break
		}
		seen[opt] = true
	}

	return errs
}

// ValidateBank validates every question and reports duplicate ids. Errors
// are keyed by position in the batch.
func (v *QuestionValidator) ValidateBank(questions []*models.Question) map[int]ValidationErrors {
	result := make(map[int]ValidationErrors)
	ids := make(map[uint]bool, len(questions))

	for i, q := range questions {
		errs := v.ValidateQuestion(q)
		if q != nil && q.ID != 0 {
			if ids[q.ID] {
				errs = append(errs, *NewValidationErrorWithRule("id", "must be unique within the question bank", "unique_id", q.ID))
			}
			ids[q.ID] = true
		}
		if len(errs) > 0 {
			result[i] = errs
		}
	}

	return result
}
