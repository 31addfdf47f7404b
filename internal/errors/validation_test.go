package errors

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test_field", "test message", "test_value")

	assert.Equal(t, "test_field", err.Field)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test_value", err.Value)
	assert.Equal(t, "validation error on field 'test_field': test message", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	assert.Equal(t, "validation failed: field1 message1", errs.Error())

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("test_field", "test message", "required", "test_value")

	assert.Equal(t, "required", err.Rule)
	assert.Equal(t, "test_field", err.Field)
}

func TestToValidationErrors(t *testing.T) {
	type request struct {
		QuestionID uint     `json:"question_id" validate:"required"`
		TimeTaken  *float64 `json:"time_taken" validate:"omitempty,max=3600"`
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	tooLong := 4000.0
	err := validate.Struct(request{TimeTaken: &tooLong})
	require.Error(t, err)

	errs := ToValidationErrors(fmt.Errorf("decode: %w", err))
	require.Len(t, errs, 2)
	assert.Equal(t, "question_id", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "time_taken", errs[1].Field)
	assert.Equal(t, "must be at most 3600", errs[1].Message)
	assert.Equal(t, "max", errs[1].Rule)

	assert.Nil(t, ToValidationErrors(fmt.Errorf("not a validation error")))
}
