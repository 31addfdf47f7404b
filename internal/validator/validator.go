package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator combines struct tag validation with question bank rules.
type Validator struct {
	structValidator   *validator.Validate
	questionValidator *QuestionValidator
}

func New() *Validator {
	structValidator := validator.New()

	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		questionValidator: NewQuestionValidator(structValidator),
	}
}

// ValidateStruct validates struct tags only and returns the raw validator error.
func (v *Validator) ValidateStruct(s any) error {
	return v.structValidator.Struct(s)
}

// Validate validates struct tags and reports failures as ValidationErrors.
func (v *Validator) Validate(s any) error {
	err := v.ValidateStruct(s)
	if err == nil {
		return nil
	}
	if errs := ToValidationErrors(err); len(errs) > 0 {
		return errs
	}
	return err
}

func (v *Validator) Question() *QuestionValidator {
	return v.questionValidator
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("topic", validateTopic)

	// Report json field names in errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateTopic(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ParseTopic(value)
	return ok
}
