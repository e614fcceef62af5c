package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validation wraps a validator instance with the custom tags the catalog
// models use.
type Validation struct {
	validate *validator.Validate
}

// NewValidation creates a Validation with the "category" tag registered.
func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return ValidCategory(fl.Field().String())
	})
	return &Validation{validate: v}
}

// FieldError describes a single failed field, suitable for inclusion in a
// 400 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
}

// Validate checks i against its struct tags and returns one FieldError per
// failed field, or nil when the value is valid.
func (v *Validation) Validate(i interface{}) []FieldError {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors []FieldError
	for _, ve := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   ve.Field(),
			Message: fmt.Sprintf("failed on the '%s' tag", ve.Tag()),
		})
	}
	return fieldErrors
}
