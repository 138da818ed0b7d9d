package api

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate returns validator.ValidationErrors as-is so response.Error can
// turn the first one into a message.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
