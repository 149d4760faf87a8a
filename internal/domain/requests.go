package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Limits match what the API enforces server-side; validating locally
// keeps obviously bad requests off the wire.
type SignUpRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PostDraft struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (r SignUpRequest) Validate() error {
	return formatValidationError(validate.Struct(r))
}

func (c Credentials) Validate() error {
	return formatValidationError(validate.Struct(c))
}

func (d PostDraft) Validate() error {
	return formatValidationError(validate.Struct(d))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldMessage(fieldError))
	}

	return fmt.Errorf("invalid request: %s", strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
