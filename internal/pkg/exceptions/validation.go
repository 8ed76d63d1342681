package exceptions

import (
	"strings"
	"vitalia-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return strings.ToLower(firstErr.Field()) + " " + messageForTag(firstErr.Tag(), firstErr.Param())
	}
	return constvars.ErrDevInvalidInput
}

// FieldErrorsFromValidator flattens validator errors into the enumerable
// field/reason format returned to clients.
func FieldErrorsFromValidator(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, validationError := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:  strings.ToLower(validationError.Field()),
			Reason: messageForTag(validationError.Tag(), validationError.Param()),
		})
	}
	return fieldErrors
}

func messageForTag(tag, param string) string {
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(param), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", param, 1)
		}
	}
	return customMessage
}
