// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable ending for a failed binding rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return fmt.Sprintf(" must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf(" must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf(" must have length %s", fe.Param())
	case "gte":
		return fmt.Sprintf(" must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf(" must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf(" must be one of [%s]", fe.Param())
	case "digits":
		return " must contain only digits"
	case "business_type":
		return " is not a supported business type"
	}

	return " is invalid"
}

// BindErrorMsg describes a request binding failure.
//
// Validation failures are reported for the first failing field; anything
// else, like malformed JSON, is reported as is.
func BindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return err.Error()
}
