package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap flattens binding validation failures into a
// field -> failed-rule map for the error response body. Errors that
// are not validator.ValidationErrors return nil.
func ValidationErrorMap(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	errorResponse := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}
