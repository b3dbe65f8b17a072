package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParseError converts binding errors into a field -> message map.
// Non-validator errors end up under the "error" key.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[strings.ToLower(fe.Field())] = message(fe)
		}
	} else if err != nil {
		fields["error"] = err.Error()
	}
	return fields
}

// IsValidationError reports whether err came from struct tag validation.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of the following: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}
