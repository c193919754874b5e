package errors

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromValidator adds the field errors reported by go-playground/validator to vb.
// Field paths drop the root struct name, so "RPGState.player.name" is recorded
// as "player.name". Errors that are not validator.ValidationErrors are recorded
// under the empty path.
func FromValidator(err error, vb *ValidationBuilder) {
	if err == nil {
		return
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		vb.Field("", err.Error())
		return
	}

	for _, fe := range validationErrors {
		vb.Field(fieldPath(fe.Namespace()), tagMessage(fe))
	}
}

func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "unique":
		if fe.Param() != "" {
			return "must have unique " + strings.ToLower(fe.Param()) + " values"
		}
		return "must have unique values"
	default:
		return "is invalid"
	}
}
