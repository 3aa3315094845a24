package models

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	namePattern     = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '\-.,]*$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{3,15}$`)
	telegramPattern = regexp.MustCompile(`^@[A-Za-z0-9_]{5,32}$`)
	tagPattern      = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)
)

// validate is shared by every scalar constructor. validator.Validate is safe for
// concurrent use once all validations are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("pb_name", matches(namePattern))
	v.RegisterValidation("pb_phone", matches(phonePattern))
	v.RegisterValidation("pb_telegram", matches(telegramPattern))
	v.RegisterValidation("pb_tag", matches(tagPattern))

	return v
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// ValidationError reports a scalar that failed its constraint.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

// check runs the validator tag against value and converts a failure into a
// ValidationError carrying the human-readable constraint.
func check(field, value, tag, constraint string) error {
	if err := validate.Var(value, tag); err != nil {
		return &ValidationError{Field: field, Value: value, Constraint: constraint}
	}
	return nil
}
