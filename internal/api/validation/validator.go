package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// nameRegex allows letters (any script), combining marks, whitespace and a
// small set of name punctuation.
var nameRegex = regexp.MustCompile(`^[\p{L}\p{M}\s'.,-]+$`)

// New returns a validator with the custom validators registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("person_name", validatePersonName)
}

// validatePersonName checks the name charset
func validatePersonName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// fieldMessages maps field+tag to the human-readable message returned to the
// caller. Only the first error is surfaced.
var fieldMessages = map[string]map[string]string{
	"Name": {
		"required":    "Name must be at least 2 characters",
		"min":         "Name must be at least 2 characters",
		"max":         "Name must be under 100 characters",
		"person_name": "Name contains invalid characters",
	},
	"Email": {
		"required": "Please enter a valid email address",
		"email":    "Please enter a valid email address",
		"max":      "Email must be under 254 characters",
	},
	"Message": {
		"required": "Message must be at least 10 characters",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be under 2000 characters",
	},
}

// FirstError formats the first validation error into a user-facing message.
func FirstError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		e := validationErrors[0]
		if byTag, ok := fieldMessages[e.Field()]; ok {
			if msg, ok := byTag[e.Tag()]; ok {
				return msg
			}
		}
		return "Invalid value for " + e.Field()
	}
	return "Invalid request body"
}
