package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// firstViolation resolves the first failed field/tag pair to its
// user-facing message, mirroring how the API reports a single
// validation detail per response.
func firstViolation(err error, messages map[string]string) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		field := verrs[0]
		if msg, exists := messages[field.Field()+"."+field.Tag()]; exists {
			return msg
		}
		return field.Field() + " is invalid"
	}
	return "Invalid request body"
}
