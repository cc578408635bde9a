package validator

import (
	"regexp"
	"strings"
)

// emailShapeRegex is deliberately loose: something@something.something.
var emailShapeRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

// EmailShape validates that a value looks like an email address.
// It does not attempt RFC 5322 parsing. Blank values pass; pair with Required.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			if v == "" {
				return true
			}
			return emailShapeRegex.MatchString(v)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
