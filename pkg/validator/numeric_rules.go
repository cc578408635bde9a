package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalRegex accepts plain decimal notation with an optional sign and
// exponent. Spellings strconv also knows, such as "Inf", "NaN" or hex
// floats, are not amounts.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Amount validates that a money string parses as a number once currency
// symbols and thousands separators ("$" and ",") are removed.
// Blank values pass; pair with Required.
func Amount(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			_, ok := ParseAmount(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid amount",
			TranslationKey: "validation.amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParseAmount strips "$" and "," from s and parses the rest as a decimal
// number. Nothing left after stripping, or anything that is not plain
// decimal notation, is not an amount.
func ParseAmount(s string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(s)
	cleaned = strings.TrimSpace(cleaned)
	if !decimalRegex.MatchString(cleaned) {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
