package form

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/salesdesk/pkg/sanitizer"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// maxIntegerDigits bounds what gets reformatted. Past a trillion a float64
// can no longer hold three exact fraction digits and the grouped output
// would show rounding noise.
const maxIntegerDigits = 12

// FormatCurrencyInput rewrites a typed amount as "$" followed by the number
// with en-US thousands grouping and at most three fraction digits.
// Input that holds no leading number, or whose integer part is longer than
// twelve digits, is returned unchanged.
//
//	FormatCurrencyInput("12000")  // "$12,000"
//	FormatCurrencyInput("1234.5") // "$1,234.5"
//	FormatCurrencyInput("abc")    // "abc"
func FormatCurrencyInput(raw string) string {
	digits := leadingDecimal(sanitizer.KeepDecimal(raw))
	if digits == "" || integerDigits(digits) > maxIntegerDigits {
		return raw
	}

	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return raw
	}

	return "$" + currencyPrinter.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(3)))
}

// leadingDecimal returns the longest prefix of s that reads as a decimal
// number, so "1.2.3" yields "1.2". A lone "." is not a number.
func leadingDecimal(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], '.'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	if strings.Trim(s, ".") == "" {
		return ""
	}
	return s
}

func integerDigits(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return len(strings.TrimLeft(s, "0"))
}
