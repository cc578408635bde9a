package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy drops every element and attribute and keeps text content.
var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes all markup from s and unescapes the remaining entities,
// leaving plain text suitable for storing in a form value.
func StripHTML(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
