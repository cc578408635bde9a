// Package sanitizer provides small, stateless helpers for cleaning user input
// before it is validated or rendered.
//
// Helpers fall into three groups:
//
//   - Numeric: Clamp and ClampMin constrain counters and page numbers.
//   - Strings: trimming, whitespace normalisation and character filters such
//     as KeepDecimal (used for live currency formatting).
//   - Markup: StripHTML removes tags from free-text input using a bluemonday
//     strict policy.
//
// Apply and Compose chain helpers into pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.Trim,
//	)
//	remark := clean(raw)
package sanitizer
