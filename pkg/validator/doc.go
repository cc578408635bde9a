// Package validator builds small declarative validation rules.
//
// Each exported rule constructor returns a Rule that pairs a Check function
// with a translation-friendly ValidationError. Apply evaluates rules in order
// and collects the failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.EmailShape("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("email")
//	}
//
// Shape rules (EmailShape, Amount) accept blank input so that a field
// reports "is required" rather than a format error when it is empty. Combine
// them with Required for mandatory fields.
package validator
