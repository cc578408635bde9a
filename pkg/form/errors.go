package form

import "errors"

var (
	// ErrUnknownForm is returned when a form id does not name a known schema.
	ErrUnknownForm = errors.New("unknown form")

	// ErrUnknownField is returned when a field name is not part of the schema.
	ErrUnknownField = errors.New("unknown form field")
)
