package config

import "errors"

var (
	// ErrParsingConfig wraps failures from the env parser.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a concurrent load of the same type failed.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
