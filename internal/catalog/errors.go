package catalog

import "errors"

var ErrInvalidFixture = errors.New("invalid catalog fixture")
