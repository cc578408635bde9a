package workspace

import "errors"

var (
	ErrUnknownTable     = errors.New("workspace: unknown table")
	ErrInvalidVisitor   = errors.New("workspace: invalid visitor id")
	ErrStoreUnavailable = errors.New("workspace: store unavailable")
	ErrCorruptState     = errors.New("workspace: corrupt stored state")
	ErrConflict         = errors.New("workspace: concurrent update conflict")
)
