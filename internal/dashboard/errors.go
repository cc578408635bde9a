package dashboard

import "errors"

var (
	ErrNoVisitor     = errors.New("dashboard: request has no visitor id")
	ErrUnknownAction = errors.New("dashboard: unknown selection action")
)
