package workspace

import "context"

// Store keeps workspaces keyed by visitor ID. A visitor with nothing stored
// gets New().
type Store interface {
	Load(ctx context.Context, visitorID string) (Workspace, error)
	// Update loads the workspace, applies fn and saves the result. Updates for
	// the same visitor are serialised. If fn fails nothing is saved.
	Update(ctx context.Context, visitorID string, fn func(*Workspace) error) (Workspace, error)
	Ping(ctx context.Context) error
}
