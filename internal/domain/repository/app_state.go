package repository

import (
	"context"

	"github.com/termify/termify/internal/domain/entity"
)

// AppStateRepository stores small pieces of client state that survive restarts.
type AppStateRepository interface {
	// GetLastWorkspace returns the workspace that was active when the client
	// last ran, or "" when unknown.
	GetLastWorkspace(ctx context.Context) (entity.WorkspaceID, error)
	SetLastWorkspace(ctx context.Context, id entity.WorkspaceID) error
}
