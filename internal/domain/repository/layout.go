package repository

import (
	"context"
	"errors"

	"github.com/termify/termify/internal/domain/entity"
)

// LayoutRepository persists the pane tree and tabs of each workspace.
type LayoutRepository interface {
	// Save stores or replaces the layout of state.WorkspaceID.
	Save(ctx context.Context, state *entity.LayoutState) error

	// Get returns the stored layout, or nil with no error when the workspace
	// has none yet.
	Get(ctx context.Context, workspaceID entity.WorkspaceID) (*entity.LayoutState, error)

	// Delete discards a workspace's layout. Deleting a missing layout is not an error.
	Delete(ctx context.Context, workspaceID entity.WorkspaceID) error
}

// ErrCorruptLayout is returned by layout stores when a stored blob cannot be decoded.
var ErrCorruptLayout = errors.New("corrupt layout blob")
