package port

import (
	"context"

	"github.com/termify/termify/internal/domain/entity"
)

// WorkspaceService is the server-side workspace resource.
type WorkspaceService interface {
	List(ctx context.Context) ([]*entity.Workspace, error)
	Get(ctx context.Context, id entity.WorkspaceID) (*entity.Workspace, error)
	Create(ctx context.Context, input entity.WorkspaceInput) (*entity.Workspace, error)
	Update(ctx context.Context, id entity.WorkspaceID, patch entity.WorkspacePatch) (*entity.Workspace, error)
	Delete(ctx context.Context, id entity.WorkspaceID) error
	// Reorder persists a new display order. ids must list every workspace.
	Reorder(ctx context.Context, ids []entity.WorkspaceID) error
}
