package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/infrastructure/persistence/sqlite/sqlc"
)

const lastWorkspaceKey = "last_workspace_id"

type appStateRepo struct {
	queries sqlc.Querier
}

// NewAppStateRepository creates a key/value app state repository.
func NewAppStateRepository(db *sql.DB) repository.AppStateRepository {
	return &appStateRepo{queries: sqlc.New(db)}
}

// GetLastWorkspace returns the workspace that was active at last exit, or "".
func (r *appStateRepo) GetLastWorkspace(ctx context.Context) (entity.WorkspaceID, error) {
	value, err := r.queries.GetAppState(ctx, lastWorkspaceKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entity.WorkspaceID(value), nil
}

// SetLastWorkspace records the active workspace. An empty id clears it.
func (r *appStateRepo) SetLastWorkspace(ctx context.Context, id entity.WorkspaceID) error {
	if id == "" {
		return r.queries.DeleteAppState(ctx, lastWorkspaceKey)
	}
	return r.queries.SetAppState(ctx, sqlc.SetAppStateParams{
		Key:   lastWorkspaceKey,
		Value: string(id),
	})
}
