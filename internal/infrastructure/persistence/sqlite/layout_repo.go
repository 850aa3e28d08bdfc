package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/infrastructure/layoutcodec"
	"github.com/termify/termify/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/termify/termify/internal/logging"
)

type layoutRepo struct {
	queries sqlc.Querier
}

// NewLayoutRepository creates a layout repository backed by the local database.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return newLayoutRepo(sqlc.New(db))
}

func newLayoutRepo(queries sqlc.Querier) *layoutRepo {
	return &layoutRepo{queries: queries}
}

// Save inserts or replaces the layout of a workspace.
func (r *layoutRepo) Save(ctx context.Context, state *entity.LayoutState) error {
	if state == nil {
		return errors.New("layout state cannot be nil")
	}
	if state.WorkspaceID == "" {
		return errors.New("layout state has no workspace id")
	}

	data, err := layoutcodec.Encode(state)
	if err != nil {
		return err
	}

	savedAt := state.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(state.WorkspaceID)).
		Int("tab_count", len(state.Tabs)).
		Int("pane_count", state.CountPanes()).
		Int("bytes", len(data)).
		Msg("saving layout")

	return r.queries.UpsertWorkspaceLayout(ctx, sqlc.UpsertWorkspaceLayoutParams{
		WorkspaceID: string(state.WorkspaceID),
		Version:     int64(entity.LayoutStateVersion),
		Data:        data,
		PaneCount:   int64(state.CountPanes()),
		TabCount:    int64(len(state.Tabs)),
		UpdatedAt:   savedAt.UTC(),
	})
}

// Get returns the stored layout, or nil when the workspace has none.
// Undecodable rows yield repository.ErrCorruptLayout.
func (r *layoutRepo) Get(ctx context.Context, workspaceID entity.WorkspaceID) (*entity.LayoutState, error) {
	row, err := r.queries.GetWorkspaceLayout(ctx, string(workspaceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout %s: %w", workspaceID, err)
	}

	state, err := layoutcodec.Decode(row.Data)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("workspace_id", string(workspaceID)).
			Int64("row_version", row.Version).
			Msg("stored layout cannot be decoded")
		return nil, err
	}
	if state.WorkspaceID == "" {
		state.WorkspaceID = workspaceID
	}
	return state, nil
}

// Delete removes the stored layout of a workspace. Missing rows are not an error.
func (r *layoutRepo) Delete(ctx context.Context, workspaceID entity.WorkspaceID) error {
	logging.FromContext(ctx).Debug().
		Str("workspace_id", string(workspaceID)).
		Msg("deleting layout")
	return r.queries.DeleteWorkspaceLayout(ctx, string(workspaceID))
}
