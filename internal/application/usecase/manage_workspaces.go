package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/logging"
)

var (
	// ErrLastWorkspace is returned when deleting the only remaining workspace.
	ErrLastWorkspace = errors.New("cannot delete last workspace")

	// ErrWorkspaceNotFound is returned when a workspace id is unknown.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrInvalidWorkspaceOrder is returned when a reorder does not list every
	// workspace exactly once.
	ErrInvalidWorkspaceOrder = errors.New("workspace order must list every workspace exactly once")
)

// ManageWorkspacesUseCase handles workspace CRUD against the server and the
// layout side effects of deletion.
type ManageWorkspacesUseCase struct {
	workspaces port.WorkspaceService
	layouts    repository.LayoutRepository
}

// NewManageWorkspacesUseCase creates a new workspace management use case.
func NewManageWorkspacesUseCase(
	workspaces port.WorkspaceService,
	layouts repository.LayoutRepository,
) *ManageWorkspacesUseCase {
	return &ManageWorkspacesUseCase{
		workspaces: workspaces,
		layouts:    layouts,
	}
}

// List returns all workspaces in display order.
func (uc *ManageWorkspacesUseCase) List(ctx context.Context) ([]*entity.Workspace, error) {
	list, err := uc.workspaces.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	entity.SortWorkspaces(list)
	return list, nil
}

// Get fetches one workspace.
func (uc *ManageWorkspacesUseCase) Get(ctx context.Context, id entity.WorkspaceID) (*entity.Workspace, error) {
	ws, err := uc.workspaces.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workspace %s: %w", id, err)
	}
	if ws == nil {
		return nil, fmt.Errorf("get workspace %s: %w", id, ErrWorkspaceNotFound)
	}
	return ws, nil
}

// Create creates a workspace.
func (uc *ManageWorkspacesUseCase) Create(ctx context.Context, input entity.WorkspaceInput) (*entity.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ws, err := uc.workspaces.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("workspace_id", string(ws.ID)).
		Str("name", ws.Name).
		Msg("workspace created")
	return ws, nil
}

// Update applies a partial update. An empty patch just returns the workspace.
func (uc *ManageWorkspacesUseCase) Update(
	ctx context.Context,
	id entity.WorkspaceID,
	patch entity.WorkspacePatch,
) (*entity.Workspace, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return uc.Get(ctx, id)
	}

	ws, err := uc.workspaces.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update workspace %s: %w", id, err)
	}

	logging.FromContext(ctx).Info().
		Str("workspace_id", string(id)).
		Msg("workspace updated")
	return ws, nil
}

// DeleteWorkspaceOutput contains the workspaces left after a deletion.
type DeleteWorkspaceOutput struct {
	Remaining []*entity.Workspace // Display order
}

// Delete removes a workspace and discards its persisted layout. The last
// remaining workspace cannot be deleted.
func (uc *ManageWorkspacesUseCase) Delete(ctx context.Context, id entity.WorkspaceID) (*DeleteWorkspaceOutput, error) {
	log := logging.FromContext(ctx)

	list, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]*entity.Workspace, 0, len(list))
	found := false
	for _, ws := range list {
		if ws.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, ws)
	}
	if !found {
		return nil, fmt.Errorf("delete workspace %s: %w", id, ErrWorkspaceNotFound)
	}
	if len(remaining) == 0 {
		log.Warn().
			Str("workspace_id", string(id)).
			Msg("refusing to delete last workspace")
		return nil, ErrLastWorkspace
	}

	if err := uc.workspaces.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete workspace %s: %w", id, err)
	}

	if uc.layouts != nil {
		if err := uc.layouts.Delete(ctx, id); err != nil {
			log.Warn().
				Err(err).
				Str("workspace_id", string(id)).
				Msg("failed to discard layout of deleted workspace")
		}
	}

	log.Info().
		Str("workspace_id", string(id)).
		Int("remaining", len(remaining)).
		Msg("workspace deleted")

	return &DeleteWorkspaceOutput{Remaining: remaining}, nil
}

// Reorder persists a new display order. Pane trees are unaffected.
func (uc *ManageWorkspacesUseCase) Reorder(ctx context.Context, ids []entity.WorkspaceID) error {
	list, err := uc.workspaces.List(ctx)
	if err != nil {
		return fmt.Errorf("reorder workspaces: %w", err)
	}
	if len(ids) != len(list) {
		return ErrInvalidWorkspaceOrder
	}

	known := make(map[entity.WorkspaceID]bool, len(list))
	for _, ws := range list {
		known[ws.ID] = false
	}
	for _, id := range ids {
		seen, ok := known[id]
		if !ok || seen {
			return ErrInvalidWorkspaceOrder
		}
		known[id] = true
	}

	if err := uc.workspaces.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reorder workspaces: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int("count", len(ids)).
		Msg("workspaces reordered")
	return nil
}
