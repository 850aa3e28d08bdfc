package api

import (
	"context"
	"net/http"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/domain/entity"
)

// Workspaces is the workspace resource of the server.
type Workspaces struct {
	c *Client
}

var _ port.WorkspaceService = (*Workspaces)(nil)

// Workspaces returns the workspace endpoint group.
func (c *Client) Workspaces() *Workspaces {
	return &Workspaces{c: c}
}

func workspacePath(id entity.WorkspaceID) string {
	return "/api/workspaces/" + escape(string(id))
}

// List returns all workspaces.
func (w *Workspaces) List(ctx context.Context) ([]*entity.Workspace, error) {
	var list []*entity.Workspace
	if err := w.c.doJSON(ctx, http.MethodGet, "/api/workspaces", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get fetches one workspace.
func (w *Workspaces) Get(ctx context.Context, id entity.WorkspaceID) (*entity.Workspace, error) {
	var ws entity.Workspace
	if err := w.c.doJSON(ctx, http.MethodGet, workspacePath(id), nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Create creates a workspace.
func (w *Workspaces) Create(ctx context.Context, input entity.WorkspaceInput) (*entity.Workspace, error) {
	var ws entity.Workspace
	if err := w.c.doJSON(ctx, http.MethodPost, "/api/workspaces", input, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Update sends a partial update; nil fields are left untouched.
func (w *Workspaces) Update(ctx context.Context, id entity.WorkspaceID, patch entity.WorkspacePatch) (*entity.Workspace, error) {
	var ws entity.Workspace
	if err := w.c.doJSON(ctx, http.MethodPatch, workspacePath(id), patch, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Delete removes a workspace.
func (w *Workspaces) Delete(ctx context.Context, id entity.WorkspaceID) error {
	return w.c.doJSON(ctx, http.MethodDelete, workspacePath(id), nil, nil)
}

// Reorder stores a new display order.
func (w *Workspaces) Reorder(ctx context.Context, ids []entity.WorkspaceID) error {
	body := struct {
		IDs []entity.WorkspaceID `json:"ids"`
	}{IDs: ids}
	return w.c.doJSON(ctx, http.MethodPut, "/api/workspaces/order", body, nil)
}
