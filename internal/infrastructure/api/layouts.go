package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/infrastructure/layoutcodec"
)

// maxLayoutBytes bounds the blob read from the server.
const maxLayoutBytes = 4 << 20

// LayoutStore keeps workspace layouts on the server so every client of the
// same account sees the same panes.
type LayoutStore struct {
	c *Client
}

var _ repository.LayoutRepository = (*LayoutStore)(nil)

// Layouts returns the remote layout store.
func (c *Client) Layouts() *LayoutStore {
	return &LayoutStore{c: c}
}

func layoutPath(id entity.WorkspaceID) string {
	return workspacePath(id) + "/layout"
}

// Save uploads the layout blob.
func (s *LayoutStore) Save(ctx context.Context, state *entity.LayoutState) error {
	if state == nil || state.WorkspaceID == "" {
		return fmt.Errorf("save layout: workspace id required")
	}
	data, err := layoutcodec.Encode(state)
	if err != nil {
		return err
	}

	req, err := s.c.newRequest(ctx, http.MethodPut, layoutPath(state.WorkspaceID), bytes.NewReader(data))
	if err != nil {
		return err
	}
	resp, err := s.c.send(req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// Get downloads and decodes the layout blob. A 404 means no layout.
func (s *LayoutStore) Get(ctx context.Context, id entity.WorkspaceID) (*entity.LayoutState, error) {
	req, err := s.c.newRequest(ctx, http.MethodGet, layoutPath(id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode >= 400 {
		return nil, readAPIError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLayoutBytes))
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", id, err)
	}
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return nil, nil
	}

	state, err := layoutcodec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", id, err)
	}
	if state.WorkspaceID == "" {
		state.WorkspaceID = id
	}
	return state, nil
}

// Delete removes the stored layout. A missing layout is not an error.
func (s *LayoutStore) Delete(ctx context.Context, id entity.WorkspaceID) error {
	err := s.c.doJSON(ctx, http.MethodDelete, layoutPath(id), nil, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}
