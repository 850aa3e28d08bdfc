package api

import (
	"context"
	"net/http"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/domain/entity"
)

// Terminals is the terminal resource of the server.
type Terminals struct {
	c *Client
}

var _ port.TerminalService = (*Terminals)(nil)

// Terminals returns the terminal endpoint group.
func (c *Client) Terminals() *Terminals {
	return &Terminals{c: c}
}

// Create starts a terminal on the server.
func (t *Terminals) Create(ctx context.Context, spec entity.TerminalSpec) (*entity.Terminal, error) {
	var term entity.Terminal
	if err := t.c.doJSON(ctx, http.MethodPost, "/api/terminals", spec, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

// List returns every terminal the server knows about.
func (t *Terminals) List(ctx context.Context) ([]*entity.Terminal, error) {
	var terms []*entity.Terminal
	if err := t.c.doJSON(ctx, http.MethodGet, "/api/terminals", nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// Get fetches one terminal.
func (t *Terminals) Get(ctx context.Context, id entity.TerminalID) (*entity.Terminal, error) {
	var term entity.Terminal
	if err := t.c.doJSON(ctx, http.MethodGet, "/api/terminals/"+escape(string(id)), nil, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

// Rename changes a terminal's display name.
func (t *Terminals) Rename(ctx context.Context, id entity.TerminalID, name string) (*entity.Terminal, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var term entity.Terminal
	if err := t.c.doJSON(ctx, http.MethodPatch, "/api/terminals/"+escape(string(id)), body, &term); err != nil {
		return nil, err
	}
	return &term, nil
}
