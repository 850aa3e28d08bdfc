package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WorkspaceID uniquely identifies a workspace.
type WorkspaceID string

// Workspace is a named, user-organized container for terminals and their layout.
// The pane tree and tab registry of a workspace live in its LayoutState.
type Workspace struct {
	ID            WorkspaceID `json:"id" yaml:"id"`
	Name          string      `json:"name" yaml:"name"`
	Color         string      `json:"color,omitempty" yaml:"color,omitempty"`
	Icon          string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	IsDefault     bool        `json:"is_default" yaml:"is_default"`
	TerminalCount int         `json:"terminal_count" yaml:"terminal_count"` // Derived, not authoritative
	Position      int         `json:"position" yaml:"position"`
	CreatedAt     time.Time   `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" yaml:"updated_at"`
}

// WorkspaceInput carries the fields needed to create a workspace.
type WorkspaceInput struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Icon      string `json:"icon,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// Validate checks the input before it is sent to the server.
func (in WorkspaceInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWorkspace)
	}
	return nil
}

// WorkspacePatch is a partial update. Nil fields are left unchanged.
type WorkspacePatch struct {
	Name      *string `json:"name,omitempty"`
	Color     *string `json:"color,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p WorkspacePatch) Empty() bool {
	return p.Name == nil && p.Color == nil && p.Icon == nil && p.IsDefault == nil
}

// Validate rejects patches that would blank the name.
func (p WorkspacePatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidWorkspace)
	}
	return nil
}

// Apply returns a copy of w with the patch applied.
func (p WorkspacePatch) Apply(w Workspace) Workspace {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Color != nil {
		w.Color = *p.Color
	}
	if p.Icon != nil {
		w.Icon = *p.Icon
	}
	if p.IsDefault != nil {
		w.IsDefault = *p.IsDefault
	}
	return w
}

// SortWorkspaces orders workspaces by display position, then name.
func SortWorkspaces(workspaces []*Workspace) {
	sort.SliceStable(workspaces, func(i, j int) bool {
		if workspaces[i].Position != workspaces[j].Position {
			return workspaces[i].Position < workspaces[j].Position
		}
		return workspaces[i].Name < workspaces[j].Name
	})
}

// DefaultWorkspace returns the workspace flagged as default, or the first
// one in display order.
func DefaultWorkspace(workspaces []*Workspace) *Workspace {
	if len(workspaces) == 0 {
		return nil
	}
	for _, ws := range workspaces {
		if ws.IsDefault {
			return ws
		}
	}
	return workspaces[0]
}
