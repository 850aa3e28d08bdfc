package entity

import (
	"fmt"
	"time"
)

// TerminalStatus is the server-reported state of a terminal.
type TerminalStatus string

const (
	TerminalRunning TerminalStatus = "running"
	TerminalStopped TerminalStatus = "stopped"
	TerminalError   TerminalStatus = "error"
)

// Terminal is a live terminal resource owned by the server.
type Terminal struct {
	ID          TerminalID     `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Status      TerminalStatus `json:"status" yaml:"status"`
	WorkspaceID WorkspaceID    `json:"workspace_id,omitempty" yaml:"workspace_id,omitempty"`
	Cols        int            `json:"cols,omitempty" yaml:"cols,omitempty"`
	Rows        int            `json:"rows,omitempty" yaml:"rows,omitempty"`
	WorkingDir  string         `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
}

// Default terminal dimensions used when a spec leaves them unset.
const (
	DefaultTerminalCols = 80
	DefaultTerminalRows = 24
)

// TerminalSpec describes a terminal to create.
type TerminalSpec struct {
	Name        string      `json:"name"`
	Cols        int         `json:"cols"`
	Rows        int         `json:"rows"`
	WorkingDir  string      `json:"working_dir,omitempty"`
	WorkspaceID WorkspaceID `json:"workspace_id,omitempty"`
}

// WithDefaults fills zero dimensions.
func (s TerminalSpec) WithDefaults() TerminalSpec {
	if s.Cols == 0 {
		s.Cols = DefaultTerminalCols
	}
	if s.Rows == 0 {
		s.Rows = DefaultTerminalRows
	}
	return s
}

// Validate rejects negative dimensions.
func (s TerminalSpec) Validate() error {
	if s.Cols < 0 || s.Rows < 0 {
		return fmt.Errorf("invalid terminal size %dx%d", s.Cols, s.Rows)
	}
	return nil
}
