package entity

import "errors"

var (
	// ErrInvalidPaneTree is returned when a pane tree violates its structural invariants.
	ErrInvalidPaneTree = errors.New("invalid pane tree")

	// ErrEmptyTerminalID is returned when a terminal tab is opened without a terminal.
	ErrEmptyTerminalID = errors.New("terminal id is required")

	// ErrDuplicateTerminalPane is returned when unique terminal panes are enforced
	// and a split would show a terminal already present in the tree.
	ErrDuplicateTerminalPane = errors.New("terminal already shown in another pane")

	// ErrInvalidWorkspace is returned for malformed workspace input.
	ErrInvalidWorkspace = errors.New("invalid workspace")

	// ErrInvalidLayout is returned when a persisted layout cannot be restored.
	ErrInvalidLayout = errors.New("invalid layout state")
)
