package port

import "github.com/termify/termify/internal/domain/entity"

// LayoutProvider exposes the live layout of the active workspace.
// Implemented by the workspace coordinator so the snapshot service can read state.
type LayoutProvider interface {
	// CurrentLayout returns a snapshot of the active workspace's layout, or
	// nil when no workspace is active.
	CurrentLayout() *entity.LayoutState
}
