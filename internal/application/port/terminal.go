package port

import (
	"context"

	"github.com/termify/termify/internal/domain/entity"
)

// TerminalService is the server-side terminal resource. Terminals are created
// and owned by the server; the layout only references them by id.
type TerminalService interface {
	// Create starts a terminal and returns it with its server-assigned id.
	Create(ctx context.Context, spec entity.TerminalSpec) (*entity.Terminal, error)
	// List returns all terminals visible to the current user.
	List(ctx context.Context) ([]*entity.Terminal, error)
	// Get fetches a single terminal.
	Get(ctx context.Context, id entity.TerminalID) (*entity.Terminal, error)
	// Rename updates a terminal's display name.
	Rename(ctx context.Context, id entity.TerminalID, name string) (*entity.Terminal, error)
}
