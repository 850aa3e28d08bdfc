package usecase

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

// ManageTerminalsUseCase wraps the server-side terminal resource.
type ManageTerminalsUseCase struct {
	terminals port.TerminalService
	listGroup singleflight.Group
}

// NewManageTerminalsUseCase creates a new terminal use case.
func NewManageTerminalsUseCase(terminals port.TerminalService) *ManageTerminalsUseCase {
	return &ManageTerminalsUseCase{terminals: terminals}
}

// Create starts a terminal with default dimensions filled in.
func (uc *ManageTerminalsUseCase) Create(ctx context.Context, spec entity.TerminalSpec) (*entity.Terminal, error) {
	spec = spec.WithDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	term, err := uc.terminals.Create(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("terminal_id", string(term.ID)).
		Str("name", term.Name).
		Int("cols", spec.Cols).
		Int("rows", spec.Rows).
		Msg("terminal created")
	return term, nil
}

// List returns terminals sorted by name. Concurrent calls share one request.
func (uc *ManageTerminalsUseCase) List(ctx context.Context) ([]*entity.Terminal, error) {
	v, err, shared := uc.listGroup.Do("list", func() (any, error) {
		return uc.terminals.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	if shared {
		logging.FromContext(ctx).Trace().Msg("terminal list shared with in-flight request")
	}

	src := v.([]*entity.Terminal)
	out := make([]*entity.Terminal, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get fetches one terminal.
func (uc *ManageTerminalsUseCase) Get(ctx context.Context, id entity.TerminalID) (*entity.Terminal, error) {
	term, err := uc.terminals.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get terminal %s: %w", id, err)
	}
	return term, nil
}

// Rename changes a terminal's display name.
func (uc *ManageTerminalsUseCase) Rename(ctx context.Context, id entity.TerminalID, name string) (*entity.Terminal, error) {
	if name == "" {
		return nil, fmt.Errorf("rename terminal %s: name is required", id)
	}
	term, err := uc.terminals.Rename(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("rename terminal %s: %w", id, err)
	}
	return term, nil
}
