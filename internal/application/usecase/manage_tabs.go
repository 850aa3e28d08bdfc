package usecase

import (
	"context"
	"fmt"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle operations on a registry.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
	}
}

// OpenTabOutput contains the result of opening a tab.
type OpenTabOutput struct {
	TabID   entity.TabID
	Created bool // False when an existing tab was activated
}

// Open activates the tab for a terminal, creating it at the end when none exists.
func (uc *ManageTabsUseCase) Open(
	ctx context.Context,
	tabs *entity.TabRegistry,
	terminalID entity.TerminalID,
	name string,
) (*OpenTabOutput, error) {
	if tabs == nil {
		return nil, fmt.Errorf("tab registry is required")
	}

	id, created, err := tabs.Open(entity.TabID(uc.idGenerator()), terminalID, name)
	if err != nil {
		return nil, fmt.Errorf("open tab: %w", err)
	}

	log := logging.FromContext(ctx)
	if created {
		log.Info().
			Str("tab_id", string(id)).
			Str("terminal_id", string(terminalID)).
			Int("position", tabs.Count()-1).
			Msg("tab opened")
	} else {
		log.Debug().
			Str("tab_id", string(id)).
			Str("terminal_id", string(terminalID)).
			Msg("terminal already has a tab, activated")
	}

	return &OpenTabOutput{TabID: id, Created: created}, nil
}

// OpenView opens or activates a non-terminal view tab.
func (uc *ManageTabsUseCase) OpenView(
	ctx context.Context,
	tabs *entity.TabRegistry,
	viewKey, name string,
) (*OpenTabOutput, error) {
	if tabs == nil {
		return nil, fmt.Errorf("tab registry is required")
	}

	id, created, err := tabs.OpenView(entity.TabID(uc.idGenerator()), viewKey, name)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Str("view", viewKey).
		Bool("created", created).
		Msg("view tab opened")

	return &OpenTabOutput{TabID: id, Created: created}, nil
}

// Close removes a tab. The terminal it referenced keeps running and may
// still be visible in a pane.
func (uc *ManageTabsUseCase) Close(ctx context.Context, tabs *entity.TabRegistry, tabID entity.TabID) bool {
	if tabs == nil || !tabs.Close(tabID) {
		return false
	}

	logging.FromContext(ctx).Info().
		Str("tab_id", string(tabID)).
		Str("active_tab_id", string(tabs.ActiveTabID())).
		Int("remaining", tabs.Count()).
		Msg("tab closed")
	return true
}

// Reorder moves a tab to a new index.
func (uc *ManageTabsUseCase) Reorder(
	ctx context.Context,
	tabs *entity.TabRegistry,
	tabID entity.TabID,
	newIndex int,
) bool {
	if tabs == nil || !tabs.Reorder(tabID, newIndex) {
		return false
	}

	tab, _ := tabs.Find(tabID)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tabID)).
		Int("position", tab.Position).
		Msg("tab moved")
	return true
}

// Activate switches to a tab. Unknown ids are ignored.
func (uc *ManageTabsUseCase) Activate(ctx context.Context, tabs *entity.TabRegistry, tabID entity.TabID) bool {
	if tabs == nil || !tabs.SetActive(tabID) {
		return false
	}

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tabID)).
		Msg("switched to tab")
	return true
}

// Cycle activates the next (forward) or previous tab, wrapping around.
func (uc *ManageTabsUseCase) Cycle(ctx context.Context, tabs *entity.TabRegistry, forward bool) (entity.TabID, bool) {
	if tabs == nil {
		return "", false
	}
	var (
		id      entity.TabID
		changed bool
	)
	if forward {
		id, changed = tabs.Next()
	} else {
		id, changed = tabs.Prev()
	}
	if changed {
		logging.FromContext(ctx).Debug().
			Str("tab_id", string(id)).
			Bool("forward", forward).
			Msg("cycled tab")
	}
	return id, changed
}
