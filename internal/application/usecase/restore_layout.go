package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/logging"
)

// RestoreLayoutUseCase loads the persisted layout of a workspace.
type RestoreLayoutUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(layoutRepo repository.LayoutRepository) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{layoutRepo: layoutRepo}
}

// RestoreLayoutOutput contains the restored tree and tabs.
type RestoreLayoutOutput struct {
	Root *entity.PaneNode
	Tabs *entity.TabRegistry
	// Discarded is true when a stored layout existed but could not be used
	// and an empty layout was returned instead.
	Discarded bool
}

func emptyLayout(discarded bool) *RestoreLayoutOutput {
	return &RestoreLayoutOutput{Tabs: entity.NewTabRegistry(), Discarded: discarded}
}

// Execute returns the stored layout of a workspace, or an empty one when none
// exists. Corrupt or incompatible layouts are logged and replaced by an empty
// layout. Store failures (e.g. the server is unreachable) are returned so the
// caller can keep its current state and retry.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, workspaceID entity.WorkspaceID) (*RestoreLayoutOutput, error) {
	log := logging.FromContext(ctx)

	if workspaceID == "" {
		return nil, fmt.Errorf("workspace id required")
	}

	state, err := uc.layoutRepo.Get(ctx, workspaceID)
	if errors.Is(err, repository.ErrCorruptLayout) {
		log.Warn().
			Err(err).
			Str("workspace_id", string(workspaceID)).
			Msg("stored layout is corrupt, starting with an empty layout")
		return emptyLayout(true), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	if state == nil {
		log.Debug().
			Str("workspace_id", string(workspaceID)).
			Msg("no stored layout")
		return emptyLayout(false), nil
	}

	if state.Version > entity.LayoutStateVersion {
		log.Warn().
			Int("state_version", state.Version).
			Int("current_version", entity.LayoutStateVersion).
			Str("workspace_id", string(workspaceID)).
			Msg("layout version is newer than supported, starting with an empty layout")
		return emptyLayout(true), nil
	}

	root, tabs, err := state.Restore()
	if err != nil {
		log.Warn().
			Err(err).
			Str("workspace_id", string(workspaceID)).
			Msg("stored layout is invalid, starting with an empty layout")
		return emptyLayout(true), nil
	}

	log.Info().
		Str("workspace_id", string(workspaceID)).
		Int("tab_count", tabs.Count()).
		Int("pane_count", root.LeafCount()).
		Msg("layout restored")

	return &RestoreLayoutOutput{Root: root, Tabs: tabs}, nil
}
