package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/logging"
)

// SnapshotLayoutUseCase handles saving workspace layouts. Saves of the same
// workspace are serialized, and a snapshot captured before the last stored
// one is dropped so a late writer never overwrites a newer layout.
type SnapshotLayoutUseCase struct {
	layoutRepo repository.LayoutRepository

	mu     sync.Mutex
	locks  map[entity.WorkspaceID]*sync.Mutex
	stored map[entity.WorkspaceID]time.Time
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(layoutRepo repository.LayoutRepository) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{
		layoutRepo: layoutRepo,
		locks:      make(map[entity.WorkspaceID]*sync.Mutex),
		stored:     make(map[entity.WorkspaceID]time.Time),
	}
}

func (uc *SnapshotLayoutUseCase) workspaceLock(id entity.WorkspaceID) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[id]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[id] = l
	}
	return l
}

// SnapshotLayoutInput contains the live layout to persist.
type SnapshotLayoutInput struct {
	WorkspaceID entity.WorkspaceID
	Root        *entity.PaneNode
	Tabs        *entity.TabRegistry
}

// Execute snapshots the layout and saves it.
func (uc *SnapshotLayoutUseCase) Execute(ctx context.Context, input SnapshotLayoutInput) error {
	if input.WorkspaceID == "" {
		return fmt.Errorf("workspace id required")
	}
	return uc.Save(ctx, entity.SnapshotLayout(input.WorkspaceID, input.Root, input.Tabs))
}

// Save persists an already captured layout. A state whose SavedAt is older
// than the last layout stored for its workspace is skipped.
func (uc *SnapshotLayoutUseCase) Save(ctx context.Context, state *entity.LayoutState) error {
	if state == nil || state.WorkspaceID == "" {
		return fmt.Errorf("workspace id required")
	}

	lock := uc.workspaceLock(state.WorkspaceID)
	lock.Lock()
	defer lock.Unlock()

	log := logging.FromContext(ctx)

	uc.mu.Lock()
	last, ok := uc.stored[state.WorkspaceID]
	uc.mu.Unlock()
	if ok && state.SavedAt.Before(last) {
		log.Debug().
			Str("workspace_id", string(state.WorkspaceID)).
			Time("saved_at", state.SavedAt).
			Time("stored_at", last).
			Msg("skipping stale layout snapshot")
		return nil
	}

	log.Debug().
		Str("workspace_id", string(state.WorkspaceID)).
		Int("tab_count", len(state.Tabs)).
		Int("pane_count", state.CountPanes()).
		Msg("saving layout snapshot")

	if err := uc.layoutRepo.Save(ctx, state); err != nil {
		return fmt.Errorf("save layout snapshot: %w", err)
	}

	uc.mu.Lock()
	uc.stored[state.WorkspaceID] = state.SavedAt
	uc.mu.Unlock()
	return nil
}
