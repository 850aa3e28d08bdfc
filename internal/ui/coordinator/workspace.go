// Package coordinator owns the live pane tree and tab registry of the active
// workspace. Render layers read State and call the imperative operations;
// every mutation swaps in a new tree or registry so readers never observe a
// partial update.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/termify/termify/internal/application/port"
	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/logging"
)

const defaultWorkspaceName = "default"

var (
	// ErrSwitchSuperseded is returned by a workspace switch whose result was
	// discarded because a later switch started before it finished.
	ErrSwitchSuperseded = errors.New("workspace switch superseded by a newer request")

	// ErrNoWorkspace is returned by layout operations before any workspace is active.
	ErrNoWorkspace = errors.New("no active workspace")

	// ErrWorkspaceChanged is returned when the active workspace changed while
	// an operation was waiting on the server.
	ErrWorkspaceChanged = errors.New("active workspace changed during operation")

	// ErrPaneNotFound is returned when a split target is not in the layout.
	ErrPaneNotFound = errors.New("split target pane not found")
)

// State is a read-only view of the coordinator for rendering.
type State struct {
	Workspace    *entity.Workspace
	Root         *entity.PaneNode // Immutable; nil when no pane is open
	Tabs         []entity.Tab
	ActiveTabID  entity.TabID
	PendingSplit *entity.PendingSplit
	// Loading is set while a workspace switch is in flight.
	Loading          bool
	LoadingWorkspace entity.WorkspaceID
}

// WorkspaceCoordinator manages the active workspace's layout.
type WorkspaceCoordinator struct {
	workspacesUC *usecase.ManageWorkspacesUseCase
	terminalsUC  *usecase.ManageTerminalsUseCase
	panesUC      *usecase.ManagePanesUseCase
	tabsUC       *usecase.ManageTabsUseCase
	drops        *usecase.DropZoneResolver
	snapshotUC   *usecase.SnapshotLayoutUseCase
	restoreUC    *usecase.RestoreLayoutUseCase
	appState     repository.AppStateRepository
	restoreLast  bool
	now          func() time.Time

	mu        sync.Mutex
	workspace *entity.Workspace
	root      *entity.PaneNode
	tabs      *entity.TabRegistry
	pending   *entity.PendingSplit
	switchSeq uint64
	loadingID entity.WorkspaceID
	dedup     *dropDeduplicator

	// unsaved holds layouts switched away from whose save has not landed.
	// A switch back reads them instead of the store.
	unsaved map[entity.WorkspaceID]*entity.LayoutState

	listenersMu       sync.RWMutex
	layoutListeners   []func()
	workspaceListener []func(*entity.Workspace)
}

// WorkspaceCoordinatorConfig holds configuration for WorkspaceCoordinator.
type WorkspaceCoordinatorConfig struct {
	WorkspacesUC *usecase.ManageWorkspacesUseCase
	TerminalsUC  *usecase.ManageTerminalsUseCase
	PanesUC      *usecase.ManagePanesUseCase
	TabsUC       *usecase.ManageTabsUseCase
	Drops        *usecase.DropZoneResolver
	SnapshotUC   *usecase.SnapshotLayoutUseCase
	RestoreUC    *usecase.RestoreLayoutUseCase
	// AppState remembers the last active workspace. Optional.
	AppState             repository.AppStateRepository
	RestoreLastWorkspace bool
	Now                  func() time.Time
}

// NewWorkspaceCoordinator creates a new WorkspaceCoordinator.
func NewWorkspaceCoordinator(cfg WorkspaceCoordinatorConfig) *WorkspaceCoordinator {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	drops := cfg.Drops
	if drops == nil {
		drops = usecase.NewDropZoneResolver(entity.DefaultDropCenterFraction)
	}
	return &WorkspaceCoordinator{
		workspacesUC: cfg.WorkspacesUC,
		terminalsUC:  cfg.TerminalsUC,
		panesUC:      cfg.PanesUC,
		tabsUC:       cfg.TabsUC,
		drops:        drops,
		snapshotUC:   cfg.SnapshotUC,
		restoreUC:    cfg.RestoreUC,
		appState:     cfg.AppState,
		restoreLast:  cfg.RestoreLastWorkspace,
		now:          now,
		tabs:         entity.NewTabRegistry(),
		dedup:        newDropDeduplicator(now),
		unsaved:      make(map[entity.WorkspaceID]*entity.LayoutState),
	}
}

var _ port.LayoutProvider = (*WorkspaceCoordinator)(nil)

// OnLayoutChanged registers a callback run after every pane or tab mutation.
// Loading a workspace does not count as a change.
func (c *WorkspaceCoordinator) OnLayoutChanged(fn func()) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.layoutListeners = append(c.layoutListeners, fn)
}

// OnWorkspaceChanged registers a callback run after the active workspace changes.
func (c *WorkspaceCoordinator) OnWorkspaceChanged(fn func(*entity.Workspace)) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.workspaceListener = append(c.workspaceListener, fn)
}

func (c *WorkspaceCoordinator) notifyLayoutChanged() {
	c.listenersMu.RLock()
	listeners := append([]func(){}, c.layoutListeners...)
	c.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

func (c *WorkspaceCoordinator) notifyWorkspaceChanged(ws *entity.Workspace) {
	c.listenersMu.RLock()
	listeners := append([]func(*entity.Workspace){}, c.workspaceListener...)
	c.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(ws)
	}
}

// State returns the current state.
func (c *WorkspaceCoordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		Root:             c.root,
		Tabs:             c.tabs.Tabs(),
		ActiveTabID:      c.tabs.ActiveTabID(),
		Loading:          c.loadingID != "",
		LoadingWorkspace: c.loadingID,
	}
	if c.workspace != nil {
		ws := *c.workspace
		st.Workspace = &ws
	}
	if c.pending != nil {
		p := *c.pending
		st.PendingSplit = &p
	}
	return st
}

// CurrentWorkspaceID returns the active workspace id or "".
func (c *WorkspaceCoordinator) CurrentWorkspaceID() entity.WorkspaceID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.workspace == nil {
		return ""
	}
	return c.workspace.ID
}

// CurrentLayout implements port.LayoutProvider.
func (c *WorkspaceCoordinator) CurrentLayout() *entity.LayoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *WorkspaceCoordinator) snapshotLocked() *entity.LayoutState {
	if c.workspace == nil {
		return nil
	}
	state := entity.SnapshotLayout(c.workspace.ID, c.root, c.tabs)
	state.SavedAt = c.now()
	return state
}

// Start activates the initial workspace: the last active one when enabled and
// still present, else the default one. A default workspace is created when
// the server has none.
func (c *WorkspaceCoordinator) Start(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "coordinator")
	log := logging.FromContext(ctx)

	list, err := c.workspacesUC.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ws, err := c.workspacesUC.Create(ctx, entity.WorkspaceInput{Name: defaultWorkspaceName, IsDefault: true})
		if err != nil {
			return fmt.Errorf("create default workspace: %w", err)
		}
		list = []*entity.Workspace{ws}
	}

	target := entity.DefaultWorkspace(list)
	if last := c.lastWorkspace(ctx); last != "" {
		for _, ws := range list {
			if ws.ID == last {
				target = ws
				break
			}
		}
	}

	log.Debug().
		Str("workspace_id", string(target.ID)).
		Int("workspaces", len(list)).
		Msg("starting workspace coordinator")
	return c.SwitchWorkspace(ctx, target.ID)
}

func (c *WorkspaceCoordinator) lastWorkspace(ctx context.Context) entity.WorkspaceID {
	if !c.restoreLast || c.appState == nil {
		return ""
	}
	id, err := c.appState.GetLastWorkspace(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read last workspace")
		return ""
	}
	return id
}

// SwitchWorkspace persists the current layout, loads the layout of id and
// makes it active. The last call wins: an earlier call still in flight
// returns ErrSwitchSuperseded and leaves state alone. On failure the
// current workspace stays active and unchanged.
func (c *WorkspaceCoordinator) SwitchWorkspace(ctx context.Context, id entity.WorkspaceID) error {
	return c.switchTo(ctx, id, true)
}

func (c *WorkspaceCoordinator) switchTo(ctx context.Context, id entity.WorkspaceID, persistPrevious bool) error {
	log := logging.FromContext(ctx).With().Str("workspace_id", string(id)).Logger()

	if id == "" {
		return fmt.Errorf("switch workspace: workspace id required")
	}

	c.mu.Lock()
	c.switchSeq++
	seq := c.switchSeq
	if c.workspace != nil && c.workspace.ID == id {
		c.loadingID = ""
		c.mu.Unlock()
		log.Debug().Msg("workspace already active")
		return nil
	}
	c.loadingID = id
	inFlight := c.unsaved[id]
	c.mu.Unlock()

	var (
		ws     *entity.Workspace
		layout *usecase.RestoreLayoutOutput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ws, err = c.workspacesUC.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		if inFlight != nil {
			root, tabs, err := inFlight.Restore()
			if err == nil {
				log.Debug().Msg("restoring layout from pending save")
				layout = &usecase.RestoreLayoutOutput{Root: root, Tabs: tabs}
				return nil
			}
			log.Warn().Err(err).Msg("pending layout is invalid, loading stored layout")
		}
		var err error
		layout, err = c.restoreUC.Execute(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		c.mu.Lock()
		if seq == c.switchSeq {
			c.loadingID = ""
		}
		c.mu.Unlock()
		log.Warn().Err(err).Msg("workspace switch failed, keeping current layout")
		return fmt.Errorf("switch workspace %s: %w", id, err)
	}

	c.mu.Lock()
	if seq != c.switchSeq {
		c.mu.Unlock()
		log.Debug().Msg("workspace switch superseded, discarding result")
		return ErrSwitchSuperseded
	}
	var previous *entity.LayoutState
	if persistPrevious && c.snapshotUC != nil {
		previous = c.snapshotLocked()
		if previous != nil {
			c.unsaved[previous.WorkspaceID] = previous
		}
	}
	c.workspace = ws
	c.root = layout.Root
	c.tabs = layout.Tabs
	c.pending = nil
	c.loadingID = ""
	current := *ws
	c.mu.Unlock()

	if previous != nil {
		c.savePrevious(ctx, previous)
	}
	c.rememberWorkspace(ctx, id)

	log.Info().
		Int("tab_count", layout.Tabs.Count()).
		Int("pane_count", layout.Root.LeafCount()).
		Bool("layout_discarded", layout.Discarded).
		Msg("switched workspace")

	c.notifyWorkspaceChanged(&current)
	return nil
}

// savePrevious saves a layout switched away from and then drops it from
// unsaved, unless a later switch already replaced the entry. A failed save
// stays in unsaved so switching back still restores it.
func (c *WorkspaceCoordinator) savePrevious(ctx context.Context, state *entity.LayoutState) {
	if err := c.snapshotUC.Save(ctx, state); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("previous_workspace_id", string(state.WorkspaceID)).
			Msg("failed to persist previous workspace layout")
		return
	}

	c.mu.Lock()
	if c.unsaved[state.WorkspaceID] == state {
		delete(c.unsaved, state.WorkspaceID)
	}
	c.mu.Unlock()
}

func (c *WorkspaceCoordinator) rememberWorkspace(ctx context.Context, id entity.WorkspaceID) {
	if c.appState == nil {
		return
	}
	if err := c.appState.SetLastWorkspace(ctx, id); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("workspace_id", string(id)).Msg("failed to remember last workspace")
	}
}

// Workspaces lists workspaces in display order.
func (c *WorkspaceCoordinator) Workspaces(ctx context.Context) ([]*entity.Workspace, error) {
	return c.workspacesUC.List(ctx)
}

// CreateWorkspace creates a workspace without switching to it.
func (c *WorkspaceCoordinator) CreateWorkspace(ctx context.Context, input entity.WorkspaceInput) (*entity.Workspace, error) {
	return c.workspacesUC.Create(ctx, input)
}

// UpdateWorkspace patches a workspace and refreshes the active copy.
func (c *WorkspaceCoordinator) UpdateWorkspace(
	ctx context.Context,
	id entity.WorkspaceID,
	patch entity.WorkspacePatch,
) (*entity.Workspace, error) {
	ws, err := c.workspacesUC.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	refreshed := c.workspace != nil && c.workspace.ID == id
	if refreshed {
		updated := *ws
		c.workspace = &updated
	}
	c.mu.Unlock()

	if refreshed {
		c.notifyWorkspaceChanged(ws)
	}
	return ws, nil
}

// DeleteWorkspace deletes a workspace. The last workspace cannot be deleted.
// Deleting the active workspace switches to the first remaining one.
func (c *WorkspaceCoordinator) DeleteWorkspace(ctx context.Context, id entity.WorkspaceID) error {
	out, err := c.workspacesUC.Delete(ctx, id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	wasActive := c.workspace != nil && c.workspace.ID == id
	if wasActive {
		// The layout belongs to a deleted workspace; nothing may persist it.
		c.workspace = nil
		c.root = nil
		c.tabs = entity.NewTabRegistry()
		c.pending = nil
	}
	delete(c.unsaved, id)
	c.mu.Unlock()

	if !wasActive {
		return nil
	}

	next := out.Remaining[0]
	logging.FromContext(ctx).Info().
		Str("workspace_id", string(id)).
		Str("next_workspace_id", string(next.ID)).
		Msg("active workspace deleted, switching")
	return c.switchTo(ctx, next.ID, false)
}

// ReorderWorkspaces persists a new display order.
func (c *WorkspaceCoordinator) ReorderWorkspaces(ctx context.Context, ids []entity.WorkspaceID) error {
	return c.workspacesUC.Reorder(ctx, ids)
}
