package coordinator_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	portmocks "github.com/termify/termify/internal/application/port/mocks"
	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/logging"
	"github.com/termify/termify/internal/ui/coordinator"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func seqIDs(prefix string) usecase.IDGenerator {
	var counter uint64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, atomic.AddUint64(&counter, 1))
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakeWorkspaces is an in-memory workspace server.
type fakeWorkspaces struct {
	mu      sync.Mutex
	items   map[entity.WorkspaceID]*entity.Workspace
	nextID  int
	getHook func(id entity.WorkspaceID)
}

func newFakeWorkspaces(ids ...string) *fakeWorkspaces {
	f := &fakeWorkspaces{items: make(map[entity.WorkspaceID]*entity.Workspace)}
	for i, id := range ids {
		f.items[entity.WorkspaceID(id)] = &entity.Workspace{ID: entity.WorkspaceID(id), Name: id, Position: i}
	}
	return f
}

func (f *fakeWorkspaces) setGetHook(hook func(id entity.WorkspaceID)) {
	f.mu.Lock()
	f.getHook = hook
	f.mu.Unlock()
}

func (f *fakeWorkspaces) List(context.Context) ([]*entity.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Workspace, 0, len(f.items))
	for _, ws := range f.items {
		cp := *ws
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeWorkspaces) Get(_ context.Context, id entity.WorkspaceID) (*entity.Workspace, error) {
	f.mu.Lock()
	hook := f.getHook
	f.mu.Unlock()
	if hook != nil {
		hook(id)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("workspace %s: %w", id, usecase.ErrWorkspaceNotFound)
	}
	cp := *ws
	return &cp, nil
}

func (f *fakeWorkspaces) Create(_ context.Context, input entity.WorkspaceInput) (*entity.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ws := &entity.Workspace{
		ID:        entity.WorkspaceID(fmt.Sprintf("new-%d", f.nextID)),
		Name:      input.Name,
		IsDefault: input.IsDefault,
		Position:  len(f.items),
	}
	f.items[ws.ID] = ws
	cp := *ws
	return &cp, nil
}

func (f *fakeWorkspaces) Update(_ context.Context, id entity.WorkspaceID, patch entity.WorkspacePatch) (*entity.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.items[id]
	if !ok {
		return nil, usecase.ErrWorkspaceNotFound
	}
	updated := patch.Apply(*ws)
	f.items[id] = &updated
	cp := updated
	return &cp, nil
}

func (f *fakeWorkspaces) Delete(_ context.Context, id entity.WorkspaceID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeWorkspaces) Reorder(_ context.Context, ids []entity.WorkspaceID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, id := range ids {
		f.items[id].Position = i
	}
	return nil
}

// memLayouts is an in-memory layout store.
type memLayouts struct {
	mu      sync.Mutex
	states  map[entity.WorkspaceID]*entity.LayoutState
	getErr  map[entity.WorkspaceID]error
	saveErr map[entity.WorkspaceID]error
	saves   int

	// saveHook runs before a save is stored.
	saveHook func(state *entity.LayoutState)
}

func newMemLayouts() *memLayouts {
	return &memLayouts{
		states: make(map[entity.WorkspaceID]*entity.LayoutState),
		getErr:  make(map[entity.WorkspaceID]error),
		saveErr: make(map[entity.WorkspaceID]error),
	}
}

func (m *memLayouts) setSaveHook(hook func(state *entity.LayoutState)) {
	m.mu.Lock()
	m.saveHook = hook
	m.mu.Unlock()
}

func (m *memLayouts) Save(_ context.Context, state *entity.LayoutState) error {
	m.mu.Lock()
	hook := m.saveHook
	m.mu.Unlock()
	if hook != nil {
		hook(state)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveErr[state.WorkspaceID]; err != nil {
		return err
	}
	m.states[state.WorkspaceID] = state
	m.saves++
	return nil
}

func (m *memLayouts) Get(_ context.Context, id entity.WorkspaceID) (*entity.LayoutState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.getErr[id]; err != nil {
		return nil, err
	}
	return m.states[id], nil
}

func (m *memLayouts) Delete(_ context.Context, id entity.WorkspaceID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}

func (m *memLayouts) stored(id entity.WorkspaceID) *entity.LayoutState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[id]
}

func (m *memLayouts) failGet(id entity.WorkspaceID, err error) {
	m.mu.Lock()
	m.getErr[id] = err
	m.mu.Unlock()
}

func (m *memLayouts) failSave(id entity.WorkspaceID, err error) {
	m.mu.Lock()
	m.saveErr[id] = err
	m.mu.Unlock()
}

var _ repository.LayoutRepository = (*memLayouts)(nil)

type fixture struct {
	coord      *coordinator.WorkspaceCoordinator
	workspaces *fakeWorkspaces
	layouts    *memLayouts
	terminals  *portmocks.MockTerminalService
	clock      *fakeClock
	changes    atomic.Int32
}

type fixtureOption func(*coordinator.WorkspaceCoordinatorConfig)

func withAppState(repo repository.AppStateRepository) fixtureOption {
	return func(cfg *coordinator.WorkspaceCoordinatorConfig) {
		cfg.AppState = repo
		cfg.RestoreLastWorkspace = true
	}
}

func newFixture(t *testing.T, workspaceIDs []string, opts ...fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		workspaces: newFakeWorkspaces(workspaceIDs...),
		layouts:    newMemLayouts(),
		terminals:  portmocks.NewMockTerminalService(t),
		clock:      newFakeClock(),
	}

	cfg := coordinator.WorkspaceCoordinatorConfig{
		WorkspacesUC: usecase.NewManageWorkspacesUseCase(f.workspaces, f.layouts),
		TerminalsUC:  usecase.NewManageTerminalsUseCase(f.terminals),
		PanesUC:      usecase.NewManagePanesUseCase(seqIDs("pane-")),
		TabsUC:       usecase.NewManageTabsUseCase(seqIDs("tab-")),
		SnapshotUC:   usecase.NewSnapshotLayoutUseCase(f.layouts),
		RestoreUC:    usecase.NewRestoreLayoutUseCase(f.layouts),
		Now:          f.clock.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	f.coord = coordinator.NewWorkspaceCoordinator(cfg)
	f.coord.OnLayoutChanged(func() { f.changes.Add(1) })
	return f
}

// started returns a fixture whose coordinator is active on the first workspace.
func started(t *testing.T, workspaceIDs ...string) *fixture {
	t.Helper()
	f := newFixture(t, workspaceIDs)
	if err := f.coord.Start(testContext()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return f
}
