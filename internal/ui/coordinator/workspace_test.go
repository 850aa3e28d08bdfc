package coordinator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	repomocks "github.com/termify/termify/internal/domain/repository/mocks"
	"github.com/termify/termify/internal/ui/coordinator"
)

func TestStart_CreatesDefaultWorkspaceWhenNoneExist(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.coord.Start(testContext()))

	st := f.coord.State()
	require.NotNil(t, st.Workspace)
	assert.Equal(t, "default", st.Workspace.Name)
	assert.True(t, st.Workspace.IsDefault)
	assert.Nil(t, st.Root)
	assert.Empty(t, st.Tabs)
}

func TestStart_PicksDefaultFlaggedWorkspace(t *testing.T) {
	f := newFixture(t, []string{"w1", "w2"})
	f.workspaces.items["w2"].IsDefault = true

	require.NoError(t, f.coord.Start(testContext()))
	assert.Equal(t, entity.WorkspaceID("w2"), f.coord.CurrentWorkspaceID())
}

func TestStart_RestoresLastWorkspace(t *testing.T) {
	appState := repomocks.NewMockAppStateRepository(t)
	appState.EXPECT().GetLastWorkspace(mock.Anything).Return(entity.WorkspaceID("w2"), nil).Once()
	appState.EXPECT().SetLastWorkspace(mock.Anything, entity.WorkspaceID("w2")).Return(nil).Once()

	f := newFixture(t, []string{"w1", "w2"}, withAppState(appState))
	require.NoError(t, f.coord.Start(testContext()))

	assert.Equal(t, entity.WorkspaceID("w2"), f.coord.CurrentWorkspaceID())
}

func TestStart_IgnoresLastWorkspaceThatNoLongerExists(t *testing.T) {
	appState := repomocks.NewMockAppStateRepository(t)
	appState.EXPECT().GetLastWorkspace(mock.Anything).Return(entity.WorkspaceID("gone"), nil).Once()
	appState.EXPECT().SetLastWorkspace(mock.Anything, entity.WorkspaceID("w1")).Return(nil).Once()

	f := newFixture(t, []string{"w1", "w2"}, withAppState(appState))
	require.NoError(t, f.coord.Start(testContext()))

	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
}

func TestStart_LastWorkspaceReadFailureFallsBack(t *testing.T) {
	appState := repomocks.NewMockAppStateRepository(t)
	appState.EXPECT().GetLastWorkspace(mock.Anything).Return("", errors.New("locked")).Once()
	appState.EXPECT().SetLastWorkspace(mock.Anything, entity.WorkspaceID("w1")).Return(errors.New("locked")).Once()

	f := newFixture(t, []string{"w1", "w2"}, withAppState(appState))
	require.NoError(t, f.coord.Start(testContext()))

	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
}

func TestSwitchWorkspace_PersistsPreviousAndRestoresLayout(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	first, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-a",
	})
	require.NoError(t, err)
	_, err = f.coord.SplitPane(ctx, coordinator.SplitRequest{
		TargetID:   first.NewPaneID,
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-b",
	})
	require.NoError(t, err)
	_, err = f.coord.OpenTab(ctx, "term-a", "a")
	require.NoError(t, err)
	before := f.coord.State().Root

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w2"))

	saved := f.layouts.stored("w1")
	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.CountPanes())
	assert.Len(t, saved.Tabs, 1)

	st := f.coord.State()
	assert.Equal(t, entity.WorkspaceID("w2"), st.Workspace.ID)
	assert.Nil(t, st.Root)
	assert.Empty(t, st.Tabs)
	assert.False(t, st.Loading)

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w1"))

	st = f.coord.State()
	assert.True(t, entity.Equal(before, st.Root), "restored tree should match the one left behind")
	require.Len(t, st.Tabs, 1)
	assert.Equal(t, entity.TerminalID("term-a"), st.Tabs[0].TerminalID)
	assert.Equal(t, st.Tabs[0].ID, st.ActiveTabID)
}

func TestSwitchWorkspace_LoadFailureKeepsCurrentState(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	_, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationVertical,
		TerminalID: "term-a",
	})
	require.NoError(t, err)
	before := f.coord.State()

	f.layouts.failGet("w2", errors.New("server unavailable"))
	err = f.coord.SwitchWorkspace(ctx, "w2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, coordinator.ErrSwitchSuperseded)

	after := f.coord.State()
	assert.Equal(t, entity.WorkspaceID("w1"), after.Workspace.ID)
	assert.Same(t, before.Root, after.Root)
	assert.False(t, after.Loading)
}

func TestSwitchWorkspace_UnknownWorkspace(t *testing.T) {
	f := started(t, "w1")

	err := f.coord.SwitchWorkspace(testContext(), "missing")
	require.ErrorIs(t, err, usecase.ErrWorkspaceNotFound)
	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
}

func TestSwitchWorkspace_LastRequestWins(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2", "w3")

	entered := make(chan struct{})
	release := make(chan struct{})
	f.workspaces.setGetHook(func(id entity.WorkspaceID) {
		if id == "w2" {
			close(entered)
			<-release
		}
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.coord.SwitchWorkspace(ctx, "w2")
	}()
	<-entered

	st := f.coord.State()
	assert.True(t, st.Loading)
	assert.Equal(t, entity.WorkspaceID("w2"), st.LoadingWorkspace)

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w3"))
	close(release)

	require.ErrorIs(t, <-errCh, coordinator.ErrSwitchSuperseded)
	st = f.coord.State()
	assert.Equal(t, entity.WorkspaceID("w3"), st.Workspace.ID)
	assert.False(t, st.Loading)
}

func TestSwitchWorkspace_SwitchBackBeforePreviousSaveLands(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	_, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-a",
	})
	require.NoError(t, err)
	before := f.coord.State().Root

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f.layouts.setSaveHook(func(state *entity.LayoutState) {
		if state.WorkspaceID == "w1" {
			once.Do(func() { close(entered) })
			<-release
		}
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.coord.SwitchWorkspace(ctx, "w2")
	}()
	<-entered
	assert.Nil(t, f.layouts.stored("w1"))

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w1"))

	st := f.coord.State()
	require.NotNil(t, st.Root, "layout must survive a switch back while its save is pending")
	assert.True(t, entity.Equal(before, st.Root))

	close(release)
	require.NoError(t, <-errCh)
	assert.NotNil(t, f.layouts.stored("w1"))
}

func TestSwitchWorkspace_FailedSaveKeepsLayoutForSwitchBack(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	_, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationVertical,
		TerminalID: "term-a",
	})
	require.NoError(t, err)
	before := f.coord.State().Root

	f.layouts.failSave("w1", errors.New("disk full"))
	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w2"))
	assert.Nil(t, f.layouts.stored("w1"))

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w1"))
	st := f.coord.State()
	require.NotNil(t, st.Root)
	assert.True(t, entity.Equal(before, st.Root))
}

func TestSwitchWorkspace_SameWorkspaceIsNoop(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	var switched int
	f.coord.OnWorkspaceChanged(func(*entity.Workspace) { switched++ })

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w1"))
	assert.Zero(t, switched)

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w2"))
	assert.Equal(t, 1, switched)
}

func TestSwitchWorkspace_RequiresID(t *testing.T) {
	f := started(t, "w1")
	require.Error(t, f.coord.SwitchWorkspace(testContext(), ""))
}

func TestDeleteWorkspace_ActiveSwitchesToFirstRemaining(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2", "w3")

	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w2"))
	_, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-a",
	})
	require.NoError(t, err)

	require.NoError(t, f.coord.DeleteWorkspace(ctx, "w2"))

	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
	assert.Nil(t, f.layouts.stored("w2"), "deleted workspace layout must not be persisted")

	list, err := f.coord.Workspaces(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDeleteWorkspace_InactiveKeepsCurrent(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	_, err := f.coord.OpenTab(ctx, "term-a", "a")
	require.NoError(t, err)
	before := f.coord.State()

	require.NoError(t, f.coord.DeleteWorkspace(ctx, "w2"))

	after := f.coord.State()
	assert.Equal(t, entity.WorkspaceID("w1"), after.Workspace.ID)
	assert.Equal(t, before.Tabs, after.Tabs)
}

func TestDeleteWorkspace_LastWorkspaceRefused(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1")

	err := f.coord.DeleteWorkspace(ctx, "w1")
	require.ErrorIs(t, err, usecase.ErrLastWorkspace)

	list, err := f.coord.Workspaces(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
}

func TestCreateWorkspace_DoesNotSwitch(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1")

	ws, err := f.coord.CreateWorkspace(ctx, entity.WorkspaceInput{Name: "ops"})
	require.NoError(t, err)
	assert.Equal(t, "ops", ws.Name)
	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
}

func TestUpdateWorkspace_RefreshesActiveCopy(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	var notified *entity.Workspace
	f.coord.OnWorkspaceChanged(func(ws *entity.Workspace) { notified = ws })

	name := "renamed"
	_, err := f.coord.UpdateWorkspace(ctx, "w1", entity.WorkspacePatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "renamed", f.coord.State().Workspace.Name)
	require.NotNil(t, notified)
	assert.Equal(t, "renamed", notified.Name)

	notified = nil
	_, err = f.coord.UpdateWorkspace(ctx, "w2", entity.WorkspacePatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, notified, "updating an inactive workspace should not notify")
}

func TestReorderWorkspaces(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2", "w3")

	require.NoError(t, f.coord.ReorderWorkspaces(ctx, []entity.WorkspaceID{"w3", "w1", "w2"}))

	list, err := f.coord.Workspaces(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, entity.WorkspaceID("w3"), list[0].ID)
	assert.Equal(t, entity.WorkspaceID("w1"), list[1].ID)
	assert.Equal(t, entity.WorkspaceID("w1"), f.coord.CurrentWorkspaceID())
}

func TestCurrentLayout(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, []string{"w1"})
	assert.Nil(t, f.coord.CurrentLayout())

	require.NoError(t, f.coord.Start(ctx))
	_, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-a",
	})
	require.NoError(t, err)

	state := f.coord.CurrentLayout()
	require.NotNil(t, state)
	assert.Equal(t, entity.WorkspaceID("w1"), state.WorkspaceID)
	assert.Equal(t, 1, state.CountPanes())
	assert.Equal(t, f.clock.Now(), state.SavedAt)
}
