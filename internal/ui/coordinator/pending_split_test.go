package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/ui/coordinator"
)

func TestPendingSplit_SelectionCompletesSplit(t *testing.T) {
	ctx := testContext()
	f, _ := withSinglePane(t)

	require.NoError(t, f.coord.RequestSplit(ctx, "term-a", entity.OrientationVertical, entity.PlaceAfter))

	pending := f.coord.State().PendingSplit
	require.NotNil(t, pending)
	assert.Equal(t, entity.TerminalID("term-a"), pending.SourceTerminalID)
	assert.Equal(t, f.clock.Now(), pending.RequestedAt)

	res, err := f.coord.SelectTerminal(ctx, "term-b", "b")
	require.NoError(t, err)
	assert.True(t, res.Split)
	assert.NotEmpty(t, res.NewPaneID)

	st := f.coord.State()
	assert.Nil(t, st.PendingSplit)
	require.True(t, st.Root.IsSplit())
	assert.Equal(t, entity.OrientationVertical, st.Root.Orientation)
	assert.Equal(t, []entity.TerminalID{"term-a", "term-b"}, st.Root.TerminalIDs())
	assert.Empty(t, st.Tabs, "a split selection does not open a tab")
}

func TestPendingSplit_PlaceBefore(t *testing.T) {
	ctx := testContext()
	f, _ := withSinglePane(t)

	require.NoError(t, f.coord.RequestSplit(ctx, "term-a", entity.OrientationHorizontal, entity.PlaceBefore))
	_, err := f.coord.SelectTerminal(ctx, "term-b", "b")
	require.NoError(t, err)

	assert.Equal(t, []entity.TerminalID{"term-b", "term-a"}, f.coord.State().Root.TerminalIDs())
}

func TestPendingSplit_CancelThenSelectOpensTab(t *testing.T) {
	ctx := testContext()
	f, _ := withSinglePane(t)
	before := f.coord.State().Root

	require.NoError(t, f.coord.RequestSplit(ctx, "term-a", entity.OrientationHorizontal, entity.PlaceAfter))
	assert.True(t, f.coord.CancelPendingSplit(ctx))
	assert.False(t, f.coord.CancelPendingSplit(ctx))

	res, err := f.coord.SelectTerminal(ctx, "term-b", "b")
	require.NoError(t, err)
	assert.False(t, res.Split)
	assert.NotEmpty(t, res.TabID)

	st := f.coord.State()
	assert.Same(t, before, st.Root)
	require.Len(t, st.Tabs, 1)
	assert.Equal(t, entity.TerminalID("term-b"), st.Tabs[0].TerminalID)
}

func TestPendingSplit_SourceGoneFallsBackToTab(t *testing.T) {
	ctx := testContext()
	f, paneA := withSinglePane(t)

	require.NoError(t, f.coord.RequestSplit(ctx, "term-a", entity.OrientationHorizontal, entity.PlaceAfter))
	_, err := f.coord.RemovePane(ctx, paneA)
	require.NoError(t, err)

	res, err := f.coord.SelectTerminal(ctx, "term-b", "b")
	require.NoError(t, err)
	assert.False(t, res.Split)

	st := f.coord.State()
	assert.Nil(t, st.PendingSplit)
	assert.Nil(t, st.Root)
	require.Len(t, st.Tabs, 1)
}

func TestPendingSplit_ClearedOnWorkspaceSwitch(t *testing.T) {
	ctx := testContext()
	f := started(t, "w1", "w2")

	require.NoError(t, f.coord.RequestSplit(ctx, "term-a", entity.OrientationHorizontal, entity.PlaceAfter))
	require.NoError(t, f.coord.SwitchWorkspace(ctx, "w2"))

	assert.Nil(t, f.coord.State().PendingSplit)
}

func TestRequestSplit_Validation(t *testing.T) {
	ctx := testContext()

	f := newFixture(t, []string{"w1"})
	err := f.coord.RequestSplit(ctx, "term-a", entity.OrientationHorizontal, entity.PlaceAfter)
	require.ErrorIs(t, err, coordinator.ErrNoWorkspace)

	f = started(t, "w1")
	err = f.coord.RequestSplit(ctx, "", entity.OrientationHorizontal, entity.PlaceAfter)
	require.ErrorIs(t, err, entity.ErrEmptyTerminalID)

	err = f.coord.RequestSplit(ctx, "term-a", entity.Orientation(0), entity.PlaceAfter)
	require.Error(t, err)
	assert.Nil(t, f.coord.State().PendingSplit)
}

func TestSelectTerminal_RequiresWorkspace(t *testing.T) {
	f := newFixture(t, []string{"w1"})

	_, err := f.coord.SelectTerminal(testContext(), "term-a", "a")
	require.ErrorIs(t, err, coordinator.ErrNoWorkspace)
}
