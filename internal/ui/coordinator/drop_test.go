package coordinator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/ui/coordinator"
)

// withSinglePane starts a coordinator whose layout is one pane showing term-a.
func withSinglePane(t *testing.T) (*fixture, entity.PaneID) {
	t.Helper()
	f := started(t, "w1")
	out, err := f.coord.SplitPane(testContext(), coordinator.SplitRequest{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-a",
	})
	require.NoError(t, err)
	f.changes.Store(0)
	return f, out.NewPaneID
}

func TestHandleTabDrop_CenterActivatesTargetTab(t *testing.T) {
	ctx := testContext()
	f, paneA := withSinglePane(t)
	before := f.coord.State().Root

	res, err := f.coord.HandleTabDrop(ctx, coordinator.DropEvent{
		EventID:           "ev-1",
		TargetPaneID:      paneA,
		DraggedTerminalID: "term-b",
		Position:          entity.DropCenter,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropActivate, res.Action)

	st := f.coord.State()
	assert.Same(t, before, st.Root, "center drops never touch the tree")
	tab, ok := findTab(st.Tabs, res.TabID)
	require.True(t, ok)
	assert.Equal(t, entity.TerminalID("term-a"), tab.TerminalID)
	assert.Equal(t, res.TabID, st.ActiveTabID)
}

func TestHandleTabDrop_EdgePlacement(t *testing.T) {
	tests := []struct {
		position    entity.DropPosition
		orientation entity.Orientation
		order       []entity.TerminalID
	}{
		{entity.DropLeft, entity.OrientationHorizontal, []entity.TerminalID{"term-b", "term-a"}},
		{entity.DropRight, entity.OrientationHorizontal, []entity.TerminalID{"term-a", "term-b"}},
		{entity.DropTop, entity.OrientationVertical, []entity.TerminalID{"term-b", "term-a"}},
		{entity.DropBottom, entity.OrientationVertical, []entity.TerminalID{"term-a", "term-b"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			ctx := testContext()
			f, paneA := withSinglePane(t)

			res, err := f.coord.HandleTabDrop(ctx, coordinator.DropEvent{
				TargetPaneID:      paneA,
				DraggedTerminalID: "term-b",
				Position:          tt.position,
			})
			require.NoError(t, err)
			assert.Equal(t, usecase.DropSplit, res.Action)
			assert.NotEmpty(t, res.NewPaneID)

			root := f.coord.State().Root
			require.True(t, root.IsSplit())
			assert.Equal(t, tt.orientation, root.Orientation)
			assert.Equal(t, tt.order, root.TerminalIDs())
			assert.Equal(t, int32(1), f.changes.Load())
		})
	}
}

func TestHandleTabDrop_DuplicateEventIDIgnored(t *testing.T) {
	ctx := testContext()
	f, paneA := withSinglePane(t)

	ev := coordinator.DropEvent{
		EventID:           "ev-1",
		TargetPaneID:      paneA,
		DraggedTerminalID: "term-b",
		Position:          entity.DropLeft,
	}
	res, err := f.coord.HandleTabDrop(ctx, ev)
	require.NoError(t, err)
	require.Equal(t, usecase.DropSplit, res.Action)

	f.clock.Advance(time.Second)
	ev.Position = entity.DropRight
	res, err = f.coord.HandleTabDrop(ctx, ev)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, usecase.DropNoop, res.Action)

	assert.Equal(t, 2, f.coord.State().Root.LeafCount())
	assert.Equal(t, int32(1), f.changes.Load())
}

func TestHandleTabDrop_DoubleFiredDropWithinWindow(t *testing.T) {
	ctx := testContext()
	f, paneA := withSinglePane(t)

	ev := coordinator.DropEvent{
		TargetPaneID:      paneA,
		DraggedTerminalID: "term-b",
		Position:          entity.DropLeft,
	}
	_, err := f.coord.HandleTabDrop(ctx, ev)
	require.NoError(t, err)

	f.clock.Advance(50 * time.Millisecond)
	res, err := f.coord.HandleTabDrop(ctx, ev)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, 2, f.coord.State().Root.LeafCount())

	f.clock.Advance(time.Second)
	res, err = f.coord.HandleTabDrop(ctx, ev)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, usecase.DropSplit, res.Action)
	assert.Equal(t, 3, f.coord.State().Root.LeafCount())
}

func TestHandleTabDrop_DraggedTab(t *testing.T) {
	ctx := testContext()
	f, paneA := withSinglePane(t)

	termTab, err := f.coord.OpenTab(ctx, "term-c", "c")
	require.NoError(t, err)
	viewTab, err := f.coord.OpenView(ctx, "settings", "Settings")
	require.NoError(t, err)

	res, err := f.coord.HandleTabDrop(ctx, coordinator.DropEvent{
		TargetPaneID: paneA,
		DraggedTabID: termTab,
		Position:     entity.DropBottom,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropSplit, res.Action)
	assert.True(t, f.coord.State().Root.ContainsTerminal("term-c"))

	res, err = f.coord.HandleTabDrop(ctx, coordinator.DropEvent{
		TargetPaneID: paneA,
		DraggedTabID: viewTab,
		Position:     entity.DropBottom,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropNoop, res.Action)
}

func TestHandleTabDrop_NoopCases(t *testing.T) {
	ctx := testContext()
	f, paneA := withSinglePane(t)
	before := f.coord.State().Root

	res, err := f.coord.HandleTabDrop(ctx, coordinator.DropEvent{
		TargetPaneID:      paneA,
		DraggedTerminalID: "term-a",
		Position:          entity.DropRight,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropNoop, res.Action, "dropping a pane onto itself")

	res, err = f.coord.HandleTabDrop(ctx, coordinator.DropEvent{
		TargetPaneID:      "vanished",
		DraggedTerminalID: "term-b",
		Position:          entity.DropRight,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropNoop, res.Action, "target closed before the drop landed")

	assert.Same(t, before, f.coord.State().Root)
	assert.Zero(t, f.changes.Load())
}

func TestHandleTabDrop_InvalidPosition(t *testing.T) {
	f, paneA := withSinglePane(t)

	_, err := f.coord.HandleTabDrop(testContext(), coordinator.DropEvent{
		TargetPaneID:      paneA,
		DraggedTerminalID: "term-b",
		Position:          "diagonal",
	})
	require.Error(t, err)
}

func TestHandlePointerDrop(t *testing.T) {
	ctx := testContext()
	f, _ := withSinglePane(t)
	bounds := entity.Rect{W: 100, H: 100}

	res, err := f.coord.HandlePointerDrop(ctx, coordinator.PointerDrop{
		Bounds:            bounds,
		Pointer:           entity.Point{X: 5, Y: 50},
		DraggedTerminalID: "term-b",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropSplit, res.Action)
	assert.Equal(t, []entity.TerminalID{"term-b", "term-a"}, f.coord.State().Root.TerminalIDs())

	res, err = f.coord.HandlePointerDrop(ctx, coordinator.PointerDrop{
		Bounds:            bounds,
		Pointer:           entity.Point{X: 250, Y: 250},
		DraggedTerminalID: "term-c",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DropNoop, res.Action)
}

func TestHandleTabDrop_RequiresWorkspace(t *testing.T) {
	f := newFixture(t, []string{"w1"})

	_, err := f.coord.HandleTabDrop(testContext(), coordinator.DropEvent{
		TargetPaneID:      "p1",
		DraggedTerminalID: "term-b",
		Position:          entity.DropLeft,
	})
	require.ErrorIs(t, err, coordinator.ErrNoWorkspace)
}

func TestHandleTabDrop_FailedDropCanBeRetried(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, []string{"w1"})

	ev := coordinator.DropEvent{
		EventID:           "e1",
		TargetPaneID:      "pane-1",
		DraggedTerminalID: "term-b",
		Position:          entity.DropLeft,
	}
	_, err := f.coord.HandleTabDrop(ctx, ev)
	require.ErrorIs(t, err, coordinator.ErrNoWorkspace)

	require.NoError(t, f.coord.Start(ctx))
	out, err := f.coord.SplitPane(ctx, coordinator.SplitRequest{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "term-a",
	})
	require.NoError(t, err)

	ev.TargetPaneID = out.NewPaneID
	res, err := f.coord.HandleTabDrop(ctx, ev)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, usecase.DropSplit, res.Action)
	assert.Equal(t, 2, f.coord.State().Root.LeafCount())
}

func findTab(tabs []entity.Tab, id entity.TabID) (entity.Tab, bool) {
	for _, tab := range tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return entity.Tab{}, false
}
