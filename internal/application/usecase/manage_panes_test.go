package usecase_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
)

func leaf(id, term string) *entity.PaneNode {
	return entity.NewLeaf(entity.PaneID(id), entity.TerminalID(term))
}

func TestManagePanes_SplitLeaf(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name      string
		placement entity.Placement
		wantOrder []entity.TerminalID
	}{
		{name: "after", placement: entity.PlaceAfter, wantOrder: []entity.TerminalID{"t1", "t2"}},
		{name: "before", placement: entity.PlaceBefore, wantOrder: []entity.TerminalID{"t2", "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewManagePanesUseCase(seqIDs("n"))
			root := leaf("p1", "t1")

			out, err := uc.Split(ctx, usecase.SplitPaneInput{
				Root:       root,
				TargetID:   "p1",
				Direction:  entity.OrientationHorizontal,
				TerminalID: "t2",
				Placement:  tt.placement,
			})
			require.NoError(t, err)
			require.True(t, out.Changed)

			got := out.Root
			require.True(t, got.IsSplit())
			assert.Equal(t, entity.OrientationHorizontal, got.Orientation)
			assert.Equal(t, []float64{0.5, 0.5}, got.Sizes)
			assert.Equal(t, tt.wantOrder, got.TerminalIDs())
			assert.Same(t, root, entity.FindNode(got, "p1"), "original leaf is reused")
			assert.NotNil(t, entity.FindNode(got, out.NewPaneID))

			// Input untouched.
			assert.True(t, root.IsLeaf())
		})
	}
}

func TestManagePanes_SplitSameDirectionAppends(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	root := entity.NewSplit("s", entity.OrientationHorizontal, leaf("p1", "t1"), leaf("p2", "t2"))

	out, err := uc.Split(ctx, usecase.SplitPaneInput{
		Root:       root,
		TargetID:   "s",
		Direction:  entity.OrientationHorizontal,
		TerminalID: "t3",
	})
	require.NoError(t, err)

	got := out.Root
	require.Len(t, got.Children, 3)
	assert.Equal(t, entity.PaneID("s"), got.ID)
	assert.Equal(t, []entity.TerminalID{"t1", "t2", "t3"}, got.TerminalIDs())
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, got.Sizes, entity.SizeEpsilon)
	assert.Len(t, root.Children, 2)
}

func TestManagePanes_SplitOppositeDirectionWraps(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	inner := entity.NewSplit("s", entity.OrientationHorizontal, leaf("p1", "t1"), leaf("p2", "t2"))

	out, err := uc.Split(ctx, usecase.SplitPaneInput{
		Root:       inner,
		TargetID:   "s",
		Direction:  entity.OrientationVertical,
		TerminalID: "t3",
	})
	require.NoError(t, err)

	got := out.Root
	require.True(t, got.IsSplit())
	assert.Equal(t, entity.OrientationVertical, got.Orientation)
	require.Len(t, got.Children, 2)
	assert.Same(t, inner, got.Children[0])
	assert.Equal(t, entity.TerminalID("t3"), got.Children[1].TerminalID)
}

func TestManagePanes_SplitNestedLeafCopiesPathOnly(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	untouched := entity.NewSplit("right", entity.OrientationVertical, leaf("p2", "t2"), leaf("p3", "t3"))
	root := entity.NewSplit("root", entity.OrientationHorizontal, leaf("p1", "t1"), untouched)

	out, err := uc.Split(ctx, usecase.SplitPaneInput{
		Root:       root,
		TargetID:   "p1",
		Direction:  entity.OrientationVertical,
		TerminalID: "t4",
	})
	require.NoError(t, err)

	assert.NotSame(t, root, out.Root)
	assert.Same(t, untouched, out.Root.Children[1])
	require.NoError(t, out.Root.Validate())
	assert.Equal(t, []entity.TerminalID{"t1", "t4", "t2", "t3"}, out.Root.TerminalIDs())
}

func TestManagePanes_SplitUnknownTargetIsNoop(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))
	root := leaf("p1", "t1")

	out, err := uc.Split(ctx, usecase.SplitPaneInput{
		Root:       root,
		TargetID:   "gone",
		Direction:  entity.OrientationHorizontal,
		TerminalID: "t2",
	})
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Same(t, root, out.Root)
}

func TestManagePanes_SplitEmptyTreeCreatesRoot(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	out, err := uc.Split(ctx, usecase.SplitPaneInput{
		Direction:  entity.OrientationHorizontal,
		TerminalID: "t1",
	})
	require.NoError(t, err)
	require.True(t, out.Root.IsLeaf())
	assert.Equal(t, entity.TerminalID("t1"), out.Root.TerminalID)
	assert.Equal(t, out.NewPaneID, out.Root.ID)
}

func TestManagePanes_SplitValidation(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))
	root := leaf("p1", "t1")

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Root: root, TargetID: "p1", Direction: entity.OrientationVertical})
	assert.ErrorIs(t, err, entity.ErrEmptyTerminalID)

	_, err = uc.Split(ctx, usecase.SplitPaneInput{Root: root, TargetID: "p1", TerminalID: "t2"})
	assert.Error(t, err)
}

func TestManagePanes_UniqueTerminalPanes(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))
	root := leaf("p1", "t1")
	input := usecase.SplitPaneInput{
		Root:       root,
		TargetID:   "p1",
		Direction:  entity.OrientationHorizontal,
		TerminalID: "t1",
	}

	out, err := uc.Split(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []entity.TerminalID{"t1", "t1"}, out.Root.TerminalIDs())

	uc.SetUniqueTerminalPanes(true)
	out, err = uc.Split(ctx, input)
	assert.ErrorIs(t, err, entity.ErrDuplicateTerminalPane)
	assert.Same(t, root, out.Root)
}

func TestManagePanes_RemoveCollapsesToSibling(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	b := leaf("b", "tb")
	root := entity.NewSplit("s", entity.OrientationHorizontal, leaf("a", "ta"), b)

	out, err := uc.Remove(ctx, root, "a")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Same(t, b, out.Root, "B alone, not a one-child split")
}

func TestManagePanes_RemoveCollapsesRecursively(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	// vertical(horizontal(a, b), c) minus b then c -> a
	root := entity.NewSplit("root", entity.OrientationVertical,
		entity.NewSplit("h", entity.OrientationHorizontal, leaf("a", "ta"), leaf("b", "tb")),
		leaf("c", "tc"),
	)

	out, err := uc.Remove(ctx, root, "b")
	require.NoError(t, err)
	require.NoError(t, out.Root.Validate())
	assert.Equal(t, []entity.TerminalID{"ta", "tc"}, out.Root.TerminalIDs())
	assert.Equal(t, entity.PaneID("a"), out.Root.Children[0].ID)

	out, err = uc.Remove(ctx, out.Root, "c")
	require.NoError(t, err)
	assert.True(t, out.Root.IsLeaf())
	assert.Equal(t, entity.PaneID("a"), out.Root.ID)
}

func TestManagePanes_RemoveRedistributesSizes(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	root := &entity.PaneNode{
		ID: "s", Kind: entity.NodeSplit, Orientation: entity.OrientationHorizontal,
		Children: []*entity.PaneNode{leaf("a", "ta"), leaf("b", "tb"), leaf("c", "tc")},
		Sizes:    []float64{0.2, 0.2, 0.6},
	}

	out, err := uc.Remove(ctx, root, "c")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, out.Root.Sizes, entity.SizeEpsilon)
}

func TestManagePanes_RemoveEdgeCases(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	out, err := uc.Remove(ctx, leaf("only", "t"), "only")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Nil(t, out.Root)

	root := leaf("p1", "t1")
	out, err = uc.Remove(ctx, root, "missing")
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Same(t, root, out.Root)

	out, err = uc.Remove(ctx, nil, "p1")
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Nil(t, out.Root)
}

func TestManagePanes_RemoveTerminal(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	root := entity.NewSplit("s", entity.OrientationHorizontal,
		leaf("p1", "dup"), leaf("p2", "keep"), leaf("p3", "dup"))

	out, err := uc.RemoveTerminal(ctx, root, "dup")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.True(t, out.Root.IsLeaf())
	assert.Equal(t, entity.TerminalID("keep"), out.Root.TerminalID)
}

func TestManagePanes_Equalize(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))

	root := &entity.PaneNode{
		ID: "s", Kind: entity.NodeSplit, Orientation: entity.OrientationHorizontal,
		Children: []*entity.PaneNode{
			leaf("a", "ta"),
			{
				ID: "v", Kind: entity.NodeSplit, Orientation: entity.OrientationVertical,
				Children: []*entity.PaneNode{leaf("b", "tb"), leaf("c", "tc")},
				Sizes:    []float64{0.9, 0.1},
			},
		},
		Sizes: []float64{0.7, 0.3},
	}

	out, err := uc.Equalize(ctx, root)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, []float64{0.5, 0.5}, out.Root.Sizes)
	assert.Equal(t, []float64{0.5, 0.5}, out.Root.Children[1].Sizes)
	assert.Equal(t, []float64{0.7, 0.3}, root.Sizes)

	again, err := uc.Equalize(ctx, out.Root)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Same(t, out.Root, again.Root)
}

func TestManagePanes_SetSizes(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase(seqIDs("n"))
	root := entity.NewSplit("s", entity.OrientationHorizontal, leaf("a", "ta"), leaf("b", "tb"))

	out, err := uc.SetSizes(ctx, usecase.SetSizesInput{Root: root, SplitID: "s", Sizes: []float64{1, 3}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, out.Root.Sizes, entity.SizeEpsilon)

	out, err = uc.SetSizes(ctx, usecase.SetSizesInput{Root: root, SplitID: "s", Sizes: []float64{0.001, 0.999}})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, out.Root.Sizes[0], 1e-9)
	require.NoError(t, out.Root.Validate())

	_, err = uc.SetSizes(ctx, usecase.SetSizesInput{Root: root, SplitID: "s", Sizes: []float64{1}})
	assert.Error(t, err)

	_, err = uc.SetSizes(ctx, usecase.SetSizesInput{Root: root, SplitID: "a", Sizes: []float64{1, 1}})
	assert.Error(t, err)

	out, err = uc.SetSizes(ctx, usecase.SetSizesInput{Root: root, SplitID: "missing", Sizes: []float64{1, 1}})
	require.NoError(t, err)
	assert.False(t, out.Changed)
}

// TestManagePanes_RandomOperationsKeepTreeValid applies random splits and
// removals and checks after every step that no split has fewer than two
// children and that all sizes sum to one.
func TestManagePanes_RandomOperationsKeepTreeValid(t *testing.T) {
	ctx := testContext()

	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			uc := usecase.NewManagePanesUseCase(seqIDs("n"))

			var root *entity.PaneNode
			for step := 0; step < 200; step++ {
				var ids []entity.PaneID
				root.Walk(func(n *entity.PaneNode) bool {
					ids = append(ids, n.ID)
					return true
				})

				if len(ids) == 0 || rng.Intn(3) > 0 {
					var target entity.PaneID
					if len(ids) > 0 {
						target = ids[rng.Intn(len(ids))]
					}
					dir := entity.OrientationHorizontal
					if rng.Intn(2) == 0 {
						dir = entity.OrientationVertical
					}
					out, err := uc.Split(ctx, usecase.SplitPaneInput{
						Root:       root,
						TargetID:   target,
						Direction:  dir,
						TerminalID: entity.TerminalID(fmt.Sprintf("t%d", step)),
						Placement:  entity.Placement(rng.Intn(2)),
					})
					require.NoError(t, err)
					root = out.Root
				} else {
					out, err := uc.Remove(ctx, root, ids[rng.Intn(len(ids))])
					require.NoError(t, err)
					root = out.Root
				}

				require.NoError(t, root.Validate(), "step %d", step)
				root.Walk(func(n *entity.PaneNode) bool {
					if n.IsSplit() {
						sum := 0.0
						for _, s := range n.Sizes {
							sum += s
						}
						assert.LessOrEqual(t, math.Abs(sum-1), entity.SizeEpsilon)
						assert.GreaterOrEqual(t, len(n.Children), 2)
					}
					return true
				})
			}
		})
	}
}
