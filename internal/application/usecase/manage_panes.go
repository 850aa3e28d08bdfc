package usecase

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

const (
	minSizeRatio = 0.05
)

// ManagePanesUseCase is the split/merge engine. Every operation is pure: it
// takes a root, returns a new root and never mutates nodes of the input tree.
type ManagePanesUseCase struct {
	idGenerator     IDGenerator
	uniqueTerminals atomic.Bool
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(idGenerator IDGenerator) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
	}
}

// SetUniqueTerminalPanes toggles rejection of splits that would show a
// terminal already present in the tree.
func (uc *ManagePanesUseCase) SetUniqueTerminalPanes(enabled bool) {
	uc.uniqueTerminals.Store(enabled)
}

// PaneOutput is the result of a tree operation.
type PaneOutput struct {
	Root    *entity.PaneNode
	Changed bool
	// NewPaneID is the leaf created by a split.
	NewPaneID entity.PaneID
}

func unchanged(root *entity.PaneNode) *PaneOutput {
	return &PaneOutput{Root: root}
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Root       *entity.PaneNode
	TargetID   entity.PaneID
	Direction  entity.Orientation
	TerminalID entity.TerminalID // Terminal shown in the new pane
	Placement  entity.Placement  // Side of the target the new pane lands on
}

// Split inserts a new leaf for TerminalID next to the target node.
//
//   - target is a leaf: it is replaced by a split of Direction holding the
//     target and the new leaf at 0.5/0.5.
//   - target is a split of the same direction: the leaf is added as another
//     child and all sizes become equal.
//   - target is a split of the opposite direction: the whole split is wrapped
//     like a leaf would be.
//
// An unknown target is a silent no-op. An empty tree becomes a single leaf.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*PaneOutput, error) {
	log := logging.FromContext(ctx)

	if input.TerminalID == "" {
		return unchanged(input.Root), fmt.Errorf("split pane: %w", entity.ErrEmptyTerminalID)
	}
	if !input.Direction.Valid() {
		return unchanged(input.Root), fmt.Errorf("split pane: invalid direction %d", int(input.Direction))
	}

	if uc.uniqueTerminals.Load() && input.Root.ContainsTerminal(input.TerminalID) {
		log.Debug().
			Str("terminal_id", string(input.TerminalID)).
			Msg("terminal already visible, split rejected")
		return unchanged(input.Root), entity.ErrDuplicateTerminalPane
	}

	newLeaf := entity.NewLeaf(entity.PaneID(uc.idGenerator()), input.TerminalID)

	if input.Root == nil {
		log.Debug().
			Str("pane_id", string(newLeaf.ID)).
			Str("terminal_id", string(input.TerminalID)).
			Msg("empty layout, new pane becomes root")
		return &PaneOutput{Root: newLeaf, Changed: true, NewPaneID: newLeaf.ID}, nil
	}

	root, found := replaceNode(input.Root, input.TargetID, func(target *entity.PaneNode) *entity.PaneNode {
		if target.IsSplit() && target.Orientation == input.Direction {
			return appendChild(target, newLeaf, input.Placement)
		}
		return uc.wrap(target, newLeaf, input.Direction, input.Placement)
	})
	if !found {
		log.Debug().
			Str("pane_id", string(input.TargetID)).
			Msg("split target not found, ignoring")
		return unchanged(input.Root), nil
	}

	log.Debug().
		Str("pane_id", string(input.TargetID)).
		Str("new_pane_id", string(newLeaf.ID)).
		Str("terminal_id", string(input.TerminalID)).
		Str("direction", input.Direction.String()).
		Str("placement", input.Placement.String()).
		Msg("pane split")

	return &PaneOutput{Root: root, Changed: true, NewPaneID: newLeaf.ID}, nil
}

func (uc *ManagePanesUseCase) wrap(
	target, newLeaf *entity.PaneNode,
	direction entity.Orientation,
	placement entity.Placement,
) *entity.PaneNode {
	children := []*entity.PaneNode{target, newLeaf}
	if placement == entity.PlaceBefore {
		children = []*entity.PaneNode{newLeaf, target}
	}
	return entity.NewSplit(entity.PaneID(uc.idGenerator()), direction, children...)
}

func appendChild(split, newLeaf *entity.PaneNode, placement entity.Placement) *entity.PaneNode {
	children := make([]*entity.PaneNode, 0, len(split.Children)+1)
	if placement == entity.PlaceBefore {
		children = append(children, newLeaf)
		children = append(children, split.Children...)
	} else {
		children = append(children, split.Children...)
		children = append(children, newLeaf)
	}
	return entity.NewSplit(split.ID, split.Orientation, children...)
}

// Remove deletes the node with the given id and collapses any split left
// with a single child. Removing the last leaf yields a nil root. The space
// of the removed node is shared among its siblings in proportion to their sizes.
func (uc *ManagePanesUseCase) Remove(ctx context.Context, root *entity.PaneNode, paneID entity.PaneID) (*PaneOutput, error) {
	log := logging.FromContext(ctx)

	newRoot, found := replaceNode(root, paneID, func(*entity.PaneNode) *entity.PaneNode {
		return nil
	})
	if !found {
		log.Debug().
			Str("pane_id", string(paneID)).
			Msg("pane to remove not found, ignoring")
		return unchanged(root), nil
	}

	newRoot = entity.Normalize(newRoot)

	log.Debug().
		Str("pane_id", string(paneID)).
		Int("remaining", newRoot.LeafCount()).
		Msg("pane removed")

	return &PaneOutput{Root: newRoot, Changed: true}, nil
}

// RemoveTerminal removes every leaf showing terminalID.
func (uc *ManagePanesUseCase) RemoveTerminal(
	ctx context.Context,
	root *entity.PaneNode,
	terminalID entity.TerminalID,
) (*PaneOutput, error) {
	out := unchanged(root)
	for {
		paneID, ok := entity.FindPane(out.Root, terminalID)
		if !ok {
			return out, nil
		}
		next, err := uc.Remove(ctx, out.Root, paneID)
		if err != nil {
			return out, err
		}
		out.Root = next.Root
		out.Changed = true
	}
}

// Equalize gives every child of every split the same size.
func (uc *ManagePanesUseCase) Equalize(ctx context.Context, root *entity.PaneNode) (*PaneOutput, error) {
	newRoot, changed := equalize(root)
	if changed {
		logging.FromContext(ctx).Debug().
			Int("panes", newRoot.LeafCount()).
			Msg("layout equalized")
	}
	return &PaneOutput{Root: newRoot, Changed: changed}, nil
}

func equalize(node *entity.PaneNode) (*entity.PaneNode, bool) {
	if node == nil || node.IsLeaf() {
		return node, false
	}

	changed := false
	children := make([]*entity.PaneNode, len(node.Children))
	for i, child := range node.Children {
		newChild, childChanged := equalize(child)
		children[i] = newChild
		changed = changed || childChanged
	}

	equal := entity.EqualSizes(len(children))
	for i := range equal {
		if i >= len(node.Sizes) || math.Abs(node.Sizes[i]-equal[i]) > entity.SizeEpsilon {
			changed = true
			break
		}
	}
	if !changed {
		return node, false
	}
	return &entity.PaneNode{
		ID:          node.ID,
		Kind:        entity.NodeSplit,
		Orientation: node.Orientation,
		Children:    children,
		Sizes:       equal,
	}, true
}

// SetSizesInput contains parameters for resizing the children of a split.
type SetSizesInput struct {
	Root    *entity.PaneNode
	SplitID entity.PaneID
	Sizes   []float64 // Any positive weights; normalized to sum to 1.0
}

// SetSizes replaces the size ratios of a split. Each ratio is kept above a
// small minimum so no pane collapses to nothing. An unknown split id is a no-op.
func (uc *ManagePanesUseCase) SetSizes(ctx context.Context, input SetSizesInput) (*PaneOutput, error) {
	target := entity.FindNode(input.Root, input.SplitID)
	if target == nil {
		return unchanged(input.Root), nil
	}
	if !target.IsSplit() {
		return unchanged(input.Root), fmt.Errorf("set sizes: pane %s is not a split", input.SplitID)
	}
	if len(input.Sizes) != len(target.Children) {
		return unchanged(input.Root), fmt.Errorf("set sizes: got %d sizes for %d children",
			len(input.Sizes), len(target.Children))
	}
	for _, s := range input.Sizes {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return unchanged(input.Root), fmt.Errorf("set sizes: sizes must be positive")
		}
	}

	sizes := clampSizes(entity.RescaleSizes(input.Sizes, len(input.Sizes)))

	root, _ := replaceNode(input.Root, input.SplitID, func(split *entity.PaneNode) *entity.PaneNode {
		return &entity.PaneNode{
			ID:          split.ID,
			Kind:        entity.NodeSplit,
			Orientation: split.Orientation,
			Children:    split.Children,
			Sizes:       sizes,
		}
	})

	logging.FromContext(ctx).Debug().
		Str("pane_id", string(input.SplitID)).
		Floats64("sizes", sizes).
		Msg("split resized")

	return &PaneOutput{Root: root, Changed: true}, nil
}

// clampSizes raises ratios below minSizeRatio and takes the difference from
// the largest ones, keeping the sum at 1.0.
func clampSizes(sizes []float64) []float64 {
	if float64(len(sizes))*minSizeRatio >= 1 {
		return entity.EqualSizes(len(sizes))
	}
	out := append([]float64(nil), sizes...)
	deficit := 0.0
	for i, s := range out {
		if s < minSizeRatio {
			deficit += minSizeRatio - s
			out[i] = minSizeRatio
		}
	}
	if deficit == 0 {
		return out
	}
	surplus := 0.0
	for _, s := range out {
		if s > minSizeRatio {
			surplus += s - minSizeRatio
		}
	}
	for i, s := range out {
		if s > minSizeRatio {
			out[i] = s - deficit*(s-minSizeRatio)/surplus
		}
	}
	return out
}

// replaceNode returns a copy of root where the node with the given id is
// replaced by fn(node). Nodes off the path to the target are shared with
// the input. When fn returns nil the node is removed from its parent, whose
// remaining sizes are rescaled; a parent left with one child is replaced by it.
func replaceNode(
	root *entity.PaneNode,
	id entity.PaneID,
	fn func(*entity.PaneNode) *entity.PaneNode,
) (*entity.PaneNode, bool) {
	if root == nil || id == "" {
		return root, false
	}
	if root.ID == id {
		return fn(root), true
	}
	if root.IsLeaf() {
		return root, false
	}

	for i, child := range root.Children {
		replaced, found := replaceNode(child, id, fn)
		if !found {
			continue
		}

		if replaced != nil {
			children := append([]*entity.PaneNode(nil), root.Children...)
			children[i] = replaced
			return &entity.PaneNode{
				ID:          root.ID,
				Kind:        entity.NodeSplit,
				Orientation: root.Orientation,
				Children:    children,
				Sizes:       append([]float64(nil), root.Sizes...),
			}, true
		}

		children := make([]*entity.PaneNode, 0, len(root.Children)-1)
		sizes := make([]float64, 0, len(root.Children)-1)
		for j, c := range root.Children {
			if j == i {
				continue
			}
			children = append(children, c)
			if j < len(root.Sizes) {
				sizes = append(sizes, root.Sizes[j])
			}
		}
		switch len(children) {
		case 0:
			return nil, true
		case 1:
			return children[0], true
		}
		return &entity.PaneNode{
			ID:          root.ID,
			Kind:        entity.NodeSplit,
			Orientation: root.Orientation,
			Children:    children,
			Sizes:       entity.RescaleSizes(sizes, len(children)),
		}, true
	}
	return root, false
}
