package usecase

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

// DropZoneResolver turns drag-and-drop geometry into layout requests.
// It never mutates the tree; the caller applies the returned plan.
type DropZoneResolver struct {
	centerFraction atomic.Uint64 // math.Float64bits
}

// NewDropZoneResolver creates a resolver whose center region covers
// centerFraction of each axis of the target pane.
func NewDropZoneResolver(centerFraction float64) *DropZoneResolver {
	r := &DropZoneResolver{}
	r.SetCenterFraction(centerFraction)
	return r
}

// SetCenterFraction updates the center region. Values outside (0,1) reset it
// to the default.
func (r *DropZoneResolver) SetCenterFraction(f float64) {
	if f <= 0 || f >= 1 || math.IsNaN(f) {
		f = entity.DefaultDropCenterFraction
	}
	r.centerFraction.Store(math.Float64bits(f))
}

// CenterFraction returns the current center region fraction.
func (r *DropZoneResolver) CenterFraction() float64 {
	return math.Float64frombits(r.centerFraction.Load())
}

// Resolve maps a pointer over the target rectangle to a drop position.
func (r *DropZoneResolver) Resolve(target entity.Rect, p entity.Point) (entity.DropPosition, bool) {
	return entity.ResolveDropPosition(target, p, r.CenterFraction())
}

// ResolveAt finds the pane under the pointer when root fills bounds and
// resolves the drop position within it.
func (r *DropZoneResolver) ResolveAt(
	root *entity.PaneNode,
	bounds entity.Rect,
	p entity.Point,
) (entity.PaneRect, entity.DropPosition, bool) {
	target, ok := entity.PaneAt(root, bounds, p)
	if !ok {
		return entity.PaneRect{}, "", false
	}
	pos, ok := r.Resolve(target.Rect, p)
	return target, pos, ok
}

// DropAction is what applying a drop does to the layout.
type DropAction int

const (
	DropNoop     DropAction = iota // Nothing to do
	DropActivate                   // Activate the target's terminal tab
	DropSplit                      // Split the target with the dragged terminal
)

func (a DropAction) String() string {
	switch a {
	case DropActivate:
		return "activate"
	case DropSplit:
		return "split"
	default:
		return "noop"
	}
}

// DropRequest describes a completed drop.
type DropRequest struct {
	TargetPaneID      entity.PaneID
	DraggedTerminalID entity.TerminalID
	Position          entity.DropPosition
}

// DropPlan is the structured operation a drop translates to.
type DropPlan struct {
	Action DropAction
	// ActivateTerminalID is set for DropActivate.
	ActivateTerminalID entity.TerminalID
	// Split is set for DropSplit.
	Split *SplitPaneInput
}

// Plan translates a drop on root into a plan.
//
// A center drop activates the target pane's terminal without touching the
// tree. Edge drops split the target: left/right horizontally, top/bottom
// vertically, with left/top placing the dragged terminal before the target.
// Dropping a terminal onto a pane that already shows it, or onto a pane that
// no longer exists, plans nothing.
func (r *DropZoneResolver) Plan(ctx context.Context, root *entity.PaneNode, req DropRequest) (DropPlan, error) {
	log := logging.FromContext(ctx)

	if _, err := entity.ParseDropPosition(string(req.Position)); err != nil {
		return DropPlan{}, fmt.Errorf("plan drop: %w", err)
	}
	if req.DraggedTerminalID == "" {
		return DropPlan{}, fmt.Errorf("plan drop: %w", entity.ErrEmptyTerminalID)
	}

	target := entity.FindNode(root, req.TargetPaneID)
	if target == nil {
		log.Debug().
			Str("pane_id", string(req.TargetPaneID)).
			Msg("drop target vanished, ignoring")
		return DropPlan{Action: DropNoop}, nil
	}

	if req.Position == entity.DropCenter {
		if !target.IsLeaf() {
			return DropPlan{Action: DropNoop}, nil
		}
		return DropPlan{Action: DropActivate, ActivateTerminalID: target.TerminalID}, nil
	}

	if target.IsLeaf() && target.TerminalID == req.DraggedTerminalID {
		log.Debug().
			Str("pane_id", string(req.TargetPaneID)).
			Msg("terminal dropped onto itself, ignoring")
		return DropPlan{Action: DropNoop}, nil
	}

	return DropPlan{
		Action: DropSplit,
		Split: &SplitPaneInput{
			Root:       root,
			TargetID:   req.TargetPaneID,
			Direction:  req.Position.Orientation(),
			TerminalID: req.DraggedTerminalID,
			Placement:  req.Position.Placement(),
		},
	}, nil
}
