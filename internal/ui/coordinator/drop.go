package coordinator

import (
	"context"
	"fmt"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

// DropEvent is a completed drag onto a pane. The dragged item is a terminal,
// or a tab whose terminal is used.
type DropEvent struct {
	// EventID identifies the gesture; repeated deliveries are ignored.
	EventID           string
	TargetPaneID      entity.PaneID
	DraggedTerminalID entity.TerminalID
	DraggedTabID      entity.TabID
	Position          entity.DropPosition
}

// DropResult reports what a drop did.
type DropResult struct {
	Action    usecase.DropAction
	Duplicate bool
	NewPaneID entity.PaneID
	TabID     entity.TabID // Tab activated by a center drop
}

// PointerDrop is a drop given as a pointer position over the rendered layout.
type PointerDrop struct {
	EventID           string
	Bounds            entity.Rect
	Pointer           entity.Point
	DraggedTerminalID entity.TerminalID
	DraggedTabID      entity.TabID
}

// SetDropCenterFraction changes the share of each axis that counts as center.
func (c *WorkspaceCoordinator) SetDropCenterFraction(f float64) {
	c.drops.SetCenterFraction(f)
}

// HandlePointerDrop resolves the pane and drop position under the pointer
// and applies the drop. Pointers outside every pane do nothing.
func (c *WorkspaceCoordinator) HandlePointerDrop(ctx context.Context, ev PointerDrop) (DropResult, error) {
	c.mu.Lock()
	root := c.root
	c.mu.Unlock()

	target, pos, ok := c.drops.ResolveAt(root, ev.Bounds, ev.Pointer)
	if !ok {
		return DropResult{Action: usecase.DropNoop}, nil
	}
	return c.HandleTabDrop(ctx, DropEvent{
		EventID:           ev.EventID,
		TargetPaneID:      target.PaneID,
		DraggedTerminalID: ev.DraggedTerminalID,
		DraggedTabID:      ev.DraggedTabID,
		Position:          pos,
	})
}

// HandleTabDrop applies a drop: a center drop activates the target pane's
// terminal tab, opening one when needed; an edge drop splits the target with
// the dragged terminal. The same event applied twice only takes effect once;
// a drop that returns an error is not remembered and may be retried.
func (c *WorkspaceCoordinator) HandleTabDrop(ctx context.Context, ev DropEvent) (DropResult, error) {
	log := logging.FromContext(ctx).With().
		Str("pane_id", string(ev.TargetPaneID)).
		Str("position", string(ev.Position)).
		Logger()

	if dup, reason := c.dedup.seen(ev); dup {
		log.Debug().Str("event_id", ev.EventID).Str("reason", reason).Msg("drop ignored")
		return DropResult{Action: usecase.DropNoop, Duplicate: true}, nil
	}

	result, dragged, err := c.applyDrop(ctx, ev)
	if err != nil {
		c.dedup.release(ev)
		return DropResult{}, err
	}

	log.Debug().
		Str("terminal_id", string(dragged)).
		Str("action", result.Action.String()).
		Msg("drop applied")

	if result.Action != usecase.DropNoop {
		c.notifyLayoutChanged()
	}
	return result, nil
}

func (c *WorkspaceCoordinator) applyDrop(ctx context.Context, ev DropEvent) (DropResult, entity.TerminalID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.workspace == nil {
		return DropResult{}, "", ErrNoWorkspace
	}

	dragged := ev.DraggedTerminalID
	if dragged == "" && ev.DraggedTabID != "" {
		tab, ok := c.tabs.Find(ev.DraggedTabID)
		if !ok || !tab.IsTerminal() {
			logging.FromContext(ctx).Debug().
				Str("tab_id", string(ev.DraggedTabID)).
				Msg("dragged tab has no terminal, ignoring")
			return DropResult{Action: usecase.DropNoop}, "", nil
		}
		dragged = tab.TerminalID
	}

	plan, err := c.drops.Plan(ctx, c.root, usecase.DropRequest{
		TargetPaneID:      ev.TargetPaneID,
		DraggedTerminalID: dragged,
		Position:          ev.Position,
	})
	if err != nil {
		return DropResult{}, dragged, err
	}

	result := DropResult{Action: plan.Action}
	switch plan.Action {
	case usecase.DropActivate:
		tabs := c.tabs.Clone()
		opened, err := c.tabsUC.Open(ctx, tabs, plan.ActivateTerminalID, string(plan.ActivateTerminalID))
		if err != nil {
			return DropResult{}, dragged, err
		}
		c.tabs = tabs
		result.TabID = opened.TabID
	case usecase.DropSplit:
		out, err := c.panesUC.Split(ctx, *plan.Split)
		if err != nil {
			return DropResult{}, dragged, fmt.Errorf("apply drop: %w", err)
		}
		if !out.Changed {
			result.Action = usecase.DropNoop
			break
		}
		c.root = out.Root
		result.NewPaneID = out.NewPaneID
	}
	return result, dragged, nil
}
