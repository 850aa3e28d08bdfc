package coordinator

import (
	"context"
	"fmt"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

// SelectionResult reports how a quick switcher selection was applied.
type SelectionResult struct {
	// Split is true when the selection completed a pending split.
	Split     bool
	NewPaneID entity.PaneID
	TabID     entity.TabID
}

// RequestSplit starts a "split with another terminal" flow. The next terminal
// selected through SelectTerminal lands next to sourceTerminalID. A new
// request replaces any pending one.
func (c *WorkspaceCoordinator) RequestSplit(
	ctx context.Context,
	sourceTerminalID entity.TerminalID,
	direction entity.Orientation,
	placement entity.Placement,
) error {
	if sourceTerminalID == "" {
		return fmt.Errorf("request split: %w", entity.ErrEmptyTerminalID)
	}
	if !direction.Valid() {
		return fmt.Errorf("request split: invalid direction %d", int(direction))
	}

	c.mu.Lock()
	if c.workspace == nil {
		c.mu.Unlock()
		return ErrNoWorkspace
	}
	c.pending = &entity.PendingSplit{
		Direction:        direction,
		SourceTerminalID: sourceTerminalID,
		Placement:        placement,
		RequestedAt:      c.now(),
	}
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("terminal_id", string(sourceTerminalID)).
		Str("direction", direction.String()).
		Msg("split awaiting terminal selection")
	return nil
}

// CancelPendingSplit clears a pending split. The quick switcher calls it when
// closed without a selection.
func (c *WorkspaceCoordinator) CancelPendingSplit(ctx context.Context) bool {
	c.mu.Lock()
	had := c.pending != nil
	c.pending = nil
	c.mu.Unlock()

	if had {
		logging.FromContext(ctx).Debug().Msg("pending split cancelled")
	}
	return had
}

// SelectTerminal handles a terminal picked in the quick switcher. With a
// pending split it splits the source terminal's pane with the selection and
// clears the request; otherwise it opens the terminal's tab. When the source
// pane is gone the request is dropped and the tab is opened instead.
func (c *WorkspaceCoordinator) SelectTerminal(
	ctx context.Context,
	terminalID entity.TerminalID,
	name string,
) (SelectionResult, error) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	if c.workspace == nil {
		c.mu.Unlock()
		return SelectionResult{}, ErrNoWorkspace
	}
	pending := c.pending
	c.pending = nil

	if pending != nil {
		sourcePane, ok := entity.FindPane(c.root, pending.SourceTerminalID)
		if ok {
			out, err := c.panesUC.Split(ctx, usecase.SplitPaneInput{
				Root:       c.root,
				TargetID:   sourcePane,
				Direction:  pending.Direction,
				TerminalID: terminalID,
				Placement:  pending.Placement,
			})
			if err != nil {
				c.mu.Unlock()
				return SelectionResult{}, err
			}
			c.root = out.Root
			c.mu.Unlock()

			log.Debug().
				Str("terminal_id", string(terminalID)).
				Str("pane_id", string(sourcePane)).
				Msg("pending split completed")
			c.notifyLayoutChanged()
			return SelectionResult{Split: true, NewPaneID: out.NewPaneID}, nil
		}
		log.Debug().
			Str("terminal_id", string(pending.SourceTerminalID)).
			Msg("split source no longer visible, opening tab instead")
	}
	c.mu.Unlock()

	tabID, err := c.OpenTab(ctx, terminalID, name)
	if err != nil {
		return SelectionResult{}, err
	}
	return SelectionResult{TabID: tabID}, nil
}
