package coordinator

import (
	"context"
	"fmt"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/logging"
)

// SplitRequest asks for a new pane next to TargetID. On an empty layout the
// new pane becomes the root and TargetID is ignored.
type SplitRequest struct {
	TargetID   entity.PaneID
	Direction  entity.Orientation
	TerminalID entity.TerminalID
	Placement  entity.Placement
}

// withRoot runs fn against the current root and swaps in its result when it changed.
func (c *WorkspaceCoordinator) withRoot(fn func(root *entity.PaneNode) (*usecase.PaneOutput, error)) (*usecase.PaneOutput, error) {
	c.mu.Lock()
	if c.workspace == nil {
		c.mu.Unlock()
		return nil, ErrNoWorkspace
	}
	out, err := fn(c.root)
	if err != nil {
		c.mu.Unlock()
		return out, err
	}
	if out.Changed {
		c.root = out.Root
	}
	c.mu.Unlock()

	if out.Changed {
		c.notifyLayoutChanged()
	}
	return out, nil
}

// SplitPane splits the target pane. Unknown targets are ignored.
func (c *WorkspaceCoordinator) SplitPane(ctx context.Context, req SplitRequest) (*usecase.PaneOutput, error) {
	return c.withRoot(func(root *entity.PaneNode) (*usecase.PaneOutput, error) {
		return c.panesUC.Split(ctx, usecase.SplitPaneInput{
			Root:       root,
			TargetID:   req.TargetID,
			Direction:  req.Direction,
			TerminalID: req.TerminalID,
			Placement:  req.Placement,
		})
	})
}

// RemovePane closes a pane and collapses its parent when one child is left.
// Unknown ids are ignored. Tabs are left alone.
func (c *WorkspaceCoordinator) RemovePane(ctx context.Context, paneID entity.PaneID) (bool, error) {
	out, err := c.withRoot(func(root *entity.PaneNode) (*usecase.PaneOutput, error) {
		return c.panesUC.Remove(ctx, root, paneID)
	})
	if err != nil {
		return false, err
	}
	return out.Changed, nil
}

// EqualizePanes gives every child of every split the same share.
func (c *WorkspaceCoordinator) EqualizePanes(ctx context.Context) (bool, error) {
	out, err := c.withRoot(func(root *entity.PaneNode) (*usecase.PaneOutput, error) {
		return c.panesUC.Equalize(ctx, root)
	})
	if err != nil {
		return false, err
	}
	return out.Changed, nil
}

// ResizeSplit sets the child ratios of a split.
func (c *WorkspaceCoordinator) ResizeSplit(ctx context.Context, splitID entity.PaneID, sizes []float64) (bool, error) {
	out, err := c.withRoot(func(root *entity.PaneNode) (*usecase.PaneOutput, error) {
		return c.panesUC.SetSizes(ctx, usecase.SetSizesInput{Root: root, SplitID: splitID, Sizes: sizes})
	})
	if err != nil {
		return false, err
	}
	return out.Changed, nil
}

// CreateSplitRequest asks the server for a new terminal and splits it next to TargetID.
type CreateSplitRequest struct {
	TargetID  entity.PaneID
	Direction entity.Orientation
	Placement entity.Placement
	Spec      entity.TerminalSpec
}

// CreateSplitResult is the outcome of CreateTerminalInSplit.
type CreateSplitResult struct {
	Terminal  *entity.Terminal
	NewPaneID entity.PaneID
	TabID     entity.TabID
}

// CreateTerminalInSplit creates a terminal on the server, then splits it into
// the layout and opens its tab in one step. When creation fails the layout is
// untouched. When the active workspace changed while waiting for the server,
// the terminal is returned with ErrWorkspaceChanged and nothing is applied.
// An unknown target fails with ErrPaneNotFound before anything is created; a
// target removed while waiting returns the terminal with ErrPaneNotFound and
// leaves layout and tabs alone.
func (c *WorkspaceCoordinator) CreateTerminalInSplit(ctx context.Context, req CreateSplitRequest) (*CreateSplitResult, error) {
	log := logging.FromContext(ctx)

	if !req.Direction.Valid() {
		return nil, fmt.Errorf("create terminal in split: invalid direction %d", int(req.Direction))
	}

	c.mu.Lock()
	var wsID entity.WorkspaceID
	if c.workspace != nil {
		wsID = c.workspace.ID
	}
	targetMissing := c.root != nil && entity.FindNode(c.root, req.TargetID) == nil
	c.mu.Unlock()

	if wsID == "" {
		return nil, ErrNoWorkspace
	}
	if targetMissing {
		return nil, fmt.Errorf("create terminal in split: %w: %s", ErrPaneNotFound, req.TargetID)
	}

	spec := req.Spec
	if spec.WorkspaceID == "" {
		spec.WorkspaceID = wsID
	}
	term, err := c.terminalsUC.Create(ctx, spec)
	if err != nil {
		return nil, err
	}

	result := &CreateSplitResult{Terminal: term}

	c.mu.Lock()
	if c.workspace == nil || c.workspace.ID != wsID {
		c.mu.Unlock()
		log.Warn().
			Str("terminal_id", string(term.ID)).
			Str("workspace_id", string(wsID)).
			Msg("workspace changed while creating terminal, not splitting")
		return result, ErrWorkspaceChanged
	}

	out, err := c.panesUC.Split(ctx, usecase.SplitPaneInput{
		Root:       c.root,
		TargetID:   req.TargetID,
		Direction:  req.Direction,
		TerminalID: term.ID,
		Placement:  req.Placement,
	})
	if err != nil {
		c.mu.Unlock()
		return result, err
	}
	if !out.Changed {
		c.mu.Unlock()
		log.Warn().
			Str("terminal_id", string(term.ID)).
			Str("pane_id", string(req.TargetID)).
			Msg("split target removed while creating terminal, not splitting")
		return result, fmt.Errorf("create terminal in split: %w: %s", ErrPaneNotFound, req.TargetID)
	}

	tabs := c.tabs.Clone()
	opened, err := c.tabsUC.Open(ctx, tabs, term.ID, term.Name)
	if err != nil {
		c.mu.Unlock()
		return result, err
	}

	c.root = out.Root
	c.tabs = tabs
	c.mu.Unlock()

	result.NewPaneID = out.NewPaneID
	result.TabID = opened.TabID
	c.notifyLayoutChanged()
	return result, nil
}
