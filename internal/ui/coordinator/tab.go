package coordinator

import (
	"context"
	"errors"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
)

// withTabs runs fn on a copy of the registry and swaps the copy in when fn
// reports a change.
func (c *WorkspaceCoordinator) withTabs(fn func(tabs *entity.TabRegistry) (bool, error)) (bool, error) {
	c.mu.Lock()
	if c.workspace == nil {
		c.mu.Unlock()
		return false, ErrNoWorkspace
	}
	next := c.tabs.Clone()
	changed, err := fn(next)
	if err == nil && changed {
		c.tabs = next
	}
	c.mu.Unlock()

	if err == nil && changed {
		c.notifyLayoutChanged()
	}
	return changed, err
}

// OpenTab activates the tab of a terminal, creating it when none exists.
func (c *WorkspaceCoordinator) OpenTab(ctx context.Context, terminalID entity.TerminalID, name string) (entity.TabID, error) {
	var out *usecase.OpenTabOutput
	_, err := c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		before := tabs.ActiveTabID()
		var err error
		out, err = c.tabsUC.Open(ctx, tabs, terminalID, name)
		if err != nil {
			return false, err
		}
		return out.Created || before != out.TabID, nil
	})
	if err != nil {
		return "", err
	}
	return out.TabID, nil
}

// OpenView opens or activates a non-terminal view tab.
func (c *WorkspaceCoordinator) OpenView(ctx context.Context, viewKey, name string) (entity.TabID, error) {
	var out *usecase.OpenTabOutput
	_, err := c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		before := tabs.ActiveTabID()
		var err error
		out, err = c.tabsUC.OpenView(ctx, tabs, viewKey, name)
		if err != nil {
			return false, err
		}
		return out.Created || before != out.TabID, nil
	})
	if err != nil {
		return "", err
	}
	return out.TabID, nil
}

// CloseTab removes a tab. Panes showing its terminal stay open.
func (c *WorkspaceCoordinator) CloseTab(ctx context.Context, tabID entity.TabID) (bool, error) {
	return c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		return c.tabsUC.Close(ctx, tabs, tabID), nil
	})
}

// ReorderTabs moves a tab to newIndex, clamped into range.
func (c *WorkspaceCoordinator) ReorderTabs(ctx context.Context, tabID entity.TabID, newIndex int) (bool, error) {
	return c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		return c.tabsUC.Reorder(ctx, tabs, tabID, newIndex), nil
	})
}

// ActivateTab switches to a tab. Unknown ids are ignored.
func (c *WorkspaceCoordinator) ActivateTab(ctx context.Context, tabID entity.TabID) (bool, error) {
	return c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		if tabs.ActiveTabID() == tabID {
			return false, nil
		}
		return c.tabsUC.Activate(ctx, tabs, tabID), nil
	})
}

// CycleTab activates the next or previous tab, wrapping around.
func (c *WorkspaceCoordinator) CycleTab(ctx context.Context, forward bool) (entity.TabID, error) {
	var id entity.TabID
	_, err := c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		var changed bool
		id, changed = c.tabsUC.Cycle(ctx, tabs, forward)
		return changed, nil
	})
	return id, err
}

// RenameTerminal renames a terminal on the server and relabels its tab in
// the active workspace.
func (c *WorkspaceCoordinator) RenameTerminal(ctx context.Context, id entity.TerminalID, name string) (*entity.Terminal, error) {
	term, err := c.terminalsUC.Rename(ctx, id, name)
	if err != nil {
		return nil, err
	}
	_, err = c.withTabs(func(tabs *entity.TabRegistry) (bool, error) {
		tab, ok := tabs.FindByTerminal(id)
		if !ok || tab.Name == term.Name {
			return false, nil
		}
		return tabs.Rename(tab.ID, term.Name), nil
	})
	if err != nil && !errors.Is(err, ErrNoWorkspace) {
		return nil, err
	}
	return term, nil
}
