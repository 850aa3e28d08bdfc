package entity

import (
	"fmt"
	"time"
)

// LayoutStateVersion is the current schema version for persisted layouts.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 2

// LayoutState is the persisted layout of one workspace: its pane tree and
// tab registry. It is serialized to JSON and stored locally or on the server.
type LayoutState struct {
	Version        int               `json:"version"`
	WorkspaceID    WorkspaceID       `json:"workspace_id"`
	Root           *PaneNodeSnapshot `json:"root" jsonschema:"nullable"`
	Tabs           []TabSnapshot     `json:"tabs"`
	ActiveTabIndex int               `json:"active_tab_index"` // -1 when no tab is active
	SavedAt        time.Time         `json:"saved_at"`
}

// PaneNodeSnapshot captures a node in the pane tree.
type PaneNodeSnapshot struct {
	ID          PaneID              `json:"id"`
	Kind        string              `json:"kind" jsonschema:"enum=leaf,enum=split"`
	TerminalID  TerminalID          `json:"terminal_id,omitempty"`
	Orientation Orientation         `json:"orientation,omitempty" jsonschema:"type=string,enum=horizontal,enum=vertical"`
	Children    []*PaneNodeSnapshot `json:"children,omitempty"`
	Sizes       []float64           `json:"sizes,omitempty"`
}

// Node kinds as they appear in the JSON blob.
const (
	SnapshotKindLeaf  = "leaf"
	SnapshotKindSplit = "split"
)

// TabSnapshot captures a single tab.
type TabSnapshot struct {
	ID         TabID      `json:"id"`
	Type       TabType    `json:"type" jsonschema:"type=string,enum=terminal,enum=other"`
	TerminalID TerminalID `json:"terminal_id,omitempty"`
	ViewKey    string     `json:"view_key,omitempty"`
	Name       string     `json:"name"`
	Position   int        `json:"position"`
}

// SnapshotLayout captures the live tree and tabs of a workspace.
func SnapshotLayout(workspaceID WorkspaceID, root *PaneNode, tabs *TabRegistry) *LayoutState {
	state := &LayoutState{
		Version:        LayoutStateVersion,
		WorkspaceID:    workspaceID,
		Root:           snapshotPaneNode(root),
		Tabs:           []TabSnapshot{},
		ActiveTabIndex: -1,
		SavedAt:        time.Now(),
	}
	if tabs == nil {
		return state
	}

	activeID := tabs.ActiveTabID()
	for i, tab := range tabs.Tabs() {
		if tab.ID == activeID {
			state.ActiveTabIndex = i
		}
		state.Tabs = append(state.Tabs, TabSnapshot{
			ID:         tab.ID,
			Type:       tab.Type,
			TerminalID: tab.TerminalID,
			ViewKey:    tab.ViewKey,
			Name:       tab.Name,
			Position:   tab.Position,
		})
	}
	return state
}

func snapshotPaneNode(node *PaneNode) *PaneNodeSnapshot {
	if node == nil {
		return nil
	}
	if node.IsLeaf() {
		return &PaneNodeSnapshot{
			ID:         node.ID,
			Kind:       SnapshotKindLeaf,
			TerminalID: node.TerminalID,
		}
	}

	snapshot := &PaneNodeSnapshot{
		ID:          node.ID,
		Kind:        SnapshotKindSplit,
		Orientation: node.Orientation,
		Children:    make([]*PaneNodeSnapshot, 0, len(node.Children)),
		Sizes:       append([]float64(nil), node.Sizes...),
	}
	for _, child := range node.Children {
		snapshot.Children = append(snapshot.Children, snapshotPaneNode(child))
	}
	return snapshot
}

// Restore rebuilds the pane tree and tab registry. IDs are preserved so that
// a save/load round-trip reproduces the same layout. The restored tree is
// normalized and validated; any violation yields ErrInvalidLayout.
func (s *LayoutState) Restore() (*PaneNode, *TabRegistry, error) {
	if s == nil {
		return nil, NewTabRegistry(), nil
	}

	root, err := paneNodeFromSnapshot(s.Root)
	if err != nil {
		return nil, nil, err
	}
	root = Normalize(root)
	if err := root.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	tabs := NewTabRegistry()
	for _, snap := range s.Tabs {
		var openErr error
		switch snap.Type {
		case TabTerminal:
			_, _, openErr = tabs.Open(snap.ID, snap.TerminalID, snap.Name)
		case TabOther:
			_, _, openErr = tabs.OpenView(snap.ID, snap.ViewKey, snap.Name)
		default:
			openErr = fmt.Errorf("unknown tab type %d", int(snap.Type))
		}
		if openErr != nil {
			return nil, nil, fmt.Errorf("%w: tab %s: %w", ErrInvalidLayout, snap.ID, openErr)
		}
	}

	tabList := tabs.Tabs()
	switch {
	case s.ActiveTabIndex >= 0 && s.ActiveTabIndex < len(tabList):
		tabs.SetActive(tabList[s.ActiveTabIndex].ID)
	case len(tabList) > 0:
		tabs.SetActive(tabList[0].ID)
	}

	return root, tabs, nil
}

func paneNodeFromSnapshot(snap *PaneNodeSnapshot) (*PaneNode, error) {
	if snap == nil {
		return nil, nil
	}

	switch snap.Kind {
	case SnapshotKindLeaf:
		if snap.TerminalID == "" {
			return nil, fmt.Errorf("%w: leaf %s has no terminal", ErrInvalidLayout, snap.ID)
		}
		return NewLeaf(snap.ID, snap.TerminalID), nil
	case SnapshotKindSplit:
		node := &PaneNode{
			ID:          snap.ID,
			Kind:        NodeSplit,
			Orientation: snap.Orientation,
			Children:    make([]*PaneNode, 0, len(snap.Children)),
			Sizes:       append([]float64(nil), snap.Sizes...),
		}
		for _, childSnap := range snap.Children {
			child, err := paneNodeFromSnapshot(childSnap)
			if err != nil {
				return nil, err
			}
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: node %s has unknown kind %q", ErrInvalidLayout, snap.ID, snap.Kind)
	}
}

// CountPanes returns the number of leaves in the persisted tree.
func (s *LayoutState) CountPanes() int {
	if s == nil {
		return 0
	}
	return countPanesInNode(s.Root)
}

func countPanesInNode(node *PaneNodeSnapshot) int {
	if node == nil {
		return 0
	}
	if node.Kind == SnapshotKindLeaf {
		return 1
	}
	count := 0
	for _, child := range node.Children {
		count += countPanesInNode(child)
	}
	return count
}

// TerminalIDs returns the distinct terminals referenced by the layout, tree first.
func (s *LayoutState) TerminalIDs() []TerminalID {
	if s == nil {
		return nil
	}
	seen := make(map[TerminalID]struct{})
	var ids []TerminalID
	add := func(id TerminalID) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	var walk func(*PaneNodeSnapshot)
	walk = func(n *PaneNodeSnapshot) {
		if n == nil {
			return
		}
		add(n.TerminalID)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Root)
	for _, tab := range s.Tabs {
		add(tab.TerminalID)
	}
	return ids
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string
