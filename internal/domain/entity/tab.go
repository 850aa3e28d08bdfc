package entity

import "fmt"

// TabID uniquely identifies a tab.
type TabID string

// TabType distinguishes terminal-backed tabs from other views.
type TabType int

const (
	TabTerminal TabType = iota + 1 // References a live terminal
	TabOther                       // Non-terminal view (settings, chat, ...)
)

func (t TabType) String() string {
	switch t {
	case TabTerminal:
		return "terminal"
	case TabOther:
		return "other"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TabType) MarshalText() ([]byte, error) {
	if t != TabTerminal && t != TabOther {
		return nil, fmt.Errorf("invalid tab type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TabType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "terminal":
		*t = TabTerminal
	case "other":
		*t = TabOther
	default:
		return fmt.Errorf("unknown tab type %q", string(text))
	}
	return nil
}

// Tab is a named reference shown in the tab strip.
// Terminal tabs always carry a TerminalID; other tabs carry a ViewKey.
type Tab struct {
	ID         TabID
	Type       TabType
	TerminalID TerminalID // Terminal tabs only
	ViewKey    string     // Other tabs only
	Name       string
	Position   int // Index in the registry (0-indexed)
}

// IsTerminal returns true for terminal-backed tabs.
func (t Tab) IsTerminal() bool {
	return t.Type == TabTerminal
}

// TabRegistry manages an ordered collection of tabs and the active selection.
// A terminal appears in at most one tab.
type TabRegistry struct {
	tabs     []*Tab
	activeID TabID
}

// NewTabRegistry creates an empty registry.
func NewTabRegistry() *TabRegistry {
	return &TabRegistry{
		tabs: make([]*Tab, 0),
	}
}

// Open activates the tab for terminalID, appending a new tab with id when
// none exists. It returns the id of the tab that is now active and whether
// a tab was created.
func (r *TabRegistry) Open(id TabID, terminalID TerminalID, name string) (TabID, bool, error) {
	if terminalID == "" {
		return "", false, ErrEmptyTerminalID
	}
	if existing := r.findByTerminal(terminalID); existing != nil {
		r.activeID = existing.ID
		return existing.ID, false, nil
	}
	if id == "" {
		return "", false, fmt.Errorf("open tab for terminal %s: empty tab id", terminalID)
	}
	r.append(&Tab{
		ID:         id,
		Type:       TabTerminal,
		TerminalID: terminalID,
		Name:       name,
	})
	return id, true, nil
}

// OpenView is Open for non-terminal views, deduplicated by viewKey.
func (r *TabRegistry) OpenView(id TabID, viewKey, name string) (TabID, bool, error) {
	if viewKey == "" {
		return "", false, fmt.Errorf("open view: empty view key")
	}
	for _, tab := range r.tabs {
		if tab.Type == TabOther && tab.ViewKey == viewKey {
			r.activeID = tab.ID
			return tab.ID, false, nil
		}
	}
	if id == "" {
		return "", false, fmt.Errorf("open view %s: empty tab id", viewKey)
	}
	r.append(&Tab{
		ID:      id,
		Type:    TabOther,
		ViewKey: viewKey,
		Name:    name,
	})
	return id, true, nil
}

func (r *TabRegistry) append(tab *Tab) {
	tab.Position = len(r.tabs)
	r.tabs = append(r.tabs, tab)
	r.activeID = tab.ID
}

// Close removes a tab. When it was active, the tab to its left becomes active,
// or the new leftmost tab, or none if the registry is empty.
func (r *TabRegistry) Close(id TabID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}

	r.tabs = append(r.tabs[:idx], r.tabs[idx+1:]...)
	r.reindex(idx)

	if r.activeID != id {
		return true
	}
	switch {
	case len(r.tabs) == 0:
		r.activeID = ""
	case idx > 0:
		r.activeID = r.tabs[idx-1].ID
	default:
		r.activeID = r.tabs[0].ID
	}
	return true
}

// Reorder moves a tab to newIndex, clamped into range. Other tabs keep their
// relative order.
func (r *TabRegistry) Reorder(id TabID, newIndex int) bool {
	oldIndex := r.indexOf(id)
	if oldIndex < 0 {
		return false
	}
	newIndex = max(0, min(newIndex, len(r.tabs)-1))
	if newIndex == oldIndex {
		return false
	}

	tab := r.tabs[oldIndex]
	r.tabs = append(r.tabs[:oldIndex], r.tabs[oldIndex+1:]...)
	r.tabs = append(r.tabs[:newIndex], append([]*Tab{tab}, r.tabs[newIndex:]...)...)
	r.reindex(0)
	return true
}

// SetActive activates the tab. Unknown ids are ignored.
func (r *TabRegistry) SetActive(id TabID) bool {
	if r.indexOf(id) < 0 {
		return false
	}
	r.activeID = id
	return true
}

// Rename changes a tab's display name.
func (r *TabRegistry) Rename(id TabID, name string) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.tabs[idx].Name = name
	return true
}

// Next activates the tab to the right of the active one, wrapping around.
func (r *TabRegistry) Next() (TabID, bool) {
	return r.cycle(1)
}

// Prev activates the tab to the left of the active one, wrapping around.
func (r *TabRegistry) Prev() (TabID, bool) {
	return r.cycle(-1)
}

func (r *TabRegistry) cycle(step int) (TabID, bool) {
	n := len(r.tabs)
	if n == 0 {
		return "", false
	}
	idx := r.indexOf(r.activeID)
	if idx < 0 {
		r.activeID = r.tabs[0].ID
		return r.activeID, true
	}
	next := ((idx+step)%n + n) % n
	r.activeID = r.tabs[next].ID
	return r.activeID, next != idx
}

// Find returns a copy of the tab with the given id.
func (r *TabRegistry) Find(id TabID) (Tab, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Tab{}, false
	}
	return *r.tabs[idx], true
}

// FindByTerminal returns a copy of the tab referencing terminalID.
func (r *TabRegistry) FindByTerminal(terminalID TerminalID) (Tab, bool) {
	tab := r.findByTerminal(terminalID)
	if tab == nil {
		return Tab{}, false
	}
	return *tab, true
}

func (r *TabRegistry) findByTerminal(terminalID TerminalID) *Tab {
	for _, tab := range r.tabs {
		if tab.Type == TabTerminal && tab.TerminalID == terminalID {
			return tab
		}
	}
	return nil
}

// ActiveTabID returns the active tab id, empty when the registry is empty.
func (r *TabRegistry) ActiveTabID() TabID {
	return r.activeID
}

// ActiveTab returns a copy of the active tab.
func (r *TabRegistry) ActiveTab() (Tab, bool) {
	return r.Find(r.activeID)
}

// Tabs returns copies of all tabs in order.
func (r *TabRegistry) Tabs() []Tab {
	out := make([]Tab, len(r.tabs))
	for i, tab := range r.tabs {
		out[i] = *tab
	}
	return out
}

// Count returns the number of tabs.
func (r *TabRegistry) Count() int {
	return len(r.tabs)
}

// Clone returns an independent copy of the registry.
func (r *TabRegistry) Clone() *TabRegistry {
	if r == nil {
		return NewTabRegistry()
	}
	clone := &TabRegistry{
		tabs:     make([]*Tab, len(r.tabs)),
		activeID: r.activeID,
	}
	for i, tab := range r.tabs {
		t := *tab
		clone.tabs[i] = &t
	}
	return clone
}

func (r *TabRegistry) indexOf(id TabID) int {
	if id == "" {
		return -1
	}
	for i, tab := range r.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

func (r *TabRegistry) reindex(from int) {
	for i := from; i < len(r.tabs); i++ {
		r.tabs[i].Position = i
	}
}
