// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"math"
)

// PaneID uniquely identifies a node within a pane tree.
type PaneID string

// TerminalID identifies a live terminal owned by the server.
type TerminalID string

// SizeEpsilon is the tolerance used when checking that split sizes sum to 1.0.
const SizeEpsilon = 1e-6

// Orientation indicates how a split container lays out its children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota + 1 // Children side by side (left/right)
	OrientationVertical                          // Children stacked (top/bottom)
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Opposite returns the perpendicular orientation.
func (o Orientation) Opposite() Orientation {
	if o == OrientationHorizontal {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == OrientationHorizontal || o == OrientationVertical
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOrientation parses "horizontal"/"h" or "vertical"/"v".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "h":
		return OrientationHorizontal, nil
	case "vertical", "v":
		return OrientationVertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// NodeKind tags a PaneNode as a leaf or a split container.
type NodeKind int

const (
	NodeLeaf  NodeKind = iota + 1 // Hosts a single terminal
	NodeSplit                     // Holds two or more children
)

// PaneNode is a node of the pane tree. It is either:
//   - Leaf: a single terminal occupying a rectangle (TerminalID set, no children)
//   - Split: two or more children laid out along Orientation, with one size ratio per child
//
// Nodes reachable from a published root are never mutated; every operation
// that changes the layout builds a new root and shares untouched subtrees.
type PaneNode struct {
	ID         PaneID
	Kind       NodeKind
	TerminalID TerminalID // Leaf only

	Orientation Orientation // Split only
	Children    []*PaneNode
	Sizes       []float64 // Ratios summing to 1.0, one per child
}

// NewLeaf creates a leaf node hosting a terminal.
func NewLeaf(id PaneID, terminalID TerminalID) *PaneNode {
	return &PaneNode{
		ID:         id,
		Kind:       NodeLeaf,
		TerminalID: terminalID,
	}
}

// NewSplit creates a split node with equally distributed sizes.
func NewSplit(id PaneID, orientation Orientation, children ...*PaneNode) *PaneNode {
	return &PaneNode{
		ID:          id,
		Kind:        NodeSplit,
		Orientation: orientation,
		Children:    children,
		Sizes:       EqualSizes(len(children)),
	}
}

// EqualSizes returns n ratios of 1/n each.
func EqualSizes(n int) []float64 {
	if n <= 0 {
		return nil
	}
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = 1.0 / float64(n)
	}
	return sizes
}

// IsLeaf returns true if this node hosts a terminal.
func (n *PaneNode) IsLeaf() bool {
	return n != nil && n.Kind == NodeLeaf
}

// IsSplit returns true if this node is a split container.
func (n *PaneNode) IsSplit() bool {
	return n != nil && n.Kind == NodeSplit
}

// Walk traverses the tree in pre-order calling fn for each node.
// Children of a node are skipped when fn returns false for it.
func (n *PaneNode) Walk(fn func(*PaneNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindPane returns the ID of the first leaf in pre-order hosting terminalID.
// When a terminal is shown in several leaves the first one encountered wins.
func FindPane(root *PaneNode, terminalID TerminalID) (PaneID, bool) {
	leaf := FindLeaf(root, terminalID)
	if leaf == nil {
		return "", false
	}
	return leaf.ID, true
}

// FindLeaf is FindPane returning the node itself.
func FindLeaf(root *PaneNode, terminalID TerminalID) *PaneNode {
	var found *PaneNode
	root.Walk(func(node *PaneNode) bool {
		if found != nil {
			return false
		}
		if node.IsLeaf() && node.TerminalID == terminalID {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindNode returns the node with the given ID, or nil.
func FindNode(root *PaneNode, id PaneID) *PaneNode {
	var found *PaneNode
	root.Walk(func(node *PaneNode) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Leaves returns all leaves in pre-order.
func (n *PaneNode) Leaves() []*PaneNode {
	var leaves []*PaneNode
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// LeafCount returns the number of leaves (visible terminal panes) in the tree.
func (n *PaneNode) LeafCount() int {
	return len(n.Leaves())
}

// TerminalIDs returns the terminal of every leaf in pre-order, duplicates included.
func (n *PaneNode) TerminalIDs() []TerminalID {
	leaves := n.Leaves()
	ids := make([]TerminalID, 0, len(leaves))
	for _, leaf := range leaves {
		ids = append(ids, leaf.TerminalID)
	}
	return ids
}

// ContainsTerminal reports whether any leaf hosts terminalID.
func (n *PaneNode) ContainsTerminal(terminalID TerminalID) bool {
	return FindLeaf(n, terminalID) != nil
}

// Depth returns the number of levels in the tree (a single leaf is 1).
func (n *PaneNode) Depth() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Clone returns a deep copy of the tree.
func (n *PaneNode) Clone() *PaneNode {
	if n == nil {
		return nil
	}
	clone := &PaneNode{
		ID:          n.ID,
		Kind:        n.Kind,
		TerminalID:  n.TerminalID,
		Orientation: n.Orientation,
	}
	if len(n.Children) > 0 {
		clone.Children = make([]*PaneNode, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	if len(n.Sizes) > 0 {
		clone.Sizes = append([]float64(nil), n.Sizes...)
	}
	return clone
}

// Normalize returns a minimal copy of the tree: splits left with a single
// child are replaced by that child, empty splits disappear, and sizes are
// rescaled to sum to 1.0. The input is not modified.
func Normalize(root *PaneNode) *PaneNode {
	if root == nil {
		return nil
	}
	if root.IsLeaf() {
		return root
	}

	children := make([]*PaneNode, 0, len(root.Children))
	sizes := make([]float64, 0, len(root.Children))
	changed := len(root.Sizes) != len(root.Children)
	for i, child := range root.Children {
		normalized := Normalize(child)
		if normalized != child {
			changed = true
		}
		if normalized == nil {
			changed = true
			continue
		}
		children = append(children, normalized)
		if i < len(root.Sizes) {
			sizes = append(sizes, root.Sizes[i])
		}
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}

	sizes = rescaleSizes(sizes, len(children))
	if !changed && sizesEqual(sizes, root.Sizes) {
		return root
	}

	return &PaneNode{
		ID:          root.ID,
		Kind:        NodeSplit,
		Orientation: root.Orientation,
		Children:    children,
		Sizes:       sizes,
	}
}

// rescaleSizes makes sizes sum to 1.0, falling back to equal sizes when the
// input is unusable (wrong length or non-positive entries).
func rescaleSizes(sizes []float64, n int) []float64 {
	if len(sizes) != n {
		return EqualSizes(n)
	}
	sum := 0.0
	for _, s := range sizes {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return EqualSizes(n)
		}
		sum += s
	}
	if math.Abs(sum-1.0) <= SizeEpsilon {
		return sizes
	}
	out := make([]float64, n)
	for i, s := range sizes {
		out[i] = s / sum
	}
	return out
}

// RescaleSizes is the exported form of the size normalization used by Normalize.
func RescaleSizes(sizes []float64, n int) []float64 {
	return rescaleSizes(append([]float64(nil), sizes...), n)
}

func sizesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > SizeEpsilon {
			return false
		}
	}
	return true
}

// Equal reports whether two trees have the same shape, ids, terminals,
// orientations and (within SizeEpsilon) sizes.
func Equal(a, b *PaneNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID != b.ID || a.Kind != b.Kind {
		return false
	}
	if a.IsLeaf() {
		return a.TerminalID == b.TerminalID
	}
	if a.Orientation != b.Orientation || len(a.Children) != len(b.Children) {
		return false
	}
	if !sizesEqual(a.Sizes, b.Sizes) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// SameShape is Equal ignoring node IDs.
func SameShape(a, b *PaneNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.IsLeaf() {
		return a.TerminalID == b.TerminalID
	}
	if a.Orientation != b.Orientation || len(a.Children) != len(b.Children) || !sizesEqual(a.Sizes, b.Sizes) {
		return false
	}
	for i := range a.Children {
		if !SameShape(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants of the tree: unique ids, leaves
// with a terminal and no children, splits with two or more children and one
// positive size per child summing to 1.0.
func (n *PaneNode) Validate() error {
	if n == nil {
		return nil
	}
	seen := make(map[PaneID]struct{})
	return validateNode(n, seen)
}

func validateNode(n *PaneNode, seen map[PaneID]struct{}) error {
	if n == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidPaneTree)
	}
	if n.ID == "" {
		return fmt.Errorf("%w: empty pane id", ErrInvalidPaneTree)
	}
	if _, dup := seen[n.ID]; dup {
		return fmt.Errorf("%w: duplicate pane id %s", ErrInvalidPaneTree, n.ID)
	}
	seen[n.ID] = struct{}{}

	switch n.Kind {
	case NodeLeaf:
		if n.TerminalID == "" {
			return fmt.Errorf("%w: leaf %s has no terminal", ErrInvalidPaneTree, n.ID)
		}
		if len(n.Children) > 0 {
			return fmt.Errorf("%w: leaf %s has children", ErrInvalidPaneTree, n.ID)
		}
		return nil
	case NodeSplit:
	default:
		return fmt.Errorf("%w: node %s has unknown kind %d", ErrInvalidPaneTree, n.ID, n.Kind)
	}

	if !n.Orientation.Valid() {
		return fmt.Errorf("%w: split %s has invalid orientation", ErrInvalidPaneTree, n.ID)
	}
	if len(n.Children) < 2 {
		return fmt.Errorf("%w: split %s has %d children", ErrInvalidPaneTree, n.ID, len(n.Children))
	}
	if len(n.Sizes) != len(n.Children) {
		return fmt.Errorf("%w: split %s has %d sizes for %d children",
			ErrInvalidPaneTree, n.ID, len(n.Sizes), len(n.Children))
	}
	sum := 0.0
	for _, s := range n.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: split %s has non-positive size", ErrInvalidPaneTree, n.ID)
		}
		sum += s
	}
	if math.Abs(sum-1.0) > SizeEpsilon {
		return fmt.Errorf("%w: split %s sizes sum to %f", ErrInvalidPaneTree, n.ID, sum)
	}
	for _, child := range n.Children {
		if err := validateNode(child, seen); err != nil {
			return err
		}
	}
	return nil
}
