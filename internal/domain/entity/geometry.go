package entity

import "fmt"

// Point is a pointer position in workspace coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle; X/Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PaneRect is the screen rectangle computed for a leaf.
type PaneRect struct {
	PaneID     PaneID
	TerminalID TerminalID
	Rect
}

// LayoutRects splits bounds among the leaves of root according to split
// orientations and sizes. Leaves are returned in pre-order.
func LayoutRects(root *PaneNode, bounds Rect) []PaneRect {
	var rects []PaneRect
	layoutNode(root, bounds, &rects)
	return rects
}

func layoutNode(n *PaneNode, bounds Rect, out *[]PaneRect) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		*out = append(*out, PaneRect{PaneID: n.ID, TerminalID: n.TerminalID, Rect: bounds})
		return
	}

	sizes := n.Sizes
	if len(sizes) != len(n.Children) {
		sizes = EqualSizes(len(n.Children))
	}
	offset := 0.0
	for i, child := range n.Children {
		var childBounds Rect
		if n.Orientation == OrientationHorizontal {
			w := bounds.W * sizes[i]
			childBounds = Rect{X: bounds.X + offset, Y: bounds.Y, W: w, H: bounds.H}
			offset += w
		} else {
			h := bounds.H * sizes[i]
			childBounds = Rect{X: bounds.X, Y: bounds.Y + offset, W: bounds.W, H: h}
			offset += h
		}
		layoutNode(child, childBounds, out)
	}
}

// PaneAt returns the leaf under p when root is laid out in bounds.
func PaneAt(root *PaneNode, bounds Rect, p Point) (PaneRect, bool) {
	for _, pr := range LayoutRects(root, bounds) {
		if pr.Contains(p) {
			return pr, true
		}
	}
	return PaneRect{}, false
}

// DropPosition is the region of a target pane a drag ends over.
type DropPosition string

const (
	DropLeft   DropPosition = "left"
	DropRight  DropPosition = "right"
	DropTop    DropPosition = "top"
	DropBottom DropPosition = "bottom"
	DropCenter DropPosition = "center"
)

// DefaultDropCenterFraction is the share of each axis covered by the center
// region. The fraction applies per axis, so the center covers its square of
// the pane's area: about half at this default.
const DefaultDropCenterFraction = 0.7071

// ParseDropPosition parses a drop position name.
func ParseDropPosition(s string) (DropPosition, error) {
	switch d := DropPosition(s); d {
	case DropLeft, DropRight, DropTop, DropBottom, DropCenter:
		return d, nil
	}
	return "", fmt.Errorf("unknown drop position %q", s)
}

// IsEdge reports whether the drop implies a split.
func (d DropPosition) IsEdge() bool {
	return d == DropLeft || d == DropRight || d == DropTop || d == DropBottom
}

// Orientation returns the split orientation an edge drop implies.
// Left/right split horizontally, top/bottom vertically.
func (d DropPosition) Orientation() Orientation {
	switch d {
	case DropLeft, DropRight:
		return OrientationHorizontal
	case DropTop, DropBottom:
		return OrientationVertical
	default:
		return 0
	}
}

// Placement returns where dragged content goes relative to the target.
// Left and top drops put it before the target in the children sequence.
func (d DropPosition) Placement() Placement {
	if d == DropLeft || d == DropTop {
		return PlaceBefore
	}
	return PlaceAfter
}

// ResolveDropPosition maps a pointer over target to a drop region. The center
// region is the middle centerFraction of each axis; outside it the nearest
// edge wins, preferring left/right on ties. It returns false when the target
// is empty or the pointer lies outside it.
func ResolveDropPosition(target Rect, p Point, centerFraction float64) (DropPosition, bool) {
	if target.Empty() || !target.Contains(p) {
		return "", false
	}
	if centerFraction <= 0 || centerFraction >= 1 {
		centerFraction = DefaultDropCenterFraction
	}

	nx := (p.X - target.X) / target.W
	ny := (p.Y - target.Y) / target.H

	lo := (1 - centerFraction) / 2
	hi := 1 - lo
	if nx >= lo && nx <= hi && ny >= lo && ny <= hi {
		return DropCenter, true
	}

	horizontal, hDist := DropLeft, nx
	if 1-nx < nx {
		horizontal, hDist = DropRight, 1-nx
	}
	vertical, vDist := DropTop, ny
	if 1-ny < ny {
		vertical, vDist = DropBottom, 1-ny
	}
	if hDist <= vDist {
		return horizontal, true
	}
	return vertical, true
}
