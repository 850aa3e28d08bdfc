package entity

import "time"

// PendingSplit captures a "split with another terminal" request that is
// waiting for the user to pick the terminal in the quick switcher.
type PendingSplit struct {
	Direction        Orientation
	SourceTerminalID TerminalID
	// Placement decides which side of the source the selected terminal lands on.
	Placement   Placement
	RequestedAt time.Time
}

// Placement is the position of new content relative to its split target.
type Placement int

const (
	PlaceAfter  Placement = iota // Right of or below the target
	PlaceBefore                  // Left of or above the target
)

func (p Placement) String() string {
	if p == PlaceBefore {
		return "before"
	}
	return "after"
}
