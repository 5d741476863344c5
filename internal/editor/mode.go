// Package editor implements map authoring: a cursor that can mark out
// rooms and wall paths.
package editor

import "github.com/samdwyer/fortress/internal/grid"

// Kind is the editor mode.
type Kind int

const (
	// KindMove moves the cursor.
	KindMove Kind = iota
	// KindRoom drags a rectangle from a fixed anchor to the cursor.
	KindRoom
	// KindWall records the path the cursor walks.
	KindWall
)

// String returns a human-readable mode name.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindRoom:
		return "room"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Instructions is the help line shown for the mode.
func (k Kind) Instructions() string {
	switch k {
	case KindMove:
		return "Arrows to move; R to build room; W to draw wall; D to toggle door; Space to pause; Q to quit"
	case KindRoom:
		return "Arrows to move to opposite corner; Enter to mark rectangle; Esc to cancel"
	case KindWall:
		return "Arrows to trace wall; step back to undo; Enter to build; Esc to cancel"
	default:
		return ""
	}
}

// Mode is the editor state. Only the fields of the current Kind are used:
// Anchor for KindRoom, Path for KindWall.
type Mode struct {
	Kind   Kind
	Cursor grid.Point
	Anchor grid.Point
	Path   []grid.Point
}

// MoveMode returns the default mode with the cursor at p.
func MoveMode(p grid.Point) Mode {
	return Mode{Kind: KindMove, Cursor: p}
}

// RoomMode starts a rectangle anchored at p.
func RoomMode(p grid.Point) Mode {
	return Mode{Kind: KindRoom, Cursor: p, Anchor: p}
}

// WallMode starts a wall path at p.
func WallMode(p grid.Point) Mode {
	return Mode{Kind: KindWall, Cursor: p, Path: []grid.Point{p}}
}

// Selection returns the rectangle being marked in room mode.
func (m Mode) Selection() (grid.Rect, bool) {
	if m.Kind != KindRoom {
		return grid.Rect{}, false
	}
	return grid.RectBetween(m.Anchor, m.Cursor), true
}

// OnPath reports whether p is on the wall path being drawn.
func (m Mode) OnPath(p grid.Point) bool {
	for _, q := range m.Path {
		if q == p {
			return true
		}
	}
	return false
}

// walk records a cursor step on the wall path. Stepping back onto the
// previous tile undoes the last step.
func (m Mode) walk(p grid.Point) Mode {
	if n := len(m.Path); n >= 2 && m.Path[n-2] == p {
		m.Path = m.Path[:n-1]
		return m
	}
	m.Path = append(append([]grid.Point(nil), m.Path...), p)
	return m
}
