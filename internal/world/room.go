package world

import "github.com/samdwyer/fortress/internal/grid"

// RoomID identifies a room. Zero means "no room".
type RoomID int

// Room is a labelled region of tiles. Membership lives in the map's
// room index, not on the Room.
type Room struct {
	ID   RoomID
	Kind string
}

// EdgeState is what an edge holds. Walls are derived from room membership
// by RebuildAllEdges; doors are authored.
type EdgeState struct {
	Wall bool
	Door bool
}

// IsZero reports whether the edge holds nothing.
func (s EdgeState) IsZero() bool {
	return !s.Wall && !s.Door
}

// RoomTiles returns the tiles assigned to id in row-major order.
func (m *Map) RoomTiles(id RoomID) []grid.Point {
	var tiles []grid.Point
	m.bounds.Each(func(p grid.Point) bool {
		if got, ok := m.roomAt.Get(p); ok && got == id {
			tiles = append(tiles, p)
		}
		return true
	})
	return tiles
}
