package grid

import "strconv"

// Side selects the north or west face of a tile. South and east faces are
// addressed as the north or west face of the neighbouring tile, so every
// edge has exactly one encoding.
type Side uint8

const (
	North Side = iota
	West
)

// String returns "N" or "W".
func (s Side) String() string {
	switch s {
	case North:
		return "N"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Edge is the boundary on one face of tile (X,Y).
type Edge struct {
	X, Y int
	Side Side
}

// String returns the canonical "x,y,side" encoding.
func (e Edge) String() string {
	return strconv.Itoa(e.X) + "," + strconv.Itoa(e.Y) + "," + e.Side.String()
}

// Joins returns the two tiles the edge separates, the northern or western
// one first.
func (e Edge) Joins() (Point, Point) {
	here := Point{e.X, e.Y}
	if e.Side == North {
		return Point{e.X, e.Y - 1}, here
	}
	return Point{e.X - 1, e.Y}, here
}

// EdgeTile pairs an edge with the tile on its far side.
type EdgeTile struct {
	Edge Edge
	Tile Point
}

// AdjacentToTile returns the four edges touching p with the neighbour
// across each, in N, W, S, E order.
func AdjacentToTile(p Point) [4]EdgeTile {
	return [4]EdgeTile{
		{Edge{p.X, p.Y, North}, Point{p.X, p.Y - 1}},
		{Edge{p.X, p.Y, West}, Point{p.X - 1, p.Y}},
		{Edge{p.X, p.Y + 1, North}, Point{p.X, p.Y + 1}},
		{Edge{p.X + 1, p.Y, West}, Point{p.X + 1, p.Y}},
	}
}

// EdgeBetween returns the edge separating two 4-adjacent tiles. It reports
// false for tiles that are equal, diagonal or further apart.
func EdgeBetween(a, b Point) (Edge, bool) {
	for _, et := range AdjacentToTile(a) {
		if et.Tile == b {
			return et.Edge, true
		}
	}
	return Edge{}, false
}
