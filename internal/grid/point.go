// Package grid provides tile coordinates, oriented tile edges and
// the spatial key index used by the world map.
package grid

import "strconv"

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Chebyshev returns max(|dx|, |dy|) between p and q.
func (p Point) Chebyshev(q Point) int {
	d := p.Sub(q)
	return max(abs(d.X), abs(d.Y))
}

// Sign returns the per-axis sign of p, so d.Sign() is a one-tile step along d.
func (p Point) Sign() Point {
	return Point{Sign(p.X), Sign(p.Y)}
}

// String returns the canonical "x,y" encoding.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Sign returns -1, 0 or +1.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rect is an inclusive rectangle of tiles: [Left,Right] x [Top,Bottom].
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectBetween returns the inclusive box spanned by two corners in any order.
func RectBetween(a, b Point) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Right:  max(a.X, b.X),
		Bottom: max(a.Y, b.Y),
	}
}

// Around returns the square window [c-r, c+r] on both axes.
func Around(c Point, r int) Rect {
	return Rect{c.X - r, c.Y - r, c.X + r, c.Y + r}
}

// Valid reports whether the rectangle covers at least one tile.
func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return r.Left <= p.X && p.X <= r.Right &&
		r.Top <= p.Y && p.Y <= r.Bottom
}

// Width returns the number of columns.
func (r Rect) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows.
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

// Intersect returns the overlap of r and o. The result is not Valid when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
}

// Each calls fn for every tile in row-major order, stopping early if fn
// returns false.
func (r Rect) Each(fn func(Point) bool) {
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			if !fn(Point{x, y}) {
				return
			}
		}
	}
}
