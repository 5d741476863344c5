package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoding(t *testing.T) {
	tests := []struct {
		key  interface{ String() string }
		want string
	}{
		{Pt(3, 7), "3,7"},
		{Pt(-1, 12), "-1,12"},
		{Pt(11, -2), "11,-2"},
		{Edge{4, 5, North}, "4,5,N"},
		{Edge{4, 5, West}, "4,5,W"},
		{Edge{-4, 0, West}, "-4,0,W"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestEncodingInjective(t *testing.T) {
	seen := make(map[string]Point)
	Rect{-12, -12, 12, 12}.Each(func(p Point) bool {
		s := p.String()
		prev, dup := seen[s]
		require.False(t, dup, "%v and %v both encode to %q", prev, p, s)
		seen[s] = p
		return true
	})
}

func TestAdjacentToTile(t *testing.T) {
	p := Pt(5, 5)
	adj := AdjacentToTile(p)

	want := []EdgeTile{
		{Edge{5, 5, North}, Pt(5, 4)},
		{Edge{5, 5, West}, Pt(4, 5)},
		{Edge{5, 6, North}, Pt(5, 6)},
		{Edge{6, 5, West}, Pt(6, 5)},
	}
	assert.Equal(t, want, adj[:])

	// Every adjacent edge must join p and the neighbour.
	for _, et := range adj {
		a, b := et.Edge.Joins()
		assert.ElementsMatch(t, []Point{p, et.Tile}, []Point{a, b}, "edge %v", et.Edge)
	}
}

func TestEdgeBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Edge
		ok   bool
	}{
		{"north", Pt(2, 2), Pt(2, 1), Edge{2, 2, North}, true},
		{"south", Pt(2, 2), Pt(2, 3), Edge{2, 3, North}, true},
		{"west", Pt(2, 2), Pt(1, 2), Edge{2, 2, West}, true},
		{"east", Pt(2, 2), Pt(3, 2), Edge{3, 2, West}, true},
		{"same", Pt(2, 2), Pt(2, 2), Edge{}, false},
		{"diagonal", Pt(2, 2), Pt(3, 3), Edge{}, false},
		{"far", Pt(2, 2), Pt(5, 2), Edge{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EdgeBetween(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				back, _ := EdgeBetween(tt.b, tt.a)
				assert.Equal(t, got, back, "edge must not depend on argument order")
			}
		})
	}
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 0, Pt(1, 1).Chebyshev(Pt(1, 1)))
	assert.Equal(t, 3, Pt(0, 0).Chebyshev(Pt(3, -2)))
	assert.Equal(t, 4, Pt(-2, 5).Chebyshev(Pt(1, 1)))
}

func TestRect(t *testing.T) {
	r := RectBetween(Pt(4, 9), Pt(1, 2))
	assert.Equal(t, Rect{1, 2, 4, 9}, r)
	assert.Equal(t, 4, r.Width())
	assert.Equal(t, 8, r.Height())
	assert.True(t, r.Contains(Pt(1, 9)))
	assert.False(t, r.Contains(Pt(0, 5)))

	clipped := Around(Pt(0, 0), 3).Intersect(Rect{0, 0, 60, 40})
	assert.Equal(t, Rect{0, 0, 3, 3}, clipped)
	assert.False(t, Rect{5, 5, 6, 6}.Intersect(Rect{0, 0, 2, 2}).Valid())

	n := 0
	r.Each(func(Point) bool { n++; return true })
	assert.Equal(t, r.Width()*r.Height(), n)
}

func TestIndex(t *testing.T) {
	ix := NewIndex[Edge, string]()
	e := Edge{1, 2, West}

	_, ok := ix.Get(e)
	assert.False(t, ok)

	ix.Set(e, "wall")
	assert.True(t, ix.Has(Edge{1, 2, West}), "structurally equal key must hit")
	assert.False(t, ix.Has(Edge{1, 2, North}))

	v, ok := ix.Get(e)
	require.True(t, ok)
	assert.Equal(t, "wall", v)
	assert.Equal(t, 1, ix.Len())

	ix.Delete(e)
	ix.Delete(e)
	assert.Equal(t, 0, ix.Len())
}

func TestPointSignIsOneStep(t *testing.T) {
	tests := []struct {
		d    Point
		want Point
	}{
		{Pt(0, 0), Pt(0, 0)},
		{Pt(7, 0), Pt(1, 0)},
		{Pt(-3, 12), Pt(-1, 1)},
		{Pt(-5, -5), Pt(-1, -1)},
		{Pt(0, -2), Pt(0, -1)},
	}
	for _, tt := range tests {
		got := tt.d.Sign()
		assert.Equal(t, tt.want, got, "Sign(%v)", tt.d)
		assert.LessOrEqual(t, got.Chebyshev(Pt(0, 0)), 1)
	}
}
