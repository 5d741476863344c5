package world

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/fortress/internal/grid"
)

func newTestMap(t *testing.T, bounds grid.Rect) *Map {
	t.Helper()
	m, err := NewMap(bounds)
	require.NoError(t, err)
	return m
}

func TestNewMapRejectsDegenerateBounds(t *testing.T) {
	_, err := NewMap(grid.Rect{Left: 10, Top: 0, Right: 5, Bottom: 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBounds))
}

func TestInBounds(t *testing.T) {
	m := newTestMap(t, DefaultBounds)
	tests := []struct {
		p    grid.Point
		want bool
	}{
		{grid.Pt(0, 0), true},
		{grid.Pt(60, 40), true},
		{grid.Pt(61, 40), false},
		{grid.Pt(-1, 3), false},
		{grid.Pt(5, 41), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.InBounds(tt.p), "InBounds(%v)", tt.p)
	}

	_, ok := m.Terrain(grid.Pt(-1, -1))
	assert.False(t, ok)
	assert.False(t, m.SetTerrain(grid.Pt(61, 0), TerrainWall))
	_, ok = m.RoomAt(grid.Pt(99, 99))
	assert.False(t, ok)
}

func TestPlaceResource(t *testing.T) {
	m := newTestMap(t, grid.Rect{Right: 9, Bottom: 9})

	assert.True(t, m.PlaceResource(NewResource(grid.Pt(2, 2), nil, 50)))
	assert.False(t, m.PlaceResource(NewResource(grid.Pt(2, 2), nil, 10)), "tile already occupied")
	assert.False(t, m.PlaceResource(NewResource(grid.Pt(20, 2), nil, 10)), "out of bounds")

	r, ok := m.Resource(grid.Pt(2, 2))
	require.True(t, ok)
	assert.Equal(t, 50, r.Growth)
	assert.Len(t, m.Resources(), 1)
}

func TestResourceGrowthClamp(t *testing.T) {
	r := NewResource(grid.Pt(0, 0), nil, 150)
	assert.Equal(t, MaxGrowth, r.Growth)

	r.Growth = 95
	for i := 0; i < 6; i++ {
		r.Grow(1)
	}
	assert.Equal(t, MaxGrowth, r.Growth)
	assert.Equal(t, 0, r.Grow(1))

	r.Growth = 20
	assert.Equal(t, 20, r.Harvest(30))
	assert.Equal(t, 0, r.Growth)
	assert.Equal(t, 0, r.Harvest(-5))
}

func TestResourceIDStablePerLocation(t *testing.T) {
	a := NewResource(grid.Pt(3, 4), nil, 1)
	b := NewResource(grid.Pt(3, 4), nil, 99)
	c := NewResource(grid.Pt(4, 3), nil, 1)
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func assignRect(t *testing.T, m *Map, r grid.Rect) RoomID {
	t.Helper()
	room := m.NewRoom("room")
	r.Each(func(p grid.Point) bool {
		require.True(t, m.AssignRoom(p, room.ID))
		return true
	})
	return room.ID
}

func edgeSnapshot(m *Map) map[grid.Edge]EdgeState {
	out := make(map[grid.Edge]EdgeState)
	m.edges.Range(func(e grid.Edge, s EdgeState) bool {
		out[e] = s
		return true
	})
	return out
}

func TestRebuildAllEdgesTwoRooms(t *testing.T) {
	bounds := grid.Rect{Right: 20, Bottom: 12}
	m := newTestMap(t, bounds)
	ctx := context.Background()

	roomA := grid.Rect{Left: 2, Top: 2, Right: 5, Bottom: 6}
	roomB := grid.Rect{Left: 6, Top: 3, Right: 9, Bottom: 5} // shares a side with A
	a := assignRect(t, m, roomA)
	b := assignRect(t, m, roomB)
	require.NotEqual(t, a, b)
	require.True(t, m.EdgesStale())

	m.RebuildAllEdges(ctx)
	assert.False(t, m.EdgesStale())

	// Check every edge touching the map against the invariant.
	cover := bounds
	cover.Right++
	cover.Bottom++
	cover.Each(func(p grid.Point) bool {
		for _, side := range []grid.Side{grid.North, grid.West} {
			e := grid.Edge{X: p.X, Y: p.Y, Side: side}
			t1, t2 := e.Joins()
			if !m.InBounds(t1) && !m.InBounds(t2) {
				continue
			}
			r1, _ := m.RoomAt(t1)
			r2, _ := m.RoomAt(t2)
			s, _ := m.Edge(e)
			assert.Equal(t, r1 != r2, s.Wall, "edge %v between %v(room %d) and %v(room %d)", e, t1, r1, t2, r2)
		}
		return true
	})

	// The shared boundary between A and B is walled.
	e, ok := grid.EdgeBetween(grid.Pt(5, 4), grid.Pt(6, 4))
	require.True(t, ok)
	s, _ := m.Edge(e)
	assert.True(t, s.Wall)

	// Interior edges carry nothing.
	e, _ = grid.EdgeBetween(grid.Pt(3, 3), grid.Pt(4, 3))
	_, ok = m.Edge(e)
	assert.False(t, ok)

	// Perimeter of A (4x5) plus perimeter of B (4x3) minus the 3 shared edges.
	assert.Equal(t, 2*(4+5)+2*(4+3)-3, m.EdgeCount())
}

func TestRebuildAllEdgesIdempotent(t *testing.T) {
	m := newTestMap(t, grid.Rect{Right: 15, Bottom: 15})
	ctx := context.Background()
	assignRect(t, m, grid.Rect{Left: 1, Top: 1, Right: 4, Bottom: 4})
	assignRect(t, m, grid.Rect{Left: 3, Top: 3, Right: 8, Bottom: 7})

	first := m.RebuildAllEdges(ctx)
	snap := edgeSnapshot(m)
	second := m.RebuildAllEdges(ctx)

	assert.NotZero(t, first.Added)
	assert.Equal(t, RebuildStats{}, second)
	assert.Equal(t, snap, edgeSnapshot(m))
}

func TestRebuildRemovesStaleWallsKeepsDoors(t *testing.T) {
	m := newTestMap(t, grid.Rect{Right: 10, Bottom: 10})
	ctx := context.Background()
	id := assignRect(t, m, grid.Rect{Left: 2, Top: 2, Right: 4, Bottom: 4})
	m.RebuildAllEdges(ctx)

	door := grid.Edge{X: 2, Y: 2, Side: grid.North}
	require.True(t, m.SetDoor(door, true))

	// Removing the room clears its walls; the door survives.
	for _, p := range m.RoomTiles(id) {
		m.AssignRoom(p, 0)
	}
	stats := m.RebuildAllEdges(ctx)
	assert.Equal(t, 12, stats.Removed)
	assert.Equal(t, 1, m.EdgeCount())
	s, ok := m.Edge(door)
	require.True(t, ok)
	assert.Equal(t, EdgeState{Door: true}, s)

	require.True(t, m.SetDoor(door, false))
	assert.Equal(t, 0, m.EdgeCount())
	assert.False(t, m.SetDoor(grid.Edge{X: 30, Y: 30, Side: grid.West}, true))
}

func TestRoomAtMapBorderGetsOuterWall(t *testing.T) {
	m := newTestMap(t, grid.Rect{Right: 4, Bottom: 4})
	assignRect(t, m, grid.Rect{Left: 3, Top: 3, Right: 4, Bottom: 4})
	m.RebuildAllEdges(context.Background())

	// South face of the bottom-right tile lies just outside the map.
	s, ok := m.Edge(grid.Edge{X: 4, Y: 5, Side: grid.North})
	require.True(t, ok)
	assert.True(t, s.Wall)
}

func TestAssignRoomValidation(t *testing.T) {
	m := newTestMap(t, grid.Rect{Right: 4, Bottom: 4})
	assert.False(t, m.AssignRoom(grid.Pt(1, 1), 7), "unknown room id")
	assert.False(t, m.AssignRoom(grid.Pt(9, 1), m.NewRoom("room").ID), "out of bounds")

	r1 := m.NewRoom("room")
	r2 := m.NewRoom("room")
	assert.Equal(t, r1.ID+1, r2.ID, "room ids are assigned monotonically")
}

func TestRebuildIfStale(t *testing.T) {
	m := newTestMap(t, grid.Rect{Right: 4, Bottom: 4})
	ctx := context.Background()
	assert.False(t, m.RebuildIfStale(ctx))

	assignRect(t, m, grid.Rect{Left: 1, Top: 1, Right: 1, Bottom: 1})
	assert.True(t, m.RebuildIfStale(ctx))
	assert.Equal(t, 4, m.EdgeCount())
	assert.False(t, m.RebuildIfStale(ctx))
}
