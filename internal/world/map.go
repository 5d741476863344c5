package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/telemetry"
)

// ErrInvalidBounds is returned for bounds that cover no tiles.
var ErrInvalidBounds = errors.New("invalid map bounds")

// DefaultBounds matches the default 61x41 map.
var DefaultBounds = grid.Rect{Left: 0, Top: 0, Right: 60, Bottom: 40}

// Map is the world map. Every query is bounds-checked and answers
// "absent" for tiles outside the map.
type Map struct {
	bounds grid.Rect

	// terrain is dense, indexed (y-top)*width + (x-left)
	terrain []Terrain

	resources    *grid.Index[grid.Point, *Resource]
	resourceList []*Resource // creation order

	edges  *grid.Index[grid.Edge, EdgeState]
	roomAt *grid.Index[grid.Point, RoomID]

	rooms      map[RoomID]*Room
	nextRoomID RoomID
	edgesStale bool
}

// NewMap creates a map covering bounds, all grass with no rooms.
func NewMap(bounds grid.Rect) (*Map, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidBounds, bounds)
	}
	return &Map{
		bounds:     bounds,
		terrain:    make([]Terrain, bounds.Width()*bounds.Height()),
		resources:  grid.NewIndex[grid.Point, *Resource](),
		edges:      grid.NewIndex[grid.Edge, EdgeState](),
		roomAt:     grid.NewIndex[grid.Point, RoomID](),
		rooms:      make(map[RoomID]*Room),
		nextRoomID: 1,
	}, nil
}

// Bounds returns the inclusive map rectangle.
func (m *Map) Bounds() grid.Rect { return m.bounds }

// InBounds reports whether p is on the map.
func (m *Map) InBounds(p grid.Point) bool {
	return m.bounds.Contains(p)
}

func (m *Map) offset(p grid.Point) int {
	return (p.Y-m.bounds.Top)*m.bounds.Width() + (p.X - m.bounds.Left)
}

// Terrain returns the terrain at p.
func (m *Map) Terrain(p grid.Point) (Terrain, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.terrain[m.offset(p)], true
}

// SetTerrain changes the terrain at p. Out-of-bounds writes are ignored.
func (m *Map) SetTerrain(p grid.Point, t Terrain) bool {
	if !m.InBounds(p) {
		return false
	}
	m.terrain[m.offset(p)] = t
	return true
}

// Resource returns the resource at p, if any.
func (m *Map) Resource(p grid.Point) (*Resource, bool) {
	return m.resources.Get(p)
}

// PlaceResource adds r at its location. It refuses out-of-bounds and
// occupied tiles.
func (m *Map) PlaceResource(r *Resource) bool {
	if !m.InBounds(r.Location) || m.resources.Has(r.Location) {
		return false
	}
	m.resources.Set(r.Location, r)
	m.resourceList = append(m.resourceList, r)
	return true
}

// Resources returns every resource in creation order. Callers may mutate
// the resources but not the slice.
func (m *Map) Resources() []*Resource {
	return m.resourceList
}

// Edge returns the state held by e. Edges with nothing on them are absent.
func (m *Map) Edge(e grid.Edge) (EdgeState, bool) {
	return m.edges.Get(e)
}

// EdgeCount returns the number of edges holding a wall or door.
func (m *Map) EdgeCount() int {
	return m.edges.Len()
}

// SetDoor places or removes a door on e. At least one side of e must be on
// the map.
func (m *Map) SetDoor(e grid.Edge, door bool) bool {
	if !m.edgeTouchesMap(e) {
		return false
	}
	s, _ := m.edges.Get(e)
	s.Door = door
	m.putEdge(e, s)
	return true
}

func (m *Map) putEdge(e grid.Edge, s EdgeState) {
	if s.IsZero() {
		m.edges.Delete(e)
		return
	}
	m.edges.Set(e, s)
}

func (m *Map) edgeTouchesMap(e grid.Edge) bool {
	a, b := e.Joins()
	return m.InBounds(a) || m.InBounds(b)
}

// RoomAt returns the room p belongs to.
func (m *Map) RoomAt(p grid.Point) (RoomID, bool) {
	return m.roomAt.Get(p)
}

// Room returns the room with the given id.
func (m *Map) Room(id RoomID) (*Room, bool) {
	r, ok := m.rooms[id]
	return r, ok
}

// RoomCount returns how many rooms have been created.
func (m *Map) RoomCount() int {
	return len(m.rooms)
}

// NewRoom registers a room with the next id.
func (m *Map) NewRoom(kind string) *Room {
	r := &Room{ID: m.nextRoomID, Kind: kind}
	m.rooms[r.ID] = r
	m.nextRoomID++
	return r
}

// AssignRoom puts p in room id, or clears it when id is zero. Walls are not
// updated until the next rebuild.
func (m *Map) AssignRoom(p grid.Point, id RoomID) bool {
	if !m.InBounds(p) {
		return false
	}
	if id == 0 {
		m.roomAt.Delete(p)
	} else {
		if _, ok := m.rooms[id]; !ok {
			return false
		}
		m.roomAt.Set(p, id)
	}
	m.edgesStale = true
	return true
}

// EdgesStale reports whether room membership changed since the last rebuild.
func (m *Map) EdgesStale() bool {
	return m.edgesStale
}

// RebuildStats counts the walls a rebuild changed.
type RebuildStats struct {
	Added, Removed int
}

// RebuildAllEdges recomputes every wall from room membership: an edge is a
// wall exactly when the tiles on its two sides are in different rooms,
// counting "no room" as a room of its own. Doors are left alone.
func (m *Map) RebuildAllEdges(ctx context.Context) RebuildStats {
	_, span := telemetry.Tracer("world").Start(ctx, "world.rebuild_edges")
	defer span.End()

	var stats RebuildStats
	// One extra row and column so the south and east faces of the last
	// row and column are visited as north/west faces.
	cover := m.bounds
	cover.Right++
	cover.Bottom++
	cover.Each(func(p grid.Point) bool {
		for _, side := range [...]grid.Side{grid.North, grid.West} {
			e := grid.Edge{X: p.X, Y: p.Y, Side: side}
			a, b := e.Joins()
			if !m.InBounds(a) && !m.InBounds(b) {
				continue
			}
			ra, _ := m.roomAt.Get(a)
			rb, _ := m.roomAt.Get(b)
			want := ra != rb

			s, _ := m.edges.Get(e)
			switch {
			case want && !s.Wall:
				stats.Added++
			case !want && s.Wall:
				stats.Removed++
			default:
				continue
			}
			s.Wall = want
			m.putEdge(e, s)
		}
		return true
	})
	m.edgesStale = false

	span.SetAttributes(
		attribute.Int("edges.added", stats.Added),
		attribute.Int("edges.removed", stats.Removed),
		attribute.Int("edges.total", m.edges.Len()),
	)
	return stats
}

// RebuildIfStale runs RebuildAllEdges only after a room change.
func (m *Map) RebuildIfStale(ctx context.Context) bool {
	if !m.edgesStale {
		return false
	}
	m.RebuildAllEdges(ctx)
	return true
}
