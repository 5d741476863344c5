package editor

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/telemetry"
	"github.com/samdwyer/fortress/internal/world"
)

// Key is an editor command, decoupled from any terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyUpLeft
	KeyUpRight
	KeyDownLeft
	KeyDownRight
	KeyEnter
	KeyEscape
	KeyRoom
	KeyWall
	KeyDoor
)

var steps = map[Key]grid.Point{
	KeyUp:        {X: 0, Y: -1},
	KeyDown:      {X: 0, Y: 1},
	KeyLeft:      {X: -1, Y: 0},
	KeyRight:     {X: 1, Y: 0},
	KeyUpLeft:    {X: -1, Y: -1},
	KeyUpRight:   {X: 1, Y: -1},
	KeyDownLeft:  {X: -1, Y: 1},
	KeyDownRight: {X: 1, Y: 1},
}

// Result is what HandleKey did.
type Result struct {
	Mode      Mode
	Handled   bool   // the key means something in this mode
	Redraw    bool   // visible state changed
	Committed int    // tiles changed by a commit
	Message   string // for the message log; empty if nothing to say
}

// HandleKey applies key to mode. Commits write to m; rooms rebuild the
// map's walls before returning. Cursor moves are bounds-checked against m.
func HandleKey(ctx context.Context, m *world.Map, mode Mode, key Key) Result {
	if d, ok := steps[key]; ok {
		return moveCursor(m, mode, d)
	}

	res := Result{Mode: mode}
	switch mode.Kind {
	case KindMove:
		switch key {
		case KeyRoom:
			res.Mode = RoomMode(mode.Cursor)
		case KeyWall:
			res.Mode = WallMode(mode.Cursor)
		case KeyDoor:
			return toggleDoor(m, mode)
		default:
			return res
		}

	case KindRoom:
		switch key {
		case KeyEnter:
			return commitRoom(ctx, m, mode)
		case KeyEscape:
			res.Mode = MoveMode(mode.Cursor)
		default:
			return res
		}

	case KindWall:
		switch key {
		case KeyEnter:
			return commitWall(ctx, m, mode)
		case KeyEscape:
			res.Mode = MoveMode(mode.Cursor)
		default:
			return res
		}
	}
	res.Handled = true
	res.Redraw = true
	return res
}

func moveCursor(m *world.Map, mode Mode, d grid.Point) Result {
	next := mode.Cursor.Add(d)
	if !m.InBounds(next) {
		return Result{Mode: mode, Handled: true}
	}
	mode.Cursor = next
	if mode.Kind == KindWall {
		mode = mode.walk(next)
	}
	return Result{Mode: mode, Handled: true, Redraw: true}
}

func toggleDoor(m *world.Map, mode Mode) Result {
	e := grid.Edge{X: mode.Cursor.X, Y: mode.Cursor.Y, Side: grid.North}
	s, _ := m.Edge(e)
	m.SetDoor(e, !s.Door)
	msg := "Door placed."
	if s.Door {
		msg = "Door removed."
	}
	return Result{Mode: mode, Handled: true, Redraw: true, Committed: 1, Message: msg}
}

func commitRoom(ctx context.Context, m *world.Map, mode Mode) Result {
	ctx, span := telemetry.Tracer("editor").Start(ctx, "editor.commit")
	defer span.End()

	sel, _ := mode.Selection()
	sel = sel.Intersect(m.Bounds())
	room := m.NewRoom("room")
	tiles := 0
	sel.Each(func(p grid.Point) bool {
		if m.AssignRoom(p, room.ID) {
			tiles++
		}
		return true
	})
	stats := m.RebuildAllEdges(ctx)

	span.SetAttributes(
		attribute.String("editor.mode", mode.Kind.String()),
		attribute.Int("editor.tiles", tiles),
		attribute.Int("editor.room_id", int(room.ID)),
		attribute.Int("edges.added", stats.Added),
	)
	return Result{
		Mode:      MoveMode(mode.Cursor),
		Handled:   true,
		Redraw:    true,
		Committed: tiles,
		Message:   "Room built.",
	}
}

func commitWall(ctx context.Context, m *world.Map, mode Mode) Result {
	_, span := telemetry.Tracer("editor").Start(ctx, "editor.commit")
	defer span.End()

	tiles := 0
	for _, p := range mode.Path {
		if m.SetTerrain(p, world.TerrainWall) {
			tiles++
		}
	}

	span.SetAttributes(
		attribute.String("editor.mode", mode.Kind.String()),
		attribute.Int("editor.tiles", tiles),
	)
	return Result{
		Mode:      MoveMode(mode.Cursor),
		Handled:   true,
		Redraw:    true,
		Committed: tiles,
		Message:   "Wall built.",
	}
}
