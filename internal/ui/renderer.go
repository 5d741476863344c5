package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fortress/internal/editor"
	"github.com/samdwyer/fortress/internal/entity"
	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/sim"
	"github.com/samdwyer/fortress/internal/world"
)

// Each tile takes two columns: its west edge, then the tile itself. North
// edges are drawn as an underline on the row above, so the map starts one
// row down to leave room for the top border.
const (
	cellWidth = 2
	mapTop    = 1
)

// Frame is everything one render reads. The renderer never writes to it.
type Frame struct {
	World    *sim.World
	Mode     editor.Mode
	Tick     uint64
	State    string
	Messages *MessageLog
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, agents, editor overlay, status and messages.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	b := f.World.Map.Bounds()
	occupants := grid.NewIndex[grid.Point, *entity.Agent]()
	for _, a := range f.World.Agents.All() {
		occupants.Set(a.Location, a)
	}

	b.Each(func(p grid.Point) bool {
		ch, style := r.cell(f, occupants, p)
		r.screen.SetContent(tileX(b, p.X), tileY(b, p.Y), ch, style)
		return true
	})
	r.drawEdges(f, occupants)
	r.drawPanel(f)
	r.screen.Show()
}

func tileX(b grid.Rect, x int) int { return (x-b.Left)*cellWidth + 1 }
func tileY(b grid.Rect, y int) int { return y - b.Top + mapTop }

// cell returns what tile p shows: the last agent standing on it, else its
// plant, else its terrain.
func (r *Renderer) cell(f Frame, occupants *grid.Index[grid.Point, *entity.Agent], p grid.Point) (rune, tcell.Style) {
	if a, ok := occupants.Get(p); ok {
		style := tcell.StyleDefault.Foreground(a.Appearance.Color).Bold(true)
		if a.Fed < f.World.Tuning.AgentStarving {
			style = style.Foreground(tcell.ColorRed)
		}
		return a.Appearance.Glyph, r.overlay(f, p, style)
	}

	m := f.World.Map
	t, _ := m.Terrain(p)
	ch, style := t.Rune(), terrainStyle(t)

	if res, ok := m.Resource(p); ok && res.Species != nil && t != world.TerrainWall {
		ch = res.Species.GlyphRune()
		style = tcell.StyleDefault.Foreground(res.Species.TCellColor())
		if !res.Edible(f.World.Tuning.PlantEdible) {
			style = style.Dim(true)
		}
	}
	if _, ok := m.RoomAt(p); ok {
		style = style.Background(tcell.ColorNavy)
	}
	if f.Mode.Kind == editor.KindWall && f.Mode.OnPath(p) {
		ch = '#'
		style = style.Foreground(tcell.ColorYellow)
	}
	return ch, r.overlay(f, p, style)
}

// overlay applies the editor selection and cursor on top of a tile style.
func (r *Renderer) overlay(f Frame, p grid.Point, style tcell.Style) tcell.Style {
	if sel, ok := f.Mode.Selection(); ok && sel.Contains(p) {
		style = style.Background(tcell.ColorDarkBlue)
	}
	if p == f.Mode.Cursor {
		style = style.Reverse(true)
	}
	return style
}

func terrainStyle(t world.Terrain) tcell.Style {
	s := tcell.StyleDefault
	switch t {
	case world.TerrainGrass:
		return s.Foreground(tcell.ColorGreen)
	case world.TerrainRiver:
		return s.Foreground(tcell.ColorBlue)
	case world.TerrainPlains:
		return s.Foreground(tcell.ColorOlive)
	case world.TerrainDesert:
		return s.Foreground(tcell.ColorKhaki)
	case world.TerrainMountain:
		return s.Foreground(tcell.ColorGray)
	case world.TerrainWall:
		return s.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray)
	default:
		return s
	}
}

// drawEdges covers one extra row and column so the south and east borders
// show up as the north and west edges of tiles just off the map.
func (r *Renderer) drawEdges(f Frame, occupants *grid.Index[grid.Point, *entity.Agent]) {
	m := f.World.Map
	b := m.Bounds()
	cover := b
	cover.Right++
	cover.Bottom++

	cover.Each(func(p grid.Point) bool {
		if p.Y <= b.Bottom {
			if s, ok := m.Edge(grid.Edge{X: p.X, Y: p.Y, Side: grid.West}); ok {
				ch, style := '|', tcell.StyleDefault.Foreground(tcell.ColorSilver)
				if s.Door {
					ch, style = '+', tcell.StyleDefault.Foreground(tcell.ColorYellow)
				}
				r.screen.SetContent(tileX(b, p.X)-1, tileY(b, p.Y), ch, style)
			}
		}
		if p.X <= b.Right {
			if s, ok := m.Edge(grid.Edge{X: p.X, Y: p.Y, Side: grid.North}); ok {
				r.underline(f, occupants, grid.Pt(p.X, p.Y-1), s)
			}
		}
		return true
	})
}

// underline draws an edge as an underline on the tile above it. Above the
// top row that is a blank cell.
func (r *Renderer) underline(f Frame, occupants *grid.Index[grid.Point, *entity.Agent], above grid.Point, s world.EdgeState) {
	b := f.World.Map.Bounds()
	ch, style := ' ', tcell.StyleDefault
	if f.World.Map.InBounds(above) {
		ch, style = r.cell(f, occupants, above)
	}
	if s.Door {
		style = style.Underline(tcell.UnderlineStyleDotted)
	} else {
		style = style.Underline(true)
	}
	r.screen.SetContent(tileX(b, above.X), tileY(b, above.Y), ch, style)
}

func (r *Renderer) drawPanel(f Frame) {
	w, h := r.screen.Size()
	b := f.World.Map.Bounds()
	y := tileY(b, b.Bottom) + 1

	c := f.World.Census()
	status := fmt.Sprintf("tick %d  %s  agents %d  hungry %d  starving %d  fed %.0f  edible %d  [%s %s]",
		f.Tick, f.State, c.Agents, c.Hungry, c.Starving, c.MeanFed, c.Edible, f.Mode.Kind, f.Mode.Cursor)
	r.screen.DrawText(0, y, w, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	y++
	r.screen.DrawText(0, y, w, f.Mode.Kind.Instructions(), tcell.StyleDefault.Foreground(tcell.ColorGray))
	y++

	if f.Messages == nil || y >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, line := range f.Messages.Last(h - y) {
		r.screen.DrawText(0, y, w, line, style)
		y++
	}
}
