// Package entity provides the simulated agents and their registry.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fortress/internal/gamedata"
	"github.com/samdwyer/fortress/internal/grid"
)

// MaxFed caps Agent.Fed.
const MaxFed = 100

// Appearance is how an agent is drawn.
type Appearance struct {
	Sprite string // Creature id from the species catalog
	Glyph  rune
	Color  tcell.Color
}

// AppearanceOf builds an Appearance from a creature definition.
func AppearanceOf(def *gamedata.CreatureDef) Appearance {
	if def == nil {
		return Appearance{Sprite: "unknown", Glyph: '?', Color: tcell.ColorWhite}
	}
	return Appearance{Sprite: def.ID, Glyph: def.GlyphRune(), Color: def.TCellColor()}
}

// Agent is an autonomous creature that wanders, gets hungry and eats.
type Agent struct {
	ID         string
	Location   grid.Point
	Appearance Appearance
	Fed        int // 0..MaxFed; 0 means incapacitated

	dest    grid.Point
	hasDest bool
}

// NewAgent creates a fully fed agent with no destination.
func NewAgent(id string, at grid.Point, look Appearance) *Agent {
	return &Agent{
		ID:         id,
		Location:   at,
		Appearance: look,
		Fed:        MaxFed,
	}
}

// Destination returns where the agent is heading, if anywhere.
func (a *Agent) Destination() (grid.Point, bool) {
	return a.dest, a.hasDest
}

// SetDestination sets the agent's target tile.
func (a *Agent) SetDestination(p grid.Point) {
	a.dest = p
	a.hasDest = true
}

// ClearDestination forgets the target tile.
func (a *Agent) ClearDestination() {
	a.dest = grid.Point{}
	a.hasDest = false
}

// Hungry reports whether Fed is below threshold.
func (a *Agent) Hungry(threshold int) bool {
	return a.Fed < threshold
}

// Incapacitated reports whether the agent has starved to zero.
func (a *Agent) Incapacitated() bool {
	return a.Fed <= 0
}

// Starve lowers Fed by amount, floored at zero.
func (a *Agent) Starve(amount int) {
	if amount <= 0 {
		return
	}
	a.Fed = max(0, a.Fed-amount)
}

// Appetite returns how much the agent can eat right now.
func (a *Agent) Appetite() int {
	return MaxFed - a.Fed
}

// Feed raises Fed and returns the amount actually eaten.
func (a *Agent) Feed(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, a.Appetite())
	a.Fed += actual
	return actual
}
