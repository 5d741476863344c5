// Package sim runs the tick-based simulation: agents wander, get hungry,
// forage and eat while plants regrow.
package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fortress/internal/entity"
	"github.com/samdwyer/fortress/internal/gamedata"
	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/telemetry"
	"github.com/samdwyer/fortress/internal/world"
)

// FirstAgentStart is where agent-1 is placed when it fits on the map.
var FirstAgentStart = grid.Pt(5, 10)

// World is the simulation context: the map, the agents and the constants
// the systems run with. One World is owned by one scheduler.
type World struct {
	Map    *world.Map
	Agents *entity.Registry
	Tuning Tuning

	rng *rand.Rand
	log *logrus.Entry
}

// NewWorld generates a map and seeds agents. Invalid tuning is returned as
// an error; callers should treat it as fatal.
func NewWorld(ctx context.Context, t Tuning, catalog *gamedata.Catalog, rng *rand.Rand, log *logrus.Logger) (*World, error) {
	ctx, span := telemetry.Tracer("sim").Start(ctx, "sim.new_world")
	defer span.End()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	m, err := world.NewMap(t.Bounds.Rect())
	if err != nil {
		return nil, err
	}
	if err := m.Generate(ctx, t.Generator, rng, catalog.Plants); err != nil {
		return nil, fmt.Errorf("generate map: %w", err)
	}

	agents := seedAgents(m, t.AgentCount, catalog.Creatures, rng)
	w := NewWorldFrom(m, agents, t, rng, log)

	span.SetAttributes(
		attribute.Int("sim.agents", agents.Len()),
		attribute.Int("sim.resources", len(m.Resources())),
	)
	w.log.WithFields(logrus.Fields{
		"agents":    agents.Len(),
		"resources": len(m.Resources()),
		"generator": string(t.Generator),
	}).Info("world created")
	return w, nil
}

// NewWorldFrom wraps an existing map and registry.
func NewWorldFrom(m *world.Map, agents *entity.Registry, t Tuning, rng *rand.Rand, log *logrus.Logger) *World {
	return &World{
		Map:    m,
		Agents: agents,
		Tuning: t,
		rng:    rng,
		log:    log.WithField("component", "sim"),
	}
}

// seedAgents places agent-1, a rooster, at FirstAgentStart and the rest at
// random tiles with weighted random appearances.
func seedAgents(m *world.Map, count int, creatures *gamedata.CreatureRegistry, rng *rand.Rand) *entity.Registry {
	agents := make([]*entity.Agent, 0, count)
	for i := 0; i < count; i++ {
		var look entity.Appearance
		var at grid.Point
		if i == 0 {
			look = entity.AppearanceOf(creatures.GetByID("rooster"))
			at = FirstAgentStart
			if !m.InBounds(at) {
				at = center(m.Bounds())
			}
		} else {
			look = entity.AppearanceOf(creatures.SpawnRandom(rng))
			at = randomIn(rng, m.Bounds())
		}
		agents = append(agents, entity.NewAgent(fmt.Sprintf("agent-%d", i+1), at, look))
	}
	return entity.NewRegistry(agents...)
}

// MoveAgentTo moves a to p if p is on the map. Requests from outside the
// simulation go through here too, so coordinates are always re-checked.
func (w *World) MoveAgentTo(a *entity.Agent, p grid.Point) bool {
	if !w.Map.InBounds(p) {
		return false
	}
	a.Location = p
	return true
}

// Census summarises the population for logs and the status line.
type Census struct {
	Agents   int
	Starving int
	Hungry   int
	MeanFed  float64
	Edible   int
}

// Census counts hungry and starving agents and edible plants.
func (w *World) Census() Census {
	var c Census
	total := 0
	for _, a := range w.Agents.All() {
		c.Agents++
		total += a.Fed
		switch {
		case a.Fed < w.Tuning.AgentStarving:
			c.Starving++
		case a.Hungry(w.Tuning.AgentHungry):
			c.Hungry++
		}
	}
	if c.Agents > 0 {
		c.MeanFed = float64(total) / float64(c.Agents)
	}
	for _, r := range w.Map.Resources() {
		if r.Edible(w.Tuning.PlantEdible) {
			c.Edible++
		}
	}
	return c
}

func randomIn(rng *rand.Rand, r grid.Rect) grid.Point {
	return grid.Pt(r.Left+rng.Intn(r.Width()), r.Top+rng.Intn(r.Height()))
}

func center(r grid.Rect) grid.Point {
	return grid.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}
