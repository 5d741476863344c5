package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/fortress/internal/entity"
	"github.com/samdwyer/fortress/internal/grid"
)

// System is one step of a tick. Run returns how much work it did, for
// tracing.
type System struct {
	Name string
	Run  func(tickID uint64) int
}

// Systems returns the tick systems in their required order: movement,
// then plant growth, then hunger and eating.
func (w *World) Systems() []System {
	return []System{
		{Name: "agents_move", Run: w.AgentsMove},
		{Name: "plants_grow", Run: w.PlantsGrow},
		{Name: "agents_get_hungry", Run: w.AgentsGetHungry},
	}
}

// MoveBatch returns the agent indices processed on tickID: a window of
// min(n, perTick) agents that rotates by that size every tick.
func MoveBatch(tickID uint64, n, perTick int) []int {
	if n <= 0 || perTick <= 0 {
		return nil
	}
	batch := min(n, perTick)
	out := make([]int, batch)
	for i := range out {
		out[i] = int((tickID*uint64(batch) + uint64(i)) % uint64(n))
	}
	return out
}

// AgentsMove steps one rotating batch of agents a single tile toward their
// destinations, picking new ones as needed.
func (w *World) AgentsMove(tickID uint64) int {
	moved := 0
	for _, i := range MoveBatch(tickID, w.Agents.Len(), w.Tuning.AgentMovesPerTick) {
		if w.moveAgent(w.Agents.At(i)) {
			moved++
		}
	}
	return moved
}

func (w *World) moveAgent(a *entity.Agent) bool {
	if a.Incapacitated() {
		return false
	}

	if _, ok := a.Destination(); !ok {
		if a.Hungry(w.Tuning.AgentHungry) {
			if food, ok := NearbyFood(w.Map, a.Location, w.Tuning.ForageRadius, w.Tuning.PlantEdible, w.rng); ok {
				a.SetDestination(food)
			}
		}
		if _, ok := a.Destination(); !ok {
			a.SetDestination(w.wanderTarget(a.Location))
		}
	}

	dest, _ := a.Destination()
	step := dest.Sub(a.Location).Sign()
	moved := step != grid.Point{} && w.MoveAgentTo(a, a.Location.Add(step))
	if a.Location == dest {
		a.ClearDestination()
	}
	return moved
}

func (w *World) wanderTarget(from grid.Point) grid.Point {
	window := grid.Around(from, w.Tuning.WanderRadius).Intersect(w.Map.Bounds())
	if !window.Valid() {
		return from
	}
	return randomIn(w.rng, window)
}

// PlantsGrow adds one growth to every resource below full, every
// TicksPerPlantGrowth ticks.
func (w *World) PlantsGrow(tickID uint64) int {
	if tickID%uint64(w.Tuning.TicksPerPlantGrowth) != 0 {
		return 0
	}
	grown := 0
	for _, r := range w.Map.Resources() {
		if w.Map.InBounds(r.Location) && r.Grow(1) > 0 {
			grown++
		}
	}
	return grown
}

// AgentsGetHungry lowers every agent's Fed by one every
// TicksPerAgentHunger ticks. A hungry agent standing on an edible plant then
// eats up to MealSize from it.
func (w *World) AgentsGetHungry(tickID uint64) int {
	if tickID%uint64(w.Tuning.TicksPerAgentHunger) != 0 {
		return 0
	}
	meals := 0
	for _, a := range w.Agents.All() {
		a.Starve(1)
		if !a.Hungry(w.Tuning.AgentHungry) {
			continue
		}
		r, ok := w.Map.Resource(a.Location)
		if !ok || !r.Edible(w.Tuning.PlantEdible) {
			continue
		}
		eaten := a.Feed(r.Harvest(min(w.Tuning.MealSize, a.Appetite())))
		meals++
		w.log.WithFields(logrus.Fields{
			"tick":     tickID,
			"agent":    a.ID,
			"resource": r.ID,
			"eaten":    eaten,
			"fed":      a.Fed,
		}).Debug("agent ate")
	}
	return meals
}
