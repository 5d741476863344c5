package sim

import (
	"math/rand"

	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/world"
)

// NearbyFood finds an edible resource (growth > edible) within the square
// window of the given radius around origin. Among the candidates at the
// smallest Chebyshev distance it picks one uniformly at random. The cost is
// O(radius²).
func NearbyFood(m *world.Map, origin grid.Point, radius, edible int, rng *rand.Rand) (grid.Point, bool) {
	window := grid.Around(origin, radius).Intersect(m.Bounds())
	if !window.Valid() {
		return grid.Point{}, false
	}

	best := -1
	var nearest []grid.Point
	window.Each(func(p grid.Point) bool {
		r, ok := m.Resource(p)
		if !ok || !r.Edible(edible) {
			return true
		}
		d := p.Chebyshev(origin)
		switch {
		case best < 0 || d < best:
			best = d
			nearest = append(nearest[:0], p)
		case d == best:
			nearest = append(nearest, p)
		}
		return true
	})

	if len(nearest) == 0 {
		return grid.Point{}, false
	}
	return nearest[rng.Intn(len(nearest))], true
}
