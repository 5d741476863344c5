package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/world"
)

func forageMap(t *testing.T, plants map[grid.Point]int) *world.Map {
	t.Helper()
	m, err := world.NewMap(grid.Rect{Right: 60, Bottom: 40})
	require.NoError(t, err)
	for p, g := range plants {
		require.True(t, m.PlaceResource(world.NewResource(p, nil, g)))
	}
	return m
}

func TestNearbyFoodNoneInRange(t *testing.T) {
	m := forageMap(t, map[grid.Point]int{
		grid.Pt(11, 0): 100, // just outside the window
		grid.Pt(3, 3):  70,  // not strictly above the threshold
	})
	_, ok := NearbyFood(m, grid.Pt(0, 0), 10, 70, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestNearbyFoodPicksNearestTier(t *testing.T) {
	origin := grid.Pt(20, 20)
	nearA, nearB := grid.Pt(22, 19), grid.Pt(18, 22)
	m := forageMap(t, map[grid.Point]int{
		nearA:           90,
		nearB:           75,
		grid.Pt(25, 20): 100,
		grid.Pt(20, 29): 100,
	})

	rng := rand.New(rand.NewSource(7))
	counts := map[grid.Point]int{}
	for i := 0; i < 200; i++ {
		p, ok := NearbyFood(m, origin, 10, 70, rng)
		require.True(t, ok)
		counts[p]++
	}

	assert.Len(t, counts, 2, "only the distance-2 tier may be chosen: %v", counts)
	assert.Positive(t, counts[nearA])
	assert.Positive(t, counts[nearB])
}

func TestNearbyFoodClipsToBounds(t *testing.T) {
	m := forageMap(t, map[grid.Point]int{grid.Pt(0, 0): 100})

	p, ok := NearbyFood(m, grid.Pt(2, 1), 7, 70, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.Equal(t, grid.Pt(0, 0), p)

	_, ok = NearbyFood(m, grid.Pt(-30, -30), 5, 70, rand.New(rand.NewSource(1)))
	assert.False(t, ok, "window entirely off the map")
}

func TestNearbyFoodOwnTile(t *testing.T) {
	m := forageMap(t, map[grid.Point]int{grid.Pt(5, 10): 80, grid.Pt(6, 10): 99})
	p, ok := NearbyFood(m, grid.Pt(5, 10), 10, 70, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.Equal(t, grid.Pt(5, 10), p)
}
