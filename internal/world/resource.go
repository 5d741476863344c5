package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/fortress/internal/gamedata"
	"github.com/samdwyer/fortress/internal/grid"
)

// MaxGrowth caps Resource.Growth.
const MaxGrowth = 100

// resourceNS scopes name-based resource ids so they are stable per location.
var resourceNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("fortress/resource"))

// Resource is a plant at a fixed tile.
type Resource struct {
	ID       string
	Location grid.Point
	Species  *gamedata.PlantDef
	Growth   int // 0..MaxGrowth
}

// NewResource creates a plant at p with the given starting growth.
func NewResource(p grid.Point, species *gamedata.PlantDef, growth int) *Resource {
	return &Resource{
		ID:       uuid.NewSHA1(resourceNS, []byte(p.String())).String(),
		Location: p,
		Species:  species,
		Growth:   clampGrowth(growth),
	}
}

// Edible reports whether growth is strictly above threshold.
func (r *Resource) Edible(threshold int) bool {
	return r.Growth > threshold
}

// Grow adds n growth, saturating at MaxGrowth. It returns the amount added.
func (r *Resource) Grow(n int) int {
	before := r.Growth
	r.Growth = clampGrowth(r.Growth + n)
	return r.Growth - before
}

// Harvest removes up to amount growth and returns what was actually taken.
func (r *Resource) Harvest(amount int) int {
	if amount <= 0 {
		return 0
	}
	taken := min(amount, r.Growth)
	r.Growth -= taken
	return taken
}

func clampGrowth(g int) int {
	return max(0, min(MaxGrowth, g))
}
