package gamedata

import (
	"errors"
	"math/rand"
)

// CreatureRegistry holds creature definitions and provides weighted
// spawning for NPC seeding.
type CreatureRegistry struct {
	creatures   []CreatureDef
	totalWeight int
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	totalWeight := 0
	for _, c := range creatures {
		totalWeight += c.SpawnWeight
	}
	return &CreatureRegistry{
		creatures:   creatures,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects a random creature definition using weighted probability.
// Creatures with higher spawnWeight are more likely to be selected.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 || len(r.creatures) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.creatures {
		cumulative += r.creatures[i].SpawnWeight
		if roll < cumulative {
			return &r.creatures[i]
		}
	}
	return &r.creatures[0]
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// Count returns the number of creature types in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}

// PlantRegistry indexes plant definitions by the terrain they grow on.
type PlantRegistry struct {
	byTerrain map[string]*PlantDef
}

// NewPlantRegistry creates a registry from loaded plant definitions. If two
// plants name the same terrain the first one wins.
func NewPlantRegistry(plants []PlantDef) *PlantRegistry {
	r := &PlantRegistry{
		byTerrain: make(map[string]*PlantDef),
	}
	for i := range plants {
		p := &plants[i]
		if _, taken := r.byTerrain[p.Terrain]; !taken {
			r.byTerrain[p.Terrain] = p
		}
	}
	return r
}

// ForTerrain returns the plant that grows on the named terrain, or nil.
func (r *PlantRegistry) ForTerrain(terrain string) *PlantDef {
	if r == nil {
		return nil
	}
	return r.byTerrain[terrain]
}

// Catalog bundles both registries.
type Catalog struct {
	Plants    *PlantRegistry
	Creatures *CreatureRegistry
}

// LoadCatalog loads the embedded species.json into registries.
func LoadCatalog() (*Catalog, error) {
	file, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(file.Creatures) == 0 {
		return nil, errors.New("no creatures loaded from species.json")
	}
	return &Catalog{
		Plants:    NewPlantRegistry(file.Plants),
		Creatures: NewCreatureRegistry(file.Creatures),
	}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
