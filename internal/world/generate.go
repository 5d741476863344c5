package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ojrac/opensimplex-go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fortress/internal/gamedata"
	"github.com/samdwyer/fortress/internal/grid"
	"github.com/samdwyer/fortress/internal/telemetry"
)

// Generator selects the terrain algorithm.
type Generator string

const (
	// GeneratorBands sweeps rows top to bottom with random-walking
	// river and band cursors.
	GeneratorBands Generator = "bands"
	// GeneratorNoise thresholds two OpenSimplex fields.
	GeneratorNoise Generator = "noise"
)

const (
	riverWidth = 2

	// Per-row chance of each cursor nudge.
	walkChance = 0.3

	minRiverX     = 3
	minBandStart  = 5
	minBandWidth  = 3
	initBandStart = 10
	initBandWidth = 8

	noiseScale = 0.08
)

// Generate assigns terrain and seeds plants. plants may be nil for a bare map.
func (m *Map) Generate(ctx context.Context, kind Generator, rng *rand.Rand, plants *gamedata.PlantRegistry) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	switch kind {
	case GeneratorBands, "":
		m.generateBands(rng)
	case GeneratorNoise:
		m.generateNoise(rng)
	default:
		return fmt.Errorf("unknown generator %q", kind)
	}
	m.seedPlants(rng, plants)

	span.SetAttributes(
		attribute.String("world.generator", string(kind)),
		attribute.Int("world.width", m.bounds.Width()),
		attribute.Int("world.height", m.bounds.Height()),
		attribute.Int("world.resource_count", len(m.resourceList)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// walk nudges a cursor. Both coin flips always happen, so a row can see a
// -1 and a +1 that cancel out.
func walk(rng *rand.Rand, v int) int {
	if rng.Float64() < walkChance {
		v--
	}
	if rng.Float64() < walkChance {
		v++
	}
	return v
}

func (m *Map) generateBands(rng *rand.Rand) {
	riverX := max(minRiverX, m.bounds.Width()/4)
	bandStart := initBandStart
	bandWidth := initBandWidth

	for y := m.bounds.Top; y <= m.bounds.Bottom; y++ {
		for x := m.bounds.Left; x <= m.bounds.Right; x++ {
			dx := x - m.bounds.Left
			var t Terrain
			switch {
			case dx < riverX:
				t = TerrainGrass
			case dx < riverX+riverWidth:
				t = TerrainRiver
			case dx < riverX+bandStart:
				t = TerrainGrass
			case dx < riverX+bandStart+bandWidth:
				t = TerrainPlains
			default:
				t = TerrainDesert
			}
			m.SetTerrain(grid.Pt(x, y), t)
		}

		riverX = max(minRiverX, walk(rng, riverX))
		bandStart = max(minBandStart, walk(rng, bandStart))
		bandWidth = max(minBandWidth, walk(rng, bandWidth))
	}
}

func (m *Map) generateNoise(rng *rand.Rand) {
	elevation := opensimplex.NewNormalized(rng.Int63())
	moisture := opensimplex.NewNormalized(rng.Int63())

	m.bounds.Each(func(p grid.Point) bool {
		fx, fy := float64(p.X)*noiseScale, float64(p.Y)*noiseScale
		e := elevation.Eval2(fx, fy)
		w := moisture.Eval2(fx, fy)

		var t Terrain
		switch {
		case e < 0.25:
			t = TerrainRiver
		case e > 0.75:
			t = TerrainMountain
		case w < 0.35:
			t = TerrainDesert
		case w < 0.5:
			t = TerrainPlains
		default:
			t = TerrainGrass
		}
		m.SetTerrain(p, t)
		return true
	})
}

func (m *Map) seedPlants(rng *rand.Rand, plants *gamedata.PlantRegistry) {
	if plants == nil {
		return
	}
	m.bounds.Each(func(p grid.Point) bool {
		t, _ := m.Terrain(p)
		def := plants.ForTerrain(t.String())
		if def == nil || rng.Float64() >= def.SpawnChance {
			return true
		}
		m.PlaceResource(NewResource(p, def, rng.Intn(MaxGrowth+1)))
		return true
	})
}
