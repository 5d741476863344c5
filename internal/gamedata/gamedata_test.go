package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadSpecies(t *testing.T) {
	file, err := LoadSpecies()
	if err != nil {
		t.Fatalf("Failed to load species: %v", err)
	}

	if len(file.Plants) != 2 {
		t.Errorf("Expected 2 plants, got %d", len(file.Plants))
	}

	expectedIDs := map[string]bool{"rooster": false, "person": false, "goat": false}
	for _, c := range file.Creatures {
		if _, ok := expectedIDs[c.ID]; ok {
			expectedIDs[c.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected creature %q not found", id)
		}
	}
}

func TestPlantRegistryForTerrain(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	tests := []struct {
		terrain string
		want    string
	}{
		{"grass", "wheat"},
		{"plains", "berrybush"},
		{"river", ""},
	}
	for _, tt := range tests {
		got := catalog.Plants.ForTerrain(tt.terrain)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("ForTerrain(%q) = %q, want nil", tt.terrain, got.ID)
		case tt.want != "" && (got == nil || got.ID != tt.want):
			t.Errorf("ForTerrain(%q) = %v, want %q", tt.terrain, got, tt.want)
		}
	}

	var nilRegistry *PlantRegistry
	if nilRegistry.ForTerrain("grass") != nil {
		t.Error("nil registry should return nil")
	}
}

func TestNewPlantRegistryFirstTerrainWins(t *testing.T) {
	r := NewPlantRegistry([]PlantDef{
		{ID: "clover", Terrain: "grass"},
		{ID: "wheat", Terrain: "grass"},
		{ID: "reed", Terrain: "marsh"},
	})
	if got := r.ForTerrain("grass"); got == nil || got.ID != "clover" {
		t.Errorf("ForTerrain(grass) = %v, want clover", got)
	}
	if got := r.ForTerrain("marsh"); got == nil || got.ID != "reed" {
		t.Errorf("ForTerrain(marsh) = %v, want reed", got)
	}
}

func TestCreatureRegistrySpawnDeterministic(t *testing.T) {
	registry := MustLoadCatalog().Creatures

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		a, b := registry.SpawnRandom(rng1), registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
	}
}

func TestCreatureRegistryWeights(t *testing.T) {
	registry := NewCreatureRegistry([]CreatureDef{
		{ID: "never", SpawnWeight: 0},
		{ID: "always", SpawnWeight: 5},
	})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if got := registry.SpawnRandom(rng).ID; got != "always" {
			t.Fatalf("SpawnRandom() = %q, want %q", got, "always")
		}
	}

	if NewCreatureRegistry(nil).SpawnRandom(rng) != nil {
		t.Error("empty registry should spawn nil")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"00FF00", tcell.NewRGBColor(0, 255, 0), true},
		{"#F80", tcell.NewRGBColor(255, 136, 0), true},
		{"red", tcell.ColorRed, true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFFF", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
			continue
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefMethods(t *testing.T) {
	plant := PlantDef{ID: "test", Glyph: "\"", Color: "bogus"}
	if plant.GlyphRune() != '"' {
		t.Errorf("Expected glyph '\"', got %c", plant.GlyphRune())
	}
	if plant.TCellColor() != tcell.ColorGreen {
		t.Error("invalid plant color should fall back to green")
	}

	creature := CreatureDef{ID: "test"}
	if creature.GlyphRune() != '?' {
		t.Errorf("Expected '?' for empty glyph, got %c", creature.GlyphRune())
	}
}
