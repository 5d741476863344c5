package gamedata

import "github.com/gdamore/tcell/v2"

// PlantDef defines a plant species seeded onto one terrain kind.
type PlantDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "wheat")
	Name        string  `json:"name"`        // Display name
	Glyph       string  `json:"glyph"`       // Single character for rendering
	Color       string  `json:"color"`       // Hex color code
	Terrain     string  `json:"terrain"`     // Terrain name the plant grows on
	SpawnChance float64 `json:"spawnChance"` // Per-tile probability at generation
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PlantDef) GlyphRune() rune {
	return glyphRune(p.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (p *PlantDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorGreen)
}

// CreatureDef defines an agent appearance used when seeding NPCs.
type CreatureDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	return glyphRune(c.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	return colorOr(c.Color, tcell.ColorWhite)
}

// SpeciesFile represents the structure of species.json.
type SpeciesFile struct {
	Plants    []PlantDef    `json:"plants"`
	Creatures []CreatureDef `json:"creatures"`
}

// LoadSpecies loads the species catalog from the embedded species.json file.
func LoadSpecies() (SpeciesFile, error) {
	return Load[SpeciesFile]("species.json")
}

func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
