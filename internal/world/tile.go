// Package world provides the tile map: terrain generation, resources,
// room membership and the wall edges derived from it.
package world

// Terrain is the ground type of a single map tile.
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainRiver
	TerrainPlains
	TerrainDesert
	TerrainMountain
	// TerrainWall is placed only by the map editing tools.
	TerrainWall
)

// String returns the terrain name used by the species catalog.
func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainRiver:
		return "river"
	case TerrainPlains:
		return "plains"
	case TerrainDesert:
		return "desert"
	case TerrainMountain:
		return "mountain"
	case TerrainWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Rune returns the terrain's display character.
func (t Terrain) Rune() rune {
	switch t {
	case TerrainGrass:
		return '.'
	case TerrainRiver:
		return '~'
	case TerrainPlains:
		return ','
	case TerrainDesert:
		return ':'
	case TerrainMountain:
		return '^'
	case TerrainWall:
		return '#'
	default:
		return '?'
	}
}
