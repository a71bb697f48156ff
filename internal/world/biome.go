// Package world classifies tiles of the infinite overworld into biomes and
// tracks the explorer's scene state.
package world

import "fmt"

// Biome is the terrain category of a tile.
type Biome int

const (
	BiomeWater Biome = iota
	BiomeShore
	BiomePrairie
	BiomeForest
	BiomeRock
	BiomeSnow
)

// Biomes lists every biome in declaration order.
var Biomes = []Biome{BiomeWater, BiomeShore, BiomePrairie, BiomeForest, BiomeRock, BiomeSnow}

// String returns the biome's identifier as used in data files.
func (b Biome) String() string {
	switch b {
	case BiomeWater:
		return "water"
	case BiomeShore:
		return "shore"
	case BiomePrairie:
		return "prairie"
	case BiomeForest:
		return "forest"
	case BiomeRock:
		return "rock"
	case BiomeSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the defined biomes.
func (b Biome) Valid() bool {
	return b >= BiomeWater && b <= BiomeSnow
}

// ParseBiome returns the biome named s.
func ParseBiome(s string) (Biome, error) {
	for _, b := range Biomes {
		if b.String() == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown biome %q", s)
}
