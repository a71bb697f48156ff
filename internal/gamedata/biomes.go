package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelabyss/internal/world"
)

// BiomeDef describes how a biome is drawn.
type BiomeDef struct {
	ID    string `json:"id"`    // Matches world.Biome.String()
	Name  string `json:"name"`  // Display name
	Color string `json:"color"` // Fill color
	Glyph string `json:"glyph"` // Texture character drawn over the fill
}

// BiomesFile represents the structure of biomes.json.
type BiomesFile struct {
	Biomes []BiomeDef `json:"biomes"`
}

// BiomeStyle is a resolved BiomeDef ready for rendering.
type BiomeStyle struct {
	Name  string
	Color tcell.Color
	Glyph rune
}

// LoadBiomeStyles loads biomes.json and resolves one style per world biome.
// Every world biome must be present.
func LoadBiomeStyles() (map[world.Biome]BiomeStyle, error) {
	file, err := Load[BiomesFile]("biomes.json")
	if err != nil {
		return nil, err
	}

	styles := make(map[world.Biome]BiomeStyle, len(file.Biomes))
	for _, def := range file.Biomes {
		b, err := world.ParseBiome(def.ID)
		if err != nil {
			return nil, fmt.Errorf("biomes.json: %w", err)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("biomes.json: biome %s: %w", def.ID, err)
		}
		glyph := ' '
		if r := []rune(def.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		styles[b] = BiomeStyle{Name: def.Name, Color: color, Glyph: glyph}
	}

	for _, b := range world.Biomes {
		if _, ok := styles[b]; !ok {
			return nil, fmt.Errorf("biomes.json: missing biome %s", b)
		}
	}
	return styles, nil
}
