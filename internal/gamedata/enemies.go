package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an overworld enemy loaded from JSON.
type EnemyDef struct {
	ID     string `json:"id"`     // Unique identifier, also the encounter kind (e.g., "slime")
	Name   string `json:"name"`   // Display name (e.g., "Slime")
	Glyph  string `json:"glyph"`  // Single character for rendering
	Color  string `json:"color"`  // Hex color code
	HP     int    `json:"hp"`     // Hit points at the start of a battle
	XP     int    `json:"xp"`     // Experience granted on victory
	Pixels int    `json:"pixels"` // Pixels granted on victory
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return []rune(e.Glyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorRed // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
