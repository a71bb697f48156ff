package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/pixelabyss/internal/palette"
	"github.com/samdwyer/pixelabyss/internal/world"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}
	if len(enemies) == 0 {
		t.Fatal("Expected at least one enemy")
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	slime := registry.GetByID(world.DefaultEnemyKind)
	if slime == nil {
		t.Fatal("Default enemy kind not found by ID")
	}
	if slime.Name != "Slime" {
		t.Errorf("Expected name 'Slime', got %q", slime.Name)
	}
	if slime.HP != 1 {
		t.Errorf("Expected slime HP 1, got %d", slime.HP)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("Unexpected enemy 'dragon'")
	}
}

func TestCardRegistry(t *testing.T) {
	registry, err := LoadCardRegistry()
	if err != nil {
		t.Fatalf("Failed to load cards: %v", err)
	}
	if registry.Count() != 3 {
		t.Errorf("Expected 3 cards, got %d", registry.Count())
	}

	deck := registry.StarterDeck()
	for _, id := range deck {
		if registry.GetByID(id) == nil {
			t.Errorf("Starter deck card %q is not defined", id)
		}
	}
	deck[0] = "mutated"
	if registry.StarterDeck()[0] == "mutated" {
		t.Error("StarterDeck should return a copy")
	}
}

func TestLoadBiomeStyles(t *testing.T) {
	styles, err := LoadBiomeStyles()
	if err != nil {
		t.Fatalf("Failed to load biome styles: %v", err)
	}
	for _, b := range world.Biomes {
		if _, ok := styles[b]; !ok {
			t.Errorf("Missing style for biome %v", b)
		}
	}
	if styles[world.BiomeSnow].Color != MustParseHexColor("#FFFFFF") {
		t.Errorf("Snow color = %v, want white", styles[world.BiomeSnow].Color)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{
		ID:    "test",
		Name:  "Test Enemy",
		Glyph: "T",
		Color: "#FF0000",
		HP:    10,
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}
}

func TestLoadPalettes(t *testing.T) {
	file, err := LoadPalettes()
	if err != nil {
		t.Fatalf("Failed to load palettes: %v", err)
	}

	def, ok := file.Find("db16bw")
	if !ok {
		t.Fatal("db16bw palette not found")
	}
	p, err := def.Palette()
	if err != nil {
		t.Fatalf("db16bw palette failed to parse: %v", err)
	}

	builtin := palette.DB16BW()
	if p.Len() != builtin.Len() {
		t.Fatalf("embedded db16bw has %d colors, built-in has %d", p.Len(), builtin.Len())
	}
	for i := range p {
		if p[i] != builtin[i] {
			t.Errorf("color %d: embedded %v, built-in %v", i, p[i], builtin[i])
		}
	}
}

func TestParsePalettesRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing palettes", `{}`},
		{"empty colors", `{"palettes":[{"id":"x","colors":[]}]}`},
		{"bad hex", `{"palettes":[{"id":"x","colors":["#12345Z"]}]}`},
		{"short hex", `{"palettes":[{"id":"x","colors":["#FFF"]}]}`},
		{"missing id", `{"palettes":[{"colors":["#FFFFFF"]}]}`},
	}

	for _, tt := range tests {
		if _, err := ParsePalettes([]byte(tt.raw)); err == nil {
			t.Errorf("ParsePalettes(%s) should fail", tt.name)
		}
	}
}

func TestResolvePalette(t *testing.T) {
	if p, err := ResolvePalette("rgb332"); err != nil || p.Len() != 256 {
		t.Errorf("ResolvePalette(rgb332) = %d colors, %v", p.Len(), err)
	}
	if p, err := ResolvePalette("gameboy"); err != nil || p.Len() != 4 {
		t.Errorf("ResolvePalette(gameboy) = %d colors, %v", p.Len(), err)
	}

	path := filepath.Join(t.TempDir(), "mine.json")
	raw := `{"palettes":[{"id":"mine","colors":["#102030","405060"]}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := ResolvePalette(path)
	if err != nil {
		t.Fatalf("ResolvePalette(file) error: %v", err)
	}
	if p.Len() != 2 || p[1] != (palette.RGB{R: 0x40, G: 0x50, B: 0x60}) {
		t.Errorf("ResolvePalette(file) = %v", p)
	}

	if _, err := ResolvePalette("nope"); err == nil {
		t.Error("ResolvePalette(nope) should fail")
	}
}

func TestParseHexColorWrapsPaletteError(t *testing.T) {
	_, err := ParseHexColor("zzzzzz")
	if !errors.Is(err, palette.ErrInvalidHex) {
		t.Errorf("ParseHexColor error = %v, want palette.ErrInvalidHex", err)
	}
}
