package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/samdwyer/pixelabyss/internal/palette"
)

// paletteSchema rejects malformed palette files before any color is parsed.
const paletteSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["palettes"],
  "properties": {
    "palettes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "colors"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "colors": {
            "type": "array",
            "minItems": 1,
            "maxItems": 256,
            "items": {"type": "string", "pattern": "^#?[0-9A-Fa-f]{6}$"}
          }
        }
      }
    }
  }
}`

var paletteValidator = jsonschema.MustCompileString("palettes.schema.json", paletteSchema)

// PaletteDef is a named list of hex colors.
type PaletteDef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Palette parses the definition's colors.
func (d PaletteDef) Palette() (palette.Palette, error) {
	p, err := palette.ParseHexPalette(d.Colors)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", d.ID, err)
	}
	return p, nil
}

// PalettesFile represents the structure of palettes.json.
type PalettesFile struct {
	Palettes []PaletteDef `json:"palettes"`
}

// Find returns the palette with the given ID.
func (f PalettesFile) Find(id string) (PaletteDef, bool) {
	for _, d := range f.Palettes {
		if strings.EqualFold(d.ID, id) {
			return d, true
		}
	}
	return PaletteDef{}, false
}

// ParsePalettes validates raw JSON against the palette schema and decodes it.
func ParsePalettes(raw []byte) (PalettesFile, error) {
	var file PalettesFile

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return file, fmt.Errorf("failed to parse palette JSON: %w", err)
	}
	if err := paletteValidator.Validate(doc); err != nil {
		return file, fmt.Errorf("invalid palette file: %w", err)
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return file, fmt.Errorf("failed to decode palette file: %w", err)
	}
	return file, nil
}

// LoadPalettes loads the embedded palettes.json.
func LoadPalettes() (PalettesFile, error) {
	raw, err := dataFS.ReadFile("palettes.json")
	if err != nil {
		return PalettesFile{}, fmt.Errorf("failed to read embedded file palettes.json: %w", err)
	}
	return ParsePalettes(raw)
}

// LoadPaletteFile loads and validates a palette file from disk.
func LoadPaletteFile(path string) (PalettesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PalettesFile{}, err
	}
	file, err := ParsePalettes(raw)
	if err != nil {
		return file, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// ResolvePalette finds a palette by name: a built-in, an entry of the embedded
// palettes.json, or the first palette of a JSON file at that path.
func ResolvePalette(name string) (palette.Palette, error) {
	if p, ok := palette.Named(name); ok {
		return p, nil
	}

	embedded, err := LoadPalettes()
	if err != nil {
		return nil, err
	}
	if def, ok := embedded.Find(name); ok {
		return def.Palette()
	}

	if strings.HasSuffix(name, ".json") {
		file, err := LoadPaletteFile(name)
		if err != nil {
			return nil, err
		}
		return file.Palettes[0].Palette()
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}
