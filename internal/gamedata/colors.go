package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelabyss/internal/palette"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := palette.ParseHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return TCellColor(c), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// TCellColor converts a palette color to a true-color tcell.Color.
func TCellColor(c palette.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
