// Package palette maps arbitrary colors onto a small fixed palette.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyPalette is returned when a lookup is made against a palette with no entries.
	ErrEmptyPalette = errors.New("palette is empty")
	// ErrInvalidHex is returned when a palette entry is not a #RRGGBB string.
	ErrInvalidHex = errors.New("invalid hex color")
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA is an 8-bit color with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Transparent reports whether the pixel is fully transparent.
func (c RGBA) Transparent() bool {
	return c.A == 0
}

// Clamp builds a color from integer channels, clamping each to [0, 255].
// Out-of-range channels are never rejected.
func Clamp(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex converts "#RRGGBB" (or "RRGGBB") to an RGB color.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	if len(s) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex that panics on malformed input.
func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// distSq is the squared Euclidean distance in RGB space.
func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
