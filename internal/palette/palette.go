package palette

import (
	"fmt"
	"math"
)

// None marks an unpainted (fully transparent) cell.
const None = -1

// Palette is an ordered set of reference colors. Lookups treat it as immutable.
type Palette []RGB

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p)
}

// Hex returns the palette as #RRGGBB strings, in order.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// At returns the color for idx. ok is false for None and out-of-range indices.
func (p Palette) At(idx int) (c RGB, ok bool) {
	if idx < 0 || idx >= len(p) {
		return RGB{}, false
	}
	return p[idx], true
}

// NearestIndex returns the index of the palette entry closest to q by squared
// Euclidean distance. Ties go to the lowest index.
func NearestIndex(q RGB, p Palette) (int, error) {
	if len(p) == 0 {
		return None, ErrEmptyPalette
	}
	return nearest(q, p), nil
}

// Nearest is NearestIndex as a method.
func (p Palette) Nearest(q RGB) (int, error) {
	return NearestIndex(q, p)
}

// nearest assumes a non-empty palette.
func nearest(q RGB, p Palette) int {
	best, bestD := 0, math.MaxInt
	for i, c := range p {
		// Strict comparison keeps the first of equally distant entries.
		if d := distSq(q, c); d < bestD {
			best, bestD = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// ParseHexPalette parses a list of "#RRGGBB" strings.
func ParseHexPalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

// db16bwHex is DawnBringer's 16-color palette preceded by pure black and white.
var db16bwHex = []string{
	"#000000", "#FFFFFF",
	"#140C1C", "#442434", "#30346D", "#4E4A4E",
	"#854C30", "#346524", "#D04648", "#757161",
	"#597DCE", "#D27D2C", "#8595A1", "#6DAA2C",
	"#D2AA99", "#6DC2CA", "#DAD45E", "#DEEED6",
}

// DB16BW returns the default editor palette.
func DB16BW() Palette {
	p := make(Palette, len(db16bwHex))
	for i, h := range db16bwHex {
		p[i] = MustParseHex(h)
	}
	return p
}

// RGB332 returns the 256-color palette with 3 bits red, 3 bits green and 2 bits blue.
func RGB332() Palette {
	p := make(Palette, 256)
	for i := range p {
		p[i] = RGB{
			R: scaleBits((i>>5)&0x7, 7),
			G: scaleBits((i>>2)&0x7, 7),
			B: scaleBits(i&0x3, 3),
		}
	}
	return p
}

// scaleBits spreads v in [0, max] over [0, 255], rounding half up.
func scaleBits(v, max int) uint8 {
	return uint8((v*255*2 + max) / (2 * max))
}

// Named returns a built-in palette by name.
func Named(name string) (Palette, bool) {
	switch name {
	case "db16bw", "db16", "":
		return DB16BW(), true
	case "rgb332":
		return RGB332(), true
	default:
		return nil, false
	}
}
