package editor

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/samdwyer/pixelabyss/internal/palette"
)

// Render draws the canvas at scale pixels per cell. Empty cells and indices
// outside the palette stay transparent.
func (c *Canvas) Render(p palette.Palette, scale int) *image.NRGBA {
	scale = max(scale, 1)
	img := image.NewNRGBA(image.Rect(0, 0, c.Width*scale, c.Height*scale))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			rgb, ok := p.At(c.At(x, y))
			if !ok {
				continue
			}
			fill := color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(x*scale+dx, y*scale+dy, fill)
				}
			}
		}
	}
	return img
}

// ExportPNG writes the canvas as a PNG at scale pixels per cell.
func (c *Canvas) ExportPNG(w io.Writer, p palette.Palette, scale int) error {
	return png.Encode(w, c.Render(p, scale))
}
