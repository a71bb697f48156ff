// Package editor implements the limited-palette pixel canvas: painting,
// eyedropper, importing an arbitrary image by pixelating it, and PNG export.
package editor

import (
	"github.com/samdwyer/pixelabyss/internal/palette"
)

// Canvas is a grid of palette indices. palette.None marks an empty cell.
type Canvas struct {
	Width  int
	Height int
	Pixels []int

	Color      int  // Active palette index; palette.None erases
	Eyedropper bool // When set, Apply picks instead of paints
	Workers    int  // Quantization goroutines for Pixelate; zero uses GOMAXPROCS
}

// NewCanvas creates an empty width x height canvas painting with color 1.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Color: 1}
	c.Reset(width, height)
	return c
}

// Reset resizes the canvas and clears every cell.
func (c *Canvas) Reset(width, height int) {
	c.Width = max(width, 0)
	c.Height = max(height, 0)
	c.Pixels = make([]int, c.Width*c.Height)
	for i := range c.Pixels {
		c.Pixels[i] = palette.None
	}
}

// InBounds reports whether (x, y) is a cell of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// At returns the index at (x, y), or palette.None outside the canvas.
func (c *Canvas) At(x, y int) int {
	if !c.InBounds(x, y) {
		return palette.None
	}
	return c.Pixels[y*c.Width+x]
}

// SetPixel paints idx at (x, y). Out-of-bounds writes are ignored. It
// reports whether the cell changed.
func (c *Canvas) SetPixel(x, y, idx int) bool {
	if !c.InBounds(x, y) {
		return false
	}
	i := y*c.Width + x
	if c.Pixels[i] == idx {
		return false
	}
	c.Pixels[i] = idx
	return true
}

// Pick sets the active color from the cell at (x, y), clamped to the palette.
// Empty cells leave the active color unchanged.
func (c *Canvas) Pick(x, y int, p palette.Palette) bool {
	idx := c.At(x, y)
	if idx < 0 || p.Len() == 0 {
		return false
	}
	c.Color = min(max(idx, 0), p.Len()-1)
	return true
}

// Apply handles a pointer press at (x, y): it picks in eyedropper mode and
// paints the active color otherwise.
func (c *Canvas) Apply(x, y int, p palette.Palette) bool {
	if c.Eyedropper {
		return c.Pick(x, y, p)
	}
	return c.SetPixel(x, y, c.Color)
}

// Painted counts non-empty cells.
func (c *Canvas) Painted() int {
	n := 0
	for _, idx := range c.Pixels {
		if idx >= 0 {
			n++
		}
	}
	return n
}

// Complete reports whether at least minCells cells are painted.
func (c *Canvas) Complete(minCells int) bool {
	return c.Painted() >= minCells
}

// Fill replaces every cell from a row-major index buffer of the same size.
func (c *Canvas) Fill(indices []int) bool {
	if len(indices) != len(c.Pixels) {
		return false
	}
	copy(c.Pixels, indices)
	return true
}
