package world

// Viewport is the rectangle of tiles visible around the camera.
type Viewport struct {
	X, Y          int // Top-left tile
	Width, Height int // Size in tiles
}

// CenteredOn returns a width x height viewport with center on the tile at c.
func CenteredOn(c TileCoord, width, height int) Viewport {
	return Viewport{
		X:      c.X - width/2,
		Y:      c.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Contains returns true if the tile lies inside the viewport.
func (v Viewport) Contains(c TileCoord) bool {
	return c.X >= v.X && c.X < v.X+v.Width && c.Y >= v.Y && c.Y < v.Y+v.Height
}

// Local converts a world tile to viewport-relative coordinates.
// ok is false when the tile is off screen.
func (v Viewport) Local(c TileCoord) (lx, ly int, ok bool) {
	if !v.Contains(c) {
		return 0, 0, false
	}
	return c.X - v.X, c.Y - v.Y, true
}

// Each calls fn for every visible tile in row-major order with its
// viewport-relative position.
func (v Viewport) Each(fn func(lx, ly int, c TileCoord)) {
	for ly := 0; ly < v.Height; ly++ {
		for lx := 0; lx < v.Width; lx++ {
			fn(lx, ly, TileCoord{v.X + lx, v.Y + ly})
		}
	}
}
