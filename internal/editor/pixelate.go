package editor

import (
	"context"
	"image"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/image/draw"

	"github.com/samdwyer/pixelabyss/internal/palette"
	"github.com/samdwyer/pixelabyss/internal/telemetry"
)

// Resize scales img to width x height with nearest-neighbour sampling, the
// same as drawing it onto a small canvas with smoothing disabled.
func Resize(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Pixelate scales img to the canvas size and replaces the canvas with the
// nearest palette index of every pixel. Transparent pixels become empty cells.
func (c *Canvas) Pixelate(ctx context.Context, img image.Image, p palette.Palette) error {
	ctx, span := telemetry.Tracer("editor").Start(ctx, "editor.pixelate")
	defer span.End()

	workers := c.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	small := Resize(img, c.Width, c.Height)
	indices, err := palette.QuantizeParallel(ctx, palette.FromImage(small), p, workers)
	if err != nil {
		return err
	}
	c.Fill(indices)

	span.SetAttributes(
		attribute.Int("editor.width", c.Width),
		attribute.Int("editor.height", c.Height),
		attribute.Int("editor.painted", c.Painted()),
		attribute.Int("editor.workers", workers),
		attribute.Int("source.width", img.Bounds().Dx()),
		attribute.Int("source.height", img.Bounds().Dy()),
	)
	return nil
}

// LoadAndPixelate fetches the image at url and pixelates it onto the canvas.
func (c *Canvas) LoadAndPixelate(ctx context.Context, f *Fetcher, url string, p palette.Palette) error {
	img, err := f.Fetch(ctx, url)
	if err != nil {
		return err
	}
	return c.Pixelate(ctx, img, p)
}
