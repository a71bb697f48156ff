package palette

import (
	"context"
	"image"
	"image/color"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/pixelabyss/internal/telemetry"
)

// minChunk is the smallest pixel run handed to a single worker.
const minChunk = 1024

// QuantizeImage maps each pixel to its nearest palette index, or None when the
// pixel's alpha is exactly zero. The result has the same length and order as pixels.
func QuantizeImage(pixels []RGBA, p Palette) ([]int, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	out := make([]int, len(pixels))
	quantizeInto(out, pixels, p)
	return out, nil
}

// QuantizeParallel is QuantizeImage with the buffer split across up to workers
// goroutines. Each pixel depends only on itself and the palette, so the chunks
// need no coordination and the output is identical to QuantizeImage.
func QuantizeParallel(ctx context.Context, pixels []RGBA, p Palette, workers int) ([]int, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}

	_, span := telemetry.Tracer("palette").Start(ctx, "palette.quantize")
	defer span.End()

	if workers < 1 {
		workers = 1
	}
	chunk := (len(pixels) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	out := make([]int, len(pixels))
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(pixels); start += chunk {
		end := min(start+chunk, len(pixels))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			quantizeInto(out[start:end], pixels[start:end], p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("quantize.pixels", len(pixels)),
		attribute.Int("quantize.palette_size", len(p)),
		attribute.Int("quantize.chunk", chunk),
	)
	return out, nil
}

func quantizeInto(out []int, pixels []RGBA, p Palette) {
	for i, px := range pixels {
		if px.Transparent() {
			out[i] = None
			continue
		}
		out[i] = nearest(px.RGB(), p)
	}
}

// FromImage returns the image's pixels in row-major order with straight alpha.
func FromImage(img image.Image) []RGBA {
	b := img.Bounds()
	out := make([]RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out = append(out, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return out
}
