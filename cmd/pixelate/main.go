// Command pixelate converts an image into limited-palette pixel art.
//
// Usage:
//
//	pixelate -in photo.jpg -palette db16bw -w 16 -h 16 -out sprite.png
//	pixelate -in https://example.com/generated.png -palette palettes.json -save
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/pixelabyss/internal/editor"
	"github.com/samdwyer/pixelabyss/internal/game"
	"github.com/samdwyer/pixelabyss/internal/gamedata"
	"github.com/samdwyer/pixelabyss/internal/palette"
	"github.com/samdwyer/pixelabyss/internal/store"
	"github.com/samdwyer/pixelabyss/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	cfg, err := game.LoadConfig(os.Getenv("PIXELABYSS_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	in := flag.String("in", "", "input image path or http(s) URL")
	paletteName := flag.String("palette", cfg.Editor.Palette, "palette: db16bw, rgb332, gameboy or a palettes JSON file")
	width := flag.Int("w", cfg.Editor.Width, "canvas width in cells")
	height := flag.Int("h", cfg.Editor.Height, "canvas height in cells")
	scale := flag.Int("scale", cfg.Editor.Scale, "export pixels per cell")
	out := flag.String("out", "pixelated.png", "output PNG path")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "quantization workers")
	minCells := flag.Int("min-cells", cfg.Editor.MinCells, "fail unless at least this many cells are painted")
	save := flag.Bool("save", false, "store the drawing in the save file")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	telemetry.SetVerbosity(*verbosity)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, options{
		in:       *in,
		palette:  *paletteName,
		width:    *width,
		height:   *height,
		scale:    *scale,
		out:      *out,
		workers:  *workers,
		minCells: *minCells,
		save:     *save,
		store:    cfg.Store,
	}); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	in, palette, out, store string
	width, height, scale    int
	workers, minCells       int
	save                    bool
}

func run(ctx context.Context, o options) error {
	logger := telemetry.Logger("pixelate")

	p, err := gamedata.ResolvePalette(o.palette)
	if err != nil {
		return err
	}

	canvas := editor.NewCanvas(o.width, o.height)
	canvas.Workers = o.workers
	if err := pixelate(ctx, canvas, o.in, p); err != nil {
		return err
	}

	painted := canvas.Painted()
	fmt.Printf("painted %d/%d cells with %d colors\n", painted, canvas.Width*canvas.Height, p.Len())
	if !canvas.Complete(o.minCells) {
		return fmt.Errorf("only %d cells painted, need %d", painted, o.minCells)
	}

	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := canvas.ExportPNG(f, p, o.scale); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", o.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("exported", "path", o.out, "scale", o.scale)

	if o.save {
		id, err := saveArt(ctx, o.store, canvas, p)
		if err != nil {
			return err
		}
		fmt.Printf("saved as %s\n", id)
	}
	return nil
}

// pixelate fills the canvas from a local file or an http(s) URL.
func pixelate(ctx context.Context, c *editor.Canvas, in string, p palette.Palette) error {
	if strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://") {
		return c.LoadAndPixelate(ctx, editor.NewFetcher(), in, p)
	}
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}
	return c.Pixelate(ctx, img, p)
}

// saveArt stores the drawing and records it on the saved player, if any.
func saveArt(ctx context.Context, path string, c *editor.Canvas, p palette.Palette) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer st.Close()

	session := store.NewSession(st)
	id, err := session.SaveArt(ctx, store.Art{
		Width:   c.Width,
		Height:  c.Height,
		Palette: p.Hex(),
		Pixels:  c.Pixels,
	})
	if err != nil {
		return "", fmt.Errorf("save art: %w", err)
	}

	player, err := session.LoadPlayer(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return id, nil
	case err != nil:
		return "", err
	}
	player.AddArt(id)
	if err := session.SavePlayer(ctx, player); err != nil {
		return "", err
	}
	return id, nil
}
