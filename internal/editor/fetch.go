package editor

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-logr/logr"
	_ "golang.org/x/image/webp"

	"github.com/samdwyer/pixelabyss/internal/telemetry"
)

// maxImageBytes caps downloads; generated images are a few megabytes at most.
const maxImageBytes = 32 << 20

// Fetcher downloads and decodes images by URL.
type Fetcher struct {
	Client   *http.Client
	MaxTries uint
	MaxWait  time.Duration
	Interval time.Duration // First retry delay; zero uses the backoff default
	log      logr.Logger
}

// NewFetcher returns a fetcher with a 30s client timeout and 4 attempts.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: 30 * time.Second},
		MaxTries: 4,
		MaxWait:  time.Minute,
		log:      telemetry.Logger("fetch"),
	}
}

// Fetch downloads url and decodes it as PNG, JPEG, GIF or WebP. Server errors
// and transport failures are retried with exponential backoff; client errors
// and undecodable bodies are not.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	ctx, span := telemetry.Tracer("editor").Start(ctx, "editor.fetch")
	defer span.End()

	attempt := 0
	op := func() (image.Image, error) {
		attempt++
		img, err := f.fetchOnce(ctx, url)
		if err != nil {
			f.log.V(1).Info("fetch failed", "url", url, "attempt", attempt, "err", err.Error())
		}
		return img, err
	}

	exp := backoff.NewExponentialBackOff()
	if f.Interval > 0 {
		exp.InitialInterval = f.Interval
	}
	img, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(exp),
		backoff.WithMaxTries(f.MaxTries),
		backoff.WithMaxElapsedTime(f.MaxWait),
	)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return img, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("server returned %s", resp.Status)
	case resp.StatusCode >= 400:
		return nil, backoff.Permanent(fmt.Errorf("server returned %s", resp.Status))
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode image: %w", err))
	}
	return img, nil
}
