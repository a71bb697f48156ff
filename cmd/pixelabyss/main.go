// Package main is the entry point for Pixel Abyss.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/pixelabyss/internal/game"
	"github.com/samdwyer/pixelabyss/internal/store"
	"github.com/samdwyer/pixelabyss/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are embedded)")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	telemetry.SetVerbosity(*verbosity)
	logger := telemetry.Logger("main")

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Error(err, "telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error(err, "telemetry shutdown")
			}
		}()
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer st.Close()

	g, err := game.New(ctx, cfg, st)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	runErr := g.Run(ctx)
	g.Close()
	if runErr != nil {
		logger.Error(runErr, "game exited with error")
		os.Exit(1)
	}
}

// setupOTelEnv maps PIXELABYSS_OTLP_* variables onto the standard OTEL_* ones
// when the latter are not already set.
func setupOTelEnv() {
	endpoint := os.Getenv("PIXELABYSS_OTLP_ENDPOINT")
	if endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	apiKey := os.Getenv("PIXELABYSS_OTLP_API_KEY")
	dataset := os.Getenv("PIXELABYSS_OTLP_DATASET")
	if dataset == "" {
		dataset = "pixelabyss"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
