package main

import (
	"context"
	"time"

	"inventory_viewer/internal/app"
	"inventory_viewer/internal/grid"
	"inventory_viewer/internal/remote"
	"inventory_viewer/internal/retry"
	"inventory_viewer/internal/web"

	"github.com/rs/zerolog/log"
)

// probeRetry bounds the startup connectivity probe. The view's own fetch
// path never retries; a failed load is surfaced and re-attempted on the
// next mount or poll tick.
var probeRetry = retry.Config{
	MaxRetries: 3,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
	Timeout:    15 * time.Second,
}

func main() {
	app.SetupEnvironment()
	cfg := app.LoadConfig()

	ctx := context.Background()
	source, client := buildSource(ctx, cfg)

	probeBackend(ctx, cfg, source)

	srv := web.NewServer(cfg, source, client)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// buildSource constructs the grid source for the configured backend. The
// remote.Client doubles as the submission client; the sheets backend is
// read-only, so its client stays nil.
func buildSource(ctx context.Context, cfg app.Config) (remote.Source, *remote.Client) {
	switch cfg.Backend {
	case app.BackendSheets:
		source, err := remote.NewSheetsSource(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets source")
		}
		log.Info().Str("spreadsheet", cfg.SpreadsheetID).Msg("Reading grids from Google Sheets")
		return source, nil
	default:
		client := remote.NewClient(cfg.EndpointURL)
		log.Info().Str("endpoint", cfg.EndpointURL).Msg("Reading grids from web endpoint")
		return client, client
	}
}

// probeBackend checks the backend is reachable before serving. Failure is
// logged but not fatal: the viewer still starts and shows the error state,
// mirroring how a failed initial load behaves in the view itself.
func probeBackend(ctx context.Context, cfg app.Config, source remote.Source) {
	area := cfg.Areas[0]
	_, err := retry.WithRetry(ctx, probeRetry, func(ctx context.Context) (grid.Grid, error) {
		return source.Fetch(ctx, area, grid.KindStock)
	})
	if err != nil {
		log.Warn().Err(err).Str("area", area).Msg("Backend probe failed; starting anyway")
		return
	}
	log.Debug().Str("area", area).Msg("Backend probe succeeded")
}
