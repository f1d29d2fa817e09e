package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/JonMunkholm/census/internal/census"
	"github.com/JonMunkholm/census/internal/census/india"
	"github.com/JonMunkholm/census/internal/config"
	"github.com/JonMunkholm/census/internal/logging"
	"github.com/JonMunkholm/census/internal/web"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	datasets, err := buildDatasets(cfg.Census)
	if err != nil {
		slog.Error("invalid census configuration", "error", err, "code", census.MapError(err).Code)
		os.Exit(1)
	}

	// Fail fast if a configured file cannot be loaded.
	if err := preload(datasets); err != nil {
		msg := census.MapError(err)
		slog.Error("census preload failed", "error", err, "code", msg.Code, "action", msg.Action)
		os.Exit(1)
	}

	server := web.NewServer(cfg.Server, datasets)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// buildDatasets resolves the configured files for the selected country.
// Explicit paths win over the conventional names under DataDir.
func buildDatasets(cfg config.CensusConfig) ([]census.Dataset, error) {
	country, err := census.ParseCountry(cfg.Country)
	if err != nil {
		return nil, err
	}

	populationPath := cfg.PopulationPath
	if populationPath == "" {
		populationPath = filepath.Join(cfg.DataDir, india.StateCensusFile)
	}
	stateCodePath := cfg.StateCodePath
	if stateCodePath == "" {
		stateCodePath = filepath.Join(cfg.DataDir, india.StateCodeFile)
	}

	return []census.Dataset{
		{Country: country, Schema: census.SchemaPopulation, Path: populationPath, Header: cfg.PopulationHeader},
		{Country: country, Schema: census.SchemaStateCode, Path: stateCodePath, Header: cfg.StateCodeHeader},
	}, nil
}

// preload loads every dataset once, concurrently, and logs the record counts.
func preload(datasets []census.Dataset) error {
	var g errgroup.Group
	for _, ds := range datasets {
		ds := ds
		g.Go(func() error {
			records, err := ds.Load()
			if err != nil {
				return err
			}
			slog.Info("census dataset ready",
				"country", ds.Country.String(),
				"schema", ds.Schema.String(),
				"path", ds.Path,
				"records", len(records),
			)
			return nil
		})
	}
	return g.Wait()
}
