package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/api"
	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/config"
	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/observability"
	httptransport "github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/transport/http"
)

func main() {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "activities-api").
		Logger()

	cfg := config.Load()

	catalog, err := config.LoadCatalog(cfg.ActivitiesFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load activity catalog")
	}

	registry, err := domain.NewRegistry(catalog)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build activity registry")
	}
	for name, activity := range registry.List() {
		observability.SetRosterSize(name, len(activity.Participants))
	}

	handler := api.NewHandler(registry)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	chain := api.RequestID(api.RequestLogger(logger)(api.CORS(mux)))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, chain)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress).Int("activities", len(catalog)).Msg("activities service listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-shutdownCh
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
