package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/config"
	"github.com/osse101/GardenPlanner_Go/internal/planner"
	"github.com/osse101/GardenPlanner_Go/internal/server"
)

// NewPlanner loads the catalog named by the configuration and starts a
// planner service over it.
func NewPlanner(cfg *config.Config) (planner.Service, error) {
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
	}
	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"crops", len(cat.Crops()),
		"fertilisers", len(cat.Fertilisers()))

	return planner.NewService(cat, planner.Config{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		Workers:   cfg.Workers,
		MaxBatch:  cfg.MaxBatch,
	}), nil
}

// NewServer builds the HTTP server for the planner service
func NewServer(cfg *config.Config, svc planner.Service) *server.Server {
	return server.NewServer(cfg.Port, server.Options{
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, svc)
}
