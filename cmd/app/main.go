package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/GardenPlanner_Go/internal/bootstrap"
	"github.com/osse101/GardenPlanner_Go/internal/config"
	"github.com/osse101/GardenPlanner_Go/internal/handler"
	"github.com/osse101/GardenPlanner_Go/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, logger.DefaultServiceName, handler.CurrentVersion().Version)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgEnvWarning, "warning", w)
	}

	plannerService, err := bootstrap.NewPlanner(cfg)
	if err != nil {
		slog.Error("Failed to start planner", "error", err)
		os.Exit(1)
	}

	srv := bootstrap.NewServer(cfg, plannerService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, srv)
}
