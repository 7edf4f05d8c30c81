package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchen/cmd"
	"kitchen/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env-file", ".env", "dotenv file loaded into the environment when present")
	flag.Parse()

	config, err := cmd.LoadConfig(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(ctx, config, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	if err = postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	publisher, err := cmd.NewEventPublisher(config, logger)
	if err != nil {
		log.Fatalf("Failed to set up event publishing: %v", err)
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Warn("Failed to close event publisher", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(config, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho(ctx)
	if err != nil {
		log.Fatalf("Failed to set up HTTP server: %v", err)
	}

	go func() {
		logger.Info("HTTP server listening", "port", config.HTTPPort)
		if startErr := e.Start("0.0.0.0:" + config.HTTPPort); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}
