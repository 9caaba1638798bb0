package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bundlenudge/internal/api"
	"bundlenudge/internal/auth"
	"bundlenudge/internal/background"
	"bundlenudge/internal/blob"
	"bundlenudge/internal/cache"
	"bundlenudge/internal/config"
	"bundlenudge/internal/db"
	"bundlenudge/internal/release"
	"bundlenudge/internal/rollback"
	"bundlenudge/internal/stats"
	"bundlenudge/internal/stream"
	"bundlenudge/internal/telemetry"
	"bundlenudge/internal/update"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer database.Close()

	var blobs blob.Store
	if cfg.S3Bucket != "" {
		blobs, err = blob.NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			panic(err)
		}
	} else {
		blobs = blob.NewFilesystemStore(cfg.BlobDir)
	}

	telemetryPublisher := stream.NewTelemetryPublisher(stream.Config{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.TelemetryTopic,
	})
	lifecyclePublisher := stream.NewLifecyclePublisher(stream.Config{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.LifecycleTopic,
	})

	executor := background.New(background.Config{
		Workers:     cfg.BackgroundWorkers,
		QueueSize:   cfg.BackgroundQueueSize,
		TaskTimeout: cfg.BackgroundTimeout,
	})

	aggregator := stats.New(database)
	evaluator := rollback.New(database, lifecyclePublisher)
	releases := release.New(release.Config{
		Store:    database,
		Blobs:    blobs,
		Notifier: lifecyclePublisher,
	})
	ingestor := telemetry.New(telemetry.Config{
		Store:      database,
		Aggregator: aggregator,
		Evaluator:  evaluator,
		Publisher:  telemetryPublisher,
		Executor:   executor,
	})
	engine := update.New(update.Config{
		Store:    cache.NewStore(database, cfg.AppCacheTTL),
		Verifier: auth.NewVerifier(),
		Executor: executor,
	})

	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.New(api.Config{
			Engine:   engine,
			Releases: releases,
			Ingestor: ingestor,
			Apps:     database,
		}).Routes(),
	}

	go func() {
		slog.InfoContext(ctx, "HTTP server listening...", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	select {
	case <-sigs:
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "HTTP shutdown error", "error", err)
	}

	// Drain accepted background work before tearing anything down.
	executor.Close()
	telemetryPublisher.Close(ctx)
	lifecyclePublisher.Close(ctx)
}
