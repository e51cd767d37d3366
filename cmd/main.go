package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/fixture-system/brackets"
	"github.com/Dosada05/fixture-system/config"
	"github.com/Dosada05/fixture-system/handlers"
	"github.com/Dosada05/fixture-system/repositories"
	api "github.com/Dosada05/fixture-system/routes"
	"github.com/Dosada05/fixture-system/services"
	"github.com/Dosada05/fixture-system/storage"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const (
	sweepInterval   = 5 * time.Minute // How often idle sessions are swept
	shutdownTimeout = 15 * time.Second
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Duration("session_ttl", cfg.SessionTTL),
		slog.Bool("export_enabled", cfg.ExportEnabled()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Загрузчик снимков (Cloudflare R2), только если бакет настроен
	var uploader storage.FileUploader
	if cfg.ExportEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, cfg.R2.Uploader())
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	}

	wsHub := brackets.NewHub()

	sessionRepo := repositories.NewMemorySessionRepository[*services.Session]()
	fixtureService := services.NewFixtureService(sessionRepo, wsHub, logger)
	exportService := services.NewExportService(fixtureService, uploader, logger)
	logger.Info("Services initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, logger, cfg.CORSAllowedOrigins, api.Handlers{
		Session:   handlers.NewSessionHandler(fixtureService),
		Team:      handlers.NewTeamHandler(fixtureService),
		Match:     handlers.NewMatchHandler(fixtureService),
		Export:    handlers.NewExportHandler(exportService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, fixtureService),
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("WebSocket Hub started")
		return wsHub.Run(gCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		logger.Info("idle session sweeper started", slog.Duration("interval", sweepInterval))
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				if _, err := fixtureService.SweepIdle(gCtx, cfg.SessionTTL); err != nil {
					logger.Error("sweeper: run failed", slog.Any("error", err))
				}
			}
		}
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}
