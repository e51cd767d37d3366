package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Dosada05/fixture-system/config"
	"github.com/Dosada05/fixture-system/mcp"
	"github.com/Dosada05/fixture-system/repositories"
	"github.com/Dosada05/fixture-system/services"
)

func main() {
	// stdout занят протоколом, логи пишем в stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if level, err := cfg.SlogLevel(); err == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	slog.SetDefault(logger)

	sessionRepo := repositories.NewMemorySessionRepository[*services.Session]()
	fixtureService := services.NewFixtureService(sessionRepo, nil, logger)

	tools, err := mcp.NewToolServer(context.Background(), fixtureService, logger)
	if err != nil {
		logger.Error("failed to create tool server", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting fixture MCP server", slog.String("session_id", tools.SessionID()))
	if err := server.ServeStdio(mcp.NewServer(tools)); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
