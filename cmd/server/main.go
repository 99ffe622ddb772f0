// Package main implements the entry point for the gist-api server,
// which summarizes text and describes images through a tiered sequence
// of Gemini clients.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/phrazzld/gist-api/internal/config"
	"github.com/phrazzld/gist-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application, and serves until a
// shutdown signal arrives. Split from main so initialization errors
// flow back as values.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"fallback_model", cfg.LLM.FallbackModelName)

	if cfg.LLM.GeminiAPIKey == "" {
		appLogger.Warn("No Gemini API key configured; all generation tiers will be unavailable")
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
