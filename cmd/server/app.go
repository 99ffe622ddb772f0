package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gist-api/internal/config"
	"github.com/phrazzld/gist-api/internal/domain"
	"github.com/phrazzld/gist-api/internal/platform/gemini"
	"github.com/phrazzld/gist-api/internal/platform/genlang"
	"github.com/phrazzld/gist-api/internal/service"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// geminiClient is retained beyond service wiring so its underlying
	// connection can be closed during cleanup.
	geminiClient *gemini.Client

	analysisService service.AnalysisService
}

// newApplication creates an application instance with all dependencies
// initialized. The generation tiers are assembled here: the managed SDK
// client first, then the two raw HTTP clients for text requests. Image
// requests only ever use the managed client.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.geminiClient, err = gemini.NewClient(
		ctx,
		logger.With("component", "gemini_client"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	if app.geminiClient.Available() {
		logger.Info("Managed Gemini client initialized", "model", app.geminiClient.ModelName())
	} else {
		logger.Warn("Managed Gemini client unavailable; relying on raw network tiers")
	}

	primaryClient, err := genlang.NewClient(
		logger.With("component", "genlang_primary"),
		cfg.LLM,
		cfg.LLM.ModelName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize primary raw client: %w", err)
	}

	fallbackClient, err := genlang.NewClient(
		logger.With("component", "genlang_fallback"),
		cfg.LLM,
		cfg.LLM.FallbackModelName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fallback raw client: %w", err)
	}

	managedModel := app.geminiClient.ModelName()
	if managedModel == "" {
		managedModel = cfg.LLM.ModelName
	}

	textTiers := []service.ProviderTier{
		{Source: domain.SourceManaged, Model: managedModel, Generator: app.geminiClient},
		{Source: domain.SourceRawPrimary, Model: cfg.LLM.ModelName, Generator: primaryClient},
		{Source: domain.SourceRawFallback, Model: cfg.LLM.FallbackModelName, Generator: fallbackClient},
	}
	imageTiers := []service.ProviderTier{
		{Source: domain.SourceManaged, Model: managedModel, Generator: app.geminiClient},
	}

	app.analysisService, err = service.NewAnalysisService(logger, textTiers, imageTiers)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.geminiClient != nil {
		if err := app.geminiClient.Close(); err != nil {
			app.logger.Error("Error closing Gemini client", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
