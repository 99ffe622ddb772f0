package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/phrazzld/gist-api/internal/config"
	"github.com/phrazzld/gist-api/internal/generation"
)

// Client implements the generation.Generator interface using the Gemini
// SDK. The model handle is resolved once at construction and the client
// is safe for concurrent use afterwards; Generate never mutates it.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini SDK client; nil when initialization failed
	client *genai.Client

	// model is the resolved model handle; nil marks the client unavailable
	// for the remainder of the process
	model *genai.GenerativeModel

	// modelName is the name the handle was resolved for
	modelName string
}

// Statically verify the interface contract.
var _ generation.Generator = (*Client)(nil)

// NewClient creates the process-wide SDK client. It probes the preferred
// model and falls back to cfg.FallbackModelName if the preferred model is
// rejected. Initialization failures of the SDK itself or of both models do
// not fail construction: they produce a client that reports unavailable on
// every call, so the caller keeps serving through the raw-network tiers.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" || cfg.FallbackModelName == "" {
		return nil, fmt.Errorf("%w: model names cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{logger: logger}

	// A missing key is a degraded mode, not a construction failure: the
	// server keeps serving and every call reports unavailable.
	if cfg.GeminiAPIKey == "" {
		logger.Warn("no Gemini API key configured, SDK client unavailable")
		return c, nil
	}

	sdkClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		logger.Error("failed to create Gemini SDK client, raw HTTP tiers only",
			"error", err)
		return c, nil
	}
	c.client = sdkClient

	c.model, c.modelName = resolveModel(ctx, logger, sdkClient, cfg.ModelName, cfg.FallbackModelName)
	return c, nil
}

// resolveModel probes the preferred model and then the fallback model,
// returning the first handle the API acknowledges. A nil handle means
// neither model is usable through the SDK.
func resolveModel(
	ctx context.Context,
	logger *slog.Logger,
	client *genai.Client,
	preferred string,
	fallback string,
) (*genai.GenerativeModel, string) {
	for _, name := range []string{preferred, fallback} {
		handle := client.GenerativeModel(name)
		if _, err := handle.Info(ctx); err != nil {
			logger.Warn("Gemini SDK model probe failed",
				"model", name,
				"error", err)
			continue
		}

		logger.Info("Gemini SDK model initialized", "model", name)
		return handle, name
	}

	logger.Warn("no Gemini SDK model available, raw HTTP tiers only",
		"preferred", preferred,
		"fallback", fallback)
	return nil, ""
}

// Available reports whether the client resolved a usable model handle.
func (c *Client) Available() bool {
	return c.model != nil
}

// ModelName returns the name of the resolved model, or the empty string
// when the client is unavailable.
func (c *Client) ModelName() string {
	return c.modelName
}

// Generate produces text for the given prompt, attaching the image as an
// inline part when present. An unavailable client returns immediately
// with generation.ErrProviderUnavailable and no network round trip.
func (c *Client) Generate(ctx context.Context, prompt string, image *generation.InlineImage) (string, error) {
	if c.model == nil {
		return "", generation.ErrProviderUnavailable
	}

	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	parts := []genai.Part{genai.Text(prompt)}
	if image != nil {
		parts = append(parts, genai.Blob{
			MIMEType: image.MIMEType,
			Data:     image.Data,
		})
	}

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini SDK call failed for model %s: %w", c.modelName, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}

	c.logger.Debug("Gemini SDK call succeeded",
		"model", c.modelName,
		"response_length", len(text))
	return text, nil
}

// extractText pulls the text parts of the first candidate out of an SDK
// response. Any shape mismatch maps to generation.ErrInvalidResponse so
// the orchestrator can advance to the next tier.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in first candidate", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: no text parts in first candidate", generation.ErrInvalidResponse)
	}

	return text, nil
}

// Close releases the underlying SDK client. Safe to call on an
// unavailable client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
