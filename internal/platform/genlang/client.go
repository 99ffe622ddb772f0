package genlang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/gist-api/internal/config"
	"github.com/phrazzld/gist-api/internal/generation"
)

// maxErrorBodyBytes caps how much of an error response body is kept for
// logging and error messages.
const maxErrorBodyBytes = 200

// Client issues direct generateContent requests for a single model name.
// Each call is bounded by the configured timeout and never retried; the
// orchestrator advances to the next tier instead.
type Client struct {
	logger   *slog.Logger
	apiKey   string
	endpoint string
	model    string
	hc       *http.Client
}

// Statically verify the interface contract.
var _ generation.Generator = (*Client)(nil)

// NewClient creates a raw-network client bound to the given model name.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, model string) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint cannot be empty", generation.ErrInvalidConfig)
	}

	return &Client{
		logger:   logger,
		apiKey:   cfg.GeminiAPIKey,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		model:    model,
		hc:       &http.Client{Timeout: cfg.RequestTimeout()},
	}, nil
}

// ModelName returns the model this client is bound to.
func (c *Client) ModelName() string {
	return c.model
}

// Generate sends the prompt to the generateContent endpoint and extracts
// the first candidate's first text part. Image payloads are not sent over
// this path and are reported as unsupported immediately.
func (c *Client) Generate(ctx context.Context, prompt string, image *generation.InlineImage) (string, error) {
	if image != nil {
		return "", generation.ErrImageUnsupported
	}

	if c.apiKey == "" {
		return "", generation.ErrProviderUnavailable
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed for model %s: %w", c.model, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", fmt.Errorf("model %s returned status %d: %s", c.model, resp.StatusCode, string(snippet))
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode body: %v", generation.ErrInvalidResponse, err)
	}

	return extractText(parsed)
}

// extractText pulls the first text part of the first candidate. Any shape
// mismatch maps to generation.ErrInvalidResponse.
func extractText(parsed generateContentResponse) (string, error) {
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrInvalidResponse)
	}

	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: no parts in first candidate", generation.ErrInvalidResponse)
	}

	text := strings.TrimSpace(parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty text in first part", generation.ErrInvalidResponse)
	}

	return text, nil
}
