package genlang

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/gist-api/internal/config"
	"github.com/phrazzld/gist-api/internal/generation"
)

func testConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:          "test-key",
		ModelName:             "gemini-2.0-flash",
		FallbackModelName:     "gemini-1.5-flash",
		Endpoint:              endpoint,
		RequestTimeoutSeconds: 5,
	}
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(generateContentResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: "  A fine summary.  "}}}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(slog.Default(), testConfig(server.URL), "gemini-2.0-flash")
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "Summarize this.", nil)
	require.NoError(t, err)

	assert.Equal(t, "A fine summary.", text)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "Summarize this.", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerate_Non2xxStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(slog.Default(), testConfig(server.URL), "gemini-2.0-flash")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "gemini-2.0-flash")
}

func TestGenerate_MalformedResponseShapes(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`not json at all`,
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`,
	}

	for _, body := range bodies {
		body := body
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		client, err := NewClient(slog.Default(), testConfig(server.URL), "m")
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), "prompt", nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse, "body %q", body)

		server.Close()
	}
}

func TestGenerate_ImageUnsupported(t *testing.T) {
	t.Parallel()

	// The server must never be reached for image requests.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected network call for image request")
	}))
	defer server.Close()

	client, err := NewClient(slog.Default(), testConfig(server.URL), "m")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", &generation.InlineImage{
		Data:     []byte{0x01},
		MIMEType: "image/png",
	})
	assert.ErrorIs(t, err, generation.ErrImageUnsupported)
}

func TestGenerate_MissingAPIKeyIsUnavailable(t *testing.T) {
	t.Parallel()

	cfg := testConfig("https://example.invalid")
	cfg.GeminiAPIKey = ""

	client, err := NewClient(slog.Default(), cfg, "m")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", nil)
	assert.ErrorIs(t, err, generation.ErrProviderUnavailable)
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(nil, testConfig("https://example.invalid"), "m")
	assert.Error(t, err)

	_, err = NewClient(slog.Default(), testConfig("https://example.invalid"), "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	cfg := testConfig("")
	_, err = NewClient(slog.Default(), cfg, "m")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
