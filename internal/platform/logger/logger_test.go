package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/gist-api/internal/config"
)

func TestSetup_EmitsJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	log := setup(config.ServerConfig{Port: 5000, LogLevel: "warn"}, &buf)

	log.Info("suppressed")
	log.Warn("emitted", "component", "test")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "emitted", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		configured string
		want       string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"WARN", "WARN"},
		{"error", "ERROR"},
		{"chatty", "INFO"}, // invalid falls back to info
		{"", "INFO"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.configured).String(), "level %q", tt.configured)
	}
}
