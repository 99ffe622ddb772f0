package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied when the environment is silent.
const (
	defaultPort           = 5000
	defaultLogLevel       = "info"
	defaultModelName      = "gemini-2.0-flash"
	defaultFallbackModel  = "gemini-1.5-flash"
	defaultEndpoint       = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeoutSeconds = 40
)

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Variables use the GIST_ prefix with underscores
// for nesting (e.g. GIST_SERVER_PORT); the unprefixed names GEMINI_API_KEY,
// GOOGLE_API_KEY, MODEL, and PORT are also honored for compatibility with
// existing deployments. Returns a populated Config or an error if loading
// or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.fallback_model_name", defaultFallbackModel)
	v.SetDefault("llm.endpoint", defaultEndpoint)
	v.SetDefault("llm.request_timeout_seconds", defaultTimeoutSeconds)

	v.SetEnvPrefix("GIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy variable names take effect only when the prefixed variant is
	// unset; viper checks the bound names in order.
	legacyBindings := map[string][]string{
		"llm.gemini_api_key": {"GIST_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"},
		"llm.model_name":     {"GIST_LLM_MODEL_NAME", "MODEL"},
		"server.port":        {"GIST_SERVER_PORT", "PORT"},
	}
	for key, names := range legacyBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
