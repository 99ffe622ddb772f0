package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for reaching the Gemini service, both
// through the SDK client and through the raw generateContent endpoint.
type LLMConfig struct {
	// GeminiAPIKey authenticates both access paths. It may be empty: the
	// server still boots and every tier reports unavailable per request.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is the preferred model, tried first on every tier.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// FallbackModelName is the secondary model used when the preferred
	// model fails to initialize or answer.
	FallbackModelName string `mapstructure:"fallback_model_name" validate:"required"`

	// Endpoint is the base URL of the generateContent API used by the
	// raw-network tiers.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`

	// RequestTimeoutSeconds bounds each raw-network call. There is no
	// retry layer; a timeout advances the orchestrator to the next tier.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gte=1,lte=300"`
}

// RequestTimeout returns the raw-network call timeout as a duration.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
