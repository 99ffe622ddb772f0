package generation

import "errors"

// Common errors returned by the generation package and its implementations.
var (
	// ErrGenerationFailed is returned when every configured provider tier
	// failed to produce text for a request.
	ErrGenerationFailed = errors.New("all generation attempts failed")

	// ErrProviderUnavailable is returned by a provider whose client could
	// not be initialized; the condition is permanent for the process
	// lifetime and no network call is made.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrImageUnsupported is returned by providers that cannot send image
	// bytes over their transport.
	ErrImageUnsupported = errors.New("provider does not support image input")

	// ErrInvalidResponse is returned when a provider response cannot be
	// parsed or contains no text.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when a provider configuration is invalid.
	ErrInvalidConfig = errors.New("invalid provider configuration")
)
