package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/gist-api/internal/domain"
	"github.com/phrazzld/gist-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// The upstream AI service could not produce a result on any tier.
	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrEmptyImage):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrGenerationFailed):
		return "All summarization methods failed"

	case errors.Is(err, domain.ErrEmptyContent):
		return "No text provided"

	case errors.Is(err, domain.ErrEmptyImage):
		return "Image file missing"

	default:
		return "An unexpected error occurred"
	}
}
