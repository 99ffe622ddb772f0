package domain

import "errors"

// Common validation errors for generation requests and results.
var (
	// ErrEmptyContent is returned when a summarize request has no text
	// left after trimming whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyImage is returned when an image request carries no bytes.
	ErrEmptyImage = errors.New("image data cannot be empty")

	// ErrEmptyResultText is returned when a result would be constructed
	// from an empty completion.
	ErrEmptyResultText = errors.New("result text cannot be empty")

	// ErrInvalidSource is returned when a result is tagged with an
	// unknown provider source.
	ErrInvalidSource = errors.New("invalid provider source")
)
