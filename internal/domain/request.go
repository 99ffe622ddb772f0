package domain

import "strings"

// RequestMode identifies the kind of content-generation request.
type RequestMode string

// Supported request modes.
const (
	ModeSummarize    RequestMode = "summarize"
	ModeImageContext RequestMode = "image_context"
)

// DefaultImageMIMEType is assumed when an uploaded image carries no
// content type.
const DefaultImageMIMEType = "image/png"

// SummarizeRequest is a validated request to summarize a piece of text.
type SummarizeRequest struct {
	Content string
	Options StyleOptions
}

// NewSummarizeRequest creates a SummarizeRequest from raw input text.
// The text is trimmed; requests that are empty after trimming are
// rejected with ErrEmptyContent before reaching the orchestrator.
func NewSummarizeRequest(content string, options StyleOptions) (*SummarizeRequest, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &SummarizeRequest{
		Content: content,
		Options: options,
	}, nil
}

// ImageRequest is a validated request to describe an uploaded image.
type ImageRequest struct {
	Data     []byte
	MIMEType string
	Options  StyleOptions
}

// NewImageRequest creates an ImageRequest from raw image bytes. Empty
// payloads are rejected with ErrEmptyImage; a missing MIME type falls
// back to DefaultImageMIMEType.
func NewImageRequest(data []byte, mimeType string, options StyleOptions) (*ImageRequest, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	if mimeType == "" {
		mimeType = DefaultImageMIMEType
	}

	return &ImageRequest{
		Data:     data,
		MIMEType: mimeType,
		Options:  options,
	}, nil
}
