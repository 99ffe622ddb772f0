package api

import (
	"github.com/phrazzld/gist-api/internal/domain"
)

// Common request/response structures

// OptionsPayload carries the caller's stylistic preferences. Unknown
// length/tone values are accepted here and defaulted downstream.
type OptionsPayload struct {
	Length   string `json:"length,omitempty"`
	Tone     string `json:"tone,omitempty"`
	Language string `json:"language,omitempty"`
}

// toDomain converts the payload to domain style options.
func (p OptionsPayload) toDomain() domain.StyleOptions {
	return domain.StyleOptions{
		Length:   domain.SummaryLength(p.Length),
		Tone:     domain.SummaryTone(p.Tone),
		Language: p.Language,
	}
}

// AnalyzeTextRequest defines the JSON payload for summarization requests.
type AnalyzeTextRequest struct {
	// Mode defaults to "summarize" when omitted; any other value is rejected.
	Mode    string         `json:"mode"`
	Text    string         `json:"text"`
	Options OptionsPayload `json:"options"`
}

// Meta describes which provider tier and model answered a request.
type Meta struct {
	Model string `json:"model"`
	Mode  string `json:"mode"`

	// Source is the provider tier tag, recorded for debugging only.
	Source string `json:"source,omitempty"`

	// ImageSize is "WxH" for image requests, "unknown" when undecodable.
	ImageSize string `json:"image_size,omitempty"`

	// RequestID correlates the response with server logs.
	RequestID string `json:"request_id,omitempty"`

	Options OptionsPayload `json:"options"`
}

// SummaryResponse defines the successful response for summarization.
type SummaryResponse struct {
	Summary string `json:"summary"`

	// TokensUsed is always null; token accounting is not implemented.
	TokensUsed *int `json:"tokens_used"`

	Meta Meta `json:"meta"`
}

// AnalysisResponse defines the successful response for image analysis.
// A sentinel analysis (vision unavailable) still uses this shape.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`

	// TokensUsed is always null; token accounting is not implemented.
	TokensUsed *int `json:"tokens_used"`

	Meta Meta `json:"meta"`
}
