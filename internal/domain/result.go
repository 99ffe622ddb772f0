package domain

// Source tags a result with the provider tier that produced it. The tag is
// recorded for observability only and carries no behavioral effect.
type Source string

// Provider tiers, in the fixed priority order they are attempted.
const (
	// SourceManaged is the in-process Gemini SDK client.
	SourceManaged Source = "managed-library"

	// SourceRawPrimary is the direct HTTP call to the preferred model.
	SourceRawPrimary Source = "raw-network-primary"

	// SourceRawFallback is the direct HTTP call to the secondary model.
	SourceRawFallback Source = "raw-network-fallback"

	// SourceUnavailable marks a sentinel result substituted when no tier
	// could produce an image analysis.
	SourceUnavailable Source = "unavailable"
)

// AnalysisUnavailableText is the sentinel body returned to callers when
// image analysis cannot be produced. Image analysis failure is non-fatal,
// so this text ships inside a successful result.
const AnalysisUnavailableText = "(Vision model unavailable or failed. No analysis produced.)"

// GenerationResult is the uniform record wrapping a successful generation.
// It is immutable once constructed and owned by the caller.
type GenerationResult struct {
	// Text is the generated completion.
	Text string

	// Source identifies the provider tier that answered.
	Source Source

	// Model is the model name used by the answering tier.
	Model string

	// Mode is the request mode the result was produced for.
	Mode RequestMode

	// Options echoes the style options of the originating request.
	Options StyleOptions
}

// NewGenerationResult wraps a successful attempt into a GenerationResult.
// The text must be non-empty and the source must be a known provider tier.
func NewGenerationResult(
	text string,
	source Source,
	model string,
	mode RequestMode,
	options StyleOptions,
) (*GenerationResult, error) {
	if text == "" {
		return nil, ErrEmptyResultText
	}

	if !isValidSource(source) {
		return nil, ErrInvalidSource
	}

	return &GenerationResult{
		Text:    text,
		Source:  source,
		Model:   model,
		Mode:    mode,
		Options: options,
	}, nil
}

// NewUnavailableResult builds the sentinel result substituted when image
// analysis is exhausted. The model name records which model would have
// answered, matching what the caller was told at request time.
func NewUnavailableResult(model string, options StyleOptions) *GenerationResult {
	return &GenerationResult{
		Text:    AnalysisUnavailableText,
		Source:  SourceUnavailable,
		Model:   model,
		Mode:    ModeImageContext,
		Options: options,
	}
}

// isValidSource checks if the given source is a known provider tier.
func isValidSource(source Source) bool {
	switch source {
	case SourceManaged, SourceRawPrimary, SourceRawFallback, SourceUnavailable:
		return true
	default:
		return false
	}
}
