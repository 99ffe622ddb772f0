package generation

import (
	"fmt"
	"strings"

	"github.com/phrazzld/gist-api/internal/domain"
)

// lengthStyles maps a normalized summary length to its prompt clause.
var lengthStyles = map[domain.SummaryLength]string{
	domain.LengthShort:    "2-3 concise sentences",
	domain.LengthMedium:   "a tight single paragraph",
	domain.LengthDetailed: "a detailed yet concise multi-paragraph summary",
}

// toneStyles maps a normalized summary tone to its prompt clause.
var toneStyles = map[domain.SummaryTone]string{
	domain.ToneNeutral:   "neutral, factual prose",
	domain.ToneBullet:    "concise bullet points",
	domain.ToneTechnical: "precise technical language",
}

// BuildSummaryPrompt maps raw content plus style options to the finished
// instruction string sent to every provider tier. It is pure and
// deterministic; unrecognized options resolve to the medium/neutral
// defaults rather than erroring.
func BuildSummaryPrompt(content string, options domain.StyleOptions) string {
	style := lengthStyles[options.NormalizedLength()]
	tone := toneStyles[options.NormalizedTone()]

	var language string
	if options.Language != "" {
		language = fmt.Sprintf(" in %s", options.Language)
	}

	return fmt.Sprintf(
		"You are a careful assistant that preserves facts, figures, and names. "+
			"Summarize the following text as %s using %s%s. "+
			"Highlight critical numbers. If there is uncertainty, mention it briefly.\n\n%s",
		style, tone, language, strings.TrimSpace(content),
	)
}

// BuildImagePrompt returns the instruction string for image description
// requests. Length and tone are ignored for images; only the language
// directive is honored.
func BuildImagePrompt(options domain.StyleOptions) string {
	prompt := "You are an assistant describing the provided image. " +
		"Identify notable objects, text, and context succinctly."

	if options.Language != "" {
		prompt += fmt.Sprintf(" Respond in %s.", options.Language)
	}

	return prompt
}
