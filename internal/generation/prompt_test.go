package generation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/gist-api/internal/domain"
	"github.com/phrazzld/gist-api/internal/generation"
)

func TestBuildSummaryPrompt_StyleMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		options    domain.StyleOptions
		wantStyle  string
		wantTone   string
	}{
		{
			name:      "defaults",
			options:   domain.StyleOptions{},
			wantStyle: "a tight single paragraph",
			wantTone:  "neutral, factual prose",
		},
		{
			name:      "short bullet",
			options:   domain.StyleOptions{Length: domain.LengthShort, Tone: domain.ToneBullet},
			wantStyle: "2-3 concise sentences",
			wantTone:  "concise bullet points",
		},
		{
			name:      "detailed technical",
			options:   domain.StyleOptions{Length: domain.LengthDetailed, Tone: domain.ToneTechnical},
			wantStyle: "a detailed yet concise multi-paragraph summary",
			wantTone:  "precise technical language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prompt := generation.BuildSummaryPrompt("Some content.", tt.options)
			assert.Contains(t, prompt, "as "+tt.wantStyle+" using "+tt.wantTone)
		})
	}
}

func TestBuildSummaryPrompt_UnknownOptionsMatchDefaults(t *testing.T) {
	t.Parallel()

	// Unrecognized values must behave identically to passing medium/neutral.
	unknown := generation.BuildSummaryPrompt("C", domain.StyleOptions{Length: "epic", Tone: "breathless"})
	defaults := generation.BuildSummaryPrompt("C", domain.StyleOptions{
		Length: domain.LengthMedium,
		Tone:   domain.ToneNeutral,
	})

	assert.Equal(t, defaults, unknown)
}

func TestBuildSummaryPrompt_LanguageDirective(t *testing.T) {
	t.Parallel()

	withLanguage := generation.BuildSummaryPrompt("C", domain.StyleOptions{Language: "French"})
	assert.Contains(t, withLanguage, " in French. ")

	withoutLanguage := generation.BuildSummaryPrompt("C", domain.StyleOptions{})
	assert.NotContains(t, withoutLanguage, " in French")
}

func TestBuildSummaryPrompt_PreambleAndContent(t *testing.T) {
	t.Parallel()

	prompt := generation.BuildSummaryPrompt("  Revenue rose to $4.2M.  ", domain.StyleOptions{})

	assert.True(t, strings.HasPrefix(prompt, "You are a careful assistant that preserves facts, figures, and names."))
	assert.Contains(t, prompt, "Highlight critical numbers.")
	assert.Contains(t, prompt, "If there is uncertainty, mention it briefly.")

	// The trimmed input follows the instruction block.
	require.True(t, strings.HasSuffix(prompt, "\n\nRevenue rose to $4.2M."))
}

func TestBuildSummaryPrompt_Deterministic(t *testing.T) {
	t.Parallel()

	options := domain.StyleOptions{Length: domain.LengthShort, Tone: domain.ToneBullet, Language: "French"}

	first := generation.BuildSummaryPrompt("C", options)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, generation.BuildSummaryPrompt("C", options))
	}
}

func TestBuildImagePrompt(t *testing.T) {
	t.Parallel()

	prompt := generation.BuildImagePrompt(domain.StyleOptions{})
	assert.Equal(t,
		"You are an assistant describing the provided image. Identify notable objects, text, and context succinctly.",
		prompt)

	// Length and tone are ignored for image prompts.
	styled := generation.BuildImagePrompt(domain.StyleOptions{
		Length: domain.LengthDetailed,
		Tone:   domain.ToneBullet,
	})
	assert.Equal(t, prompt, styled)

	localized := generation.BuildImagePrompt(domain.StyleOptions{Language: "Spanish"})
	assert.True(t, strings.HasSuffix(localized, " Respond in Spanish."))
}
