package domain

import "strings"

// SummaryLength controls how long the generated summary should be.
type SummaryLength string

// Recognized summary lengths.
const (
	LengthShort    SummaryLength = "short"
	LengthMedium   SummaryLength = "medium"
	LengthDetailed SummaryLength = "detailed"
)

// SummaryTone controls the register of the generated summary.
type SummaryTone string

// Recognized summary tones.
const (
	ToneNeutral   SummaryTone = "neutral"
	ToneBullet    SummaryTone = "bullet"
	ToneTechnical SummaryTone = "technical"
)

// StyleOptions carries the caller-supplied stylistic preferences for a
// generation request. Unknown length or tone values never reject a request;
// they resolve to the defaults during prompt construction.
type StyleOptions struct {
	// Length selects the target summary length. Empty or unrecognized
	// values resolve to LengthMedium.
	Length SummaryLength `json:"length,omitempty"`

	// Tone selects the summary register. Empty or unrecognized values
	// resolve to ToneNeutral.
	Tone SummaryTone `json:"tone,omitempty"`

	// Language is a free-form target language name. Empty means "respond
	// in the input's language".
	Language string `json:"language,omitempty"`
}

// NormalizedLength returns the length with the default substituted for
// empty or unrecognized values. Matching is case-insensitive.
func (o StyleOptions) NormalizedLength() SummaryLength {
	switch SummaryLength(strings.ToLower(string(o.Length))) {
	case LengthShort:
		return LengthShort
	case LengthDetailed:
		return LengthDetailed
	default:
		return LengthMedium
	}
}

// NormalizedTone returns the tone with the default substituted for empty
// or unrecognized values. Matching is case-insensitive.
func (o StyleOptions) NormalizedTone() SummaryTone {
	switch SummaryTone(strings.ToLower(string(o.Tone))) {
	case ToneBullet:
		return ToneBullet
	case ToneTechnical:
		return ToneTechnical
	default:
		return ToneNeutral
	}
}
