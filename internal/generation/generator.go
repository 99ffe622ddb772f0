package generation

import (
	"context"
)

// InlineImage is an image payload attached to a generation request.
type InlineImage struct {
	// Data is the raw image bytes.
	Data []byte

	// MIMEType is the image content type, e.g. "image/png".
	MIMEType string
}

// Generator defines the capability shared by all provider variants:
// turn a prompt (optionally with an image) into text. This interface is
// the boundary between the fallback orchestrator and the concrete
// Gemini access paths.
//
// A non-nil error means this attempt produced nothing and the caller
// should try the next configured tier; the error value preserves the
// underlying cause for logging. Implementations never return an empty
// string together with a nil error.
type Generator interface {
	// Generate produces text for the given prompt. The image is optional;
	// implementations that cannot send images return ErrImageUnsupported.
	Generate(ctx context.Context, prompt string, image *InlineImage) (string, error)
}
