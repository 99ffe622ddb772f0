// Package genlang provides the raw-network implementation of the
// generation.Generator interface: a direct HTTP POST to the Gemini
// generateContent endpoint for a fixed model name, used when the SDK
// client cannot answer. This path is text-only; image requests are
// reported as unsupported without a network call.
package genlang
