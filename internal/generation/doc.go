// Package generation provides the interface and prompt construction for
// interacting with external AI services. It abstracts the details of LLM
// access (Gemini SDK or direct HTTP), allowing the orchestrator to try
// provider tiers in order without coupling to a specific transport.
package generation
