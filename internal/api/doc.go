// Package api implements the HTTP layer of the service: the /analyze
// endpoint accepting JSON summarization and multipart image-analysis
// requests, the embedded index page, and the mapping of orchestrator
// errors to sanitized HTTP responses.
package api
