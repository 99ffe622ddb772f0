// Package redact strips credentials from strings before they reach logs
// or error responses. Provider errors routinely embed the request URL,
// and the Gemini API accepts the key as a query parameter, so raw error
// text can leak the key verbatim.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

var (
	// key=... style query parameters and api-key header echoes
	queryKeyRegex = regexp.MustCompile(`(?i)([?&](?:key|api[_-]?key|token)=)[A-Za-z0-9_\-.~]+`)

	// bare credential assignments in error text, e.g. api_key: AIza...
	assignedKeyRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Google API keys have a recognizable prefix
	googleKeyRegex = regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{20,}\b`)

	// host:port fragments from transport errors
	hostPortRegex = regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`)
)

// String redacts credentials and host details from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := queryKeyRegex.ReplaceAllString(input, "${1}"+RedactedKeyPlaceholder)
	result = assignedKeyRegex.ReplaceAllString(result, "${1}${2}"+RedactedKeyPlaceholder)
	result = googleKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	result = hostPortRegex.ReplaceAllString(result, RedactedHostPlaceholder)

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
