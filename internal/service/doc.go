// Package service contains the fallback orchestration at the center of
// the application: given a validated generation request, it builds the
// prompt, tries the configured provider tiers strictly in order, and
// normalizes the first success into a domain.GenerationResult.
package service
