// Package domain defines the core entities of the analysis pipeline:
// generation requests, their style options, and the normalized result
// produced by whichever provider tier answered. All entities are created
// per-request and never shared mutably across requests.
package domain
