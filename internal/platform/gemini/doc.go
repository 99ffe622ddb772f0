// Package gemini provides the managed-library implementation of the
// generation.Generator interface, accessing Gemini through the official
// SDK model handle rather than raw HTTP.
//
// The client resolves its model handle once at construction: it probes the
// preferred model and falls back to the secondary model if the preferred
// one is not served by the installed SDK version. If neither model can be
// resolved the client stays up but reports every generation attempt as
// unavailable without a network round trip, leaving the raw-network tiers
// to carry the traffic for the remainder of the process.
package gemini
