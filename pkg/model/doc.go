// Package model declares the agent onboarding domain: the Agent record, its
// onboarding status, document signing state, form payloads and the response
// envelopes exchanged with the external API layer.
//
// The types carry JSON tags matching the wire names used by the API so
// handlers can encode them directly.
package model
