// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package voice

import (
	"time"
)

// The provider speaks camelCase JSON in both directions; every type here
// encodes and decodes with the upstream tags. The dashboard's own JSON
// shape is mapped at the handler boundary, not here.

// Assistant is the provider-hosted voice assistant configuration. The
// upstream payload carries many more fields; only the ones the dashboard
// consumes are decoded, all of them optional except the id.
type Assistant struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	FirstMessage string `json:"firstMessage,omitempty"`
	VoiceID      string `json:"voiceId,omitempty"`
}

// AssistantPatch carries the mutable assistant fields. Nil means "leave
// unchanged" and is omitted from the upstream request body.
type AssistantPatch struct {
	Name         *string `json:"name,omitempty"`
	FirstMessage *string `json:"firstMessage,omitempty"`
	VoiceID      *string `json:"voiceId,omitempty"`
}

type Voice struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// CallRecord is decoded defensively: upstream call payloads are dynamic
// and individual fields come and go between provider versions.
type CallRecord struct {
	ID              string     `json:"id"`
	AssistantID     string     `json:"assistantId,omitempty"`
	Status          string     `json:"status,omitempty"`
	EndedReason     string     `json:"endedReason,omitempty"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationSeconds *float64   `json:"durationSeconds,omitempty"`
	Transcript      string     `json:"transcript,omitempty"`
}
