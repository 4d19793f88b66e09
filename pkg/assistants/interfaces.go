// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistants

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/internal/voice"
)

type StorageInterface interface {
	GetOrganisationByID(ctx context.Context, org types.TenantKey) (*types.Organisation, error)
	SetSelectedAssistant(ctx context.Context, org types.TenantKey, assistantID *string) error
}

type ServiceInterface interface {
	// GetCurrent returns the organisation's selected assistant, nil when
	// none is selected, or a name-only fallback when the provider is
	// unreachable.
	GetCurrent(ctx context.Context, org types.TenantKey) (*voice.Assistant, error)
	Select(ctx context.Context, org types.TenantKey, assistantID string) error
	Patch(ctx context.Context, org types.TenantKey, patch voice.AssistantPatch) (*voice.Assistant, error)
	// ListVoices degrades to an empty list when the provider is
	// unreachable.
	ListVoices(ctx context.Context) ([]voice.Voice, error)
	BindPhoneNumber(ctx context.Context, org types.TenantKey, phoneNumberID string) error
	// ListCalls degrades to an empty list when the provider is
	// unreachable or no assistant is selected.
	ListCalls(ctx context.Context, org types.TenantKey) ([]voice.CallRecord, error)
}
