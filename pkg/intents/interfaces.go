// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intents

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
)

// StorageInterface is the subset of the storage layer the intents
// service needs.
type StorageInterface interface {
	ListIntents(ctx context.Context, org types.TenantKey) ([]*types.Intent, error)
	CreateIntent(ctx context.Context, org types.TenantKey, intent *types.Intent) (*types.Intent, error)
	DeleteIntent(ctx context.Context, org types.TenantKey, id string) error
	DeleteAllIntents(ctx context.Context, org types.TenantKey) (int64, error)

	GetSubscription(ctx context.Context, org types.TenantKey) (*types.Subscription, error)
	GetUsage(ctx context.Context, org types.TenantKey) (*types.Usage, error)
	EnsureUsage(ctx context.Context, org types.TenantKey) error
	AdjustIntentsCount(ctx context.Context, org types.TenantKey, delta int64) error
	SetIntentsCount(ctx context.Context, org types.TenantKey, count int64) error
}

type ServiceInterface interface {
	List(ctx context.Context, org types.TenantKey) ([]*types.Intent, error)
	Create(ctx context.Context, org types.TenantKey, intent *types.Intent) (*types.Intent, error)
	Delete(ctx context.Context, org types.TenantKey, id string) error
	// Reset replaces the organisation's intents with the starter set.
	Reset(ctx context.Context, org types.TenantKey) ([]*types.Intent, error)
}
