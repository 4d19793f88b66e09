// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
)

// StorageInterface is the tenant-scoped data access layer. Every accessor
// that touches org-owned rows takes the resolved types.TenantKey as a
// mandatory parameter; none of them infer it.
type StorageInterface interface {
	CreateOrganisation(ctx context.Context, name string) (*types.Organisation, error)
	GetOrganisationByID(ctx context.Context, org types.TenantKey) (*types.Organisation, error)
	SetSelectedAssistant(ctx context.Context, org types.TenantKey, assistantID *string) error

	AddMember(ctx context.Context, orgID, userID, role string) (string, error)
	GetEarliestMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error)
	HasMember(ctx context.Context, org types.TenantKey, userID string) (bool, error)

	ListIntents(ctx context.Context, org types.TenantKey) ([]*types.Intent, error)
	CreateIntent(ctx context.Context, org types.TenantKey, intent *types.Intent) (*types.Intent, error)
	DeleteIntent(ctx context.Context, org types.TenantKey, id string) error
	DeleteAllIntents(ctx context.Context, org types.TenantKey) (int64, error)

	GetSubscription(ctx context.Context, org types.TenantKey) (*types.Subscription, error)
	CreateSubscription(ctx context.Context, org types.TenantKey, plan string) (*types.Subscription, error)
	SetStripeCustomerID(ctx context.Context, org types.TenantKey, customerID string) error

	GetUsage(ctx context.Context, org types.TenantKey) (*types.Usage, error)
	EnsureUsage(ctx context.Context, org types.TenantKey) error
	AdjustIntentsCount(ctx context.Context, org types.TenantKey, delta int64) error
	SetIntentsCount(ctx context.Context, org types.TenantKey, count int64) error

	UpsertCalendarConnection(ctx context.Context, org types.TenantKey, conn *types.CalendarConnection) error
}
