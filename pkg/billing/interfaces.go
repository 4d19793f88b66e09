// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
)

type StorageInterface interface {
	GetSubscription(ctx context.Context, org types.TenantKey) (*types.Subscription, error)
	CreateSubscription(ctx context.Context, org types.TenantKey, plan string) (*types.Subscription, error)
	SetStripeCustomerID(ctx context.Context, org types.TenantKey, customerID string) error
	GetUsage(ctx context.Context, org types.TenantKey) (*types.Usage, error)
}

type PaymentsInterface interface {
	EnsureCustomer(ctx context.Context, orgID, email string) (string, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

type ServiceInterface interface {
	// GetSubscriptionStatus reports the plan, its limits and current
	// usage; organisations without a subscription row are on the trial
	// plan.
	GetSubscriptionStatus(ctx context.Context, org types.TenantKey) (*SubscriptionStatus, error)
	// CreatePortalSession returns a billing portal URL for the
	// organisation, creating the processor-side customer if needed.
	CreatePortalSession(ctx context.Context, org types.TenantKey, email string) (string, error)
}
