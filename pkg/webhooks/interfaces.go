// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
)

type StorageInterface interface {
	CreateOrganisation(ctx context.Context, name string) (*types.Organisation, error)
	AddMember(ctx context.Context, orgID, userID, role string) (string, error)
	CreateSubscription(ctx context.Context, org types.TenantKey, plan string) (*types.Subscription, error)
	EnsureUsage(ctx context.Context, org types.TenantKey) error
}

type AuthzInterface interface {
	AssignOrganisationOwner(ctx context.Context, orgID, userID string) error
}

type ServiceInterface interface {
	// ProvisionUser sets up the personal organisation for a freshly
	// registered identity: organisation, owner membership, relation
	// tuple, trial subscription and a zeroed usage row.
	ProvisionUser(ctx context.Context, identityID, email string) (*types.Organisation, error)
}
