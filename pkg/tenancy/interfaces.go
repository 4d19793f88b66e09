// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
)

// StorageInterface is the subset of the storage layer the tenant
// resolver needs.
type StorageInterface interface {
	GetEarliestMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error)
	HasMember(ctx context.Context, org types.TenantKey, userID string) (bool, error)
}

// AuthzInterface is the subset of the authorizer the tenant resolver
// needs.
type AuthzInterface interface {
	CheckOrganisationAccess(ctx context.Context, orgID, userID, relation string) (bool, error)
}

type ServiceInterface interface {
	// ResolveTenant maps an authenticated identity to its active
	// organisation. Returns ErrNoOrganisation when the user belongs to
	// none; callers treat that as unauthenticated for org-scoped
	// resources.
	ResolveTenant(ctx context.Context, userID string) (types.TenantKey, error)
	// IsMember verifies that the user belongs to the organisation; the
	// membership table and the relation store must agree.
	IsMember(ctx context.Context, userID string, org types.TenantKey) (bool, error)
}
