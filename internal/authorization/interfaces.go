// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
)

type AuthorizerInterface interface {
	CheckOrganisationAccess(ctx context.Context, orgID, userID, relation string) (bool, error)

	AssignOrganisationOwner(ctx context.Context, orgID, userID string) error
	AssignOrganisationMember(ctx context.Context, orgID, userID string) error
	RemoveOrganisationOwner(ctx context.Context, orgID, userID string) error
	RemoveOrganisationMember(ctx context.Context, orgID, userID string) error
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
}
