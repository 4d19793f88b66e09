// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

const (
	MEMBER_RELATION = "member"
	OWNER_RELATION  = "owner"
)

func UserTuple(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func OrganisationTuple(orgID string) string {
	return fmt.Sprintf("organisation:%s", orgID)
}

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) CheckOrganisationAccess(ctx context.Context, orgID, userID, relation string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckOrganisationAccess")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userID), relation, OrganisationTuple(orgID))
}

func (a *Authorizer) AssignOrganisationOwner(ctx context.Context, orgID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrganisationOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), OWNER_RELATION, OrganisationTuple(orgID))
}

func (a *Authorizer) AssignOrganisationMember(ctx context.Context, orgID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrganisationMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), MEMBER_RELATION, OrganisationTuple(orgID))
}

func (a *Authorizer) RemoveOrganisationOwner(ctx context.Context, orgID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrganisationOwner")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), OWNER_RELATION, OrganisationTuple(orgID))
}

func (a *Authorizer) RemoveOrganisationMember(ctx context.Context, orgID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrganisationMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), MEMBER_RELATION, OrganisationTuple(orgID))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
