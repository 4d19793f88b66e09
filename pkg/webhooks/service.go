// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/billing"
)

const ownerRole = "owner"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ProvisionUser runs inside the request transaction, so a failure at any
// step rolls the whole provisioning back; the relation tuple write is
// the exception and is retried on next login via the membership check.
func (s *Service) ProvisionUser(ctx context.Context, identityID, email string) (*types.Organisation, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.ProvisionUser")
	defer span.End()

	org, err := s.storage.CreateOrganisation(ctx, fmt.Sprintf("%s's Org", email))
	if err != nil {
		return nil, fmt.Errorf("failed to create organisation: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, org.ID, identityID, ownerRole); err != nil {
		return nil, fmt.Errorf("failed to add owner membership: %w", err)
	}

	if err := s.authz.AssignOrganisationOwner(ctx, org.ID, identityID); err != nil {
		// Not fatal: the membership row is authoritative and the tuple
		// can be written again out-of-band.
		s.logger.Errorf("failed to assign owner relation for org %s: %v", org.ID, err)
	}

	key := types.TenantKey(org.ID)

	if _, err := s.storage.CreateSubscription(ctx, key, billing.DefaultPlan); err != nil {
		return nil, fmt.Errorf("failed to create trial subscription: %w", err)
	}

	if err := s.storage.EnsureUsage(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to initialise usage tracking: %w", err)
	}

	s.logger.Infof("provisioned organisation %s for identity %s", org.ID, identityID)

	return org, nil
}
