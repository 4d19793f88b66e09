// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/voicedesk/dashboard-service/internal/authorization"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/storage"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
)

var ErrNoOrganisation = errors.New("user belongs to no organisation")

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

// ResolveTenant selects the membership with the earliest creation time
// (membership id as tie-break) as the user's active organisation.
func (s *Service) ResolveTenant(ctx context.Context, userID string) (types.TenantKey, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ResolveTenant")
	defer span.End()

	m, err := s.storage.GetEarliestMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNoOrganisation
		}
		return "", fmt.Errorf("failed to resolve tenant: %w", err)
	}

	return types.TenantKey(m.OrganisationID), nil
}

func (s *Service) IsMember(ctx context.Context, userID string, org types.TenantKey) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.IsMember")
	defer span.End()

	ok, err := s.storage.HasMember(ctx, org, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	if !ok {
		s.logger.Security().CrossTenantDenied(userID, org.String())
		return false, nil
	}

	// The relation store must agree with the membership table. With
	// authorization disabled the noop client always allows.
	member, err := s.authz.CheckOrganisationAccess(ctx, org.String(), userID, authorization.MEMBER_RELATION)
	if err != nil {
		return false, fmt.Errorf("failed to check member relation: %w", err)
	}
	if member {
		return true, nil
	}

	owner, err := s.authz.CheckOrganisationAccess(ctx, org.String(), userID, authorization.OWNER_RELATION)
	if err != nil {
		return false, fmt.Errorf("failed to check owner relation: %w", err)
	}
	if !owner {
		s.logger.Security().CrossTenantDenied(userID, org.String())
	}

	return owner, nil
}
