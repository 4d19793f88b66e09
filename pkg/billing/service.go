// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/storage"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
)

type SubscriptionStatus struct {
	Plan             string     `json:"plan"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`
	Limits           Limits     `json:"limits"`
	Usage            UsageInfo  `json:"usage"`
}

type UsageInfo struct {
	Calls   int64 `json:"calls"`
	Intents int64 `json:"intents"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	payments PaymentsInterface

	returnURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	payments PaymentsInterface,
	returnURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		payments:  payments,
		returnURL: returnURL,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (s *Service) GetSubscriptionStatus(ctx context.Context, org types.TenantKey) (*SubscriptionStatus, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetSubscriptionStatus")
	defer span.End()

	status := &SubscriptionStatus{
		Plan:   DefaultPlan,
		Status: "active",
	}

	sub, err := s.storage.GetSubscription(ctx, org)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub != nil {
		status.Plan = sub.Plan
		status.Status = sub.Status
		status.CurrentPeriodEnd = sub.CurrentPeriodEnd
	}

	status.Limits = LimitsForPlan(status.Plan)

	usage, err := s.storage.GetUsage(ctx, org)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}
	if usage != nil {
		status.Usage = UsageInfo{Calls: usage.CallsCount, Intents: usage.IntentsCount}
	}

	return status, nil
}

func (s *Service) CreatePortalSession(ctx context.Context, org types.TenantKey, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreatePortalSession")
	defer span.End()

	customerID, err := s.ensureCustomer(ctx, org, email)
	if err != nil {
		return "", err
	}

	url, err := s.payments.CreatePortalSession(ctx, customerID, s.returnURL)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}

	return url, nil
}

func (s *Service) ensureCustomer(ctx context.Context, org types.TenantKey, email string) (string, error) {
	sub, err := s.storage.GetSubscription(ctx, org)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub != nil && sub.StripeCustomerID != nil && *sub.StripeCustomerID != "" {
		return *sub.StripeCustomerID, nil
	}

	// Older organisations may predate the subscriptions table; the row
	// must exist before the customer id can be stored on it.
	if sub == nil {
		if _, err := s.storage.CreateSubscription(ctx, org, DefaultPlan); err != nil {
			return "", fmt.Errorf("failed to create default subscription: %w", err)
		}
	}

	customerID, err := s.payments.EnsureCustomer(ctx, org.String(), email)
	if err != nil {
		return "", fmt.Errorf("failed to ensure billing customer: %w", err)
	}

	if err := s.storage.SetStripeCustomerID(ctx, org, customerID); err != nil {
		return "", fmt.Errorf("failed to persist billing customer id: %w", err)
	}

	return customerID, nil
}
