// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/billing"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockLoggerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.ProvisionUser").Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger), mockStorage, mockAuthz, mockLogger
}

func TestService_ProvisionUser(t *testing.T) {
	identityID := "identity-1"
	email := "owner@example.com"
	org := &types.Organisation{ID: "org-1", Name: "owner@example.com's Org"}
	key := types.TenantKey(org.ID)

	t.Run("provisions organisation, membership, subscription and usage", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockLogger := newTestService(t)
		mockStorage.EXPECT().CreateOrganisation(gomock.Any(), "owner@example.com's Org").Return(org, nil)
		mockStorage.EXPECT().AddMember(gomock.Any(), org.ID, identityID, "owner").Return("member-1", nil)
		mockAuthz.EXPECT().AssignOrganisationOwner(gomock.Any(), org.ID, identityID).Return(nil)
		mockStorage.EXPECT().CreateSubscription(gomock.Any(), key, billing.DefaultPlan).Return(
			&types.Subscription{Plan: billing.DefaultPlan}, nil)
		mockStorage.EXPECT().EnsureUsage(gomock.Any(), key).Return(nil)
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

		got, err := s.ProvisionUser(context.Background(), identityID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != org.ID {
			t.Errorf("expected organisation %q, got %q", org.ID, got.ID)
		}
	})

	t.Run("owner relation write failure is not fatal", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockLogger := newTestService(t)
		mockStorage.EXPECT().CreateOrganisation(gomock.Any(), gomock.Any()).Return(org, nil)
		mockStorage.EXPECT().AddMember(gomock.Any(), org.ID, identityID, "owner").Return("member-1", nil)
		mockAuthz.EXPECT().AssignOrganisationOwner(gomock.Any(), org.ID, identityID).Return(errors.New("fga down"))
		mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
		mockStorage.EXPECT().CreateSubscription(gomock.Any(), key, billing.DefaultPlan).Return(
			&types.Subscription{Plan: billing.DefaultPlan}, nil)
		mockStorage.EXPECT().EnsureUsage(gomock.Any(), key).Return(nil)
		mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

		if _, err := s.ProvisionUser(context.Background(), identityID, email); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("membership failure aborts provisioning", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)
		mockStorage.EXPECT().CreateOrganisation(gomock.Any(), gomock.Any()).Return(org, nil)
		mockStorage.EXPECT().AddMember(gomock.Any(), org.ID, identityID, "owner").Return("", errors.New("insert failed"))

		if _, err := s.ProvisionUser(context.Background(), identityID, email); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("organisation creation failure propagates", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t)
		mockStorage.EXPECT().CreateOrganisation(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))

		if _, err := s.ProvisionUser(context.Background(), identityID, email); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
