// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/authorization"
	"github.com/voicedesk/dashboard-service/internal/storage"
	"github.com/voicedesk/dashboard-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tenancy.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ResolveTenant(t *testing.T) {
	userID := "identity-123"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedOrg types.TenantKey
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetEarliestMembershipByUserID(gomock.Any(), userID).Return(
					&types.Membership{ID: "m-1", OrganisationID: "org-1", KratosIdentityID: userID},
					nil,
				)
			},
			expectedOrg: types.TenantKey("org-1"),
		},
		{
			name: "no membership",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetEarliestMembershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNoOrganisation,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetEarliestMembershipByUserID(gomock.Any(), userID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenancy.Service.ResolveTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			org, err := s.ResolveTenant(context.Background(), userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if org != tc.expectedOrg {
				t.Errorf("expected org %q, got %q", tc.expectedOrg, org)
			}
		})
	}
}

func TestService_IsMember(t *testing.T) {
	userID := "identity-123"
	org := types.TenantKey("org-1")
	dbErr := errors.New("db error")

	testCases := []struct {
		name           string
		setupMocks     func(*MockStorageInterface, *MockAuthzInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedMember bool
		expectedErr    error
	}{
		{
			name: "member via member relation",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().HasMember(gomock.Any(), org, userID).Return(true, nil)
				mockAuthz.EXPECT().CheckOrganisationAccess(gomock.Any(), org.String(), userID, authorization.MEMBER_RELATION).Return(true, nil)
			},
			expectedMember: true,
		},
		{
			name: "member via owner relation",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().HasMember(gomock.Any(), org, userID).Return(true, nil)
				mockAuthz.EXPECT().CheckOrganisationAccess(gomock.Any(), org.String(), userID, authorization.MEMBER_RELATION).Return(false, nil)
				mockAuthz.EXPECT().CheckOrganisationAccess(gomock.Any(), org.String(), userID, authorization.OWNER_RELATION).Return(true, nil)
			},
			expectedMember: true,
		},
		{
			name: "no membership row",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().HasMember(gomock.Any(), org, userID).Return(false, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().CrossTenantDenied(userID, org.String())
			},
			expectedMember: false,
		},
		{
			name: "relation store disagrees",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().HasMember(gomock.Any(), org, userID).Return(true, nil)
				mockAuthz.EXPECT().CheckOrganisationAccess(gomock.Any(), org.String(), userID, authorization.MEMBER_RELATION).Return(false, nil)
				mockAuthz.EXPECT().CheckOrganisationAccess(gomock.Any(), org.String(), userID, authorization.OWNER_RELATION).Return(false, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().CrossTenantDenied(userID, org.String())
			},
			expectedMember: false,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().HasMember(gomock.Any(), org, userID).Return(false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenancy.Service.IsMember").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockLogger, mockSecurity)

			member, err := s.IsMember(context.Background(), userID, org)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if member != tc.expectedMember {
				t.Errorf("expected member=%v, got %v", tc.expectedMember, member)
			}
		})
	}
}
