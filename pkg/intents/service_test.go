// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intents

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/storage"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/billing"
)

//go:generate mockgen -build_flags=--mod=mod -package intents -destination ./mock_intents.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package intents -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package intents -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package intents -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T, spanName string) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewService(mockStorage, mockTracer, mockMonitor, mockLogger), mockStorage
}

func TestService_Create(t *testing.T) {
	org := types.TenantKey("org-1")
	intent := &types.Intent{
		IntentName:         "Greeting",
		ExampleUserPhrases: []string{"hello"},
	}
	created := &types.Intent{ID: "intent-1", OrganisationID: "org-1", IntentName: "Greeting"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success under limit",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSubscription(gomock.Any(), org).Return(
					&types.Subscription{Plan: billing.PlanTrial}, nil)
				mockStorage.EXPECT().GetUsage(gomock.Any(), org).Return(
					&types.Usage{IntentsCount: 3}, nil)
				mockStorage.EXPECT().CreateIntent(gomock.Any(), org, intent).Return(created, nil)
				mockStorage.EXPECT().AdjustIntentsCount(gomock.Any(), org, int64(1)).Return(nil)
			},
		},
		{
			name: "trial limit reached",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSubscription(gomock.Any(), org).Return(
					&types.Subscription{Plan: billing.PlanTrial}, nil)
				mockStorage.EXPECT().GetUsage(gomock.Any(), org).Return(
					&types.Usage{IntentsCount: 10}, nil)
			},
			expectedErr: ErrLimitExceeded,
		},
		{
			name: "missing subscription falls back to trial limits",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSubscription(gomock.Any(), org).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().GetUsage(gomock.Any(), org).Return(
					&types.Usage{IntentsCount: 10}, nil)
			},
			expectedErr: ErrLimitExceeded,
		},
		{
			name: "pro plan has no limit",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSubscription(gomock.Any(), org).Return(
					&types.Subscription{Plan: billing.PlanPro}, nil)
				mockStorage.EXPECT().CreateIntent(gomock.Any(), org, intent).Return(created, nil)
				mockStorage.EXPECT().AdjustIntentsCount(gomock.Any(), org, int64(1)).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t, "intents.Service.Create")
			tc.setupMocks(mockStorage)

			got, err := s.Create(context.Background(), org, intent)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != created.ID {
				t.Errorf("expected intent %q, got %q", created.ID, got.ID)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	org := types.TenantKey("org-1")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteIntent(gomock.Any(), org, "intent-1").Return(nil)
				mockStorage.EXPECT().AdjustIntentsCount(gomock.Any(), org, int64(-1)).Return(nil)
			},
		},
		{
			name: "absent row maps to not found",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteIntent(gomock.Any(), org, "intent-1").Return(storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t, "intents.Service.Delete")
			tc.setupMocks(mockStorage)

			err := s.Delete(context.Background(), org, "intent-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Reset(t *testing.T) {
	org := types.TenantKey("org-1")
	dbErr := errors.New("db error")

	t.Run("success seeds starter set", func(t *testing.T) {
		s, mockStorage := newTestService(t, "intents.Service.Reset")

		mockStorage.EXPECT().DeleteAllIntents(gomock.Any(), org).Return(int64(4), nil)
		for _, seed := range starterIntents {
			mockStorage.EXPECT().CreateIntent(gomock.Any(), org, seed).Return(
				&types.Intent{ID: "new-" + seed.IntentName, OrganisationID: "org-1", IntentName: seed.IntentName}, nil)
		}
		mockStorage.EXPECT().SetIntentsCount(gomock.Any(), org, int64(len(starterIntents))).Return(nil)

		created, err := s.Reset(context.Background(), org)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created) != len(starterIntents) {
			t.Errorf("expected %d seeded intents, got %d", len(starterIntents), len(created))
		}
	})

	t.Run("seed failure aborts before counter update", func(t *testing.T) {
		s, mockStorage := newTestService(t, "intents.Service.Reset")

		mockStorage.EXPECT().DeleteAllIntents(gomock.Any(), org).Return(int64(4), nil)
		mockStorage.EXPECT().CreateIntent(gomock.Any(), org, starterIntents[0]).Return(nil, dbErr)

		if _, err := s.Reset(context.Background(), org); !errors.Is(err, dbErr) {
			t.Errorf("expected error %v, got %v", dbErr, err)
		}
	})
}
