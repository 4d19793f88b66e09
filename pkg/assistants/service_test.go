// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistants

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/internal/voice"
)

//go:generate mockgen -build_flags=--mod=mod -package assistants -destination ./mock_assistants.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package assistants -destination ./mock_voice.go -source=../../internal/voice/client.go
//go:generate mockgen -build_flags=--mod=mod -package assistants -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package assistants -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package assistants -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T, spanName string) (*Service, *MockStorageInterface, *MockClientInterface, *MockLoggerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockVoice := NewMockClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewService(mockStorage, mockVoice, mockTracer, mockMonitor, mockLogger), mockStorage, mockVoice, mockLogger
}

func TestService_GetCurrent(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("no assistant selected returns nil", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "assistants.Service.GetCurrent")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1", Name: "Org"}, nil)

		assistant, err := s.GetCurrent(context.Background(), org)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assistant != nil {
			t.Errorf("expected nil assistant, got %+v", assistant)
		}
	})

	t.Run("provider data passed through", func(t *testing.T) {
		s, mockStorage, mockVoice, _ := newTestService(t, "assistants.Service.GetCurrent")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1", SelectedAssistantID: strPtr("asst-1")}, nil)
		mockVoice.EXPECT().GetAssistant(gomock.Any(), "asst-1").Return(
			&voice.Assistant{ID: "asst-1", Name: "Receptionist"}, nil)

		assistant, err := s.GetCurrent(context.Background(), org)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assistant.Name != "Receptionist" {
			t.Errorf("expected provider name, got %q", assistant.Name)
		}
	})

	t.Run("provider unavailable falls back to default name", func(t *testing.T) {
		s, mockStorage, mockVoice, mockLogger := newTestService(t, "assistants.Service.GetCurrent")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1", SelectedAssistantID: strPtr("asst-1")}, nil)
		mockVoice.EXPECT().GetAssistant(gomock.Any(), "asst-1").Return(nil, voice.ErrUnavailable)
		mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())

		assistant, err := s.GetCurrent(context.Background(), org)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assistant.ID != "asst-1" || assistant.Name != FallbackAssistantName {
			t.Errorf("expected fallback assistant, got %+v", assistant)
		}
	})
}

func TestService_ListVoices(t *testing.T) {
	t.Run("provider unavailable degrades to empty list", func(t *testing.T) {
		s, _, mockVoice, _ := newTestService(t, "assistants.Service.ListVoices")
		mockVoice.EXPECT().ListVoices(gomock.Any()).Return(nil, voice.ErrUnavailable)

		voices, err := s.ListVoices(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if voices == nil || len(voices) != 0 {
			t.Errorf("expected empty list, got %v", voices)
		}
	})
}

func TestService_ListCalls(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("no assistant selected degrades to empty list", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "assistants.Service.ListCalls")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1"}, nil)

		calls, err := s.ListCalls(context.Background(), org)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls == nil || len(calls) != 0 {
			t.Errorf("expected empty list, got %v", calls)
		}
	})

	t.Run("provider unavailable degrades to empty list", func(t *testing.T) {
		s, mockStorage, mockVoice, _ := newTestService(t, "assistants.Service.ListCalls")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1", SelectedAssistantID: strPtr("asst-1")}, nil)
		mockVoice.EXPECT().ListCalls(gomock.Any(), "asst-1").Return(nil, voice.ErrUnavailable)

		calls, err := s.ListCalls(context.Background(), org)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(calls) != 0 {
			t.Errorf("expected empty list, got %v", calls)
		}
	})
}

func TestService_Patch(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("no assistant selected", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "assistants.Service.Patch")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1"}, nil)

		if _, err := s.Patch(context.Background(), org, voice.AssistantPatch{Name: strPtr("x")}); !errors.Is(err, ErrNoAssistant) {
			t.Errorf("expected ErrNoAssistant, got %v", err)
		}
	})

	t.Run("provider unavailable surfaces as unavailable", func(t *testing.T) {
		s, mockStorage, mockVoice, _ := newTestService(t, "assistants.Service.Patch")
		mockStorage.EXPECT().GetOrganisationByID(gomock.Any(), org).Return(
			&types.Organisation{ID: "org-1", SelectedAssistantID: strPtr("asst-1")}, nil)
		mockVoice.EXPECT().PatchAssistant(gomock.Any(), "asst-1", gomock.Any()).Return(nil, voice.ErrUnavailable)

		if _, err := s.Patch(context.Background(), org, voice.AssistantPatch{Name: strPtr("x")}); !errors.Is(err, voice.ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})
}

func TestService_Select(t *testing.T) {
	org := types.TenantKey("org-1")

	s, mockStorage, _, _ := newTestService(t, "assistants.Service.Select")
	mockStorage.EXPECT().SetSelectedAssistant(gomock.Any(), org, gomock.Any()).DoAndReturn(
		func(ctx context.Context, org types.TenantKey, id *string) error {
			if id == nil || *id != "asst-9" {
				t.Errorf("expected assistant id asst-9, got %v", id)
			}
			return nil
		},
	)

	if err := s.Select(context.Background(), org, "asst-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
