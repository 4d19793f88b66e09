// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistants

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/internal/voice"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	return NewAPI(mockService, mockTracer, mockLogger), mockService
}

func serveWithTenant(api *API, org types.TenantKey, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	api.RegisterEndpoints(mux)

	req = req.WithContext(authentication.WithTenant(req.Context(), org))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_GetCurrent(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("null assistant when unselected", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().GetCurrent(gomock.Any(), org).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/assistants/current", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if string(body["assistant"]) != "null" {
			t.Errorf("expected assistant null, got %s", body["assistant"])
		}
	})

	t.Run("assistant returned", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().GetCurrent(gomock.Any(), org).Return(
			&voice.Assistant{ID: "asst-1", Name: "Receptionist"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/assistants/current", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body CurrentAssistantResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Assistant == nil || body.Assistant.ID != "asst-1" {
			t.Errorf("unexpected body: %+v", body)
		}
	})
}

func TestAPI_SelectAssistant(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("selected", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().Select(gomock.Any(), org, "asst-1").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/assistants/current", strings.NewReader(`{"assistant_id":"asst-1"}`))
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("missing assistant id", func(t *testing.T) {
		api, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPut, "/assistants/current", strings.NewReader(`{}`))
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestAPI_PatchAssistant(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("updated config returned in dashboard shape", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().Patch(gomock.Any(), org, gomock.Any()).Return(
			&voice.Assistant{ID: "asst-1", FirstMessage: "Hi, thanks for calling!", VoiceID: "voice-2"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/assistants/current",
			strings.NewReader(`{"first_message":"Hi, thanks for calling!","voice_id":"voice-2"}`))
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if string(body["first_message"]) != `"Hi, thanks for calling!"` {
			t.Errorf("expected first_message in response, got %s", rec.Body.String())
		}
		if string(body["voice_id"]) != `"voice-2"` {
			t.Errorf("expected voice_id in response, got %s", rec.Body.String())
		}
	})

	t.Run("no assistant selected is 404", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().Patch(gomock.Any(), org, gomock.Any()).Return(nil, ErrNoAssistant)

		req := httptest.NewRequest(http.MethodPatch, "/assistants/current", strings.NewReader(`{"name":"New name"}`))
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("provider down is 503 without upstream detail", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().Patch(gomock.Any(), org, gomock.Any()).Return(nil, voice.ErrUnavailable)

		req := httptest.NewRequest(http.MethodPatch, "/assistants/current", strings.NewReader(`{"name":"New name"}`))
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "vapi") {
			t.Error("response must not leak upstream detail")
		}
	})
}

func TestAPI_ListCalls(t *testing.T) {
	org := types.TenantKey("org-1")

	api, mockService := newTestAPI(t)
	mockService.EXPECT().ListCalls(gomock.Any(), org).Return([]voice.CallRecord{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	rec := serveWithTenant(api, org, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty array body, got %q", rec.Body.String())
	}
}
