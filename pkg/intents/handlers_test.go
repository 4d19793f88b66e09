// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intents

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
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *MockLoggerInterface) {
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

	return NewAPI(mockService, mockTracer, mockLogger), mockService, mockLogger
}

func serveWithTenant(api *API, org types.TenantKey, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	api.RegisterEndpoints(mux)

	req = req.WithContext(authentication.WithTenant(req.Context(), org))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Create(t *testing.T) {
	org := types.TenantKey("org-1")

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"intent_name":"Greeting","example_user_phrases":["hello"]}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Create(gomock.Any(), org, gomock.Any()).Return(
					&types.Intent{ID: "intent-1", OrganisationID: "org-1", IntentName: "Greeting"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing intent name",
			body:           `{"example_user_phrases":["hello"]}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no example phrases",
			body:           `{"intent_name":"Greeting","example_user_phrases":[]}`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"intent_name":`,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "plan limit reached",
			body: `{"intent_name":"Greeting","example_user_phrases":["hello"]}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Create(gomock.Any(), org, gomock.Any()).Return(nil, ErrLimitExceeded)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api, mockService, _ := newTestAPI(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/intents", strings.NewReader(tc.body))
			rec := serveWithTenant(api, org, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if tc.expectedStatus >= 400 {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body["error"] == "" {
					t.Error("expected error field in response body")
				}
			}
		})
	}
}

func TestAPI_Delete(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("deleted", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)
		mockService.EXPECT().Delete(gomock.Any(), org, "intent-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/intents/intent-1", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("absent row is 404", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)
		mockService.EXPECT().Delete(gomock.Any(), org, "intent-other").Return(ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/intents/intent-other", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestAPI_List(t *testing.T) {
	org := types.TenantKey("org-1")

	api, mockService, _ := newTestAPI(t)
	mockService.EXPECT().List(gomock.Any(), org).Return([]*types.Intent{
		{ID: "intent-1", OrganisationID: "org-1", IntentName: "Greeting", ExampleUserPhrases: []string{"hello"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/intents", nil)
	rec := serveWithTenant(api, org, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var intents []Intent
	if err := json.Unmarshal(rec.Body.Bytes(), &intents); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(intents) != 1 || intents[0].IntentName != "Greeting" {
		t.Errorf("unexpected response: %+v", intents)
	}
}

func TestAPI_Reset(t *testing.T) {
	org := types.TenantKey("org-1")

	api, mockService, _ := newTestAPI(t)
	mockService.EXPECT().Reset(gomock.Any(), org).Return([]*types.Intent{
		{ID: "intent-1", OrganisationID: "org-1", IntentName: "Greeting"},
		{ID: "intent-2", OrganisationID: "org-1", IntentName: "Goodbye"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/intents/reset", nil)
	rec := serveWithTenant(api, org, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var intents []Intent
	if err := json.Unmarshal(rec.Body.Bytes(), &intents); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(intents) != 2 {
		t.Errorf("expected 2 intents, got %d", len(intents))
	}
}
