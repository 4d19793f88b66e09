// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

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
)

const (
	testApiKey          = "registration-key"
	testMessagingSecret = "messaging-secret"
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

	return NewAPI(mockService, testApiKey, testMessagingSecret, mockTracer, mockLogger), mockService, mockLogger
}

func serve(api *API, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	api.RegisterEndpoints(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Registration(t *testing.T) {
	t.Run("provisions user", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)
		mockService.EXPECT().ProvisionUser(gomock.Any(), "identity-1", "owner@example.com").Return(
			&types.Organisation{ID: "org-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/registration",
			strings.NewReader(`{"identity_id":"identity-1","email":"owner@example.com"}`))
		req.Header.Set(registrationApiKeyHeader, testApiKey)
		rec := serve(api, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body RegistrationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.OrganisationID != "org-1" {
			t.Errorf("expected organisation org-1, got %q", body.OrganisationID)
		}
	})

	t.Run("wrong api key", func(t *testing.T) {
		api, _, mockLogger := newTestAPI(t)
		mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().AuthnFailure("registration-webhook")

		req := httptest.NewRequest(http.MethodPost, "/webhooks/registration",
			strings.NewReader(`{"identity_id":"identity-1","email":"owner@example.com"}`))
		req.Header.Set(registrationApiKeyHeader, "wrong")
		rec := serve(api, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		api, _, mockLogger := newTestAPI(t)
		mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().AuthnFailure("registration-webhook")

		req := httptest.NewRequest(http.MethodPost, "/webhooks/registration",
			strings.NewReader(`{"identity_id":"identity-1","email":"owner@example.com"}`))
		rec := serve(api, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		api, _, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/registration",
			strings.NewReader(`{"identity_id":"identity-1","email":"not-an-email"}`))
		req.Header.Set(registrationApiKeyHeader, testApiKey)
		rec := serve(api, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		api, _, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(`{not json`))
		req.Header.Set(registrationApiKeyHeader, testApiKey)
		rec := serve(api, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("provisioning failure is opaque", func(t *testing.T) {
		api, mockService, mockLogger := newTestAPI(t)
		mockService.EXPECT().ProvisionUser(gomock.Any(), "identity-1", "owner@example.com").Return(
			nil, context.DeadlineExceeded)
		mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

		req := httptest.NewRequest(http.MethodPost, "/webhooks/registration",
			strings.NewReader(`{"identity_id":"identity-1","email":"owner@example.com"}`))
		req.Header.Set(registrationApiKeyHeader, testApiKey)
		rec := serve(api, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "deadline") {
			t.Error("response must not leak internal error detail")
		}
	})
}

func TestAPI_Messaging(t *testing.T) {
	t.Run("acknowledges update", func(t *testing.T) {
		api, _, mockLogger := newTestAPI(t)
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

		req := httptest.NewRequest(http.MethodPost, "/webhooks/messaging",
			strings.NewReader(`{"update_id":7,"message":{"message_id":1,"chat":{"id":42},"text":"hi"}}`))
		req.Header.Set(messagingSecretHeader, testMessagingSecret)
		rec := serve(api, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body ackResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if !body.OK {
			t.Errorf("expected ok ack, got %+v", body)
		}
	})

	t.Run("acknowledges update without message", func(t *testing.T) {
		api, _, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/messaging",
			strings.NewReader(`{"update_id":8}`))
		req.Header.Set(messagingSecretHeader, testMessagingSecret)
		rec := serve(api, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("wrong secret token", func(t *testing.T) {
		api, _, mockLogger := newTestAPI(t)
		mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().AuthnFailure("messaging-webhook")

		req := httptest.NewRequest(http.MethodPost, "/webhooks/messaging", strings.NewReader(`{"update_id":9}`))
		req.Header.Set(messagingSecretHeader, "wrong")
		rec := serve(api, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("malformed update", func(t *testing.T) {
		api, _, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/messaging", strings.NewReader(`{not json`))
		req.Header.Set(messagingSecretHeader, testMessagingSecret)
		rec := serve(api, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}

		var body ackResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.OK || body.Error == "" {
			t.Errorf("expected failed ack with error, got %+v", body)
		}
	})
}

func TestSecretMatches(t *testing.T) {
	testCases := []struct {
		name     string
		got      string
		want     string
		expected bool
	}{
		{"match", "secret", "secret", true},
		{"mismatch", "other", "secret", false},
		{"empty presented", "", "secret", false},
		{"unconfigured secret rejects everything", "secret", "", false},
		{"both empty still rejected", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if secretMatches(tc.got, tc.want) != tc.expected {
				t.Errorf("secretMatches(%q, %q): expected %v", tc.got, tc.want, tc.expected)
			}
		})
	}
}
