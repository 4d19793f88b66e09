// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

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

	"github.com/voicedesk/dashboard-service/internal/payments"
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

func serveAs(api *API, org types.TenantKey, email string, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	api.RegisterEndpoints(mux)

	ctx := authentication.WithTenant(req.Context(), org)
	ctx = authentication.WithUserEmail(ctx, email)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func TestAPI_GetSubscription(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("reports status", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)
		mockService.EXPECT().GetSubscriptionStatus(gomock.Any(), org).Return(&SubscriptionStatus{
			Plan:   PlanStarter,
			Status: "active",
			Limits: LimitsForPlan(PlanStarter),
			Usage:  UsageInfo{Calls: 12, Intents: 3},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/billing/subscription", nil)
		rec := serveAs(api, org, "owner@example.com", req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body SubscriptionStatus
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Plan != PlanStarter || body.Usage.Calls != 12 {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("storage failure is opaque", func(t *testing.T) {
		api, mockService, mockLogger := newTestAPI(t)
		mockService.EXPECT().GetSubscriptionStatus(gomock.Any(), org).Return(nil, context.DeadlineExceeded)
		mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

		req := httptest.NewRequest(http.MethodGet, "/billing/subscription", nil)
		rec := serveAs(api, org, "owner@example.com", req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "deadline") {
			t.Error("response must not leak internal error detail")
		}
	})
}

func TestAPI_CreatePortalSession(t *testing.T) {
	org := types.TenantKey("org-1")
	email := "owner@example.com"

	t.Run("returns portal url", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)
		mockService.EXPECT().CreatePortalSession(gomock.Any(), org, email).Return("https://billing.example.com/p/1", nil)

		req := httptest.NewRequest(http.MethodPost, "/billing/portal", nil)
		rec := serveAs(api, org, email, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body PortalSession
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.URL != "https://billing.example.com/p/1" {
			t.Errorf("unexpected portal url %q", body.URL)
		}
	})

	t.Run("processor down is 503", func(t *testing.T) {
		api, mockService, _ := newTestAPI(t)
		mockService.EXPECT().CreatePortalSession(gomock.Any(), org, email).Return("", payments.ErrUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/billing/portal", nil)
		rec := serveAs(api, org, email, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "billing portal unavailable") {
			t.Errorf("unexpected body %q", rec.Body.String())
		}
	})
}
