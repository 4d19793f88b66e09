// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	calprovider "github.com/voicedesk/dashboard-service/internal/calendar"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_calendar.go -source=../../internal/calendar/oauth.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_storage.go -source=./handlers.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestAPI(t *testing.T) (*API, *MockProviderInterface, *MockStorageInterface, *MockLoggerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	return NewAPI(mockProvider, mockStorage, mockTracer, mockLogger), mockProvider, mockStorage, mockLogger
}

func serveWithTenant(api *API, org types.TenantKey, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewRouter()
	api.RegisterEndpoints(mux)

	req = req.WithContext(authentication.WithTenant(req.Context(), org))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Connect(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("redirects to consent page", func(t *testing.T) {
		api, mockProvider, _, _ := newTestAPI(t)
		mockProvider.EXPECT().Enabled().Return(true)
		mockProvider.EXPECT().AuthURL(org).Return("https://accounts.google.com/o/oauth2/auth?state=tok", nil)

		req := httptest.NewRequest(http.MethodGet, "/calendar/connect", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("expected status 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "https://accounts.google.com/") {
			t.Errorf("unexpected redirect location %q", loc)
		}
	})

	t.Run("integration not configured", func(t *testing.T) {
		api, mockProvider, _, _ := newTestAPI(t)
		mockProvider.EXPECT().Enabled().Return(false)

		req := httptest.NewRequest(http.MethodGet, "/calendar/connect", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}
	})
}

func TestAPI_Callback(t *testing.T) {
	org := types.TenantKey("org-1")

	t.Run("stores tokens and redirects to dashboard", func(t *testing.T) {
		api, mockProvider, mockStorage, _ := newTestAPI(t)
		expiry := time.Now().Add(time.Hour)
		mockProvider.EXPECT().ValidateState("tok").Return(org, nil)
		mockProvider.EXPECT().Exchange(gomock.Any(), "code-1").Return(&oauth2.Token{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       expiry,
		}, nil)
		mockStorage.EXPECT().UpsertCalendarConnection(gomock.Any(), org, gomock.Any()).DoAndReturn(
			func(ctx context.Context, org types.TenantKey, conn *types.CalendarConnection) error {
				if conn.AccessToken != "access" || conn.RefreshToken != "refresh" {
					t.Errorf("unexpected connection %+v", conn)
				}
				if conn.Expiry == nil || !conn.Expiry.Equal(expiry) {
					t.Errorf("expected expiry %v, got %v", expiry, conn.Expiry)
				}
				return nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/calendar/callback?code=code-1&state=tok", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected status 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != authentication.DashboardPath {
			t.Errorf("expected redirect to dashboard, got %q", loc)
		}
	})

	t.Run("missing code or state", func(t *testing.T) {
		api, _, _, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/calendar/callback?code=code-1", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("invalid state token", func(t *testing.T) {
		api, mockProvider, _, _ := newTestAPI(t)
		mockProvider.EXPECT().ValidateState("bad").Return(types.TenantKey(""), calprovider.ErrInvalidState)

		req := httptest.NewRequest(http.MethodGet, "/calendar/callback?code=code-1&state=bad", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("state issued for another organisation", func(t *testing.T) {
		api, mockProvider, _, mockLogger := newTestAPI(t)
		mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
		mockProvider.EXPECT().ValidateState("tok").Return(types.TenantKey("org-2"), nil)
		mockLogger.EXPECT().Security().Return(mockSecurity)
		mockSecurity.EXPECT().CrossTenantDenied("org-2", "org-1")

		req := httptest.NewRequest(http.MethodGet, "/calendar/callback?code=code-1&state=tok", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		api, mockProvider, _, _ := newTestAPI(t)
		mockProvider.EXPECT().ValidateState("tok").Return(types.TenantKey(""), calprovider.ErrNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/calendar/callback?code=code-1&state=tok", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected status 503, got %d", rec.Code)
		}
	})

	t.Run("code exchange failure", func(t *testing.T) {
		api, mockProvider, _, mockLogger := newTestAPI(t)
		mockProvider.EXPECT().ValidateState("tok").Return(org, nil)
		mockProvider.EXPECT().Exchange(gomock.Any(), "expired").Return(nil, context.DeadlineExceeded)
		mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

		req := httptest.NewRequest(http.MethodGet, "/calendar/callback?code=expired&state=tok", nil)
		rec := serveWithTenant(api, org, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}
