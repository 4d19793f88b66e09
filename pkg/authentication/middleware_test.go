// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/kratos"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestMiddleware_Gate(t *testing.T) {
	session := &kratos.Session{IdentityID: "identity-123", Email: "owner@example.com"}

	testCases := []struct {
		name             string
		path             string
		session          *kratos.Session
		expectedStatus   int
		expectedLocation string
		expectNext       bool
		expectAuthnLog   bool
	}{
		{
			name:           "unauthenticated public path passes",
			path:           "/login",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "unauthenticated root passes",
			path:           "/",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "unauthenticated webhook passes",
			path:           "/webhooks/registration",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:             "unauthenticated page redirects to login",
			path:             "/dashboard",
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: LoginPath,
			expectAuthnLog:   true,
		},
		{
			name:           "unauthenticated api gets 401 json",
			path:           "/api/v0/intents",
			expectedStatus: http.StatusUnauthorized,
			expectAuthnLog: true,
		},
		{
			name:             "authenticated login redirects to dashboard",
			path:             "/login",
			session:          session,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: DashboardPath,
		},
		{
			name:             "authenticated signup redirects to dashboard",
			path:             "/signup",
			session:          session,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: DashboardPath,
		},
		{
			name:           "authenticated api passes",
			path:           "/api/v0/intents",
			session:        session,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSessions := NewMockSessionResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Gate").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)

			refreshed := []*http.Cookie{{Name: "ory_session", Value: "rotated"}}
			mockSessions.EXPECT().ToSession(gomock.Any(), "cookie-header").Return(tc.session, refreshed, nil)

			if tc.expectAuthnLog {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthnFailure("anonymous")
			}

			mdw := NewMiddleware(mockSessions, mockTracer, mockMonitor, mockLogger)

			nextCalled := false
			var userSeen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userSeen, _ = GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Cookie", "cookie-header")
			rec := httptest.NewRecorder()

			mdw.Gate()(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if nextCalled != tc.expectNext {
				t.Errorf("expected next called=%v, got %v", tc.expectNext, nextCalled)
			}

			if tc.expectedLocation != "" {
				if got := rec.Header().Get("Location"); got != tc.expectedLocation {
					t.Errorf("expected redirect to %q, got %q", tc.expectedLocation, got)
				}
			}

			// Rotated session cookies are propagated on every response,
			// including denials and redirects.
			propagated := false
			for _, c := range rec.Result().Cookies() {
				if c.Name == "ory_session" && c.Value == "rotated" {
					propagated = true
				}
			}
			if !propagated {
				t.Error("expected refreshed session cookie on the response")
			}

			if tc.expectNext && tc.session != nil && userSeen != tc.session.IdentityID {
				t.Errorf("expected user %q in context, got %q", tc.session.IdentityID, userSeen)
			}
		})
	}
}

func TestMiddleware_GateSessionStoreDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := NewMockSessionResolverInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Gate").DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	// Session store unreachable: the caller is treated as unauthenticated.
	mockSessions.EXPECT().ToSession(gomock.Any(), gomock.Any()).Return(nil, nil, context.DeadlineExceeded)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthnFailure("anonymous")

	mdw := NewMiddleware(mockSessions, mockTracer, mockMonitor, mockLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/intents", nil)
	rec := httptest.NewRecorder()

	mdw.Gate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when the session store is down")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
