// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

func TestMiddleware_RequireOrganisation(t *testing.T) {
	userID := "identity-123"
	org := types.TenantKey("org-1")

	testCases := []struct {
		name           string
		userInContext  bool
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:          "tenant resolved",
			userInContext: true,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().ResolveTenant(gomock.Any(), userID).Return(org, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "no user in context",
			userInContext:  false,
			setupMocks:     func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "no organisation",
			userInContext: true,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().ResolveTenant(gomock.Any(), userID).Return(types.TenantKey(""), ErrNoOrganisation)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "resolution error",
			userInContext: true,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().ResolveTenant(gomock.Any(), userID).Return(types.TenantKey(""), errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenancy.Middleware.RequireOrganisation").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockService, mockLogger)

			mdw := NewMiddleware(mockService, mockTracer, mockLogger)

			nextCalled := false
			var tenantSeen types.TenantKey
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				tenantSeen, _ = authentication.GetTenant(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/intents", nil)
			if tc.userInContext {
				req = req.WithContext(authentication.WithUserID(req.Context(), userID))
			}
			rec := httptest.NewRecorder()

			mdw.RequireOrganisation()(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}

			if nextCalled != tc.expectNext {
				t.Errorf("expected next called=%v, got %v", tc.expectNext, nextCalled)
			}

			if tc.expectNext && tenantSeen != org {
				t.Errorf("expected tenant %q in context, got %q", org, tenantSeen)
			}

			if !tc.expectNext {
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
