// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"
	"net/http"

	"github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

// Middleware resolves the caller's tenant exactly once per request and
// attaches it to the context; org-scoped handlers read it from there and
// never infer it themselves.
type Middleware struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewMiddleware(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (m *Middleware) RequireOrganisation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "tenancy.Middleware.RequireOrganisation")
			defer span.End()

			userID, ok := authentication.GetUserID(ctx)
			if !ok || userID == "" {
				types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			org, err := m.service.ResolveTenant(ctx, userID)
			if err != nil {
				// A user without an organisation is indistinguishable from
				// an unauthenticated one for org-scoped resources.
				if errors.Is(err, ErrNoOrganisation) {
					types.WriteError(w, http.StatusUnauthorized, "no organisation")
					return
				}
				m.logger.Errorf("tenant resolution failed: %v", err)
				types.WriteInternalError(w)
				return
			}

			ctx = authentication.WithTenant(ctx, org)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
