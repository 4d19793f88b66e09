// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

const (
	LoginPath     = "/login"
	SignupPath    = "/signup"
	DashboardPath = "/dashboard"
)

// publicPrefixes bypass authentication. Webhook paths are here because
// their callers are external services without end-user sessions; those
// handlers authenticate themselves with a shared secret.
var publicPrefixes = []string{
	LoginPath,
	SignupPath,
	"/demo",
	"/webhooks/",
	"/api/v0/status",
	"/api/v0/metrics",
}

// Middleware is the access gate: it runs once per inbound request,
// before any handler, resolving the session and applying the
// public-path/redirect policy.
type Middleware struct {
	sessions SessionResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(sessions SessionResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (m *Middleware) Gate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Gate")
			defer span.End()

			session, cookies, err := m.sessions.ToSession(ctx, r.Header.Get("Cookie"))
			if err != nil {
				// Session store unreachable: treat the caller as
				// unauthenticated rather than failing every request.
				m.logger.Errorf("session resolution failed: %v", err)
			}

			// Refreshed/rotated session cookies are propagated on every
			// response, whether or not access is granted.
			for _, c := range cookies {
				http.SetCookie(w, c)
			}

			path := r.URL.Path

			if session == nil {
				if isPublicPath(path) {
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				m.logger.Security().AuthnFailure("anonymous")
				if isAPIPath(path) {
					types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
					return
				}
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			if isAuthPage(path) {
				http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
				return
			}

			ctx = WithUserID(ctx, session.IdentityID)
			ctx = WithUserEmail(ctx, session.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAuthPage(path string) bool {
	return strings.HasPrefix(path, LoginPath) || strings.HasPrefix(path, SignupPath)
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
