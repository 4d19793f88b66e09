// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/voicedesk/dashboard-service/internal/db"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/pkg/assistants"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
	"github.com/voicedesk/dashboard-service/pkg/billing"
	"github.com/voicedesk/dashboard-service/pkg/calendar"
	"github.com/voicedesk/dashboard-service/pkg/intents"
	"github.com/voicedesk/dashboard-service/pkg/metrics"
	"github.com/voicedesk/dashboard-service/pkg/organisations"
	"github.com/voicedesk/dashboard-service/pkg/status"
	"github.com/voicedesk/dashboard-service/pkg/tenancy"
	"github.com/voicedesk/dashboard-service/pkg/webhooks"
)

// Config carries everything the router mounts. All fields are required.
type Config struct {
	DB db.DBClientInterface

	Gate    *authentication.Middleware
	Tenancy *tenancy.Middleware

	Organisations *organisations.API
	Intents       *intents.API
	Assistants    *assistants.API
	Billing       *billing.API
	Calendar      *calendar.API
	Webhooks      *webhooks.API
	Status        *status.API
	Metrics       *metrics.API

	AllowedOrigins []string

	Tracing *tracing.Middleware
	Monitor *monitoring.Middleware
	Logger  logging.LoggerInterface
}

// NewRouter assembles the HTTP surface. Order matters: the gate sees
// every request before any handler, and the transaction middleware wraps
// only the mutating org-scoped and webhook routes.
func NewRouter(cfg Config) http.Handler {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(cfg.Monitor.ResponseTime())

	if len(cfg.AllowedOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	mux.Use(cfg.Gate.Gate())

	// Unauthenticated surface. Webhooks carry their own shared-secret
	// checks and run inside a transaction so provisioning is atomic.
	cfg.Status.RegisterEndpoints(mux)
	cfg.Metrics.RegisterEndpoints(mux)
	mux.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(cfg.DB, cfg.Logger))
		cfg.Webhooks.RegisterEndpoints(r)
	})

	// Org-scoped API: tenant resolved once, mutations transactional.
	mux.Route("/api/v0", func(r chi.Router) {
		r.Use(db.TransactionMiddleware(cfg.DB, cfg.Logger))
		r.Use(cfg.Tenancy.RequireOrganisation())

		cfg.Organisations.RegisterEndpoints(r)
		cfg.Intents.RegisterEndpoints(r)
		cfg.Assistants.RegisterEndpoints(r)
		cfg.Billing.RegisterEndpoints(r)
		cfg.Calendar.RegisterEndpoints(r)
	})

	return cfg.Tracing.OpenTelemetry(mux)
}
