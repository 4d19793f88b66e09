// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/payments"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

type PortalSession struct {
	URL string `json:"url"`
}

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/billing/subscription", a.getSubscription)
	mux.Post("/billing/portal", a.createPortalSession)
}

func (a *API) getSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.getSubscription")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	status, err := a.service.GetSubscriptionStatus(ctx, org)
	if err != nil {
		a.logger.Errorf("failed to get subscription status: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, status)
}

func (a *API) createPortalSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.createPortalSession")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)
	email, _ := authentication.GetUserEmail(ctx)

	url, err := a.service.CreatePortalSession(ctx, org, email)
	if err != nil {
		if errors.Is(err, payments.ErrUnavailable) {
			httptypes.WriteError(w, http.StatusServiceUnavailable, "billing portal unavailable")
			return
		}
		a.logger.Errorf("failed to create portal session: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, PortalSession{URL: url})
}
