// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

const (
	registrationApiKeyHeader = "X-Api-Key"
	messagingSecretHeader    = "X-Telegram-Bot-Api-Secret-Token"

	// messaging webhook rate limit, per source IP
	messagingRateLimit  = 30
	messagingRatePeriod = time.Minute
)

type RegistrationRequest struct {
	IdentityID string `json:"identity_id" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

type RegistrationResponse struct {
	OrganisationID string `json:"organisation_id"`
}

// MessagingUpdate is the bot update envelope. Only the shapes the
// dashboard reacts to are decoded; everything else is acknowledged and
// dropped.
type MessagingUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		MessageID int64 `json:"message_id"`
		Chat      struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
}

type ackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// API hosts the endpoints called by external services rather than
// browsers. They sit outside the session gate and authenticate with
// per-endpoint shared secrets.
type API struct {
	service ServiceInterface

	registrationApiKey string
	messagingSecret    string

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	registrationApiKey string,
	messagingSecret string,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:            service,
		registrationApiKey: registrationApiKey,
		messagingSecret:    messagingSecret,
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		tracer:             tracer,
		logger:             logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/registration", a.registration)
	mux.With(httprate.LimitByIP(messagingRateLimit, messagingRatePeriod)).
		Post("/webhooks/messaging", a.messaging)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	if !secretMatches(r.Header.Get(registrationApiKeyHeader), a.registrationApiKey) {
		a.logger.Security().AuthnFailure("registration-webhook")
		httptypes.WriteError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "identity_id and email are required")
		return
	}

	org, err := a.service.ProvisionUser(ctx, req.IdentityID, req.Email)
	if err != nil {
		a.logger.Errorf("failed to provision user %s: %v", req.IdentityID, err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, RegistrationResponse{OrganisationID: org.ID})
}

func (a *API) messaging(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "webhooks.API.messaging")
	defer span.End()

	if !secretMatches(r.Header.Get(messagingSecretHeader), a.messagingSecret) {
		a.logger.Security().AuthnFailure("messaging-webhook")
		httptypes.WriteError(w, http.StatusUnauthorized, "invalid secret token")
		return
	}

	var update MessagingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httptypes.WriteJSON(w, http.StatusInternalServerError, ackResponse{OK: false, Error: "malformed update"})
		return
	}

	if update.Message != nil {
		a.logger.Debugf("messaging update %d from chat %d", update.UpdateID, update.Message.Chat.ID)
	}

	// The bot platform retries on non-2xx; unrecognized shapes are
	// acknowledged so they are not redelivered forever.
	httptypes.WriteJSON(w, http.StatusOK, ackResponse{OK: true})
}

// secretMatches rejects requests when no secret is configured rather
// than accepting everything.
func secretMatches(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
