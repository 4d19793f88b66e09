// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	calprovider "github.com/voicedesk/dashboard-service/internal/calendar"
	httptypes "github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

type StorageInterface interface {
	UpsertCalendarConnection(ctx context.Context, org types.TenantKey, conn *types.CalendarConnection) error
}

// API wires the OAuth connect flow: /connect redirects to the provider
// consent page with a signed state token, /callback exchanges the code
// and stores the tokens for the organisation the state was issued for.
type API struct {
	provider calprovider.ProviderInterface
	storage  StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(
	provider calprovider.ProviderInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		provider: provider,
		storage:  storage,
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/calendar/connect", a.connect)
	mux.Get("/calendar/callback", a.callback)
}

func (a *API) connect(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.connect")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	if !a.provider.Enabled() {
		httptypes.WriteError(w, http.StatusServiceUnavailable, "calendar integration is not configured")
		return
	}

	url, err := a.provider.AuthURL(org)
	if err != nil {
		a.logger.Errorf("failed to build consent url: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "calendar.API.callback")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		httptypes.WriteError(w, http.StatusBadRequest, "missing code or state")
		return
	}

	stateOrg, err := a.provider.ValidateState(state)
	if err != nil {
		if errors.Is(err, calprovider.ErrNotConfigured) {
			httptypes.WriteError(w, http.StatusServiceUnavailable, "calendar integration is not configured")
			return
		}
		httptypes.WriteError(w, http.StatusBadRequest, "invalid state")
		return
	}

	// The state must have been issued for the caller's own organisation;
	// a mismatch means a replayed or forged callback.
	if stateOrg != org {
		a.logger.Security().CrossTenantDenied(stateOrg.String(), org.String())
		httptypes.WriteError(w, http.StatusBadRequest, "invalid state")
		return
	}

	token, err := a.provider.Exchange(ctx, code)
	if err != nil {
		a.logger.Errorf("failed to exchange authorization code: %v", err)
		httptypes.WriteError(w, http.StatusBadRequest, "authorization code exchange failed")
		return
	}

	conn := &types.CalendarConnection{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		conn.Expiry = &expiry
	}

	if err := a.storage.UpsertCalendarConnection(ctx, org, conn); err != nil {
		a.logger.Errorf("failed to store calendar connection: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	http.Redirect(w, r, authentication.DashboardPath, http.StatusSeeOther)
}
