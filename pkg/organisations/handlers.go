// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organisations

import (
	"context"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	domain "github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

type StorageInterface interface {
	GetOrganisationByID(ctx context.Context, org domain.TenantKey) (*domain.Organisation, error)
}

type Organisation struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	SelectedAssistantID *string   `json:"selected_assistant_id"`
	CreatedAt           time.Time `json:"created_at"`
}

type API struct {
	storage StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(storage StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		storage: storage,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/orgs/current", a.getCurrent)
}

func (a *API) getCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organisations.API.getCurrent")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	o, err := a.storage.GetOrganisationByID(ctx, org)
	if err != nil {
		a.logger.Errorf("failed to get organisation: %v", err)
		types.WriteInternalError(w)
		return
	}

	types.WriteJSON(w, http.StatusOK, Organisation{
		ID:                  o.ID,
		Name:                o.Name,
		SelectedAssistantID: o.SelectedAssistantID,
		CreatedAt:           o.CreatedAt,
	})
}
