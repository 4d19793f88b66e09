// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/version"
)

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct{}

func NewAPI() *API {
	return &API{}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.status)
}

func (a *API) status(w http.ResponseWriter, _ *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, Status{
		Status:  "ok",
		Version: version.Version,
	})
}
