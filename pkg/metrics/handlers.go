// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct{}

func NewAPI() *API {
	return &API{}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Handle("/api/v0/metrics", promhttp.Handler())
}
