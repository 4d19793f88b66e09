// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

type Intent struct {
	ID                 string    `json:"id"`
	IntentName         string    `json:"intent_name"`
	ExampleUserPhrases []string  `json:"example_user_phrases"`
	EnglishResponses   []string  `json:"english_responses"`
	RussianResponses   []string  `json:"russian_responses"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateIntentRequest struct {
	IntentName         string   `json:"intent_name" validate:"required,max=120"`
	ExampleUserPhrases []string `json:"example_user_phrases" validate:"required,min=1,dive,required"`
	EnglishResponses   []string `json:"english_responses" validate:"omitempty,dive,required"`
	RussianResponses   []string `json:"russian_responses" validate:"omitempty,dive,required"`
}

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/intents", a.list)
	mux.Post("/intents", a.create)
	mux.Delete("/intents/{id}", a.delete)
	mux.Post("/intents/reset", a.reset)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "intents.API.list")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	intents, err := a.service.List(ctx, org)
	if err != nil {
		a.logger.Errorf("failed to list intents: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, toResponseList(intents))
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "intents.API.create")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := a.service.Create(ctx, org, &types.Intent{
		IntentName:         req.IntentName,
		ExampleUserPhrases: req.ExampleUserPhrases,
		EnglishResponses:   req.EnglishResponses,
		RussianResponses:   req.RussianResponses,
	})
	if err != nil {
		if errors.Is(err, ErrLimitExceeded) {
			httptypes.WriteError(w, http.StatusForbidden, "intent limit reached for current plan")
			return
		}
		a.logger.Errorf("failed to create intent: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, toResponse(created))
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "intents.API.delete")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)
	id := chi.URLParam(r, "id")

	if err := a.service.Delete(ctx, org, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "intent not found")
			return
		}
		a.logger.Errorf("failed to delete intent: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) reset(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "intents.API.reset")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	intents, err := a.service.Reset(ctx, org)
	if err != nil {
		a.logger.Errorf("failed to reset intents: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, toResponseList(intents))
}

func toResponse(i *types.Intent) Intent {
	return Intent{
		ID:                 i.ID,
		IntentName:         i.IntentName,
		ExampleUserPhrases: i.ExampleUserPhrases,
		EnglishResponses:   i.EnglishResponses,
		RussianResponses:   i.RussianResponses,
		CreatedAt:          i.CreatedAt,
	}
}

func toResponseList(intents []*types.Intent) []Intent {
	out := make([]Intent, 0, len(intents))
	for _, i := range intents {
		out = append(out, toResponse(i))
	}
	return out
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		switch f.Tag() {
		case "required", "min":
			return fmt.Sprintf("field %s is required", f.Field())
		case "max":
			return fmt.Sprintf("field %s is too long", f.Field())
		}
		return fmt.Sprintf("field %s is invalid", f.Field())
	}
	return "invalid request"
}
