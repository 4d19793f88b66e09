// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistants

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/voicedesk/dashboard-service/internal/http/types"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/voice"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
)

// The response types below are the dashboard's own JSON shape; the
// provider's camelCase payloads never reach the client directly.

type AssistantResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	FirstMessage string `json:"first_message,omitempty"`
	VoiceID      string `json:"voice_id,omitempty"`
}

type CurrentAssistantResponse struct {
	Assistant *AssistantResponse `json:"assistant"`
}

type VoiceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
}

type CallResponse struct {
	ID              string     `json:"id"`
	AssistantID     string     `json:"assistant_id,omitempty"`
	Status          string     `json:"status,omitempty"`
	EndedReason     string     `json:"ended_reason,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds *float64   `json:"duration_seconds,omitempty"`
	Transcript      string     `json:"transcript,omitempty"`
}

func newAssistantResponse(a *voice.Assistant) *AssistantResponse {
	if a == nil {
		return nil
	}
	return &AssistantResponse{
		ID:           a.ID,
		Name:         a.Name,
		FirstMessage: a.FirstMessage,
		VoiceID:      a.VoiceID,
	}
}

func newVoiceResponses(voices []voice.Voice) []VoiceResponse {
	out := make([]VoiceResponse, 0, len(voices))
	for _, v := range voices {
		out = append(out, VoiceResponse{ID: v.ID, Name: v.Name, PreviewURL: v.PreviewURL})
	}
	return out
}

func newCallResponses(calls []voice.CallRecord) []CallResponse {
	out := make([]CallResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, CallResponse{
			ID:              c.ID,
			AssistantID:     c.AssistantID,
			Status:          c.Status,
			EndedReason:     c.EndedReason,
			StartedAt:       c.StartedAt,
			EndedAt:         c.EndedAt,
			DurationSeconds: c.DurationSeconds,
			Transcript:      c.Transcript,
		})
	}
	return out
}

type SelectAssistantRequest struct {
	AssistantID string `json:"assistant_id" validate:"required"`
}

type PatchAssistantRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=120"`
	FirstMessage *string `json:"first_message" validate:"omitempty,max=500"`
	VoiceID      *string `json:"voice_id"`
}

type BindPhoneNumberRequest struct {
	PhoneNumberID string `json:"phone_number_id" validate:"required"`
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
	mux.Get("/assistants/current", a.getCurrent)
	mux.Put("/assistants/current", a.selectAssistant)
	mux.Patch("/assistants/current", a.patchAssistant)
	mux.Get("/assistants/voices", a.listVoices)
	mux.Post("/assistants/current/phone-number", a.bindPhoneNumber)
	mux.Get("/calls", a.listCalls)
}

func (a *API) getCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assistants.API.getCurrent")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	assistant, err := a.service.GetCurrent(ctx, org)
	if err != nil {
		a.logger.Errorf("failed to get current assistant: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, CurrentAssistantResponse{Assistant: newAssistantResponse(assistant)})
}

func (a *API) selectAssistant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assistants.API.selectAssistant")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	var req SelectAssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "field assistant_id is required")
		return
	}

	if err := a.service.Select(ctx, org, req.AssistantID); err != nil {
		a.logger.Errorf("failed to select assistant: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) patchAssistant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assistants.API.patchAssistant")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	var req PatchAssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid assistant configuration")
		return
	}

	assistant, err := a.service.Patch(ctx, org, voice.AssistantPatch{
		Name:         req.Name,
		FirstMessage: req.FirstMessage,
		VoiceID:      req.VoiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNoAssistant):
			httptypes.WriteError(w, http.StatusNotFound, "no assistant selected")
		case errors.Is(err, voice.ErrUnavailable):
			httptypes.WriteError(w, http.StatusServiceUnavailable, "voice provider unavailable")
		default:
			a.logger.Errorf("failed to patch assistant: %v", err)
			httptypes.WriteInternalError(w)
		}
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newAssistantResponse(assistant))
}

func (a *API) listVoices(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assistants.API.listVoices")
	defer span.End()

	voices, err := a.service.ListVoices(ctx)
	if err != nil {
		a.logger.Errorf("failed to list voices: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newVoiceResponses(voices))
}

func (a *API) bindPhoneNumber(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assistants.API.bindPhoneNumber")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	var req BindPhoneNumberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "field phone_number_id is required")
		return
	}

	if err := a.service.BindPhoneNumber(ctx, org, req.PhoneNumberID); err != nil {
		switch {
		case errors.Is(err, ErrNoAssistant):
			httptypes.WriteError(w, http.StatusNotFound, "no assistant selected")
		case errors.Is(err, voice.ErrUnavailable):
			httptypes.WriteError(w, http.StatusServiceUnavailable, "voice provider unavailable")
		default:
			a.logger.Errorf("failed to bind phone number: %v", err)
			httptypes.WriteInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listCalls(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "assistants.API.listCalls")
	defer span.End()

	org, _ := authentication.GetTenant(ctx)

	calls, err := a.service.ListCalls(ctx, org)
	if err != nil {
		a.logger.Errorf("failed to list calls: %v", err)
		httptypes.WriteInternalError(w)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newCallResponses(calls))
}
