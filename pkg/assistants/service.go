// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistants

import (
	"context"
	"errors"
	"fmt"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/internal/voice"
)

var (
	// ErrNoAssistant means the organisation has not selected an
	// assistant yet.
	ErrNoAssistant = errors.New("no assistant selected")
)

// FallbackAssistantName is shown when the provider cannot be reached so
// the dashboard renders something rather than an error page.
const FallbackAssistantName = "Your assistant"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	voice   voice.ClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	voiceClient voice.ClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		voice:   voiceClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GetCurrent(ctx context.Context, org types.TenantKey) (*voice.Assistant, error) {
	ctx, span := s.tracer.Start(ctx, "assistants.Service.GetCurrent")
	defer span.End()

	id, err := s.selectedAssistantID(ctx, org)
	if err != nil {
		if errors.Is(err, ErrNoAssistant) {
			return nil, nil
		}
		return nil, err
	}

	a, err := s.voice.GetAssistant(ctx, id)
	if err != nil {
		if errors.Is(err, voice.ErrUnavailable) {
			s.logger.Warnf("voice provider unavailable, serving fallback assistant for org %s", org)
			return &voice.Assistant{ID: id, Name: FallbackAssistantName}, nil
		}
		return nil, fmt.Errorf("failed to get assistant: %w", err)
	}

	return a, nil
}

func (s *Service) Select(ctx context.Context, org types.TenantKey, assistantID string) error {
	ctx, span := s.tracer.Start(ctx, "assistants.Service.Select")
	defer span.End()

	if err := s.storage.SetSelectedAssistant(ctx, org, &assistantID); err != nil {
		return fmt.Errorf("failed to select assistant: %w", err)
	}

	return nil
}

func (s *Service) Patch(ctx context.Context, org types.TenantKey, patch voice.AssistantPatch) (*voice.Assistant, error) {
	ctx, span := s.tracer.Start(ctx, "assistants.Service.Patch")
	defer span.End()

	id, err := s.selectedAssistantID(ctx, org)
	if err != nil {
		return nil, err
	}

	a, err := s.voice.PatchAssistant(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to patch assistant: %w", err)
	}

	return a, nil
}

func (s *Service) ListVoices(ctx context.Context) ([]voice.Voice, error) {
	ctx, span := s.tracer.Start(ctx, "assistants.Service.ListVoices")
	defer span.End()

	voices, err := s.voice.ListVoices(ctx)
	if err != nil {
		if errors.Is(err, voice.ErrUnavailable) {
			return []voice.Voice{}, nil
		}
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}

	return voices, nil
}

func (s *Service) BindPhoneNumber(ctx context.Context, org types.TenantKey, phoneNumberID string) error {
	ctx, span := s.tracer.Start(ctx, "assistants.Service.BindPhoneNumber")
	defer span.End()

	id, err := s.selectedAssistantID(ctx, org)
	if err != nil {
		return err
	}

	if err := s.voice.BindPhoneNumber(ctx, phoneNumberID, id); err != nil {
		return fmt.Errorf("failed to bind phone number: %w", err)
	}

	return nil
}

func (s *Service) ListCalls(ctx context.Context, org types.TenantKey) ([]voice.CallRecord, error) {
	ctx, span := s.tracer.Start(ctx, "assistants.Service.ListCalls")
	defer span.End()

	id, err := s.selectedAssistantID(ctx, org)
	if err != nil {
		if errors.Is(err, ErrNoAssistant) {
			return []voice.CallRecord{}, nil
		}
		return nil, err
	}

	calls, err := s.voice.ListCalls(ctx, id)
	if err != nil {
		if errors.Is(err, voice.ErrUnavailable) {
			return []voice.CallRecord{}, nil
		}
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}

	return calls, nil
}

func (s *Service) selectedAssistantID(ctx context.Context, org types.TenantKey) (string, error) {
	o, err := s.storage.GetOrganisationByID(ctx, org)
	if err != nil {
		return "", fmt.Errorf("failed to get organisation: %w", err)
	}
	if o.SelectedAssistantID == nil || *o.SelectedAssistantID == "" {
		return "", ErrNoAssistant
	}
	return *o.SelectedAssistantID, nil
}
