// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intents

import (
	"context"
	"errors"
	"fmt"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/storage"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
	"github.com/voicedesk/dashboard-service/pkg/billing"
)

var (
	ErrNotFound      = errors.New("intent not found")
	ErrLimitExceeded = errors.New("intent limit for the current plan reached")
)

// starterIntents seed a fresh or reset organisation with a workable
// assistant configuration.
var starterIntents = []*types.Intent{
	{
		IntentName:         "Greeting",
		ExampleUserPhrases: []string{"hello", "hi", "good morning"},
		EnglishResponses:   []string{"Hello! How can I help you today?"},
		RussianResponses:   []string{"Здравствуйте! Чем могу помочь?"},
	},
	{
		IntentName:         "Working hours",
		ExampleUserPhrases: []string{"when are you open", "working hours", "opening hours"},
		EnglishResponses:   []string{"We are open Monday to Friday, 9am to 6pm."},
		RussianResponses:   []string{"Мы работаем с понедельника по пятницу, с 9 до 18."},
	},
	{
		IntentName:         "Goodbye",
		ExampleUserPhrases: []string{"bye", "goodbye", "that's all"},
		EnglishResponses:   []string{"Thank you for calling, goodbye!"},
		RussianResponses:   []string{"Спасибо за звонок, до свидания!"},
	},
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) List(ctx context.Context, org types.TenantKey) ([]*types.Intent, error) {
	ctx, span := s.tracer.Start(ctx, "intents.Service.List")
	defer span.End()

	return s.storage.ListIntents(ctx, org)
}

func (s *Service) Create(ctx context.Context, org types.TenantKey, intent *types.Intent) (*types.Intent, error) {
	ctx, span := s.tracer.Start(ctx, "intents.Service.Create")
	defer span.End()

	if err := s.checkIntentLimit(ctx, org); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateIntent(ctx, org, intent)
	if err != nil {
		return nil, fmt.Errorf("failed to create intent: %w", err)
	}

	if err := s.storage.AdjustIntentsCount(ctx, org, 1); err != nil {
		return nil, fmt.Errorf("failed to update usage counter: %w", err)
	}

	return created, nil
}

func (s *Service) Delete(ctx context.Context, org types.TenantKey, id string) error {
	ctx, span := s.tracer.Start(ctx, "intents.Service.Delete")
	defer span.End()

	if err := s.storage.DeleteIntent(ctx, org, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete intent: %w", err)
	}

	if err := s.storage.AdjustIntentsCount(ctx, org, -1); err != nil {
		return fmt.Errorf("failed to update usage counter: %w", err)
	}

	return nil
}

// Reset replaces the organisation's intents with the starter set. The
// request-scoped transaction makes the delete and inserts atomic: a
// failure part-way leaves the previous intents intact.
func (s *Service) Reset(ctx context.Context, org types.TenantKey) ([]*types.Intent, error) {
	ctx, span := s.tracer.Start(ctx, "intents.Service.Reset")
	defer span.End()

	if _, err := s.storage.DeleteAllIntents(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to clear intents: %w", err)
	}

	created := make([]*types.Intent, 0, len(starterIntents))
	for _, intent := range starterIntents {
		c, err := s.storage.CreateIntent(ctx, org, intent)
		if err != nil {
			return nil, fmt.Errorf("failed to seed intent %q: %w", intent.IntentName, err)
		}
		created = append(created, c)
	}

	if err := s.storage.SetIntentsCount(ctx, org, int64(len(created))); err != nil {
		return nil, fmt.Errorf("failed to update usage counter: %w", err)
	}

	return created, nil
}

func (s *Service) checkIntentLimit(ctx context.Context, org types.TenantKey) error {
	plan := billing.DefaultPlan
	sub, err := s.storage.GetSubscription(ctx, org)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub != nil {
		plan = sub.Plan
	}

	limits := billing.LimitsForPlan(plan)
	if limits.Intents < 0 {
		return nil
	}

	usage, err := s.storage.GetUsage(ctx, org)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Older organisations may predate usage tracking.
			return s.storage.EnsureUsage(ctx, org)
		}
		return fmt.Errorf("failed to get usage: %w", err)
	}

	if usage.IntentsCount >= limits.Intents {
		return ErrLimitExceeded
	}

	return nil
}
