// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/voicedesk/dashboard-service/internal/db"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganisation(ctx context.Context, name string) (*types.Organisation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateOrganisation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organisation ID: %w", err)
	}

	var org types.Organisation
	err = s.db.Statement(ctx).
		Insert("organisations").
		Columns("id", "name").
		Values(id.String(), name).
		Suffix("RETURNING id, name, selected_assistant_id, created_at").
		QueryRowContext(ctx).
		Scan(&org.ID, &org.Name, &org.SelectedAssistantID, &org.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert organisation: %w", err)
	}

	return &org, nil
}

func (s *Storage) GetOrganisationByID(ctx context.Context, org types.TenantKey) (*types.Organisation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetOrganisationByID")
	defer span.End()

	var o types.Organisation
	err := s.db.Statement(ctx).
		Select("id", "name", "selected_assistant_id", "created_at").
		From("organisations").
		Where(sq.Eq{"id": org.String()}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.SelectedAssistantID, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}

	return &o, nil
}

func (s *Storage) SetSelectedAssistant(ctx context.Context, org types.TenantKey, assistantID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SetSelectedAssistant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organisations").
		Set("selected_assistant_id", assistantID).
		Where(sq.Eq{"id": org.String()}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set selected assistant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) AddMember(ctx context.Context, orgID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "organisation_id", "kratos_identity_id", "role").
		Values(id.String(), orgID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

// GetEarliestMembershipByUserID returns the caller's active organisation
// membership: earliest created_at wins, membership id breaks ties so the
// result is reproducible.
func (s *Storage) GetEarliestMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetEarliestMembershipByUserID")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "organisation_id", "kratos_identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"kratos_identity_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrganisationID, &m.KratosIdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) HasMember(ctx context.Context, org types.TenantKey, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.HasMember")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{
			"organisation_id":    org.String(),
			"kratos_identity_id": userID,
		}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return count > 0, nil
}

// ListIntents returns the organisation's intents in creation order, oldest
// first: phrase precedence in the voice assistant follows definition order.
func (s *Storage) ListIntents(ctx context.Context, org types.TenantKey) ([]*types.Intent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListIntents")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "organisation_id", "intent_name", "example_user_phrases", "english_responses", "russian_responses", "created_at").
		From("intents").
		Where(sq.Eq{"organisation_id": org.String()}).
		OrderBy("created_at ASC", "id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list intents: %w", err)
	}
	defer rows.Close()

	var intents []*types.Intent
	for rows.Next() {
		var i types.Intent
		var phrases, english, russian []byte
		if err := rows.Scan(&i.ID, &i.OrganisationID, &i.IntentName, &phrases, &english, &russian, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan intent: %w", err)
		}
		if err := unmarshalIntentLists(&i, phrases, english, russian); err != nil {
			return nil, err
		}
		intents = append(intents, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return intents, nil
}

// CreateIntent inserts an intent stamped with the resolved tenant key.
// Any organisation id present on the input struct is ignored.
func (s *Storage) CreateIntent(ctx context.Context, org types.TenantKey, intent *types.Intent) (*types.Intent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateIntent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate intent ID: %w", err)
	}

	phrases, english, russian, err := marshalIntentLists(intent)
	if err != nil {
		return nil, err
	}

	var created types.Intent
	var outPhrases, outEnglish, outRussian []byte
	err = s.db.Statement(ctx).
		Insert("intents").
		Columns("id", "organisation_id", "intent_name", "example_user_phrases", "english_responses", "russian_responses").
		Values(id.String(), org.String(), intent.IntentName, phrases, english, russian).
		Suffix("RETURNING id, organisation_id, intent_name, example_user_phrases, english_responses, russian_responses, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrganisationID, &created.IntentName, &outPhrases, &outEnglish, &outRussian, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert intent: %w", err)
	}

	if err := unmarshalIntentLists(&created, outPhrases, outEnglish, outRussian); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Storage) DeleteIntent(ctx context.Context, org types.TenantKey, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteIntent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("intents").
		Where(sq.Eq{
			"id":              id,
			"organisation_id": org.String(),
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete intent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Either the intent does not exist or it belongs to another
		// organisation; both look identical to the caller.
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteAllIntents(ctx context.Context, org types.TenantKey) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteAllIntents")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("intents").
		Where(sq.Eq{"organisation_id": org.String()}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete intents: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) GetSubscription(ctx context.Context, org types.TenantKey) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetSubscription")
	defer span.End()

	var sub types.Subscription
	err := s.db.Statement(ctx).
		Select("id", "organisation_id", "plan", "status", "stripe_customer_id", "current_period_end", "created_at").
		From("subscriptions").
		Where(sq.Eq{"organisation_id": org.String()}).
		QueryRowContext(ctx).
		Scan(&sub.ID, &sub.OrganisationID, &sub.Plan, &sub.Status, &sub.StripeCustomerID, &sub.CurrentPeriodEnd, &sub.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

func (s *Storage) CreateSubscription(ctx context.Context, org types.TenantKey, plan string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateSubscription")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	var sub types.Subscription
	err = s.db.Statement(ctx).
		Insert("subscriptions").
		Columns("id", "organisation_id", "plan", "status").
		Values(id.String(), org.String(), plan, "active").
		Suffix("RETURNING id, organisation_id, plan, status, stripe_customer_id, current_period_end, created_at").
		QueryRowContext(ctx).
		Scan(&sub.ID, &sub.OrganisationID, &sub.Plan, &sub.Status, &sub.StripeCustomerID, &sub.CurrentPeriodEnd, &sub.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	return &sub, nil
}

func (s *Storage) SetStripeCustomerID(ctx context.Context, org types.TenantKey, customerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SetStripeCustomerID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("subscriptions").
		Set("stripe_customer_id", customerID).
		Where(sq.Eq{"organisation_id": org.String()}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set stripe customer id: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetUsage(ctx context.Context, org types.TenantKey) (*types.Usage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUsage")
	defer span.End()

	var u types.Usage
	err := s.db.Statement(ctx).
		Select("organisation_id", "calls_count", "intents_count", "updated_at").
		From("usage_tracking").
		Where(sq.Eq{"organisation_id": org.String()}).
		QueryRowContext(ctx).
		Scan(&u.OrganisationID, &u.CallsCount, &u.IntentsCount, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}

	return &u, nil
}

func (s *Storage) EnsureUsage(ctx context.Context, org types.TenantKey) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.EnsureUsage")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("usage_tracking").
		Columns("organisation_id", "calls_count", "intents_count").
		Values(org.String(), 0, 0).
		Suffix("ON CONFLICT (organisation_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to ensure usage row: %w", err)
	}

	return nil
}

func (s *Storage) AdjustIntentsCount(ctx context.Context, org types.TenantKey, delta int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AdjustIntentsCount")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("usage_tracking").
		Set("intents_count", sq.Expr("GREATEST(intents_count + ?, 0)", delta)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organisation_id": org.String()}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to adjust intents count: %w", err)
	}

	return nil
}

func (s *Storage) SetIntentsCount(ctx context.Context, org types.TenantKey, count int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SetIntentsCount")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("usage_tracking").
		Set("intents_count", count).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organisation_id": org.String()}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set intents count: %w", err)
	}

	return nil
}

func (s *Storage) UpsertCalendarConnection(ctx context.Context, org types.TenantKey, conn *types.CalendarConnection) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpsertCalendarConnection")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("calendar_connections").
		Columns("organisation_id", "access_token", "refresh_token", "expiry").
		Values(org.String(), conn.AccessToken, conn.RefreshToken, conn.Expiry).
		Suffix("ON CONFLICT (organisation_id) DO UPDATE SET access_token = EXCLUDED.access_token, refresh_token = EXCLUDED.refresh_token, expiry = EXCLUDED.expiry").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to upsert calendar connection: %w", err)
	}

	return nil
}

func marshalIntentLists(i *types.Intent) ([]byte, []byte, []byte, error) {
	phrases, err := json.Marshal(emptyIfNil(i.ExampleUserPhrases))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal phrases: %w", err)
	}
	english, err := json.Marshal(emptyIfNil(i.EnglishResponses))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal english responses: %w", err)
	}
	russian, err := json.Marshal(emptyIfNil(i.RussianResponses))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal russian responses: %w", err)
	}
	return phrases, english, russian, nil
}

func unmarshalIntentLists(i *types.Intent, phrases, english, russian []byte) error {
	if err := json.Unmarshal(phrases, &i.ExampleUserPhrases); err != nil {
		return fmt.Errorf("failed to unmarshal phrases: %w", err)
	}
	if err := json.Unmarshal(english, &i.EnglishResponses); err != nil {
		return fmt.Errorf("failed to unmarshal english responses: %w", err)
	}
	if err := json.Unmarshal(russian, &i.RussianResponses); err != nil {
		return fmt.Errorf("failed to unmarshal russian responses: %w", err)
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
