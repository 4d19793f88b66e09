// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// TenantKey identifies the organisation a request operates on. It is
// resolved once per request from the caller's membership and threaded
// explicitly into every storage accessor; accessors never infer it.
type TenantKey string

func (k TenantKey) String() string {
	return string(k)
}

type Organisation struct {
	ID                  string    `db:"id"`
	Name                string    `db:"name"`
	SelectedAssistantID *string   `db:"selected_assistant_id"`
	CreatedAt           time.Time `db:"created_at"`
}

type Membership struct {
	ID               string    `db:"id"`
	OrganisationID   string    `db:"organisation_id"`
	KratosIdentityID string    `db:"kratos_identity_id"`
	Role             string    `db:"role"`
	CreatedAt        time.Time `db:"created_at"`
}

type Intent struct {
	ID                 string    `db:"id"`
	OrganisationID     string    `db:"organisation_id"`
	IntentName         string    `db:"intent_name"`
	ExampleUserPhrases []string  `db:"example_user_phrases"`
	EnglishResponses   []string  `db:"english_responses"`
	RussianResponses   []string  `db:"russian_responses"`
	CreatedAt          time.Time `db:"created_at"`
}

type Subscription struct {
	ID               string     `db:"id"`
	OrganisationID   string     `db:"organisation_id"`
	Plan             string     `db:"plan"`
	Status           string     `db:"status"`
	StripeCustomerID *string    `db:"stripe_customer_id"`
	CurrentPeriodEnd *time.Time `db:"current_period_end"`
	CreatedAt        time.Time  `db:"created_at"`
}

// Usage tracks metered consumption per organisation. IntentsCount is
// maintained here, on intent create/delete/reset. CallsCount is written
// out-of-band by the call-report ingestion alongside the subscription
// state; this service only reads it.
type Usage struct {
	OrganisationID string    `db:"organisation_id"`
	CallsCount     int64     `db:"calls_count"`
	IntentsCount   int64     `db:"intents_count"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type CalendarConnection struct {
	OrganisationID string     `db:"organisation_id"`
	AccessToken    string     `db:"access_token"`
	RefreshToken   string     `db:"refresh_token"`
	Expiry         *time.Time `db:"expiry"`
	CreatedAt      time.Time  `db:"created_at"`
}
