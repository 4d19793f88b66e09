// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the environment configuration needed for the app to start.
// Upstream integrations (voice provider, Stripe, Google calendar) are
// optional: a missing credential degrades that feature instead of
// failing startup.
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins"`

	// AppBaseURL is the public URL of the dashboard, used for OAuth
	// redirect URIs and billing portal return links.
	AppBaseURL string `envconfig:"app_base_url" default:"http://localhost:8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	VoiceAPIURL string `envconfig:"voice_api_url" default:"https://api.vapi.ai"`
	VoiceAPIKey string `envconfig:"voice_api_key"`

	StripeAPIKey string `envconfig:"stripe_api_key"`

	GoogleClientID     string `envconfig:"google_client_id"`
	GoogleClientSecret string `envconfig:"google_client_secret"`

	// StateSigningKey signs OAuth state tokens; required only when the
	// calendar integration is configured.
	StateSigningKey string `envconfig:"state_signing_key"`

	MessagingWebhookSecret    string `envconfig:"messaging_webhook_secret"`
	RegistrationWebhookApiKey string `envconfig:"registration_webhook_api_key"`
}
