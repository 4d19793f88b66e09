// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/voicedesk/dashboard-service/internal/types"
)

const stateLifetime = 10 * time.Minute

var (
	// ErrNotConfigured means the OAuth client credentials are absent; the
	// calendar feature is degraded, not the whole service.
	ErrNotConfigured = errors.New("calendar integration is not configured")
	ErrInvalidState  = errors.New("invalid oauth state")
)

type ProviderInterface interface {
	Enabled() bool
	// AuthURL returns the provider consent URL with a signed state token
	// carrying the tenant id.
	AuthURL(org types.TenantKey) (string, error)
	// ValidateState verifies the state token signature and expiry and
	// returns the tenant id it was issued for.
	ValidateState(state string) (types.TenantKey, error)
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

type Provider struct {
	config     *oauth2.Config
	signingKey []byte
}

type stateClaims struct {
	OrganisationID string `json:"org"`
	jwt.RegisteredClaims
}

func NewProvider(clientID, clientSecret, redirectURL, signingKey string) *Provider {
	p := &Provider{signingKey: []byte(signingKey)}

	if clientID == "" || clientSecret == "" || signingKey == "" {
		return p
	}

	p.config = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/calendar.events",
			"https://www.googleapis.com/auth/calendar.readonly",
		},
		Endpoint: google.Endpoint,
	}

	return p
}

func (p *Provider) Enabled() bool {
	return p.config != nil
}

func (p *Provider) AuthURL(org types.TenantKey) (string, error) {
	if !p.Enabled() {
		return "", ErrNotConfigured
	}

	now := time.Now()
	claims := stateClaims{
		OrganisationID: org.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(stateLifetime)),
		},
	}

	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign state token: %w", err)
	}

	// AccessTypeOffline so the provider issues a refresh token on first consent
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (p *Provider) ValidateState(state string) (types.TenantKey, error) {
	if !p.Enabled() {
		return "", ErrNotConfigured
	}

	var claims stateClaims
	token, err := jwt.ParseWithClaims(state, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.signingKey, nil
	})
	if err != nil || !token.Valid || claims.OrganisationID == "" {
		return "", ErrInvalidState
	}

	return types.TenantKey(claims.OrganisationID), nil
}

func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !p.Enabled() {
		return nil, ErrNotConfigured
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}
