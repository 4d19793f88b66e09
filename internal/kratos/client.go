// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

// Session is the authenticated identity resolved from a request cookie.
type Session struct {
	IdentityID string
	Email      string
}

type ClientInterface interface {
	// ToSession resolves the Kratos session for the given Cookie header.
	// A missing or expired session is a normal outcome: it returns a nil
	// Session and no error. Any Set-Cookie headers issued by Kratos
	// (session refresh/rotation) are returned so the caller can propagate
	// them on its own response.
	ToSession(ctx context.Context, cookieHeader string) (*Session, []*http.Cookie, error)
}

type Client struct {
	client *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) ToSession(ctx context.Context, cookieHeader string) (*Session, []*http.Cookie, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.ToSession")
	defer span.End()

	session, resp, err := c.client.FrontendAPI.ToSession(ctx).Cookie(cookieHeader).Execute()

	var cookies []*http.Cookie
	if resp != nil {
		cookies = resp.Cookies()
	}

	if err != nil {
		// 401 means no valid session, which is not an error condition
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, cookies, nil
		}
		return nil, cookies, fmt.Errorf("failed to check session: %w", err)
	}

	if session == nil || session.Identity == nil {
		return nil, cookies, nil
	}

	s := &Session{IdentityID: session.Identity.Id}

	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			s.Email = email
		}
	}

	return s, cookies, nil
}
