// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

// ErrUnavailable means the payment processor is not configured or not
// reachable; billing endpoints degrade instead of failing the request.
var ErrUnavailable = errors.New("payment processor unavailable")

type ClientInterface interface {
	// EnsureCustomer returns the processor-side customer id for the
	// organisation, creating one when none exists yet.
	EnsureCustomer(ctx context.Context, orgID, email string) (string, error)
	// CreatePortalSession returns a one-time billing portal URL.
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

type Client struct {
	api     *client.API
	enabled bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := &Client{
		enabled: apiKey != "",
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	if c.enabled {
		c.api = &client.API{}
		c.api.Init(apiKey, nil)
	}

	return c
}

func (c *Client) EnsureCustomer(ctx context.Context, orgID, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.EnsureCustomer")
	defer span.End()

	if !c.enabled {
		return "", ErrUnavailable
	}

	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}
	params.AddMetadata("organisation_id", orgID)

	customer, err := c.api.Customers.New(params)
	if err != nil {
		c.logger.Errorf("failed to create billing customer: %v", err)
		return "", fmt.Errorf("failed to create billing customer: %w", ErrUnavailable)
	}

	return customer.ID, nil
}

func (c *Client) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreatePortalSession")
	defer span.End()

	if !c.enabled {
		return "", ErrUnavailable
	}

	params := &stripe.BillingPortalSessionParams{
		Params:    stripe.Params{Context: ctx},
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}

	session, err := c.api.BillingPortalSessions.New(params)
	if err != nil {
		c.logger.Errorf("failed to create billing portal session: %v", err)
		return "", fmt.Errorf("failed to create billing portal session: %w", ErrUnavailable)
	}

	return session.URL, nil
}
