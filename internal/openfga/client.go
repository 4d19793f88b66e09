// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

type Config struct {
	ApiScheme string
	ApiHost   string
	StoreID   string
	ApiToken  string
	ModelID   string
	Debug     bool

	Tracer  tracing.TracingInterface
	Monitor monitoring.MonitorInterface
	Logger  logging.LoggerInterface
}

func NewConfig(apiScheme, apiHost, storeID, apiToken, modelID string, debug bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.ApiScheme = apiScheme
	c.ApiHost = apiHost
	c.StoreID = storeID
	c.ApiToken = apiToken
	c.ModelID = modelID
	c.Debug = debug

	c.Tracer = tracer
	c.Monitor = monitor
	c.Logger = logger

	return c
}

type Client struct {
	client *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg *Config) *Client {
	fga, err := client.NewSdkClient(&client.ClientConfiguration{
		ApiScheme:            cfg.ApiScheme,
		ApiHost:              cfg.ApiHost,
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.ModelID,
		Credentials: &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		},
	})
	if err != nil {
		cfg.Logger.Fatalf("failed to create OpenFGA client: %v", err)
	}

	return &Client{
		client:  fga,
		tracer:  cfg.Tracer,
		monitor: cfg.Monitor,
		logger:  cfg.Logger,
	}
}

func (c *Client) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	resp, err := c.client.Check(ctx).Body(client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}).Execute()
	if err != nil {
		return false, fmt.Errorf("failed to perform check: %w", err)
	}

	return resp.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.client.Write(ctx).Body(client.ClientWriteRequest{
		Writes: []client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	}).Execute()
	if err != nil {
		return fmt.Errorf("failed to write tuple: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	_, err := c.client.Write(ctx).Body(client.ClientWriteRequest{
		Deletes: []client.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		},
	}).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete tuple: %w", err)
	}

	return nil
}
