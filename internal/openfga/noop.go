// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

// NoopClient allows every check and swallows every write. Used when
// authorization is disabled; membership rows in storage remain the
// source of truth.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (c *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}
