// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/voicedesk/dashboard-service/internal/logging"
)

// Config selects the exporter endpoint: the gRPC endpoint wins when both
// are set.
type Config struct {
	Enabled bool

	OtelGRPCEndpoint string
	OtelHTTPEndpoint string

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		Enabled:          enabled,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
	}
}

func NewNoopConfig() *Config {
	return &Config{}
}
