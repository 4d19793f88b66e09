// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "dashboard-service"

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// NewTracer configures the global TracerProvider and returns a tracer.
// When tracing is disabled or no exporter endpoint is set, a noop tracer
// is returned and no provider is installed.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	exporter, err := newExporter(cfg)
	if err != nil || exporter == nil {
		if cfg.Logger != nil {
			cfg.Logger.Errorf("tracing exporter unavailable, falling back to noop: %v", err)
		}
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second*5)),
	)
	otel.SetTracerProvider(tp)

	t.tracer = tp.Tracer(tracerName)
	return t
}

func newExporter(cfg *Config) (*otlptrace.Exporter, error) {
	ctx := context.Background()

	if cfg.OtelGRPCEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	if cfg.OtelHTTPEndpoint != "" {
		return otlptracehttp.New(
			ctx,
			otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	}

	return nil, nil
}

func NewNoopTracer() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}
