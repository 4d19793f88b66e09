// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

// ErrUnavailable means the provider could not serve the call: missing
// credentials, network failure, or a non-success upstream status. Callers
// degrade (default name, empty list) instead of failing the request.
var ErrUnavailable = errors.New("voice provider unavailable")

// placeholder values that mean "not configured" rather than a real key
var placeholderKeys = map[string]struct{}{
	"":                  {},
	"your-voice-api-key": {},
	"changeme":          {},
}

type ClientInterface interface {
	GetAssistant(ctx context.Context, id string) (*Assistant, error)
	PatchAssistant(ctx context.Context, id string, patch AssistantPatch) (*Assistant, error)
	ListVoices(ctx context.Context) ([]Voice, error)
	ListCalls(ctx context.Context, assistantID string) ([]CallRecord, error)
	BindPhoneNumber(ctx context.Context, phoneNumberID, assistantID string) error
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL, apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) available() bool {
	_, placeholder := placeholderKeys[c.apiKey]
	return !placeholder
}

func (c *Client) GetAssistant(ctx context.Context, id string) (*Assistant, error) {
	ctx, span := c.tracer.Start(ctx, "voice.Client.GetAssistant")
	defer span.End()

	var a Assistant
	if err := c.do(ctx, http.MethodGet, "/assistant/"+url.PathEscape(id), nil, &a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		a.ID = id
	}

	return &a, nil
}

func (c *Client) PatchAssistant(ctx context.Context, id string, patch AssistantPatch) (*Assistant, error) {
	ctx, span := c.tracer.Start(ctx, "voice.Client.PatchAssistant")
	defer span.End()

	var a Assistant
	if err := c.do(ctx, http.MethodPatch, "/assistant/"+url.PathEscape(id), patch, &a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		a.ID = id
	}

	return &a, nil
}

func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	ctx, span := c.tracer.Start(ctx, "voice.Client.ListVoices")
	defer span.End()

	var voices []Voice
	if err := c.do(ctx, http.MethodGet, "/voice-library", nil, &voices); err != nil {
		return nil, err
	}

	return voices, nil
}

func (c *Client) ListCalls(ctx context.Context, assistantID string) ([]CallRecord, error) {
	ctx, span := c.tracer.Start(ctx, "voice.Client.ListCalls")
	defer span.End()

	var calls []CallRecord
	path := "/call?assistantId=" + url.QueryEscape(assistantID)
	if err := c.do(ctx, http.MethodGet, path, nil, &calls); err != nil {
		return nil, err
	}

	return calls, nil
}

func (c *Client) BindPhoneNumber(ctx context.Context, phoneNumberID, assistantID string) error {
	ctx, span := c.tracer.Start(ctx, "voice.Client.BindPhoneNumber")
	defer span.End()

	body := map[string]string{"assistantId": assistantID}
	return c.do(ctx, http.MethodPatch, "/phone-number/"+url.PathEscape(phoneNumberID), body, nil)
}

// do performs the upstream call, collapsing every failure mode into
// ErrUnavailable after logging the detail server-side.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if !c.available() {
		return ErrUnavailable
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorf("voice provider request failed: %v", err)
		c.setAvailability(0)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorf("voice provider returned status %d for %s %s", resp.StatusCode, method, path)
		c.setAvailability(0)
		return ErrUnavailable
	}

	c.setAvailability(1)

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Errorf("failed to decode voice provider response: %v", err)
		return ErrUnavailable
	}

	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"dependency": "voice_provider"}, v); err != nil {
		c.logger.Errorf("failed to set dependency availability metric: %v", err)
	}
}
