// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package voice

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/tracing"
)

func newTestClient(baseURL, apiKey string) *Client {
	return NewClient(baseURL, apiKey, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func strPtr(s string) *string { return &s }

func TestClient_PatchAssistantRoundTrip(t *testing.T) {
	// The provider answers a PATCH with the updated entity in the same
	// shape the request used, so echoing the body back verifies request
	// and response share one field convention.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")

	got, err := c.PatchAssistant(context.Background(), "asst-1", AssistantPatch{
		FirstMessage: strPtr("Hi, thanks for calling!"),
		VoiceID:      strPtr("voice-2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FirstMessage != "Hi, thanks for calling!" {
		t.Errorf("first message lost in round trip: got %q", got.FirstMessage)
	}
	if got.VoiceID != "voice-2" {
		t.Errorf("voice id lost in round trip: got %q", got.VoiceID)
	}
	if got.ID != "asst-1" {
		t.Errorf("expected id fallback asst-1, got %q", got.ID)
	}
}

func TestClient_GetAssistant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"asst-1","name":"Receptionist","firstMessage":"Hello","voiceId":"voice-1"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")

	got, err := c.GetAssistant(context.Background(), "asst-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Receptionist" || got.FirstMessage != "Hello" || got.VoiceID != "voice-1" {
		t.Errorf("unexpected assistant: %+v", got)
	}
}

func TestClient_ListCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"call-1","assistantId":"asst-1","status":"ended","endedReason":"customer-ended-call","startedAt":"2026-08-01T10:00:00Z","endedAt":"2026-08-01T10:02:30Z","durationSeconds":150.5,"transcript":"hello"}]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "test-key")

	calls, err := c.ListCalls(context.Background(), "asst-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	call := calls[0]
	if call.AssistantID != "asst-1" || call.EndedReason != "customer-ended-call" {
		t.Errorf("unexpected call: %+v", call)
	}
	if call.StartedAt == nil || call.EndedAt == nil {
		t.Error("expected call timestamps to decode")
	}
	if call.DurationSeconds == nil || *call.DurationSeconds != 150.5 {
		t.Errorf("expected duration 150.5, got %v", call.DurationSeconds)
	}
}

func TestClient_Unavailable(t *testing.T) {
	t.Run("placeholder api key short-circuits", func(t *testing.T) {
		c := newTestClient("http://voice.invalid", "your-voice-api-key")

		if _, err := c.GetAssistant(context.Background(), "asst-1"); !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("upstream failure status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, "test-key")

		if _, err := c.ListVoices(context.Background()); !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})
}
