// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/voicedesk/dashboard-service/internal/logging"
)

// txRecorder implements DBClientInterface and records the outcome the
// middleware hands to WithTx.
type txRecorder struct {
	withTxCalls int
	fnErr       error
}

func (r *txRecorder) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (r *txRecorder) WithTx(ctx context.Context, fn func(context.Context) error) error {
	r.withTxCalls++
	r.fnErr = fn(ctx)
	return r.fnErr
}

func (r *txRecorder) Close() {}

func serveThroughTx(t *testing.T, method string, handler http.HandlerFunc) (*txRecorder, *httptest.ResponseRecorder) {
	t.Helper()

	recorder := &txRecorder{}
	mdw := TransactionMiddleware(recorder, logging.NewNoopLogger())

	req := httptest.NewRequest(method, "/api/v0/intents/reset", nil)
	rec := httptest.NewRecorder()
	mdw(handler).ServeHTTP(rec, req)

	return recorder, rec
}

func TestTransactionMiddleware(t *testing.T) {
	t.Run("successful mutation commits", func(t *testing.T) {
		recorder, rec := serveThroughTx(t, http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		if recorder.withTxCalls != 1 {
			t.Fatalf("expected 1 transaction, got %d", recorder.withTxCalls)
		}
		if recorder.fnErr != nil {
			t.Errorf("expected commit signal, got rollback: %v", recorder.fnErr)
		}
		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d", rec.Code)
		}
	})

	t.Run("failed mutation rolls back", func(t *testing.T) {
		recorder, rec := serveThroughTx(t, http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
			// A partial write followed by a failure must not survive.
			w.WriteHeader(http.StatusInternalServerError)
		})

		if recorder.withTxCalls != 1 {
			t.Fatalf("expected 1 transaction, got %d", recorder.withTxCalls)
		}
		if recorder.fnErr == nil {
			t.Error("expected rollback signal for a failed request")
		}
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rec.Code)
		}
	})

	t.Run("client errors roll back too", func(t *testing.T) {
		recorder, _ := serveThroughTx(t, http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		if recorder.fnErr == nil {
			t.Error("expected rollback signal for a 403 response")
		}
	})

	t.Run("reads bypass the transaction", func(t *testing.T) {
		recorder, _ := serveThroughTx(t, http.MethodGet, func(w http.ResponseWriter, r *http.Request) {})

		if recorder.withTxCalls != 0 {
			t.Errorf("expected no transaction for GET, got %d", recorder.withTxCalls)
		}
	})

	t.Run("implicit 200 commits", func(t *testing.T) {
		recorder, _ := serveThroughTx(t, http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		if recorder.fnErr != nil {
			t.Errorf("expected commit signal, got %v", recorder.fnErr)
		}
	})
}
