// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/voicedesk/dashboard-service/internal/logging"
)

// fakeTx implements TxInterface and records what happened to it.
type fakeTx struct {
	execs      []string
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(query string, args ...interface{}) (sql.Result, error) {
	f.execs = append(f.execs, query)
	return nil, nil
}

func (f *fakeTx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

func newTestClient(tx *fakeTx, began *bool) *DBClient {
	return &DBClient{
		logger: logging.NewNoopLogger(),
		begin: func() (TxInterface, context.CancelFunc, error) {
			if began != nil {
				*began = true
			}
			return tx, func() {}, nil
		},
	}
}

func TestDBClient_WithTx(t *testing.T) {
	t.Run("commits after a successful write", func(t *testing.T) {
		tx := &fakeTx{}
		d := newTestClient(tx, nil)

		err := d.WithTx(context.Background(), func(txCtx context.Context) error {
			_, _ = d.Statement(txCtx).Insert("intents").Columns("id").Values("intent-1").Exec()
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tx.execs) != 1 {
			t.Fatalf("expected 1 statement on the transaction, got %d", len(tx.execs))
		}
		if !tx.committed || tx.rolledBack {
			t.Errorf("expected commit, got committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
		}
	})

	t.Run("rolls back when fn fails after a write", func(t *testing.T) {
		tx := &fakeTx{}
		d := newTestClient(tx, nil)

		failure := errors.New("second write failed")
		err := d.WithTx(context.Background(), func(txCtx context.Context) error {
			_, _ = d.Statement(txCtx).Delete("intents").Exec()
			return failure
		})
		if !errors.Is(err, failure) {
			t.Fatalf("expected fn error, got %v", err)
		}
		if tx.committed {
			t.Error("transaction must not commit after a failure")
		}
		if !tx.rolledBack {
			t.Error("expected rollback")
		}
	})

	t.Run("no database access starts no transaction", func(t *testing.T) {
		began := false
		d := newTestClient(&fakeTx{}, &began)

		if err := d.WithTx(context.Background(), func(txCtx context.Context) error {
			return nil
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if began {
			t.Error("expected no transaction to be started")
		}
	})

	t.Run("statements outside WithTx run on the pool", func(t *testing.T) {
		runner := &fakeTx{}
		began := false
		d := newTestClient(&fakeTx{}, &began)
		d.dbRunner = runner

		_, _ = d.Statement(context.Background()).Insert("intents").Columns("id").Values("intent-1").Exec()

		if began {
			t.Error("expected no transaction to be started")
		}
		if len(runner.execs) != 1 {
			t.Errorf("expected statement on the pool runner, got %d", len(runner.execs))
		}
	})
}
