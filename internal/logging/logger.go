// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// SecurityLogger writes audit events with a fixed "security_event" marker.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(subject string) {
	s.l.Warn("authentication failure",
		zap.String("security_event", "authn_failure"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("security_event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) CrossTenantDenied(subject, tenantID string) {
	s.l.Warn("cross tenant access denied",
		zap.String("security_event", "cross_tenant_denied"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("security_event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("security_event", "system_shutdown"))
}

// NewLogger returns a production zap logger at the given level.
// An unparsable level falls back to error to avoid noisy defaults.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l},
	}
}
