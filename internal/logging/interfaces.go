// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits structured security audit events, kept
// separate from application logging so they can be shipped to a SIEM.
type SecurityLoggerInterface interface {
	AuthnFailure(subject string)
	AuthzFailure(subject, action string)
	CrossTenantDenied(subject, tenantID string)
	SystemStartup()
	SystemShutdown()
}
