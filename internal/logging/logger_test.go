// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("debug")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerEvents(t *testing.T) {
	l := NewNoopLogger()

	l.Security().AuthnFailure("user-1")
	l.Security().AuthzFailure("user-1", "intents_write")
	l.Security().CrossTenantDenied("user-1", "org-2")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
