// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	"github.com/voicedesk/dashboard-service/internal/kratos"
)

// SessionResolverInterface resolves the authenticated identity from a
// request's credential material (the Cookie header). Absence of a session
// is a representable outcome (nil session, nil error), not a failure.
type SessionResolverInterface interface {
	ToSession(ctx context.Context, cookieHeader string) (*kratos.Session, []*http.Cookie, error)
}
