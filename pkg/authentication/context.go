// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/voicedesk/dashboard-service/internal/types"
)

// Private custom types to avoid collisions
type userContextKeyType struct{}
type emailContextKeyType struct{}
type tenantContextKeyType struct{}

var (
	userContextKey   = userContextKeyType{}
	emailContextKey  = emailContextKeyType{}
	tenantContextKey = tenantContextKeyType{}
)

// WithUserID returns a new context with the given user ID derived from the parent context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the user ID is not present.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok
}

// WithUserEmail returns a new context carrying the session identity's
// primary email address.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}

// GetUserEmail retrieves the session email from the context.
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok
}

// WithTenant attaches the resolved tenant key. Set exactly once per
// request by the tenancy middleware, after tenant resolution.
func WithTenant(ctx context.Context, org types.TenantKey) context.Context {
	return context.WithValue(ctx, tenantContextKey, org)
}

// GetTenant retrieves the resolved tenant key from the context.
func GetTenant(ctx context.Context) (types.TenantKey, bool) {
	org, ok := ctx.Value(tenantContextKey).(types.TenantKey)
	return org, ok
}
