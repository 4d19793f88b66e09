// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
