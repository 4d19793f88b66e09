// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/voicedesk/dashboard-service/cmd"

func main() {
	cmd.Execute()
}
