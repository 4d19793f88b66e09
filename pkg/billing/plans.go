// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

const (
	PlanTrial   = "trial"
	PlanStarter = "starter"
	PlanPro     = "pro"

	// DefaultPlan applies when an organisation has no subscription row.
	DefaultPlan = PlanTrial
)

// Limits are the per-plan entitlements. A negative value means
// unlimited.
type Limits struct {
	Calls   int64 `json:"calls"`
	Intents int64 `json:"intents"`
}

var planLimits = map[string]Limits{
	PlanTrial:   {Calls: 25, Intents: 10},
	PlanStarter: {Calls: 250, Intents: 50},
	PlanPro:     {Calls: -1, Intents: -1},
}

// LimitsForPlan returns the entitlements for a plan name; unknown plans
// fall back to the default plan's limits.
func LimitsForPlan(plan string) Limits {
	if l, ok := planLimits[plan]; ok {
		return l
	}
	return planLimits[DefaultPlan]
}
