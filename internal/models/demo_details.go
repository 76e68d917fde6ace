package models

import "time"

type DemoType string

const (
	DemoOnline   DemoType = "ONLINE"
	DemoInPerson DemoType = "IN_PERSON"
	DemoHybrid   DemoType = "HYBRID"
)

type DemoOutcome string

const (
	DemoOutcomePositive DemoOutcome = "POSITIVE"
	DemoOutcomeNeutral  DemoOutcome = "NEUTRAL"
	DemoOutcomeNegative DemoOutcome = "NEGATIVE"
	DemoOutcomeNoShow   DemoOutcome = "NO_SHOW"
)

// DemoDetails tracks the scheduled product demo for a lead. 1:1 with Lead,
// keyed by lead id.
type DemoDetails struct {
	ID                int64       `json:"id"`
	LeadID            int64       `json:"lead_id"`
	DemoDate          *time.Time  `json:"demo_date,omitempty"`
	DemoType          DemoType    `json:"demo_type"`
	Attendees         string      `json:"attendees,omitempty"`
	DemoOutcome       DemoOutcome `json:"demo_outcome,omitempty"`
	UserCountEstimate *int        `json:"user_count_estimate,omitempty"`
	FollowUpRequired  bool        `json:"follow_up_required"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
