package models

import "time"

// ActivityType classifies a logged interaction.
type ActivityType string

const (
	ActivityEmail     ActivityType = "EMAIL"
	ActivityPhoneCall ActivityType = "PHONE_CALL"
	ActivityMeeting   ActivityType = "MEETING"
	ActivityNote      ActivityType = "NOTE"
	ActivityTask      ActivityType = "TASK"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityEmail, ActivityPhoneCall, ActivityMeeting, ActivityNote, ActivityTask:
		return true
	}
	return false
}

// Activity is a logged interaction or system-generated note on a lead.
type Activity struct {
	ID          int64        `json:"id"`
	LeadID      int64        `json:"lead_id"`
	Type        ActivityType `json:"type"`
	Subject     string       `json:"subject"`
	Notes       string       `json:"notes,omitempty"`
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
