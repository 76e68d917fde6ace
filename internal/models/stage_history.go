package models

import "time"

// StageHistory is one append-only audit record per stage transition.
// FromStage is nil only for the record written at lead creation.
type StageHistory struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"lead_id"`
	FromStage *Stage    `json:"from_stage,omitempty"`
	ToStage   Stage     `json:"to_stage"`
	Note      string    `json:"note,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}
