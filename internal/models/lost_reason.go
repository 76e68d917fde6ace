package models

import "time"

// LostReasonCategory classifies why a deal was lost.
type LostReasonCategory string

const (
	LostReasonPrice        LostReasonCategory = "PRICE"
	LostReasonCompetitor   LostReasonCategory = "COMPETITOR"
	LostReasonNoResponse   LostReasonCategory = "NO_RESPONSE"
	LostReasonNotQualified LostReasonCategory = "NOT_QUALIFIED"
	LostReasonTiming       LostReasonCategory = "TIMING"
	LostReasonOther        LostReasonCategory = "OTHER"
)

func (c LostReasonCategory) IsValid() bool {
	switch c {
	case LostReasonPrice, LostReasonCompetitor, LostReasonNoResponse,
		LostReasonNotQualified, LostReasonTiming, LostReasonOther:
		return true
	}
	return false
}

// LostReason records why a lead was closed-lost. At most one per lead,
// keyed by lead id; competitor name is mandatory exactly when the reason
// is COMPETITOR.
type LostReason struct {
	ID             int64              `json:"id"`
	LeadID         int64              `json:"lead_id"`
	Reason         LostReasonCategory `json:"reason"`
	CompetitorName string             `json:"competitor_name,omitempty"`
	LostDate       time.Time          `json:"lost_date"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
