package models

import "time"

type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "DRAFT"
	ProposalSent     ProposalStatus = "SENT"
	ProposalViewed   ProposalStatus = "VIEWED"
	ProposalAccepted ProposalStatus = "ACCEPTED"
	ProposalRejected ProposalStatus = "REJECTED"
	ProposalExpired  ProposalStatus = "EXPIRED"
)

// Proposal tracks the commercial proposal for a lead. 1:1 with Lead, keyed
// by lead id. EstimatedValue must be known before the lead can move to
// PROPOSAL_SENT, NEGOTIATION or CLOSED_WON.
type Proposal struct {
	ID             int64          `json:"id"`
	LeadID         int64          `json:"lead_id"`
	ProposalDate   *time.Time     `json:"proposal_date,omitempty"`
	EstimatedValue *float64       `json:"estimated_value,omitempty"`
	Status         ProposalStatus `json:"status"`
	ValidUntil     *time.Time     `json:"valid_until,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
