package models

import "time"

// Stage is a lead's position in the sales pipeline.
type Stage string

const (
	StageInquiry       Stage = "INQUIRY"
	StageQualification Stage = "QUALIFICATION"
	StageOpportunity   Stage = "OPPORTUNITY"
	StageDemoScheduled Stage = "DEMO_SCHEDULED"
	StageDemoComplete  Stage = "DEMO_COMPLETE"
	StageProposalSent  Stage = "PROPOSAL_SENT"
	StageNegotiation   Stage = "NEGOTIATION"
	StageClosedWon     Stage = "CLOSED_WON"
	StageClosedLost    Stage = "CLOSED_LOST"
	StageNurture30Day  Stage = "NURTURE_30_DAY"
	StageNurture90Day  Stage = "NURTURE_90_DAY"
)

// AllStages lists every pipeline stage in pipeline order.
var AllStages = []Stage{
	StageInquiry,
	StageQualification,
	StageOpportunity,
	StageDemoScheduled,
	StageDemoComplete,
	StageProposalSent,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
	StageNurture30Day,
	StageNurture90Day,
}

// IsValid reports whether s is a known pipeline stage.
func (s Stage) IsValid() bool {
	for _, st := range AllStages {
		if s == st {
			return true
		}
	}
	return false
}

// IsClosed reports whether s is a terminal stage. Closed deals accept no
// further stage transitions.
func (s Stage) IsClosed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

type Lead struct {
	ID                 int64      `json:"id"`
	CompanyName        string     `json:"company_name"`
	ContactName        string     `json:"contact_name"`
	ContactTitle       string     `json:"contact_title,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	Email              string     `json:"email,omitempty"`
	CompanyDescription string     `json:"company_description,omitempty"`
	LeadSource         string     `json:"lead_source,omitempty"`
	CurrentStage       Stage      `json:"current_stage"`
	EstimatedValue     *float64   `json:"estimated_value,omitempty"`
	NextFollowUpDate   *time.Time `json:"next_follow_up_date,omitempty"`
	LastActivityDate   *time.Time `json:"last_activity_date,omitempty"`

	// Free-form next action set by the user, distinct from the stage-driven
	// follow-up date.
	NextActionType        string     `json:"next_action_type,omitempty"`
	NextActionDescription string     `json:"next_action_description,omitempty"`
	NextActionDueDate     *time.Time `json:"next_action_due_date,omitempty"`

	IsArchived    bool       `json:"is_archived"`
	ArchivedAt    *time.Time `json:"archived_at,omitempty"`
	ArchiveReason string     `json:"archive_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated by queries that join related records; nil otherwise.
	Activities []Activity `json:"activities,omitempty"`
}

// LeadFilter defines the available parameters for listing leads.
type LeadFilter struct {
	Search string
	Stage  *Stage
	Page   int
	Limit  int
}

// LeadRelated bundles the optional 1:1 side records used by stage
// admissibility checks.
type LeadRelated struct {
	OrganizationInfo *OrganizationInfo
	DemoDetails      *DemoDetails
	Proposal         *Proposal
	LostReason       *LostReason
}
