package services

import (
	"time"

	"github.com/loydmilligan/leadoff/internal/models"
)

const (
	IssueCodeNotFound         = "NOT_FOUND"
	IssueCodeRequiredField    = "REQUIRED_FIELD"
	IssueCodeRecommendedField = "RECOMMENDED_FIELD"
	IssueCodeInvalidDate      = "INVALID_DATE"
)

// ValidationIssue is a single admissibility finding for a stage transition.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StageValidationResult is the verdict of ValidateTransition. Errors always
// block; warnings block unless the caller forces. CanForce tells the caller
// whether forcing would unblock the transition.
type StageValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
	CanForce bool              `json:"canForce"`
}

// ValidateTransition checks whether lead may move to target given the related
// records collected so far. force suppresses warnings only; errors are never
// overridable.
func ValidateTransition(lead *models.Lead, rel models.LeadRelated, target models.Stage, force bool, now time.Time) StageValidationResult {
	var errs, warns []ValidationIssue

	if lead == nil {
		errs = append(errs, ValidationIssue{Field: "lead", Message: "lead not found", Code: IssueCodeNotFound})
		return StageValidationResult{Valid: false, Errors: errs}
	}

	switch target {
	case models.StageInquiry:
		if len(lead.CompanyName) < 2 {
			errs = append(errs, ValidationIssue{Field: "companyName", Message: "company name must be at least 2 characters", Code: IssueCodeRequiredField})
		}
		if len(lead.ContactName) < 2 {
			errs = append(errs, ValidationIssue{Field: "contactName", Message: "contact name must be at least 2 characters", Code: IssueCodeRequiredField})
		}
		if lead.Phone == "" && lead.Email == "" {
			errs = append(errs, ValidationIssue{Field: "contact", Message: "at least one contact method (phone or email) is required", Code: IssueCodeRequiredField})
		}

	case models.StageQualification:
		if lead.Email == "" && !force {
			warns = append(warns, ValidationIssue{Field: "email", Message: "email is recommended before qualification", Code: IssueCodeRecommendedField})
		}

	case models.StageOpportunity:
		if !force {
			if rel.OrganizationInfo == nil {
				warns = append(warns, ValidationIssue{Field: "organizationInfo", Message: "organization info is recommended before marking as opportunity", Code: IssueCodeRecommendedField})
			} else {
				if rel.OrganizationInfo.EmployeeCount == nil {
					warns = append(warns, ValidationIssue{Field: "employeeCount", Message: "employee count helps qualify the opportunity", Code: IssueCodeRecommendedField})
				}
				if rel.OrganizationInfo.Industry == "" {
					warns = append(warns, ValidationIssue{Field: "industry", Message: "industry helps qualify the opportunity", Code: IssueCodeRecommendedField})
				}
			}
		}

	case models.StageDemoScheduled:
		if rel.DemoDetails == nil {
			errs = append(errs, ValidationIssue{Field: "demoDetails", Message: "demo details are required to schedule a demo", Code: IssueCodeRequiredField})
		} else if rel.DemoDetails.DemoDate == nil {
			errs = append(errs, ValidationIssue{Field: "demoDate", Message: "demo date is required to schedule a demo", Code: IssueCodeRequiredField})
		}

	case models.StageDemoComplete:
		if rel.DemoDetails == nil || rel.DemoDetails.DemoDate == nil {
			errs = append(errs, ValidationIssue{Field: "demoDate", Message: "demo date is required to complete a demo", Code: IssueCodeRequiredField})
		} else {
			if rel.DemoDetails.DemoDate.After(now) {
				errs = append(errs, ValidationIssue{Field: "demoDate", Message: "demo date must be in the past", Code: IssueCodeInvalidDate})
			}
			if rel.DemoDetails.DemoOutcome == "" && !force {
				warns = append(warns, ValidationIssue{Field: "demoOutcome", Message: "recording the demo outcome is recommended", Code: IssueCodeRecommendedField})
			}
		}

	case models.StageProposalSent:
		if rel.Proposal == nil {
			errs = append(errs, ValidationIssue{Field: "proposal", Message: "a proposal record is required", Code: IssueCodeRequiredField})
		} else {
			if rel.Proposal.ProposalDate == nil {
				errs = append(errs, ValidationIssue{Field: "proposalDate", Message: "proposal date is required", Code: IssueCodeRequiredField})
			}
			if rel.Proposal.EstimatedValue == nil || *rel.Proposal.EstimatedValue <= 0 {
				errs = append(errs, ValidationIssue{Field: "estimatedValue", Message: "a positive estimated value is required", Code: IssueCodeRequiredField})
			}
		}

	case models.StageNegotiation:
		if rel.Proposal == nil || rel.Proposal.EstimatedValue == nil || *rel.Proposal.EstimatedValue <= 0 {
			errs = append(errs, ValidationIssue{Field: "estimatedValue", Message: "proposal value is required before negotiating", Code: IssueCodeRequiredField})
		}

	case models.StageClosedWon:
		if rel.Proposal == nil || rel.Proposal.EstimatedValue == nil || *rel.Proposal.EstimatedValue <= 0 {
			errs = append(errs, ValidationIssue{Field: "estimatedValue", Message: "final proposal value must be known before closing as won", Code: IssueCodeRequiredField})
		}

	case models.StageClosedLost:
		if rel.LostReason == nil || rel.LostReason.Reason == "" {
			errs = append(errs, ValidationIssue{Field: "lostReason", Message: "a lost reason is required before closing as lost", Code: IssueCodeRequiredField})
		} else if rel.LostReason.Reason == models.LostReasonCompetitor && rel.LostReason.CompetitorName == "" {
			errs = append(errs, ValidationIssue{Field: "competitorName", Message: "competitor name is required when lost to a competitor", Code: IssueCodeRequiredField})
		}

	case models.StageNurture30Day, models.StageNurture90Day:
		// Nurture stages carry no admissibility requirements.
	}

	valid := len(errs) == 0 && (len(warns) == 0 || force)
	return StageValidationResult{
		Valid:    valid,
		Errors:   errs,
		Warnings: warns,
		CanForce: len(errs) == 0 && len(warns) > 0,
	}
}
