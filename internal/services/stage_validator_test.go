package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/models"
)

var validatorNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func baseLead() *models.Lead {
	return &models.Lead{
		ID:           1,
		CompanyName:  "Acme Corp",
		ContactName:  "Jane Doe",
		Email:        "jane@acme.example",
		Phone:        "+1 555 0100",
		CurrentStage: models.StageInquiry,
	}
}

func TestValidateTransitionNilLead(t *testing.T) {
	result := ValidateTransition(nil, models.LeadRelated{}, models.StageQualification, false, validatorNow)

	assert.False(t, result.Valid)
	assert.False(t, result.CanForce)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, IssueCodeNotFound, result.Errors[0].Code)
}

func TestValidateTransitionInquiry(t *testing.T) {
	t.Run("complete lead passes", func(t *testing.T) {
		result := ValidateTransition(baseLead(), models.LeadRelated{}, models.StageInquiry, false, validatorNow)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing names and contact methods are errors", func(t *testing.T) {
		lead := &models.Lead{ID: 1, CompanyName: "A", ContactName: "B"}
		result := ValidateTransition(lead, models.LeadRelated{}, models.StageInquiry, false, validatorNow)

		assert.False(t, result.Valid)
		assert.Len(t, result.Errors, 3)
		assert.False(t, result.CanForce)
	})
}

func TestValidateTransitionQualificationEmailWarning(t *testing.T) {
	lead := baseLead()
	lead.Email = ""

	result := ValidateTransition(lead, models.LeadRelated{}, models.StageQualification, false, validatorNow)
	assert.False(t, result.Valid)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, IssueCodeRecommendedField, result.Warnings[0].Code)
	assert.True(t, result.CanForce)

	forced := ValidateTransition(lead, models.LeadRelated{}, models.StageQualification, true, validatorNow)
	assert.True(t, forced.Valid)
}

func TestValidateTransitionOpportunityWarnings(t *testing.T) {
	t.Run("no organization info", func(t *testing.T) {
		result := ValidateTransition(baseLead(), models.LeadRelated{}, models.StageOpportunity, false, validatorNow)
		assert.False(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Len(t, result.Warnings, 1)
		assert.True(t, result.CanForce)
	})

	t.Run("organization info missing fields", func(t *testing.T) {
		rel := models.LeadRelated{OrganizationInfo: &models.OrganizationInfo{LeadID: 1}}
		result := ValidateTransition(baseLead(), rel, models.StageOpportunity, false, validatorNow)
		assert.Len(t, result.Warnings, 2)
	})

	t.Run("complete organization info passes", func(t *testing.T) {
		count := 40
		rel := models.LeadRelated{OrganizationInfo: &models.OrganizationInfo{
			LeadID:        1,
			EmployeeCount: &count,
			Industry:      "Manufacturing",
		}}
		result := ValidateTransition(baseLead(), rel, models.StageOpportunity, false, validatorNow)
		assert.True(t, result.Valid)
	})
}

func TestValidateTransitionDemoScheduled(t *testing.T) {
	t.Run("missing demo record is an error", func(t *testing.T) {
		result := ValidateTransition(baseLead(), models.LeadRelated{}, models.StageDemoScheduled, false, validatorNow)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.False(t, result.CanForce)

		// force never bypasses errors
		forced := ValidateTransition(baseLead(), models.LeadRelated{}, models.StageDemoScheduled, true, validatorNow)
		assert.False(t, forced.Valid)
	})

	t.Run("demo record with date passes", func(t *testing.T) {
		demo := validatorNow.AddDate(0, 0, 5)
		rel := models.LeadRelated{DemoDetails: &models.DemoDetails{LeadID: 1, DemoDate: &demo}}
		result := ValidateTransition(baseLead(), rel, models.StageDemoScheduled, false, validatorNow)
		assert.True(t, result.Valid)
	})
}

func TestValidateTransitionDemoCompleteFutureDate(t *testing.T) {
	future := validatorNow.AddDate(0, 0, 3)
	rel := models.LeadRelated{DemoDetails: &models.DemoDetails{
		LeadID:      1,
		DemoDate:    &future,
		DemoOutcome: models.DemoOutcomePositive,
	}}

	result := ValidateTransition(baseLead(), rel, models.StageDemoComplete, false, validatorNow)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, IssueCodeInvalidDate, result.Errors[0].Code)
	assert.Contains(t, result.Errors[0].Message, "past")
	assert.False(t, result.CanForce)

	forced := ValidateTransition(baseLead(), rel, models.StageDemoComplete, true, validatorNow)
	assert.False(t, forced.Valid, "force must not bypass a hard error")
}

func TestValidateTransitionDemoCompleteOutcomeWarning(t *testing.T) {
	past := validatorNow.AddDate(0, 0, -1)
	rel := models.LeadRelated{DemoDetails: &models.DemoDetails{LeadID: 1, DemoDate: &past}}

	result := ValidateTransition(baseLead(), rel, models.StageDemoComplete, false, validatorNow)
	assert.False(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Warnings, 1)
	assert.True(t, result.CanForce)
}

func TestValidateTransitionProposalStages(t *testing.T) {
	value := 25000.0
	date := validatorNow.AddDate(0, 0, -2)

	t.Run("proposal_sent requires record with date and value", func(t *testing.T) {
		result := ValidateTransition(baseLead(), models.LeadRelated{}, models.StageProposalSent, false, validatorNow)
		assert.False(t, result.Valid)
		assert.Len(t, result.Errors, 1)

		rel := models.LeadRelated{Proposal: &models.Proposal{LeadID: 1}}
		result = ValidateTransition(baseLead(), rel, models.StageProposalSent, false, validatorNow)
		assert.Len(t, result.Errors, 2)

		rel = models.LeadRelated{Proposal: &models.Proposal{LeadID: 1, ProposalDate: &date, EstimatedValue: &value}}
		result = ValidateTransition(baseLead(), rel, models.StageProposalSent, false, validatorNow)
		assert.True(t, result.Valid)
	})

	t.Run("negotiation and closed_won require proposal value", func(t *testing.T) {
		for _, stage := range []models.Stage{models.StageNegotiation, models.StageClosedWon} {
			result := ValidateTransition(baseLead(), models.LeadRelated{}, stage, false, validatorNow)
			assert.False(t, result.Valid, "stage %s", stage)

			rel := models.LeadRelated{Proposal: &models.Proposal{LeadID: 1, EstimatedValue: &value}}
			result = ValidateTransition(baseLead(), rel, stage, false, validatorNow)
			assert.True(t, result.Valid, "stage %s", stage)
		}
	})
}

func TestValidateTransitionClosedLost(t *testing.T) {
	t.Run("missing lost reason is an error", func(t *testing.T) {
		result := ValidateTransition(baseLead(), models.LeadRelated{}, models.StageClosedLost, false, validatorNow)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
	})

	t.Run("competitor without name is an error", func(t *testing.T) {
		rel := models.LeadRelated{LostReason: &models.LostReason{LeadID: 1, Reason: models.LostReasonCompetitor}}
		result := ValidateTransition(baseLead(), rel, models.StageClosedLost, false, validatorNow)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "competitorName", result.Errors[0].Field)
	})

	t.Run("populated reason passes", func(t *testing.T) {
		rel := models.LeadRelated{LostReason: &models.LostReason{
			LeadID:         1,
			Reason:         models.LostReasonCompetitor,
			CompetitorName: "Rival Inc",
		}}
		result := ValidateTransition(baseLead(), rel, models.StageClosedLost, false, validatorNow)
		assert.True(t, result.Valid)
	})
}

func TestValidateTransitionNurtureStages(t *testing.T) {
	for _, stage := range []models.Stage{models.StageNurture30Day, models.StageNurture90Day} {
		result := ValidateTransition(baseLead(), models.LeadRelated{}, stage, false, validatorNow)
		assert.True(t, result.Valid, "stage %s", stage)
	}
}
