package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/models"
)

func TestCreateLead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	lead := env.createLead(t, "acme")

	assert.Equal(t, models.StageInquiry, lead.CurrentStage)
	require.NotNil(t, lead.NextFollowUpDate)
	assert.True(t, testNow.Add(24*time.Hour).Equal(*lead.NextFollowUpDate))

	history, err := env.store.StageHistory.ListByLead(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].FromStage)
	assert.Equal(t, models.StageInquiry, history[0].ToStage)
	assert.Equal(t, "Lead created", history[0].Note)
}

func TestCreateLeadValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.leads.CreateLead(ctx, CreateLeadInput{CompanyName: "A", ContactName: "Jane Doe", Email: "j@a.example"})
	assert.True(t, domain.IsValidation(err))

	_, err = env.leads.CreateLead(ctx, CreateLeadInput{CompanyName: "Acme", ContactName: "J", Email: "j@a.example"})
	assert.True(t, domain.IsValidation(err))

	_, err = env.leads.CreateLead(ctx, CreateLeadInput{CompanyName: "Acme", ContactName: "Jane Doe"})
	assert.True(t, domain.IsValidation(err), "needs at least one contact method")
}

func TestUpdateStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")

	updated, err := env.leads.UpdateStage(ctx, lead.ID, UpdateStageInput{Stage: models.StageQualification})
	require.NoError(t, err)

	assert.Equal(t, models.StageQualification, updated.CurrentStage)
	require.NotNil(t, updated.NextFollowUpDate)
	assert.True(t, testNow.Add(48*time.Hour).Equal(*updated.NextFollowUpDate))
	require.NotNil(t, updated.LastActivityDate)
	assert.True(t, testNow.Equal(*updated.LastActivityDate))

	history, err := env.store.StageHistory.ListByLead(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// newest first
	require.NotNil(t, history[0].FromStage)
	assert.Equal(t, models.StageInquiry, *history[0].FromStage)
	assert.Equal(t, models.StageQualification, history[0].ToStage)
	assert.Equal(t, "Stage changed from INQUIRY to QUALIFICATION", history[0].Note)
}

func TestUpdateStageDemoScheduledUsesDemoDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")

	demoDate := time.Date(2026, 3, 25, 10, 0, 0, 0, time.UTC)
	updated, err := env.leads.UpdateStage(ctx, lead.ID, UpdateStageInput{
		Stage:    models.StageDemoScheduled,
		DemoDate: &demoDate,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.NextFollowUpDate)
	want := time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(*updated.NextFollowUpDate))
}

func TestUpdateStageNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.leads.UpdateStage(context.Background(), 9999, UpdateStageInput{Stage: models.StageQualification})
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdateStageUnknownStage(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createLead(t, "acme")

	_, err := env.leads.UpdateStage(context.Background(), lead.ID, UpdateStageInput{Stage: "WAT"})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateStageClosedDealsAreTerminal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	openStages := []models.Stage{
		models.StageInquiry,
		models.StageQualification,
		models.StageOpportunity,
		models.StageDemoScheduled,
		models.StageDemoComplete,
		models.StageProposalSent,
		models.StageNegotiation,
		models.StageNurture30Day,
		models.StageNurture90Day,
	}

	for _, prior := range openStages {
		lead := env.createLead(t, "co-"+string(prior))
		if prior != models.StageInquiry {
			env.moveTo(t, lead.ID, prior)
		}
		_, err := env.actions.CloseAsWon(ctx, lead.ID, "signed")
		require.NoError(t, err, "closing from %s", prior)

		for _, target := range models.AllStages {
			if target == models.StageClosedWon {
				continue
			}
			_, err := env.leads.UpdateStage(ctx, lead.ID, UpdateStageInput{Stage: target})
			assert.True(t, domain.IsClosedDealImmutable(err),
				"from closed (was %s) to %s should be immutable, got %v", prior, target, err)
		}
	}
}

func TestUpdateStageClosedLostRequiresReason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")

	_, err := env.leads.UpdateStage(ctx, lead.ID, UpdateStageInput{Stage: models.StageClosedLost})
	assert.True(t, domain.IsLostReasonRequired(err))

	_, err = env.leads.UpdateStage(ctx, lead.ID, UpdateStageInput{
		Stage:      models.StageClosedLost,
		LostReason: &LostReasonInput{Reason: models.LostReasonCompetitor},
	})
	assert.True(t, domain.IsValidation(err), "competitor reason needs a competitor name")

	updated, err := env.leads.UpdateStage(ctx, lead.ID, UpdateStageInput{
		Stage:      models.StageClosedLost,
		LostReason: &LostReasonInput{Reason: models.LostReasonTiming, Notes: "budget freeze"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StageClosedLost, updated.CurrentStage)
	assert.Nil(t, updated.NextFollowUpDate, "closed deals carry no follow-up")

	lr, err := env.store.LostReasons.GetByLeadID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, lr)
	assert.Equal(t, models.LostReasonTiming, lr.Reason)
}

func TestValidateTransitionByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("missing lead yields not-found issue", func(t *testing.T) {
		result, err := env.leads.ValidateTransitionByID(ctx, 9999, models.StageQualification, false)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, IssueCodeNotFound, result.Errors[0].Code)
	})

	t.Run("loads side records", func(t *testing.T) {
		lead := env.createLead(t, "acme")
		result, err := env.leads.ValidateTransitionByID(ctx, lead.ID, models.StageProposalSent, false)
		require.NoError(t, err)
		assert.False(t, result.Valid, "no proposal record yet")

		value := 10000.0
		date := testNow.AddDate(0, 0, -1)
		require.NoError(t, env.store.Proposals.Upsert(ctx, &models.Proposal{
			LeadID:         lead.ID,
			ProposalDate:   &date,
			EstimatedValue: &value,
			Status:         models.ProposalSent,
			CreatedAt:      testNow,
			UpdatedAt:      testNow,
		}))

		result, err = env.leads.ValidateTransitionByID(ctx, lead.ID, models.StageProposalSent, false)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})
}

func TestGetFollowUpLeads(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	overdueLead := env.createLead(t, "overdue-co")
	env.moveTo(t, overdueLead.ID, models.StageQualification)
	env.setFollowUp(t, overdueLead.ID, timePtr(testNow.AddDate(0, 0, -1)))

	todayLead := env.createLead(t, "today-co")
	env.setFollowUp(t, todayLead.ID, timePtr(time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)))

	upcomingLead := env.createLead(t, "upcoming-co")
	env.setFollowUp(t, upcomingLead.ID, timePtr(testNow.AddDate(0, 0, 3)))

	farLead := env.createLead(t, "far-co")
	env.setFollowUp(t, farLead.ID, timePtr(testNow.AddDate(0, 0, 12)))

	closedLead := env.createLead(t, "closed-co")
	_, err := env.actions.CloseAsWon(ctx, closedLead.ID, "signed")
	require.NoError(t, err)

	archivedLead := env.createLead(t, "archived-co")
	env.setFollowUp(t, archivedLead.ID, timePtr(testNow.AddDate(0, 0, -2)))
	_, err = env.archive.Archive(ctx, archivedLead.ID, "went quiet")
	require.NoError(t, err)

	buckets, err := env.leads.GetFollowUpLeads(ctx)
	require.NoError(t, err)

	require.Len(t, buckets.Overdue, 1)
	assert.Equal(t, overdueLead.ID, buckets.Overdue[0].ID)
	require.Len(t, buckets.Today, 1)
	assert.Equal(t, todayLead.ID, buckets.Today[0].ID)
	require.Len(t, buckets.Upcoming, 1)
	assert.Equal(t, upcomingLead.ID, buckets.Upcoming[0].ID)
}

func TestGetFollowUpLeadsFreshInquiryIsUpcoming(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createLead(t, "fresh-co")

	// one hour later the +24h follow-up is tomorrow, within the 7-day window
	env.now = testNow.Add(time.Hour)
	buckets, err := env.leads.GetFollowUpLeads(context.Background())
	require.NoError(t, err)

	assert.Empty(t, buckets.Overdue)
	assert.Empty(t, buckets.Today)
	require.Len(t, buckets.Upcoming, 1)
	assert.Equal(t, lead.ID, buckets.Upcoming[0].ID)
}

func TestGetFollowUpLeadsCarriesRecentActivities(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "busy-co")
	env.setFollowUp(t, lead.ID, timePtr(testNow.AddDate(0, 0, 1)))

	for i := 0; i < 7; i++ {
		require.NoError(t, env.store.Activities.Create(ctx, &models.Activity{
			LeadID:    lead.ID,
			Type:      models.ActivityEmail,
			Subject:   "ping",
			CreatedAt: testNow.Add(time.Duration(i) * time.Minute),
		}))
	}

	buckets, err := env.leads.GetFollowUpLeads(ctx)
	require.NoError(t, err)
	require.Len(t, buckets.Upcoming, 1)
	assert.Len(t, buckets.Upcoming[0].Activities, 5)
}

func TestSearchSimilarLeads(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := env.createLead(t, "Globex Industries")
	env.createLead(t, "Initech")

	matches, err := env.leads.SearchSimilarLeads(ctx, "globex", "", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, a.ID, matches[0].ID)

	// exact email match dedupes with name match
	matches, err = env.leads.SearchSimilarLeads(ctx, "globex", "", a.Email)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestUpdateLeadDoesNotTouchStage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")
	env.moveTo(t, lead.ID, models.StageQualification)

	title := "CTO"
	updated, err := env.leads.UpdateLead(ctx, lead.ID, UpdateLeadInput{ContactTitle: &title})
	require.NoError(t, err)
	assert.Equal(t, "CTO", updated.ContactTitle)
	assert.Equal(t, models.StageQualification, updated.CurrentStage)

	history, err := env.store.StageHistory.ListByLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2, "detail updates write no history")
}
