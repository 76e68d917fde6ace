package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/models"
)

func (e *testEnv) setNextAction(t *testing.T, leadID int64, due *time.Time) {
	t.Helper()
	ctx := context.Background()
	lead, err := e.store.Leads.GetByID(ctx, leadID)
	require.NoError(t, err)
	require.NotNil(t, lead)
	lead.NextActionType = string(models.ActivityTask)
	lead.NextActionDescription = "call back"
	lead.NextActionDueDate = due
	require.NoError(t, e.store.Leads.Update(ctx, lead))
}

func TestGetPlannerView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	overdue := env.createLead(t, "overdue-co")
	env.setNextAction(t, overdue.ID, timePtr(testNow.AddDate(0, 0, -2)))

	today := env.createLead(t, "today-co")
	env.setNextAction(t, today.ID, timePtr(time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)))

	thisWeek := env.createLead(t, "week-co")
	env.setNextAction(t, thisWeek.ID, timePtr(testNow.AddDate(0, 0, 4)))

	nextMonth := env.createLead(t, "later-co")
	env.setNextAction(t, nextMonth.ID, timePtr(testNow.AddDate(0, 1, 0)))

	// fresh lead has a follow-up but no next action: lands in NoDate
	drifting := env.createLead(t, "drifting-co")

	view, err := env.planner.GetPlannerView(ctx)
	require.NoError(t, err)

	require.Len(t, view.Overdue, 1)
	assert.Equal(t, overdue.ID, view.Overdue[0].ID)
	require.Len(t, view.Today, 1)
	assert.Equal(t, today.ID, view.Today[0].ID)
	require.Len(t, view.ThisWeek, 1)
	assert.Equal(t, thisWeek.ID, view.ThisWeek[0].ID)

	ids := map[int64]bool{}
	for _, l := range view.NoDate {
		ids[l.ID] = true
	}
	assert.True(t, ids[drifting.ID])
	assert.False(t, ids[nextMonth.ID], "a scheduled action is not a missing date")
}

func TestPlannerExcludesParkedLeads(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nurtured := env.createLead(t, "nurture-co")
	_, err := env.actions.MoveToNurture(ctx, nurtured.ID, 90, "long timeline")
	require.NoError(t, err)

	won := env.createLead(t, "won-co")
	_, err = env.actions.CloseAsWon(ctx, won.ID, "signed")
	require.NoError(t, err)

	view, err := env.planner.GetPlannerView(ctx)
	require.NoError(t, err)

	for _, l := range view.NoDate {
		assert.NotEqual(t, nurtured.ID, l.ID, "nurture leads are deliberately dateless far out")
		assert.NotEqual(t, won.ID, l.ID, "closed leads are done")
	}
}
