package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/repositories"
	"github.com/loydmilligan/leadoff/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store   *repositories.Store
	leads   *LeadService
	actions *LeadActionService
	archive *ArchiveService
	planner *PlannerService
	demos   *DemoService
	now     time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewTestDB(t)
	store := repositories.NewStore(db)
	log := logger.New("error")
	calc := NewFollowUpCalculator(log)

	env := &testEnv{store: store, now: testNow}
	clock := func() time.Time { return env.now }

	env.leads = NewLeadService(store, calc, log).WithClock(clock)
	env.actions = NewLeadActionService(store, log).WithClock(clock)
	env.archive = NewArchiveService(store, log).WithClock(clock)
	env.planner = NewPlannerService(store, log).WithClock(clock)
	env.demos = NewDemoService(store, log).WithClock(clock)
	return env
}

func (e *testEnv) createLead(t *testing.T, company string) *models.Lead {
	t.Helper()
	lead, err := e.leads.CreateLead(context.Background(), CreateLeadInput{
		CompanyName: company,
		ContactName: "Jane Doe",
		Email:       "jane@" + company + ".example",
	})
	require.NoError(t, err)
	return lead
}

// moveTo walks the lead to the target stage through UpdateStage.
func (e *testEnv) moveTo(t *testing.T, leadID int64, stage models.Stage) *models.Lead {
	t.Helper()
	lead, err := e.leads.UpdateStage(context.Background(), leadID, UpdateStageInput{Stage: stage})
	require.NoError(t, err)
	return lead
}

func (e *testEnv) setFollowUp(t *testing.T, leadID int64, at *time.Time) {
	t.Helper()
	ctx := context.Background()
	lead, err := e.store.Leads.GetByID(ctx, leadID)
	require.NoError(t, err)
	require.NotNil(t, lead)
	lead.NextFollowUpDate = at
	require.NoError(t, e.store.Leads.Update(ctx, lead))
}
