package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/testutil"
)

var repoNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newLead(t *testing.T, store *Store, company string) *models.Lead {
	t.Helper()
	lead := &models.Lead{
		CompanyName:  company,
		ContactName:  "Jane Doe",
		Email:        "jane@" + company + ".example",
		CurrentStage: models.StageInquiry,
		CreatedAt:    repoNow,
		UpdatedAt:    repoNow,
	}
	require.NoError(t, store.Leads.Create(context.Background(), lead))
	require.NotZero(t, lead.ID)
	return lead
}

func TestApplyStageTransitionGuard(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))
	ctx := context.Background()
	lead := newLead(t, store, "acme")

	t.Run("matching pre-image applies", func(t *testing.T) {
		matched, err := store.Leads.ApplyStageTransition(ctx, StageWrite{
			LeadID:           lead.ID,
			FromStage:        models.StageInquiry,
			ToStage:          models.StageQualification,
			LastActivityDate: repoNow,
			UpdatedAt:        repoNow,
		})
		require.NoError(t, err)
		assert.True(t, matched)

		got, err := store.Leads.GetByID(ctx, lead.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StageQualification, got.CurrentStage)
	})

	t.Run("stale pre-image does not apply", func(t *testing.T) {
		matched, err := store.Leads.ApplyStageTransition(ctx, StageWrite{
			LeadID:           lead.ID,
			FromStage:        models.StageInquiry, // already QUALIFICATION
			ToStage:          models.StageOpportunity,
			LastActivityDate: repoNow,
			UpdatedAt:        repoNow,
		})
		require.NoError(t, err)
		assert.False(t, matched)

		got, err := store.Leads.GetByID(ctx, lead.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StageQualification, got.CurrentStage, "stale write must not clobber")
	})
}

func TestInTxRollsBackOnError(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))
	ctx := context.Background()
	lead := newLead(t, store, "acme")

	boom := errors.New("boom")
	err := store.InTx(ctx, func(r *Repos) error {
		matched, err := r.Leads.ApplyStageTransition(ctx, StageWrite{
			LeadID:           lead.ID,
			FromStage:        models.StageInquiry,
			ToStage:          models.StageClosedWon,
			LastActivityDate: repoNow,
			UpdatedAt:        repoNow,
		})
		require.NoError(t, err)
		require.True(t, matched)

		if err := r.StageHistory.Create(ctx, &models.StageHistory{
			LeadID:    lead.ID,
			ToStage:   models.StageClosedWon,
			ChangedAt: repoNow,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Leads.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageInquiry, got.CurrentStage, "stage write rolled back")

	history, err := store.StageHistory.ListByLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, history, "history write rolled back")
}

func TestLostReasonUpsertReplaces(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))
	ctx := context.Background()
	lead := newLead(t, store, "acme")

	first := &models.LostReason{
		LeadID:    lead.ID,
		Reason:    models.LostReasonPrice,
		LostDate:  repoNow,
		CreatedAt: repoNow,
		UpdatedAt: repoNow,
	}
	require.NoError(t, store.LostReasons.Upsert(ctx, first))

	second := &models.LostReason{
		LeadID:         lead.ID,
		Reason:         models.LostReasonCompetitor,
		CompetitorName: "Rival Inc",
		LostDate:       repoNow.AddDate(0, 0, 1),
		CreatedAt:      repoNow,
		UpdatedAt:      repoNow.AddDate(0, 0, 1),
	}
	require.NoError(t, store.LostReasons.Upsert(ctx, second))

	got, err := store.LostReasons.GetByLeadID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.LostReasonCompetitor, got.Reason)
	assert.Equal(t, "Rival Inc", got.CompetitorName)
	assert.Equal(t, first.ID, got.ID, "one row per lead")
}

func TestListPaginationAndSearch(t *testing.T) {
	store := NewStore(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Globex", "Initech", "Hooli", "Globex Europe"} {
		newLead(t, store, name)
	}

	leads, total, err := store.Leads.List(ctx, models.LeadFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, leads, 2)

	leads, total, err = store.Leads.List(ctx, models.LeadFilter{Search: "globex", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, leads, 2)

	stage := models.StageInquiry
	_, total, err = store.Leads.List(ctx, models.LeadFilter{Stage: &stage, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}
