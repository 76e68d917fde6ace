package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/models"
)

func TestArchiveAndRestore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")

	archived, err := env.archive.Archive(ctx, lead.ID, "went dark")
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
	assert.Equal(t, "went dark", archived.ArchiveReason)
	require.NotNil(t, archived.ArchivedAt)

	_, err = env.archive.Archive(ctx, lead.ID, "again")
	assert.True(t, domain.IsValidation(err), "double archive rejected")

	list, err := env.archive.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, lead.ID, list[0].ID)

	// archived leads drop out of the active listing
	active, total, err := env.leads.ListLeads(ctx, leadFilterAll())
	require.NoError(t, err)
	assert.Empty(t, active)
	assert.Zero(t, total)

	restored, err := env.archive.Restore(ctx, lead.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
	assert.Nil(t, restored.ArchivedAt)

	_, err = env.archive.Restore(ctx, lead.ID)
	assert.True(t, domain.IsValidation(err), "restore of active lead rejected")
}

func TestArchiveValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")

	_, err := env.archive.Archive(ctx, lead.ID, "  ")
	assert.True(t, domain.IsValidation(err))

	_, err = env.archive.Archive(ctx, 9999, "reason")
	assert.True(t, domain.IsNotFound(err))
}

func TestPurge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	lead := env.createLead(t, "acme")

	err := env.archive.Purge(ctx, lead.ID)
	assert.True(t, domain.IsValidation(err), "active leads cannot be purged")

	_, err = env.archive.Archive(ctx, lead.ID, "dead end")
	require.NoError(t, err)
	require.NoError(t, env.archive.Purge(ctx, lead.ID))

	_, err = env.leads.GetLead(ctx, lead.ID)
	assert.True(t, domain.IsNotFound(err))

	// owned records go with the lead
	history, err := env.store.StageHistory.ListByLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func leadFilterAll() (f models.LeadFilter) {
	f.Page = 1
	f.Limit = 50
	return f
}
