package repositories

import (
	"context"
	"database/sql"

	"github.com/loydmilligan/leadoff/internal/models"
)

type StageHistoryRepository struct {
	db Querier
}

func NewStageHistoryRepository(db Querier) *StageHistoryRepository {
	return &StageHistoryRepository{db: db}
}

// Create appends one audit record. History rows are never updated or deleted
// except via the owning lead's cascade.
func (r *StageHistoryRepository) Create(ctx context.Context, h *models.StageHistory) error {
	const query = `
		INSERT INTO stage_history (lead_id, from_stage, to_stage, note, changed_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	var from any
	if h.FromStage != nil {
		from = string(*h.FromStage)
	}
	return r.db.QueryRowContext(ctx, query,
		h.LeadID, from, h.ToStage, h.Note, h.ChangedAt,
	).Scan(&h.ID)
}

// ListByLead returns the transition history for a lead, newest first.
func (r *StageHistoryRepository) ListByLead(ctx context.Context, leadID int64) ([]models.StageHistory, error) {
	const query = `
		SELECT id, lead_id, from_stage, to_stage, note, changed_at
		FROM stage_history
		WHERE lead_id = $1
		ORDER BY changed_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StageHistory
	for rows.Next() {
		var h models.StageHistory
		var from sql.NullString
		if err := rows.Scan(&h.ID, &h.LeadID, &from, &h.ToStage, &h.Note, &h.ChangedAt); err != nil {
			return nil, err
		}
		if from.Valid {
			s := models.Stage(from.String)
			h.FromStage = &s
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
