package repositories

import (
	"context"
	"database/sql"

	"github.com/loydmilligan/leadoff/internal/models"
)

type LostReasonRepository struct {
	db Querier
}

func NewLostReasonRepository(db Querier) *LostReasonRepository {
	return &LostReasonRepository{db: db}
}

// Upsert creates or replaces the lead's lost reason, keyed by lead id.
func (r *LostReasonRepository) Upsert(ctx context.Context, lr *models.LostReason) error {
	const query = `
		INSERT INTO lost_reasons (lead_id, reason, competitor_name, lost_date, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (lead_id) DO UPDATE SET
			reason=EXCLUDED.reason,
			competitor_name=EXCLUDED.competitor_name,
			lost_date=EXCLUDED.lost_date,
			notes=EXCLUDED.notes,
			updated_at=EXCLUDED.updated_at
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		lr.LeadID, lr.Reason, lr.CompetitorName, lr.LostDate, lr.Notes, lr.CreatedAt, lr.UpdatedAt,
	).Scan(&lr.ID)
}

func (r *LostReasonRepository) GetByLeadID(ctx context.Context, leadID int64) (*models.LostReason, error) {
	const query = `
		SELECT id, lead_id, reason, competitor_name, lost_date, notes, created_at, updated_at
		FROM lost_reasons WHERE lead_id = $1`
	lr := &models.LostReason{}
	err := r.db.QueryRowContext(ctx, query, leadID).Scan(
		&lr.ID, &lr.LeadID, &lr.Reason, &lr.CompetitorName, &lr.LostDate,
		&lr.Notes, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lr, nil
}

func (r *LostReasonRepository) Delete(ctx context.Context, leadID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lost_reasons WHERE lead_id = $1`, leadID)
	return err
}
