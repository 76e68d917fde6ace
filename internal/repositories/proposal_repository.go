package repositories

import (
	"context"
	"database/sql"

	"github.com/loydmilligan/leadoff/internal/models"
)

type ProposalRepository struct {
	db Querier
}

func NewProposalRepository(db Querier) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Upsert creates or replaces the lead's proposal, keyed by lead id.
func (r *ProposalRepository) Upsert(ctx context.Context, p *models.Proposal) error {
	const query = `
		INSERT INTO proposals (
			lead_id, proposal_date, estimated_value, status, valid_until, notes,
			created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (lead_id) DO UPDATE SET
			proposal_date=EXCLUDED.proposal_date,
			estimated_value=EXCLUDED.estimated_value,
			status=EXCLUDED.status,
			valid_until=EXCLUDED.valid_until,
			notes=EXCLUDED.notes,
			updated_at=EXCLUDED.updated_at
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.LeadID, p.ProposalDate, p.EstimatedValue, p.Status, p.ValidUntil, p.Notes,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *ProposalRepository) GetByLeadID(ctx context.Context, leadID int64) (*models.Proposal, error) {
	const query = `
		SELECT id, lead_id, proposal_date, estimated_value, status, valid_until, notes,
			created_at, updated_at
		FROM proposals WHERE lead_id = $1`
	p := &models.Proposal{}
	err := r.db.QueryRowContext(ctx, query, leadID).Scan(
		&p.ID, &p.LeadID, &p.ProposalDate, &p.EstimatedValue, &p.Status, &p.ValidUntil,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProposalRepository) Delete(ctx context.Context, leadID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM proposals WHERE lead_id = $1`, leadID)
	return err
}
