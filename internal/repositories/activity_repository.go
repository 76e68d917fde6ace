package repositories

import (
	"context"
	"database/sql"

	"github.com/loydmilligan/leadoff/internal/models"
)

const activityColumns = `id, lead_id, type, subject, notes, completed, completed_at, due_date, created_at`

type ActivityRepository struct {
	db Querier
}

func NewActivityRepository(db Querier) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func scanActivity(row interface{ Scan(dest ...any) error }) (*models.Activity, error) {
	a := &models.Activity{}
	err := row.Scan(
		&a.ID, &a.LeadID, &a.Type, &a.Subject, &a.Notes,
		&a.Completed, &a.CompletedAt, &a.DueDate, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ActivityRepository) Create(ctx context.Context, a *models.Activity) error {
	const query = `
		INSERT INTO activities (lead_id, type, subject, notes, completed, completed_at, due_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.LeadID, a.Type, a.Subject, a.Notes, a.Completed, a.CompletedAt, a.DueDate, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByLead returns a lead's activities, newest first. limit <= 0 means all.
func (r *ActivityRepository) ListByLead(ctx context.Context, leadID int64, limit int) ([]models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE lead_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{leadID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *ActivityRepository) Update(ctx context.Context, a *models.Activity) error {
	const query = `
		UPDATE activities SET
			type=$1, subject=$2, notes=$3, completed=$4, completed_at=$5, due_date=$6
		WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query,
		a.Type, a.Subject, a.Notes, a.Completed, a.CompletedAt, a.DueDate, a.ID)
	return err
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	return err
}
