package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/loydmilligan/leadoff/internal/models"
)

const demoColumns = `id, lead_id, demo_date, demo_type, attendees, demo_outcome,
	user_count_estimate, follow_up_required, notes, created_at, updated_at`

type DemoDetailsRepository struct {
	db Querier
}

func NewDemoDetailsRepository(db Querier) *DemoDetailsRepository {
	return &DemoDetailsRepository{db: db}
}

func scanDemo(row interface{ Scan(dest ...any) error }) (*models.DemoDetails, error) {
	d := &models.DemoDetails{}
	err := row.Scan(
		&d.ID, &d.LeadID, &d.DemoDate, &d.DemoType, &d.Attendees, &d.DemoOutcome,
		&d.UserCountEstimate, &d.FollowUpRequired, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Upsert creates or replaces the lead's demo details, keyed by lead id.
func (r *DemoDetailsRepository) Upsert(ctx context.Context, d *models.DemoDetails) error {
	const query = `
		INSERT INTO demo_details (
			lead_id, demo_date, demo_type, attendees, demo_outcome,
			user_count_estimate, follow_up_required, notes, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (lead_id) DO UPDATE SET
			demo_date=EXCLUDED.demo_date,
			demo_type=EXCLUDED.demo_type,
			attendees=EXCLUDED.attendees,
			demo_outcome=EXCLUDED.demo_outcome,
			user_count_estimate=EXCLUDED.user_count_estimate,
			follow_up_required=EXCLUDED.follow_up_required,
			notes=EXCLUDED.notes,
			updated_at=EXCLUDED.updated_at
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		d.LeadID, d.DemoDate, d.DemoType, d.Attendees, d.DemoOutcome,
		d.UserCountEstimate, d.FollowUpRequired, d.Notes, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
}

func (r *DemoDetailsRepository) GetByLeadID(ctx context.Context, leadID int64) (*models.DemoDetails, error) {
	query := `SELECT ` + demoColumns + ` FROM demo_details WHERE lead_id = $1`
	d, err := scanDemo(r.db.QueryRowContext(ctx, query, leadID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListUpcoming returns demos scheduled at or after now, soonest first.
func (r *DemoDetailsRepository) ListUpcoming(ctx context.Context, now time.Time) ([]models.DemoDetails, error) {
	query := `SELECT ` + demoColumns + ` FROM demo_details
		WHERE demo_date IS NOT NULL AND demo_date >= $1
		ORDER BY demo_date ASC`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DemoDetails
	for rows.Next() {
		d, err := scanDemo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *DemoDetailsRepository) Delete(ctx context.Context, leadID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM demo_details WHERE lead_id = $1`, leadID)
	return err
}
