package repositories

import (
	"context"
	"database/sql"

	"github.com/loydmilligan/leadoff/internal/models"
)

type OrganizationInfoRepository struct {
	db Querier
}

func NewOrganizationInfoRepository(db Querier) *OrganizationInfoRepository {
	return &OrganizationInfoRepository{db: db}
}

// Upsert creates or replaces the lead's organization info, keyed by lead id.
func (r *OrganizationInfoRepository) Upsert(ctx context.Context, o *models.OrganizationInfo) error {
	const query = `
		INSERT INTO organization_info (
			lead_id, employee_count, annual_revenue, industry, decision_maker,
			decision_maker_role, current_solution, pain_points, budget, timeline,
			created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (lead_id) DO UPDATE SET
			employee_count=EXCLUDED.employee_count,
			annual_revenue=EXCLUDED.annual_revenue,
			industry=EXCLUDED.industry,
			decision_maker=EXCLUDED.decision_maker,
			decision_maker_role=EXCLUDED.decision_maker_role,
			current_solution=EXCLUDED.current_solution,
			pain_points=EXCLUDED.pain_points,
			budget=EXCLUDED.budget,
			timeline=EXCLUDED.timeline,
			updated_at=EXCLUDED.updated_at
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		o.LeadID, o.EmployeeCount, o.AnnualRevenue, o.Industry, o.DecisionMaker,
		o.DecisionMakerRole, o.CurrentSolution, o.PainPoints, o.Budget, o.Timeline,
		o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
}

func (r *OrganizationInfoRepository) GetByLeadID(ctx context.Context, leadID int64) (*models.OrganizationInfo, error) {
	const query = `
		SELECT id, lead_id, employee_count, annual_revenue, industry, decision_maker,
			decision_maker_role, current_solution, pain_points, budget, timeline,
			created_at, updated_at
		FROM organization_info WHERE lead_id = $1`
	o := &models.OrganizationInfo{}
	err := r.db.QueryRowContext(ctx, query, leadID).Scan(
		&o.ID, &o.LeadID, &o.EmployeeCount, &o.AnnualRevenue, &o.Industry, &o.DecisionMaker,
		&o.DecisionMakerRole, &o.CurrentSolution, &o.PainPoints, &o.Budget, &o.Timeline,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrganizationInfoRepository) Delete(ctx context.Context, leadID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM organization_info WHERE lead_id = $1`, leadID)
	return err
}
