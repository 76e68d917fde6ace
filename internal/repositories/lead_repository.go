package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/loydmilligan/leadoff/internal/models"
)

const leadColumns = `id, company_name, contact_name, contact_title, phone, email,
	company_description, lead_source, current_stage, estimated_value,
	next_follow_up_date, last_activity_date,
	next_action_type, next_action_description, next_action_due_date,
	is_archived, archived_at, archive_reason, created_at, updated_at`

type LeadRepository struct {
	db Querier
}

func NewLeadRepository(db Querier) *LeadRepository {
	return &LeadRepository{db: db}
}

func scanLead(row interface{ Scan(dest ...any) error }) (*models.Lead, error) {
	l := &models.Lead{}
	err := row.Scan(
		&l.ID, &l.CompanyName, &l.ContactName, &l.ContactTitle, &l.Phone, &l.Email,
		&l.CompanyDescription, &l.LeadSource, &l.CurrentStage, &l.EstimatedValue,
		&l.NextFollowUpDate, &l.LastActivityDate,
		&l.NextActionType, &l.NextActionDescription, &l.NextActionDueDate,
		&l.IsArchived, &l.ArchivedAt, &l.ArchiveReason, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	const query = `
		INSERT INTO leads (
			company_name, contact_name, contact_title, phone, email,
			company_description, lead_source, current_stage, estimated_value,
			next_follow_up_date, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		lead.CompanyName, lead.ContactName, lead.ContactTitle, lead.Phone, lead.Email,
		lead.CompanyDescription, lead.LeadSource, lead.CurrentStage, lead.EstimatedValue,
		lead.NextFollowUpDate, lead.CreatedAt, lead.UpdatedAt,
	).Scan(&lead.ID)
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	lead, err := scanLead(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE email = $1 LIMIT 1`
	lead, err := scanLead(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// SearchByName returns up to limit leads whose company or contact name
// contains a given fragment. Empty fragments are skipped so they never match
// everything. Used by duplicate detection.
func (r *LeadRepository) SearchByName(ctx context.Context, companyName, contactName string, limit int) ([]*models.Lead, error) {
	var conds []string
	var args []any
	if companyName != "" {
		conds = append(conds, fmt.Sprintf("LOWER(company_name) LIKE LOWER($%d)", len(args)+1))
		args = append(args, "%"+companyName+"%")
	}
	if contactName != "" {
		conds = append(conds, fmt.Sprintf("LOWER(contact_name) LIKE LOWER($%d)", len(args)+1))
		args = append(args, "%"+contactName+"%")
	}
	if len(conds) == 0 {
		return nil, nil
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE ` + strings.Join(conds, " OR ") +
		fmt.Sprintf(" LIMIT $%d", len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

// List returns non-archived leads matching the filter, newest first, plus the
// total count for pagination.
func (r *LeadRepository) List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, int, error) {
	where := ` WHERE is_archived = FALSE`
	args := []any{}
	i := 1

	if filter.Stage != nil {
		where += fmt.Sprintf(" AND current_stage = $%d", i)
		args = append(args, *filter.Stage)
		i++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(
			" AND (LOWER(company_name) LIKE LOWER($%d) OR LOWER(contact_name) LIKE LOWER($%d) OR LOWER(email) LIKE LOWER($%d))",
			i, i+1, i+2)
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
		i += 3
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + leadColumns + ` FROM leads` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leads, err := collectLeads(rows)
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// Update persists the mutable lead detail fields. Stage changes go through
// ApplyStageTransition, never through here.
func (r *LeadRepository) Update(ctx context.Context, lead *models.Lead) error {
	const query = `
		UPDATE leads SET
			company_name=$1, contact_name=$2, contact_title=$3, phone=$4, email=$5,
			company_description=$6, lead_source=$7, estimated_value=$8,
			next_follow_up_date=$9,
			next_action_type=$10, next_action_description=$11, next_action_due_date=$12,
			updated_at=$13
		WHERE id=$14`
	_, err := r.db.ExecContext(ctx, query,
		lead.CompanyName, lead.ContactName, lead.ContactTitle, lead.Phone, lead.Email,
		lead.CompanyDescription, lead.LeadSource, lead.EstimatedValue,
		lead.NextFollowUpDate,
		lead.NextActionType, lead.NextActionDescription, lead.NextActionDueDate,
		lead.UpdatedAt, lead.ID,
	)
	return err
}

// StageWrite describes one stage transition write. FromStage is the caller's
// pre-image: the UPDATE only matches while the stored stage still equals it,
// so a concurrent transition on the same lead surfaces as "no match" instead
// of clobbering the audit trail.
type StageWrite struct {
	LeadID           int64
	FromStage        models.Stage
	ToStage          models.Stage
	NextFollowUpDate *time.Time
	LastActivityDate time.Time
	UpdatedAt        time.Time

	// Next-action fields, written only when SetNextAction is true.
	SetNextAction         bool
	NextActionType        string
	NextActionDescription string
	NextActionDueDate     *time.Time
}

// ApplyStageTransition performs the guarded stage write and reports whether
// the pre-image still matched.
func (r *LeadRepository) ApplyStageTransition(ctx context.Context, w StageWrite) (bool, error) {
	var res sql.Result
	var err error
	if w.SetNextAction {
		const query = `
			UPDATE leads SET
				current_stage=$1, next_follow_up_date=$2, last_activity_date=$3,
				next_action_type=$4, next_action_description=$5, next_action_due_date=$6,
				updated_at=$7
			WHERE id=$8 AND current_stage=$9`
		res, err = r.db.ExecContext(ctx, query,
			w.ToStage, w.NextFollowUpDate, w.LastActivityDate,
			w.NextActionType, w.NextActionDescription, w.NextActionDueDate,
			w.UpdatedAt, w.LeadID, w.FromStage,
		)
	} else {
		const query = `
			UPDATE leads SET
				current_stage=$1, next_follow_up_date=$2, last_activity_date=$3, updated_at=$4
			WHERE id=$5 AND current_stage=$6`
		res, err = r.db.ExecContext(ctx, query,
			w.ToStage, w.NextFollowUpDate, w.LastActivityDate,
			w.UpdatedAt, w.LeadID, w.FromStage,
		)
	}
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// TouchLastActivity stamps last_activity_date after an activity is logged.
func (r *LeadRepository) TouchLastActivity(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leads SET last_activity_date=$1, updated_at=$2 WHERE id=$3`, at, at, id)
	return err
}

// ListFollowUps returns non-archived, non-closed leads with a scheduled
// follow-up, ordered by that date ascending.
func (r *LeadRepository) ListFollowUps(ctx context.Context) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE is_archived = FALSE
		  AND next_follow_up_date IS NOT NULL
		  AND current_stage NOT IN ('CLOSED_WON', 'CLOSED_LOST')
		ORDER BY next_follow_up_date ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

// ListByNextAction returns non-archived leads whose next_action_due_date lies
// in [from, to), ordered by that date ascending.
func (r *LeadRepository) ListByNextAction(ctx context.Context, from, to time.Time) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE is_archived = FALSE
		  AND next_action_due_date IS NOT NULL
		  AND next_action_due_date >= $1 AND next_action_due_date < $2
		ORDER BY next_action_due_date ASC`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

// ListNextActionOverdue returns non-archived leads whose next_action_due_date
// is before the cutoff.
func (r *LeadRepository) ListNextActionOverdue(ctx context.Context, before time.Time) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE is_archived = FALSE
		  AND next_action_due_date IS NOT NULL
		  AND next_action_due_date < $1
		ORDER BY next_action_due_date ASC`
	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

// ListWithoutDates returns active pipeline leads (not closed, not in nurture)
// missing either a next action date or a follow-up date.
func (r *LeadRepository) ListWithoutDates(ctx context.Context) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE is_archived = FALSE
		  AND current_stage NOT IN ('CLOSED_WON', 'CLOSED_LOST', 'NURTURE_30_DAY', 'NURTURE_90_DAY')
		  AND (next_action_due_date IS NULL OR next_follow_up_date IS NULL)
		ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

func (r *LeadRepository) Archive(ctx context.Context, id int64, reason string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leads SET is_archived=TRUE, archived_at=$1, archive_reason=$2, updated_at=$3 WHERE id=$4`,
		at, reason, at, id)
	return err
}

func (r *LeadRepository) Restore(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leads SET is_archived=FALSE, archived_at=NULL, archive_reason='', updated_at=$1 WHERE id=$2`,
		at, id)
	return err
}

func (r *LeadRepository) ListArchived(ctx context.Context) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE is_archived = TRUE
		ORDER BY archived_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLeads(rows)
}

// Delete removes the lead and, via cascade, all of its owned records.
func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func collectLeads(rows *sql.Rows) ([]*models.Lead, error) {
	var out []*models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lead)
	}
	return out, rows.Err()
}
