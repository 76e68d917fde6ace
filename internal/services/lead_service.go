package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/repositories"
)

// upcomingFollowUpWindow caps the "upcoming" bucket of the follow-up view.
const upcomingFollowUpWindow = 7 * 24 * time.Hour

// recentActivityLimit bounds how many activities ride along with each lead
// in the follow-up view.
const recentActivityLimit = 5

type LeadService struct {
	store *repositories.Store
	calc  *FollowUpCalculator
	log   logger.Logger
	now   func() time.Time
}

func NewLeadService(store *repositories.Store, calc *FollowUpCalculator, log logger.Logger) *LeadService {
	return &LeadService{
		store: store,
		calc:  calc,
		log:   log,
		now:   time.Now,
	}
}

// WithClock replaces the service clock. Tests use this to pin time.
func (s *LeadService) WithClock(now func() time.Time) *LeadService {
	s.now = now
	return s
}

type CreateLeadInput struct {
	CompanyName        string   `json:"companyName" binding:"required"`
	ContactName        string   `json:"contactName" binding:"required"`
	ContactTitle       string   `json:"contactTitle"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email" binding:"omitempty,email"`
	CompanyDescription string   `json:"companyDescription"`
	LeadSource         string   `json:"leadSource"`
	EstimatedValue     *float64 `json:"estimatedValue"`
}

// CreateLead registers a new lead. Every lead enters the pipeline at INQUIRY
// with its first follow-up scheduled a day out, and the creation itself is
// the first history record.
func (s *LeadService) CreateLead(ctx context.Context, in CreateLeadInput) (*models.Lead, error) {
	if len(strings.TrimSpace(in.CompanyName)) < 2 {
		return nil, domain.NewValidationError("company name must be at least 2 characters")
	}
	if len(strings.TrimSpace(in.ContactName)) < 2 {
		return nil, domain.NewValidationError("contact name must be at least 2 characters")
	}
	if in.Phone == "" && in.Email == "" {
		return nil, domain.NewValidationError("at least one contact method (phone or email) is required")
	}

	now := s.now()
	lead := &models.Lead{
		CompanyName:        strings.TrimSpace(in.CompanyName),
		ContactName:        strings.TrimSpace(in.ContactName),
		ContactTitle:       in.ContactTitle,
		Phone:              in.Phone,
		Email:              in.Email,
		CompanyDescription: in.CompanyDescription,
		LeadSource:         in.LeadSource,
		CurrentStage:       models.StageInquiry,
		EstimatedValue:     in.EstimatedValue,
		NextFollowUpDate:   s.calc.NextFollowUp(models.StageInquiry, now, nil),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.store.InTx(ctx, func(r *repositories.Repos) error {
		if err := r.Leads.Create(ctx, lead); err != nil {
			return err
		}
		return r.StageHistory.Create(ctx, &models.StageHistory{
			LeadID:    lead.ID,
			FromStage: nil,
			ToStage:   models.StageInquiry,
			Note:      "Lead created",
			ChangedAt: now,
		})
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.log.Info("lead created", "lead_id", lead.ID, "company", lead.CompanyName)
	return lead, nil
}

func (s *LeadService) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	return lead, nil
}

// LeadDetail is the full aggregate for a single lead view.
type LeadDetail struct {
	*models.Lead
	StageHistory     []models.StageHistory    `json:"stage_history"`
	OrganizationInfo *models.OrganizationInfo `json:"organization_info,omitempty"`
	DemoDetails      *models.DemoDetails      `json:"demo_details,omitempty"`
	Proposal         *models.Proposal         `json:"proposal,omitempty"`
	LostReason       *models.LostReason       `json:"lost_reason,omitempty"`
}

func (s *LeadService) GetLeadDetail(ctx context.Context, id int64) (*LeadDetail, error) {
	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &LeadDetail{Lead: lead}
	r := s.store.Repos

	if detail.Lead.Activities, err = r.Activities.ListByLead(ctx, id, 0); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if detail.StageHistory, err = r.StageHistory.ListByLead(ctx, id); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if detail.OrganizationInfo, err = r.Organization.GetByLeadID(ctx, id); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if detail.DemoDetails, err = r.Demos.GetByLeadID(ctx, id); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if detail.Proposal, err = r.Proposals.GetByLeadID(ctx, id); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if detail.LostReason, err = r.LostReasons.GetByLeadID(ctx, id); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return detail, nil
}

func (s *LeadService) ListLeads(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	leads, total, err := s.store.Leads.List(ctx, filter)
	if err != nil {
		return nil, 0, domain.NewInternalError(err)
	}
	return leads, total, nil
}

type UpdateLeadInput struct {
	CompanyName        *string  `json:"companyName"`
	ContactName        *string  `json:"contactName"`
	ContactTitle       *string  `json:"contactTitle"`
	Phone              *string  `json:"phone"`
	Email              *string  `json:"email" binding:"omitempty,email"`
	CompanyDescription *string  `json:"companyDescription"`
	LeadSource         *string  `json:"leadSource"`
	EstimatedValue     *float64 `json:"estimatedValue"`

	NextActionType        *string    `json:"nextActionType"`
	NextActionDescription *string    `json:"nextActionDescription"`
	NextActionDueDate     *time.Time `json:"nextActionDueDate"`
}

// UpdateLead patches detail fields. It never touches the stage; stage moves
// go through UpdateStage or the transition actions.
func (s *LeadService) UpdateLead(ctx context.Context, id int64, in UpdateLeadInput) (*models.Lead, error) {
	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CompanyName != nil {
		if len(strings.TrimSpace(*in.CompanyName)) < 2 {
			return nil, domain.NewValidationError("company name must be at least 2 characters")
		}
		lead.CompanyName = strings.TrimSpace(*in.CompanyName)
	}
	if in.ContactName != nil {
		if len(strings.TrimSpace(*in.ContactName)) < 2 {
			return nil, domain.NewValidationError("contact name must be at least 2 characters")
		}
		lead.ContactName = strings.TrimSpace(*in.ContactName)
	}
	if in.ContactTitle != nil {
		lead.ContactTitle = *in.ContactTitle
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.CompanyDescription != nil {
		lead.CompanyDescription = *in.CompanyDescription
	}
	if in.LeadSource != nil {
		lead.LeadSource = *in.LeadSource
	}
	if in.EstimatedValue != nil {
		lead.EstimatedValue = in.EstimatedValue
	}
	if in.NextActionType != nil {
		lead.NextActionType = *in.NextActionType
	}
	if in.NextActionDescription != nil {
		lead.NextActionDescription = *in.NextActionDescription
	}
	if in.NextActionDueDate != nil {
		lead.NextActionDueDate = in.NextActionDueDate
	}

	lead.UpdatedAt = s.now()
	if err := s.store.Leads.Update(ctx, lead); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return lead, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, id int64) error {
	if _, err := s.GetLead(ctx, id); err != nil {
		return err
	}
	if err := s.store.Leads.Delete(ctx, id); err != nil {
		return domain.NewInternalError(err)
	}
	s.log.Info("lead deleted", "lead_id", id)
	return nil
}

// SearchSimilarLeads finds potential duplicates of a lead about to be
// created: exact email match first, then fuzzy company/contact name matches.
func (s *LeadService) SearchSimilarLeads(ctx context.Context, companyName, contactName, email string) ([]*models.Lead, error) {
	var out []*models.Lead
	seen := map[int64]bool{}

	if email != "" {
		match, err := s.store.Leads.FindByEmail(ctx, email)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		if match != nil {
			out = append(out, match)
			seen[match.ID] = true
		}
	}

	if companyName != "" || contactName != "" {
		matches, err := s.store.Leads.SearchByName(ctx, companyName, contactName, 10)
		if err != nil {
			return nil, domain.NewInternalError(err)
		}
		for _, m := range matches {
			if !seen[m.ID] {
				out = append(out, m)
				seen[m.ID] = true
			}
		}
	}
	return out, nil
}

// LostReasonInput carries the optional lost-reason fields of a stage update.
type LostReasonInput struct {
	Reason         models.LostReasonCategory `json:"reason"`
	CompetitorName string                    `json:"competitorName"`
	Notes          string                    `json:"notes"`
}

type UpdateStageInput struct {
	Stage      models.Stage     `json:"stage" binding:"required"`
	Note       string           `json:"note"`
	DemoDate   *time.Time       `json:"demoDate"`
	LostReason *LostReasonInput `json:"lostReason"`
}

// UpdateStage is the general-purpose stage move. Closed deals are terminal:
// any attempt to move one to a different stage fails. The new follow-up date
// is derived from the target stage, and the write carries the lead's
// pre-transition stage as a guard so a concurrent move surfaces as a
// conflict rather than a corrupted history trail.
func (s *LeadService) UpdateStage(ctx context.Context, id int64, in UpdateStageInput) (*models.Lead, error) {
	if !in.Stage.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown stage %q", in.Stage))
	}

	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	fromStage := lead.CurrentStage
	if fromStage.IsClosed() && in.Stage != fromStage {
		return nil, domain.NewClosedDealImmutableError()
	}
	if in.Stage == models.StageClosedLost && in.LostReason == nil {
		return nil, domain.NewLostReasonRequiredError()
	}
	if in.LostReason != nil {
		if !in.LostReason.Reason.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("unknown lost reason %q", in.LostReason.Reason))
		}
		if in.LostReason.Reason == models.LostReasonCompetitor && in.LostReason.CompetitorName == "" {
			return nil, domain.NewValidationError("competitor name is required when lost to a competitor")
		}
	}

	now := s.now()
	var followUp *time.Time
	if !in.Stage.IsClosed() {
		followUp = s.calc.NextFollowUp(in.Stage, now, in.DemoDate)
	}

	note := in.Note
	if note == "" {
		note = fmt.Sprintf("Stage changed from %s to %s", fromStage, in.Stage)
	}

	err = s.store.InTx(ctx, func(r *repositories.Repos) error {
		matched, err := r.Leads.ApplyStageTransition(ctx, repositories.StageWrite{
			LeadID:           id,
			FromStage:        fromStage,
			ToStage:          in.Stage,
			NextFollowUpDate: followUp,
			LastActivityDate: now,
			UpdatedAt:        now,
		})
		if err != nil {
			return err
		}
		if !matched {
			return domain.NewConflictError("lead stage changed concurrently, retry")
		}

		if err := r.StageHistory.Create(ctx, &models.StageHistory{
			LeadID:    id,
			FromStage: &fromStage,
			ToStage:   in.Stage,
			Note:      note,
			ChangedAt: now,
		}); err != nil {
			return err
		}

		if in.Stage == models.StageClosedLost && in.LostReason != nil {
			return r.LostReasons.Upsert(ctx, &models.LostReason{
				LeadID:         id,
				Reason:         in.LostReason.Reason,
				CompetitorName: in.LostReason.CompetitorName,
				LostDate:       now,
				Notes:          in.LostReason.Notes,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
		return nil
	})
	if err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError(err)
	}

	s.log.Info("lead stage updated", "lead_id", id, "from", string(fromStage), "to", string(in.Stage))
	return s.GetLead(ctx, id)
}

// ValidateTransitionByID loads the lead aggregate and runs the stage
// admissibility check for the target stage, without mutating anything.
// Callers use it to preview a move before committing.
func (s *LeadService) ValidateTransitionByID(ctx context.Context, id int64, target models.Stage, force bool) (StageValidationResult, error) {
	if !target.IsValid() {
		return StageValidationResult{}, domain.NewValidationError(fmt.Sprintf("unknown stage %q", target))
	}

	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return StageValidationResult{}, domain.NewInternalError(err)
	}

	var rel models.LeadRelated
	if lead != nil {
		r := s.store.Repos
		if rel.OrganizationInfo, err = r.Organization.GetByLeadID(ctx, id); err != nil {
			return StageValidationResult{}, domain.NewInternalError(err)
		}
		if rel.DemoDetails, err = r.Demos.GetByLeadID(ctx, id); err != nil {
			return StageValidationResult{}, domain.NewInternalError(err)
		}
		if rel.Proposal, err = r.Proposals.GetByLeadID(ctx, id); err != nil {
			return StageValidationResult{}, domain.NewInternalError(err)
		}
		if rel.LostReason, err = r.LostReasons.GetByLeadID(ctx, id); err != nil {
			return StageValidationResult{}, domain.NewInternalError(err)
		}
	}

	return ValidateTransition(lead, rel, target, force, s.now()), nil
}

// FollowUpBuckets is the prioritized follow-up work view.
type FollowUpBuckets struct {
	Overdue  []*models.Lead `json:"overdue"`
	Today    []*models.Lead `json:"today"`
	Upcoming []*models.Lead `json:"upcoming"`
}

// GetFollowUpLeads partitions active leads by follow-up urgency. Leads whose
// follow-up falls more than a week out are left off the view entirely, and
// each lead carries its most recent activities for context.
func (s *LeadService) GetFollowUpLeads(ctx context.Context) (*FollowUpBuckets, error) {
	leads, err := s.store.Leads.ListFollowUps(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	now := s.now()
	horizon := now.Add(upcomingFollowUpWindow)
	buckets := &FollowUpBuckets{
		Overdue:  []*models.Lead{},
		Today:    []*models.Lead{},
		Upcoming: []*models.Lead{},
	}

	for _, lead := range leads {
		status := ClassifyFollowUp(lead.NextFollowUpDate, now)
		if status == FollowUpUpcoming && lead.NextFollowUpDate.After(horizon) {
			continue
		}

		if lead.Activities, err = s.store.Activities.ListByLead(ctx, lead.ID, recentActivityLimit); err != nil {
			return nil, domain.NewInternalError(err)
		}

		switch status {
		case FollowUpOverdue:
			buckets.Overdue = append(buckets.Overdue, lead)
		case FollowUpToday:
			buckets.Today = append(buckets.Today, lead)
		case FollowUpUpcoming:
			buckets.Upcoming = append(buckets.Upcoming, lead)
		}
	}
	return buckets, nil
}
