package services

import (
	"context"
	"fmt"
	"time"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/repositories"
)

type LostReasonService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewLostReasonService(store *repositories.Store, log logger.Logger) *LostReasonService {
	return &LostReasonService{store: store, log: log, now: time.Now}
}

type LostReasonUpsertInput struct {
	Reason         models.LostReasonCategory `json:"reason" binding:"required"`
	CompetitorName string                    `json:"competitorName"`
	LostDate       *time.Time                `json:"lostDate"`
	Notes          string                    `json:"notes"`
}

// Upsert creates or replaces the lead's lost-reason record. Competitor name
// is mandatory exactly when the reason is COMPETITOR.
func (s *LostReasonService) Upsert(ctx context.Context, leadID int64, in LostReasonUpsertInput) (*models.LostReason, error) {
	lead, err := s.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	if !in.Reason.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown lost reason %q", in.Reason))
	}
	if in.Reason == models.LostReasonCompetitor && in.CompetitorName == "" {
		return nil, domain.NewValidationError("competitor name is required when lost to a competitor")
	}

	now := s.now()
	lostDate := now
	if in.LostDate != nil {
		lostDate = *in.LostDate
	}
	lr := &models.LostReason{
		LeadID:         leadID,
		Reason:         in.Reason,
		CompetitorName: in.CompetitorName,
		LostDate:       lostDate,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.LostReasons.Upsert(ctx, lr); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return lr, nil
}

func (s *LostReasonService) GetByLead(ctx context.Context, leadID int64) (*models.LostReason, error) {
	lr, err := s.store.LostReasons.GetByLeadID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lr == nil {
		return nil, domain.NewNotFoundError("lost reason")
	}
	return lr, nil
}
