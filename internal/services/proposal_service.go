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

type ProposalService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewProposalService(store *repositories.Store, log logger.Logger) *ProposalService {
	return &ProposalService{store: store, log: log, now: time.Now}
}

type ProposalInput struct {
	ProposalDate   *time.Time            `json:"proposalDate"`
	EstimatedValue *float64              `json:"estimatedValue"`
	Status         models.ProposalStatus `json:"status"`
	ValidUntil     *time.Time            `json:"validUntil"`
	Notes          string                `json:"notes"`
}

// Upsert creates or replaces the lead's proposal record.
func (s *ProposalService) Upsert(ctx context.Context, leadID int64, in ProposalInput) (*models.Proposal, error) {
	lead, err := s.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	if in.EstimatedValue != nil && *in.EstimatedValue <= 0 {
		return nil, domain.NewValidationError("estimated value must be positive")
	}
	switch in.Status {
	case "", models.ProposalDraft, models.ProposalSent, models.ProposalViewed,
		models.ProposalAccepted, models.ProposalRejected, models.ProposalExpired:
	default:
		return nil, domain.NewValidationError(fmt.Sprintf("unknown proposal status %q", in.Status))
	}
	if in.Status == "" {
		in.Status = models.ProposalDraft
	}

	now := s.now()
	proposal := &models.Proposal{
		LeadID:         leadID,
		ProposalDate:   in.ProposalDate,
		EstimatedValue: in.EstimatedValue,
		Status:         in.Status,
		ValidUntil:     in.ValidUntil,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Proposals.Upsert(ctx, proposal); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return proposal, nil
}

func (s *ProposalService) GetByLead(ctx context.Context, leadID int64) (*models.Proposal, error) {
	proposal, err := s.store.Proposals.GetByLeadID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if proposal == nil {
		return nil, domain.NewNotFoundError("proposal")
	}
	return proposal, nil
}
