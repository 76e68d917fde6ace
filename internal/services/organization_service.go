package services

import (
	"context"
	"time"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/repositories"
)

type OrganizationService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewOrganizationService(store *repositories.Store, log logger.Logger) *OrganizationService {
	return &OrganizationService{store: store, log: log, now: time.Now}
}

type OrganizationInfoInput struct {
	EmployeeCount     *int     `json:"employeeCount"`
	AnnualRevenue     *float64 `json:"annualRevenue"`
	Industry          string   `json:"industry"`
	DecisionMaker     string   `json:"decisionMaker"`
	DecisionMakerRole string   `json:"decisionMakerRole"`
	CurrentSolution   string   `json:"currentSolution"`
	PainPoints        string   `json:"painPoints"`
	Budget            *float64 `json:"budget"`
	Timeline          string   `json:"timeline"`
}

// Upsert creates or replaces the lead's organization record.
func (s *OrganizationService) Upsert(ctx context.Context, leadID int64, in OrganizationInfoInput) (*models.OrganizationInfo, error) {
	lead, err := s.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	if in.EmployeeCount != nil && *in.EmployeeCount < 0 {
		return nil, domain.NewValidationError("employee count cannot be negative")
	}

	now := s.now()
	info := &models.OrganizationInfo{
		LeadID:            leadID,
		EmployeeCount:     in.EmployeeCount,
		AnnualRevenue:     in.AnnualRevenue,
		Industry:          in.Industry,
		DecisionMaker:     in.DecisionMaker,
		DecisionMakerRole: in.DecisionMakerRole,
		CurrentSolution:   in.CurrentSolution,
		PainPoints:        in.PainPoints,
		Budget:            in.Budget,
		Timeline:          in.Timeline,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.store.Organization.Upsert(ctx, info); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return info, nil
}

func (s *OrganizationService) GetByLead(ctx context.Context, leadID int64) (*models.OrganizationInfo, error) {
	info, err := s.store.Organization.GetByLeadID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if info == nil {
		return nil, domain.NewNotFoundError("organization info")
	}
	return info, nil
}
