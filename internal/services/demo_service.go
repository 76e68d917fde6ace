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

type DemoService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewDemoService(store *repositories.Store, log logger.Logger) *DemoService {
	return &DemoService{store: store, log: log, now: time.Now}
}

func (s *DemoService) WithClock(now func() time.Time) *DemoService {
	s.now = now
	return s
}

type DemoDetailsInput struct {
	DemoDate          *time.Time         `json:"demoDate"`
	DemoType          models.DemoType    `json:"demoType"`
	Attendees         string             `json:"attendees"`
	DemoOutcome       models.DemoOutcome `json:"demoOutcome"`
	UserCountEstimate *int               `json:"userCountEstimate"`
	FollowUpRequired  bool               `json:"followUpRequired"`
	Notes             string             `json:"notes"`
}

// Upsert creates or replaces the lead's demo record.
func (s *DemoService) Upsert(ctx context.Context, leadID int64, in DemoDetailsInput) (*models.DemoDetails, error) {
	lead, err := s.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	switch in.DemoType {
	case "", models.DemoOnline, models.DemoInPerson, models.DemoHybrid:
	default:
		return nil, domain.NewValidationError(fmt.Sprintf("unknown demo type %q", in.DemoType))
	}
	switch in.DemoOutcome {
	case "", models.DemoOutcomePositive, models.DemoOutcomeNeutral, models.DemoOutcomeNegative, models.DemoOutcomeNoShow:
	default:
		return nil, domain.NewValidationError(fmt.Sprintf("unknown demo outcome %q", in.DemoOutcome))
	}

	now := s.now()
	details := &models.DemoDetails{
		LeadID:            leadID,
		DemoDate:          in.DemoDate,
		DemoType:          in.DemoType,
		Attendees:         in.Attendees,
		DemoOutcome:       in.DemoOutcome,
		UserCountEstimate: in.UserCountEstimate,
		FollowUpRequired:  in.FollowUpRequired,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.store.Demos.Upsert(ctx, details); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return details, nil
}

func (s *DemoService) GetByLead(ctx context.Context, leadID int64) (*models.DemoDetails, error) {
	details, err := s.store.Demos.GetByLeadID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if details == nil {
		return nil, domain.NewNotFoundError("demo details")
	}
	return details, nil
}

// ListUpcoming returns demos scheduled from now on, soonest first.
func (s *DemoService) ListUpcoming(ctx context.Context) ([]models.DemoDetails, error) {
	demos, err := s.store.Demos.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return demos, nil
}
