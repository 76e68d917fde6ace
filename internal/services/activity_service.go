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

type ActivityService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewActivityService(store *repositories.Store, log logger.Logger) *ActivityService {
	return &ActivityService{store: store, log: log, now: time.Now}
}

func (s *ActivityService) WithClock(now func() time.Time) *ActivityService {
	s.now = now
	return s
}

type LogActivityInput struct {
	Type      models.ActivityType `json:"type" binding:"required"`
	Subject   string              `json:"subject" binding:"required"`
	Notes     string              `json:"notes"`
	Completed bool                `json:"completed"`
	DueDate   *time.Time          `json:"dueDate"`
}

// LogActivity records an interaction and stamps the lead's last activity
// date in the same transaction.
func (s *ActivityService) LogActivity(ctx context.Context, leadID int64, in LogActivityInput) (*models.Activity, error) {
	if !in.Type.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown activity type %q", in.Type))
	}
	if strings.TrimSpace(in.Subject) == "" {
		return nil, domain.NewValidationError("subject is required")
	}

	lead, err := s.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}

	now := s.now()
	activity := &models.Activity{
		LeadID:    leadID,
		Type:      in.Type,
		Subject:   in.Subject,
		Notes:     in.Notes,
		Completed: in.Completed,
		DueDate:   in.DueDate,
		CreatedAt: now,
	}
	if in.Completed {
		activity.CompletedAt = &now
	}

	err = s.store.InTx(ctx, func(r *repositories.Repos) error {
		if err := r.Activities.Create(ctx, activity); err != nil {
			return err
		}
		return r.Leads.TouchLastActivity(ctx, leadID, now)
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return activity, nil
}

func (s *ActivityService) ListByLead(ctx context.Context, leadID int64) ([]models.Activity, error) {
	lead, err := s.store.Leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	activities, err := s.store.Activities.ListByLead(ctx, leadID, 0)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return activities, nil
}

// Complete marks a pending activity done.
func (s *ActivityService) Complete(ctx context.Context, id int64) (*models.Activity, error) {
	activity, err := s.store.Activities.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if activity == nil {
		return nil, domain.NewNotFoundError("activity")
	}

	now := s.now()
	activity.Completed = true
	activity.CompletedAt = &now
	if err := s.store.Activities.Update(ctx, activity); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	activity, err := s.store.Activities.GetByID(ctx, id)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if activity == nil {
		return domain.NewNotFoundError("activity")
	}
	if err := s.store.Activities.Delete(ctx, id); err != nil {
		return domain.NewInternalError(err)
	}
	return nil
}
