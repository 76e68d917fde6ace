package services

import (
	"context"
	"time"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/repositories"
)

// PlannerService assembles the daily planner view over the leads'
// user-managed next-action due dates.
type PlannerService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewPlannerService(store *repositories.Store, log logger.Logger) *PlannerService {
	return &PlannerService{store: store, log: log, now: time.Now}
}

func (s *PlannerService) WithClock(now func() time.Time) *PlannerService {
	s.now = now
	return s
}

// PlannerView partitions active leads by next-action urgency. NoDate holds
// active pipeline leads with nothing scheduled at all, so they don't fall
// through the cracks.
type PlannerView struct {
	Overdue  []*models.Lead `json:"overdue"`
	Today    []*models.Lead `json:"today"`
	ThisWeek []*models.Lead `json:"this_week"`
	NoDate   []*models.Lead `json:"no_date"`
}

func (s *PlannerService) GetPlannerView(ctx context.Context) (*PlannerView, error) {
	now := s.now()
	todayStart := startOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	weekEnd := todayStart.AddDate(0, 0, 7)

	view := &PlannerView{
		Overdue:  []*models.Lead{},
		Today:    []*models.Lead{},
		ThisWeek: []*models.Lead{},
		NoDate:   []*models.Lead{},
	}
	var err error

	if view.Overdue, err = s.store.Leads.ListNextActionOverdue(ctx, todayStart); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if view.Today, err = s.store.Leads.ListByNextAction(ctx, todayStart, tomorrowStart); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if view.ThisWeek, err = s.store.Leads.ListByNextAction(ctx, tomorrowStart, weekEnd); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if view.NoDate, err = s.store.Leads.ListWithoutDates(ctx); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return view, nil
}
