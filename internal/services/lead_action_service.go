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

// LeadActionService implements the one-call transition actions: close a deal
// won, close it lost, or park it in nurture. Each action is a single atomic
// unit of four writes: the guarded stage write, the dependent record, the
// activity log and the history record. A reader never observes a subset.
type LeadActionService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewLeadActionService(store *repositories.Store, log logger.Logger) *LeadActionService {
	return &LeadActionService{store: store, log: log, now: time.Now}
}

// WithClock replaces the service clock. Tests use this to pin time.
func (s *LeadActionService) WithClock(now func() time.Time) *LeadActionService {
	s.now = now
	return s
}

func (s *LeadActionService) loadOpen(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	if lead.CurrentStage.IsClosed() {
		return nil, domain.NewClosedDealImmutableError()
	}
	return lead, nil
}

// CloseAsWon marks the deal won. The follow-up date is cleared and a handoff
// next-action is scheduled a week out.
func (s *LeadActionService) CloseAsWon(ctx context.Context, id int64, notes string) (*models.Lead, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, domain.NewValidationError("notes are required when closing a deal")
	}

	lead, err := s.loadOpen(ctx, id)
	if err != nil {
		return nil, err
	}
	fromStage := lead.CurrentStage
	now := s.now()
	handoffDue := now.AddDate(0, 0, 7)

	err = s.store.InTx(ctx, func(r *repositories.Repos) error {
		matched, err := r.Leads.ApplyStageTransition(ctx, repositories.StageWrite{
			LeadID:           id,
			FromStage:        fromStage,
			ToStage:          models.StageClosedWon,
			NextFollowUpDate: nil,
			LastActivityDate: now,
			UpdatedAt:        now,

			SetNextAction:         true,
			NextActionType:        string(models.ActivityTask),
			NextActionDescription: "Complete handoff workflow",
			NextActionDueDate:     &handoffDue,
		})
		if err != nil {
			return err
		}
		if !matched {
			return domain.NewConflictError("lead stage changed concurrently, retry")
		}

		if err := r.Activities.Create(ctx, &models.Activity{
			LeadID:      id,
			Type:        models.ActivityNote,
			Subject:     "Deal Closed - Won",
			Notes:       notes,
			Completed:   true,
			CompletedAt: &now,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		return r.StageHistory.Create(ctx, &models.StageHistory{
			LeadID:    id,
			FromStage: &fromStage,
			ToStage:   models.StageClosedWon,
			Note:      notes,
			ChangedAt: now,
		})
	})
	if err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError(err)
	}

	s.log.Info("lead closed won", "lead_id", id, "from", string(fromStage))
	return s.reload(ctx, id)
}

// CloseAsLost marks the deal lost, recording who it was lost to and why. A
// long-range check-in is scheduled 180 days out in case the situation
// changes.
func (s *LeadActionService) CloseAsLost(ctx context.Context, id int64, competitorName string, reason models.LostReasonCategory, notes string) (*models.Lead, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, domain.NewValidationError("notes are required when closing a deal")
	}
	if reason == "" {
		return nil, domain.NewValidationError("a lost reason is required")
	}
	if !reason.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown lost reason %q", reason))
	}
	if strings.TrimSpace(competitorName) == "" {
		return nil, domain.NewValidationError("competitor name is required when closing as lost")
	}

	lead, err := s.loadOpen(ctx, id)
	if err != nil {
		return nil, err
	}
	fromStage := lead.CurrentStage
	now := s.now()
	checkInDue := now.AddDate(0, 0, 180)

	activityNotes := fmt.Sprintf("Lost to: %s\nReason: %s\n\n%s", competitorName, reason, notes)

	err = s.store.InTx(ctx, func(r *repositories.Repos) error {
		matched, err := r.Leads.ApplyStageTransition(ctx, repositories.StageWrite{
			LeadID:           id,
			FromStage:        fromStage,
			ToStage:          models.StageClosedLost,
			NextFollowUpDate: nil,
			LastActivityDate: now,
			UpdatedAt:        now,

			SetNextAction:         true,
			NextActionType:        string(models.ActivityEmail),
			NextActionDescription: "Follow up to check if situation changed",
			NextActionDueDate:     &checkInDue,
		})
		if err != nil {
			return err
		}
		if !matched {
			return domain.NewConflictError("lead stage changed concurrently, retry")
		}

		if err := r.LostReasons.Upsert(ctx, &models.LostReason{
			LeadID:         id,
			Reason:         reason,
			CompetitorName: competitorName,
			LostDate:       now,
			Notes:          notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return err
		}

		if err := r.Activities.Create(ctx, &models.Activity{
			LeadID:      id,
			Type:        models.ActivityNote,
			Subject:     "Deal Closed - Lost",
			Notes:       activityNotes,
			Completed:   true,
			CompletedAt: &now,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		return r.StageHistory.Create(ctx, &models.StageHistory{
			LeadID:    id,
			FromStage: &fromStage,
			ToStage:   models.StageClosedLost,
			Note:      notes,
			ChangedAt: now,
		})
	})
	if err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError(err)
	}

	s.log.Info("lead closed lost", "lead_id", id, "from", string(fromStage), "reason", string(reason))
	return s.reload(ctx, id)
}

// MoveToNurture parks the lead in a 30 or 90 day nurture cycle. Both the
// follow-up date and the next-action due date land at the end of the cycle.
func (s *LeadActionService) MoveToNurture(ctx context.Context, id int64, nurturePeriod int, notes string) (*models.Lead, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, domain.NewValidationError("notes are required when moving to nurture")
	}

	var toStage models.Stage
	switch nurturePeriod {
	case 30:
		toStage = models.StageNurture30Day
	case 90:
		toStage = models.StageNurture90Day
	default:
		return nil, domain.NewValidationError("nurture period must be 30 or 90 days")
	}

	lead, err := s.loadOpen(ctx, id)
	if err != nil {
		return nil, err
	}
	fromStage := lead.CurrentStage
	now := s.now()
	wakeUp := now.AddDate(0, 0, nurturePeriod)

	err = s.store.InTx(ctx, func(r *repositories.Repos) error {
		matched, err := r.Leads.ApplyStageTransition(ctx, repositories.StageWrite{
			LeadID:           id,
			FromStage:        fromStage,
			ToStage:          toStage,
			NextFollowUpDate: &wakeUp,
			LastActivityDate: now,
			UpdatedAt:        now,

			SetNextAction:         true,
			NextActionType:        string(models.ActivityEmail),
			NextActionDescription: "Check in to see if timing has improved",
			NextActionDueDate:     &wakeUp,
		})
		if err != nil {
			return err
		}
		if !matched {
			return domain.NewConflictError("lead stage changed concurrently, retry")
		}

		if err := r.Activities.Create(ctx, &models.Activity{
			LeadID:      id,
			Type:        models.ActivityNote,
			Subject:     fmt.Sprintf("Moved to Nurture (%d days)", nurturePeriod),
			Notes:       notes,
			Completed:   true,
			CompletedAt: &now,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		return r.StageHistory.Create(ctx, &models.StageHistory{
			LeadID:    id,
			FromStage: &fromStage,
			ToStage:   toStage,
			Note:      notes,
			ChangedAt: now,
		})
	})
	if err != nil {
		if domain.IsConflict(err) {
			return nil, err
		}
		return nil, domain.NewInternalError(err)
	}

	s.log.Info("lead moved to nurture", "lead_id", id, "period_days", nurturePeriod)
	return s.reload(ctx, id)
}

func (s *LeadActionService) reload(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	return lead, nil
}
