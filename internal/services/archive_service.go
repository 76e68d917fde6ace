package services

import (
	"context"
	"strings"
	"time"

	"github.com/loydmilligan/leadoff/internal/domain"
	"github.com/loydmilligan/leadoff/internal/logger"
	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/repositories"
)

// ArchiveService parks leads out of the active pipeline without destroying
// their history. Archived leads disappear from listings, follow-ups and the
// planner until restored.
type ArchiveService struct {
	store *repositories.Store
	log   logger.Logger
	now   func() time.Time
}

func NewArchiveService(store *repositories.Store, log logger.Logger) *ArchiveService {
	return &ArchiveService{store: store, log: log, now: time.Now}
}

func (s *ArchiveService) WithClock(now func() time.Time) *ArchiveService {
	s.now = now
	return s
}

func (s *ArchiveService) Archive(ctx context.Context, id int64, reason string) (*models.Lead, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("archive reason is required")
	}

	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	if lead.IsArchived {
		return nil, domain.NewValidationError("lead is already archived")
	}

	now := s.now()
	if err := s.store.Leads.Archive(ctx, id, reason, now); err != nil {
		return nil, domain.NewInternalError(err)
	}
	s.log.Info("lead archived", "lead_id", id, "reason", reason)

	lead.IsArchived = true
	lead.ArchivedAt = &now
	lead.ArchiveReason = reason
	lead.UpdatedAt = now
	return lead, nil
}

func (s *ArchiveService) Restore(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if lead == nil {
		return nil, domain.NewNotFoundError("lead")
	}
	if !lead.IsArchived {
		return nil, domain.NewValidationError("lead is not archived")
	}

	now := s.now()
	if err := s.store.Leads.Restore(ctx, id, now); err != nil {
		return nil, domain.NewInternalError(err)
	}
	s.log.Info("lead restored", "lead_id", id)

	lead.IsArchived = false
	lead.ArchivedAt = nil
	lead.ArchiveReason = ""
	lead.UpdatedAt = now
	return lead, nil
}

func (s *ArchiveService) ListArchived(ctx context.Context) ([]*models.Lead, error) {
	leads, err := s.store.Leads.ListArchived(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return leads, nil
}

// Purge permanently deletes an archived lead and all of its records. Active
// leads must be archived first.
func (s *ArchiveService) Purge(ctx context.Context, id int64) error {
	lead, err := s.store.Leads.GetByID(ctx, id)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if lead == nil {
		return domain.NewNotFoundError("lead")
	}
	if !lead.IsArchived {
		return domain.NewValidationError("only archived leads can be purged")
	}
	if err := s.store.Leads.Delete(ctx, id); err != nil {
		return domain.NewInternalError(err)
	}
	s.log.Info("lead purged", "lead_id", id)
	return nil
}
